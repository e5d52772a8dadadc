package extract

import (
	"testing"

	"jobalert-engine/internal/config"
)

func TestFoldLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Senior Software Engineer", "senior software engineer"},
		{"Senior!! Software---Engineer", "senior software engineer"},
		{"  spaced   out  ", "spaced out"},
		{"Ingénieur  Logiciel", "ingénieur logiciel"},
		{"C++ Developer (L4)", "c developer l4"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := foldLine(tt.in); got != tt.want {
			t.Errorf("foldLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsPosition(t *testing.T) {
	e, _ := newTestEngine(t)
	rs := e.rules

	tests := []struct {
		line string
		want bool
	}{
		{"Senior Software Engineer", true},
		{"Data Analyst", true},
		{"Sr. DevOps Specialist", true},
		{"Ingénieur Logiciel", true}, // matches here, the English gate rejects it later
		{"International shipping update", false},
		{"Software Engineering", false}, // word boundary: "engineer" must not hit "engineering"
		{"Thanks for subscribing", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := rs.isPosition(tt.line); got != tt.want {
			t.Errorf("isPosition(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestIsPositionExcept(t *testing.T) {
	rs := newRuleSet(nil,
		config.Rule{Any: []string{"engineer"}, Except: []string{"engineer blog"}},
		config.LocationRule{}, config.Rule{}, nil, "")

	if !rs.isPosition("Platform Engineer") {
		t.Error("plain keyword line should match")
	}
	if rs.isPosition("Read the Engineer Blog this week") {
		t.Error("exception phrase must veto the keyword match")
	}
}

func TestEnglishGate(t *testing.T) {
	e, _ := newTestEngine(t)
	rs := e.rules

	tests := []struct {
		line string
		want bool
	}{
		{"Senior Software Engineer (Remote)", true},
		{"C++ Developer - L4", true},
		{"Data/ML Engineer, Platform", true},
		{"Engineer [Contract] & Ops", true},
		{"Ingénieur Logiciel", false},
		{"Über Engineer", false},
		{"Engineer™", false},
		{"Engineer?", false},
		{"", true},
	}
	for _, tt := range tests {
		if got := rs.english(tt.line); got != tt.want {
			t.Errorf("english(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestLocation(t *testing.T) {
	e, _ := newTestEngine(t)
	rs := e.rules

	tests := []struct {
		line    string
		want    string
		matched bool
	}{
		{"New York, NY", "New York, NY", true},
		{"  Boston, MA  ", "Boston, MA", true},
		{"Remote", "Remote", true},
		{"place Singapore", "Singapore", true},
		{"Place London", "London", true},
		{"Today at 10:30 AM in Seattle", "", false}, // clock times are never locations
		{"Sent 9:15 PM", "", false},
		{"some unrelated line", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := rs.location(tt.line)
		if ok != tt.matched || got != tt.want {
			t.Errorf("location(%q) = (%q, %v), want (%q, %v)", tt.line, got, ok, tt.want, tt.matched)
		}
	}
}

func TestIsQualification(t *testing.T) {
	e, _ := newTestEngine(t)
	rs := e.rules

	tests := []struct {
		line string
		want bool
	}{
		{"Bachelor's degree required", true},
		{"5+ years of experience with Go", true},
		{"Must have AWS certification", true},
		{"Enjoy paid vacation and a degree of flexibility", false}, // benefits boilerplate
		{"We are a fun team", false},
	}
	for _, tt := range tests {
		if got := rs.isQualification(tt.line); got != tt.want {
			t.Errorf("isQualification(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestListingMarkerAndRemoteSignal(t *testing.T) {
	e, _ := newTestEngine(t)
	rs := e.rules

	if !rs.isListingMarker("Your Job Alerts") {
		t.Error("marker should match case-insensitively as a substring")
	}
	if !rs.isListingMarker("jobs for you today") {
		t.Error("marker phrase inside a longer line should match")
	}
	if rs.isListingMarker("Hello there") {
		t.Error("unrelated line must not be a marker")
	}

	if !rs.remoteSignal("Remote") || !rs.remoteSignal("Hybrid - Boston") {
		t.Error("remote signals should match case-insensitively")
	}
	if rs.remoteSignal("On-site only") {
		t.Error("on-site line must not signal remote")
	}
}
