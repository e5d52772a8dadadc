package domain

import "testing"

func TestPostingRender(t *testing.T) {
	tests := []struct {
		name string
		p    Posting
		want string
	}{
		{
			name: "all fields",
			p:    Posting{Title: "Engineer", Location: "Remote", Qualifications: "BS degree"},
			want: "Engineer | Remote | BS degree",
		},
		{
			name: "missing fields become Unknown",
			p:    Posting{Title: "Engineer"},
			want: "Engineer | Unknown | Unknown",
		},
		{
			name: "multi-line qualifications flatten",
			p:    Posting{Title: "Engineer", Location: "Boston, MA", Qualifications: "BS degree\n3 years Go"},
			want: "Engineer | Boston, MA | BS degree; 3 years Go",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Render(); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProviderIdentified(t *testing.T) {
	if !ProviderGlassdoor.Identified() {
		t.Error("named provider must be identified")
	}
	if ProviderUnidentified.Identified() {
		t.Error("Unidentified must not be identified")
	}
	if Provider("").Identified() {
		t.Error("empty provider must not be identified")
	}
}
