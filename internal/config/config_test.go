package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
}

func TestValidateCatchesBadConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			name:   "negative workers",
			mutate: func(c *Config) { c.App.Workers = -1 },
			want:   "app.workers",
		},
		{
			name:   "no providers",
			mutate: func(c *Config) { c.Providers = nil },
			want:   "providers must not be empty",
		},
		{
			name: "provider without patterns",
			mutate: func(c *Config) {
				c.Providers = append(c.Providers, ProviderPatterns{Name: "Empty"})
			},
			want: "no patterns at all",
		},
		{
			name: "bad footer regexp",
			mutate: func(c *Config) {
				c.Providers[0].FooterRegexp = "("
			},
			want: "bad regexp",
		},
		{
			name:   "empty position terms",
			mutate: func(c *Config) { c.Extract.Positions.Any = nil },
			want:   "extract.positions.any",
		},
		{
			name:   "zero scan lines",
			mutate: func(c *Config) { c.Extract.MetadataScanLines = 0 },
			want:   "metadata_scan_lines",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	want := Default()
	if err := SaveAtomic(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Error("config did not survive a save/load round trip")
	}
}

func TestSaveAtomicKeepsBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	if err := SaveAtomic(path, Default()); err != nil {
		t.Fatalf("first save: %v", err)
	}
	second := Default()
	second.App.Workers = 8
	if err := SaveAtomic(path, second); err != nil {
		t.Fatalf("second save: %v", err)
	}

	if _, err := os.Stat(path + ".bak"); err != nil {
		t.Errorf("backup of previous config missing: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.App.Workers != 8 {
		t.Errorf("workers = %d, want 8", got.App.Workers)
	}
}

func TestSaveAtomicRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")

	bad := Default()
	bad.Providers = nil
	if err := SaveAtomic(path, bad); err == nil {
		t.Fatal("invalid config must not be written")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("no file should exist after a rejected save")
	}
}

func TestEnsureUserConfig(t *testing.T) {
	dir := t.TempDir()

	path, err := EnsureUserConfig(dir)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if path != filepath.Join(dir, "config.yml") {
		t.Errorf("path = %q", path)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load bootstrapped config: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("bootstrapped config invalid: %v", err)
	}

	// second call must keep the existing file untouched
	before, _ := os.ReadFile(path)
	if _, err := EnsureUserConfig(dir); err != nil {
		t.Fatalf("second run: %v", err)
	}
	after, _ := os.ReadFile(path)
	if string(before) != string(after) {
		t.Error("existing config was rewritten")
	}
}

func TestOverlayProviders(t *testing.T) {
	cfg := Default()
	dir := t.TempDir()
	path := filepath.Join(dir, "providers.yml")

	overlay := `providers:
  - name: Monster
    sender_any: ["alerts@monster.com"]
`
	if err := os.WriteFile(path, []byte(overlay), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := OverlayProviders(&cfg, path); err != nil {
		t.Fatalf("overlay: %v", err)
	}
	if len(cfg.Providers) != 1 || cfg.Providers[0].Name != "Monster" {
		t.Errorf("providers = %+v, want the overlay table", cfg.Providers)
	}
}

func TestOverlayProvidersMissingFile(t *testing.T) {
	cfg := Default()
	n := len(cfg.Providers)

	if err := OverlayProviders(&cfg, filepath.Join(t.TempDir(), "nope.yml")); err != nil {
		t.Fatalf("missing overlay must not error: %v", err)
	}
	if len(cfg.Providers) != n {
		t.Error("providers changed without an overlay file")
	}
}

func TestOverlayProvidersBadYAML(t *testing.T) {
	cfg := Default()
	path := filepath.Join(t.TempDir(), "providers.yml")
	if err := os.WriteFile(path, []byte("providers: [not: valid"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := OverlayProviders(&cfg, path); err == nil {
		t.Error("malformed overlay must error")
	}
}
