package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

func Validate(cfg Config) error {
	var errs []string

	if cfg.App.Workers < 0 {
		errs = append(errs, "app.workers must be >= 0")
	}
	if cfg.App.DocsPerSecond < 0 {
		errs = append(errs, "app.docs_per_second must be >= 0")
	}
	if cfg.Extract.MetadataScanLines <= 0 {
		errs = append(errs, "extract.metadata_scan_lines must be > 0")
	}
	if len(cfg.Providers) == 0 {
		errs = append(errs, "providers must not be empty")
	}

	for i, p := range cfg.Providers {
		if p.Name == "" {
			errs = append(errs, fmt.Sprintf("providers[%d].name is required", i))
		}
		if len(p.SenderAny) == 0 && p.FooterRegexp == "" && p.LooseKeyword == "" {
			errs = append(errs, fmt.Sprintf("providers[%d] (%s) has no patterns at all", i, p.Name))
		}
		for _, expr := range []string{p.FooterRegexp, p.SectionSeparator} {
			if expr == "" {
				continue
			}
			if _, err := regexp.Compile(expr); err != nil {
				errs = append(errs, fmt.Sprintf("providers[%d] (%s): bad regexp %q: %v", i, p.Name, expr, err))
			}
		}
	}

	checkRule := func(name string, r Rule) {
		if len(r.Any) == 0 {
			errs = append(errs, fmt.Sprintf("%s.any must have at least 1 term", name))
		}
		for j, term := range r.Any {
			if term == "" {
				errs = append(errs, fmt.Sprintf("%s.any[%d] cannot be empty", name, j))
			}
		}
	}
	checkRule("extract.positions", cfg.Extract.Positions)
	checkRule("extract.qualifications", cfg.Extract.Qualifications)
	checkRule("extract.fallback.positions", cfg.Extract.Fallback.Positions)
	checkRule("extract.fallback.qualifications", cfg.Extract.Fallback.Qualifications)

	if len(cfg.Extract.ListingMarkers) == 0 {
		errs = append(errs, "extract.listing_markers must not be empty")
	}
	if len(cfg.Extract.Locations.Names) == 0 {
		errs = append(errs, "extract.locations.names must not be empty")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + joinLines(errs))
	}
	return nil
}

func SaveAtomic(path string, cfg Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	bak := path + ".bak"

	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}

	_ = os.Remove(bak)
	_ = os.Rename(path, bak)

	return os.Rename(tmp, path)
}

func joinLines(lines []string) string {
	out := ""
	for i, s := range lines {
		if i > 0 {
			out += "\n- "
		}
		out += s
	}
	return out
}
