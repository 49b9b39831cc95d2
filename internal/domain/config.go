package domain

import (
	"fmt"
	"sort"
)

const (
	DefaultPath     = "README.md"
	DefaultMinScore = 80
)

// Config holds the settings loaded from .readme-doctor.yaml (or the legacy
// readme-doctor.config.json).
type Config struct {
	Path     string           `yaml:"path"     json:"path"`
	MinScore int              `yaml:"minScore" json:"minScore"`
	Sections map[Section]bool `yaml:"sections" json:"sections"`
}

// DefaultConfig returns the documented defaults: README.md, minScore 80,
// every section enabled.
func DefaultConfig() Config {
	sections := make(map[Section]bool, len(AllSections)-1)
	for _, s := range AllSections {
		if s == SectionTagline {
			continue
		}
		sections[s] = true
	}
	return Config{
		Path:     DefaultPath,
		MinScore: DefaultMinScore,
		Sections: sections,
	}
}

// GateFor returns the config key that enables s. The tagline has no flag of
// its own and follows the title.
func GateFor(s Section) Section {
	if s == SectionTagline {
		return SectionTitle
	}
	return s
}

// Enabled reports whether section s takes part in scoring.
// A key missing from Sections counts as enabled.
func (c Config) Enabled(s Section) bool {
	on, ok := c.Sections[GateFor(s)]
	return !ok || on
}

// Disabled returns the sections switched off by config, sorted.
func (c Config) Disabled() []Section {
	var out []Section
	for s, on := range c.Sections {
		if !on {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ConfigOverrides is the user-supplied part of a Config as read from disk.
// Pointer types distinguish "not specified" from zero values.
type ConfigOverrides struct {
	Path     string           `yaml:"path,omitempty"     json:"path,omitempty"`
	MinScore *int             `yaml:"minScore,omitempty" json:"minScore,omitempty"`
	Sections map[Section]bool `yaml:"sections,omitempty" json:"sections,omitempty"`
}

// Merge overlays o on c. Explicit values win; section flags are merged key by
// key so an override never silently disables other sections.
func (c Config) Merge(o ConfigOverrides) Config {
	result := Config{
		Path:     c.Path,
		MinScore: c.MinScore,
		Sections: make(map[Section]bool, len(c.Sections)+len(o.Sections)),
	}
	for s, on := range c.Sections {
		result.Sections[s] = on
	}

	if o.Path != "" {
		result.Path = o.Path
	}
	if o.MinScore != nil {
		result.MinScore = *o.MinScore
	}
	for s, on := range o.Sections {
		result.Sections[s] = on
	}
	return result
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c Config) Validate() error {
	if c.MinScore < 0 || c.MinScore > MaxScore {
		return fmt.Errorf("minScore = %d (must be between 0 and %d)", c.MinScore, MaxScore)
	}

	for s := range c.Sections {
		if s == SectionTagline {
			return fmt.Errorf("section %q has no flag of its own (it follows %q)", s, SectionTitle)
		}
		if !s.IsValid() {
			return fmt.Errorf("unknown section %q in sections", s)
		}
	}

	return nil
}
