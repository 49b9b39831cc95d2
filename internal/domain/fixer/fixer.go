package fixer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/readmedoctor/readme-doctor/internal/domain"
)

// Marker names are part of the on-disk format of fixed documents and must
// not change between releases.
const markerPrefix = "readme-doctor"

// StartMarker returns the sentinel that opens the block named name.
func StartMarker(name string) string {
	return fmt.Sprintf("<!-- %s:start:%s -->", markerPrefix, name)
}

// EndMarker returns the sentinel that closes the block named name.
func EndMarker(name string) string {
	return fmt.Sprintf("<!-- %s:end:%s -->", markerPrefix, name)
}

// HasMarker reports whether doc already carries the block named name.
func HasMarker(doc, name string) bool {
	return strings.Contains(doc, StartMarker(name))
}

// Block renders the full sentinel-delimited block as appended to a document.
func Block(name, content string) string {
	return "\n\n" + StartMarker(name) + "\n" + strings.TrimSpace(content) + "\n" + EndMarker(name) + "\n"
}

// remedy is one fixable block. It applies when any trigger is missing, or,
// for the title, when needed reports true on the current text.
type remedy struct {
	name     string
	triggers []domain.Section
	needed   func(doc string) bool
	template string
}

var anyHeading = regexp.MustCompile(`(?m)^#\s+`)

// remedies is in append priority order.
var remedies = []remedy{
	{
		// Checked against the text itself, not the missing list, so it
		// fires even when title scoring is disabled in config.
		name:     "title",
		needed:   func(doc string) bool { return !anyHeading.MatchString(doc) },
		template: titleTemplate,
	},
	{name: "badges", triggers: []domain.Section{domain.SectionBadges}, template: badgesTemplate},
	{name: "toc", triggers: []domain.Section{domain.SectionTOC}, template: tocTemplate},
	{name: "quickstart", triggers: []domain.Section{domain.SectionInstall, domain.SectionQuickstart}, template: quickstartTemplate},
	{name: "usage", triggers: []domain.Section{domain.SectionUsage}, template: usageTemplate},
	{name: "configuration", triggers: []domain.Section{domain.SectionConfig}, template: configTemplate},
	{name: "ci", triggers: []domain.Section{domain.SectionCI}, template: ciTemplate},
	{name: "security", triggers: []domain.Section{domain.SectionSecurity}, template: securityTemplate},
	{name: "license", triggers: []domain.Section{domain.SectionLicense}, template: licenseTemplate},
	{name: "contributing", triggers: []domain.Section{domain.SectionContributing}, template: contributingTemplate},
	{name: "roadmap", triggers: []domain.Section{domain.SectionRoadmap}, template: roadmapTemplate},
	{name: "faq", triggers: []domain.Section{domain.SectionFAQ}, template: faqTemplate},
}

func (r remedy) applies(doc string, missing map[domain.Section]bool) bool {
	if r.needed != nil {
		return r.needed(doc)
	}
	for _, t := range r.triggers {
		if missing[t] {
			return true
		}
	}
	return false
}

// Apply appends a marked block for every fixable section in missing that the
// document does not already carry. Blocks go in remedy order regardless of
// the order of missing. Sections without a template are ignored. Config is
// not consulted: whatever the caller lists as missing gets fixed.
func Apply(doc string, missing []domain.Section) domain.FixResult {
	want := make(map[domain.Section]bool, len(missing))
	for _, s := range missing {
		want[s] = true
	}

	out := doc
	result := domain.FixResult{Applied: []string{}}
	for _, r := range remedies {
		if !r.applies(out, want) || HasMarker(out, r.name) {
			continue
		}
		out += Block(r.name, r.template)
		result.Applied = append(result.Applied, r.name)
	}

	result.Text = out
	result.Changed = out != doc
	return result
}

// Preview returns only the blocks Apply would append to doc, without the
// original text.
func Preview(doc string, missing []domain.Section) string {
	return strings.TrimPrefix(Apply(doc, missing).Text, doc)
}

// Markers lists every block name in append order.
func Markers() []string {
	names := make([]string, len(remedies))
	for i, r := range remedies {
		names[i] = r.name
	}
	return names
}

// Fixable reports whether a missing section has a template that addresses it.
func Fixable(s domain.Section) bool {
	if s == domain.SectionTitle {
		return true
	}
	for _, r := range remedies {
		for _, t := range r.triggers {
			if t == s {
				return true
			}
		}
	}
	return false
}
