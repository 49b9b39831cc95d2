package scoring

import (
	"regexp"

	"github.com/readmedoctor/readme-doctor/internal/domain"
)

// Rule is one checklist item: a detector and the points it is worth.
type Rule struct {
	Section domain.Section
	Weight  int
	Detect  func(doc string) bool
}

// matches builds a detector that succeeds when any of the patterns match.
func matches(patterns ...string) func(string) bool {
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		res[i] = regexp.MustCompile(p)
	}
	return func(doc string) bool {
		for _, re := range res {
			if re.MatchString(doc) {
				return true
			}
		}
		return false
	}
}

// rules is shared read-only by every evaluation. Order is report order.
var rules = []Rule{
	{domain.SectionTitle, 6, matches(`(?m)^#\s+\S+`)},
	{domain.SectionTagline, 4, matches(`(?m)^>\s+.+`)},
	{domain.SectionBadges, 10, matches(`\[!\[.*?\]\(https?://img\.shields\.io/.*?\)\]\(.*?\)`)},
	{domain.SectionInstall, 8, matches("(?i)```[\\s\\S]*?(npm i|npx|pip|brew|go install)[\\s\\S]*?```")},
	{domain.SectionQuickstart, 10, matches(`(?m)^##\s+Quick start`)},
	{domain.SectionUsage, 10, matches(`(?m)^##\s+Usage`)},
	{domain.SectionConfig, 8, matches(`(?mi)^##\s+Config(uration)?`)},
	{domain.SectionCI, 5, matches(`(?mi)^##\s+CI|GitHub Action`)},
	{domain.SectionSecurity, 8, matches(`(?i)SECURITY\.md`, `(?mi)^##\s+Security`)},
	{domain.SectionLicense, 5, matches(`(?mi)LICENSE|^##\s+License`)},
	{domain.SectionContributing, 5, matches(`(?i)CONTRIBUTING\.md`, `(?mi)^##\s+Contributing`)},
	{domain.SectionTOC, 5, matches(`(?mi)^##\s+Table of contents`)},
	{domain.SectionRoadmap, 5, matches(`(?mi)^##\s+Roadmap`)},
	{domain.SectionFAQ, 5, matches(`(?mi)^##\s+FAQ`)},
	{domain.SectionAltImages, 6, matches(`!\[[^\]\n]+\]\(.*?\)`)},
	{domain.SectionLinks, 4, matches(`\[[^\]]+\]\(https?://[^)]+\)`)},
}

// Rules returns a copy of the rule table in scoring order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Lookup returns the rule for a section.
func Lookup(s domain.Section) (Rule, bool) {
	for _, r := range rules {
		if r.Section == s {
			return r, true
		}
	}
	return Rule{}, false
}

// TotalWeight is the sum of all rule weights before the 100-point cap.
func TotalWeight() int {
	total := 0
	for _, r := range rules {
		total += r.Weight
	}
	return total
}
