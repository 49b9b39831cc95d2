package tui_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readmedoctor/readme-doctor/internal/adapters/outbound/tui"
	"github.com/readmedoctor/readme-doctor/internal/domain"
)

func sampleReport() *domain.ScoreReport {
	return &domain.ScoreReport{
		Path:    "project/README.md",
		Score:   67,
		Max:     100,
		Hits:    []domain.Section{domain.SectionTitle, domain.SectionUsage},
		Missing: []domain.Section{domain.SectionLicense, domain.SectionAltImages},
	}
}

func TestRenderReport_ContainsScoreAndGrade(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "67 / 100")
	assert.Contains(t, output, "C")
	assert.Contains(t, output, "project/README.md")
}

func TestRenderReport_ListsSections(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "title")
	assert.Contains(t, output, "usage")
	assert.Contains(t, output, "license")
	assert.Contains(t, output, "alt images")
}

func TestRenderReport_Suggestions(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "add-license")
	assert.Contains(t, output, "add-altImages")
	assert.Contains(t, output, "readme-doctor fix")
}

func TestRenderReport_NothingMissing(t *testing.T) {
	output := tui.RenderReport(&domain.ScoreReport{Score: 100, Hits: domain.AllSections, Missing: []domain.Section{}})
	assert.Contains(t, output, "nothing, nice work")
	assert.NotContains(t, output, "Suggestions")
}

func TestSuggestions_MarksManualSections(t *testing.T) {
	got := tui.Suggestions([]domain.Section{domain.SectionFAQ, domain.SectionLinks})
	require.Len(t, got, 2)
	assert.Equal(t, "add-faq", got[0])
	assert.Contains(t, got[1], "add-links")
	assert.Contains(t, got[1], "manual")
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "alt images", tui.Humanize(domain.SectionAltImages))
	assert.Equal(t, "quickstart", tui.Humanize(domain.SectionQuickstart))
}

func TestRenderFixPlan(t *testing.T) {
	written := tui.RenderFixPlan(&domain.FixPlan{Applied: []string{"usage"}, Written: true, ScoreBefore: 10, ScoreAfter: 20}, "README.md")
	assert.Contains(t, written, "Wrote updates to README.md")
	assert.Contains(t, written, "usage")
	assert.Contains(t, written, "10 → 20")

	dry := tui.RenderFixPlan(&domain.FixPlan{Applied: []string{"usage"}}, "README.md")
	assert.Contains(t, dry, "Would update README.md")

	none := tui.RenderFixPlan(&domain.FixPlan{Applied: []string{}}, "README.md")
	assert.Contains(t, none, "No changes needed")
}

func TestRenderPreview(t *testing.T) {
	out, err := tui.RenderPreview("## Usage\n\nRun the tool.\n", 60)
	require.NoError(t, err)
	assert.Contains(t, out, "Usage")
	assert.Contains(t, out, "Run the tool.")
}

func TestRenderHistory(t *testing.T) {
	entries := []domain.ScoreEntry{
		{Timestamp: "2026-01-02T10:00:00Z", CommitHash: "abcdef0123", Score: 50, Grade: "D"},
		{Timestamp: "2026-01-03T10:00:00Z", Score: 70, Grade: "B"},
	}
	out := tui.RenderHistory(entries)
	assert.Contains(t, out, "2026-01-02")
	assert.Contains(t, out, "abcdef0")
	assert.NotContains(t, out, "abcdef0123")
	assert.Contains(t, out, "↑20")
}

func TestRenderHistory_Empty(t *testing.T) {
	assert.Contains(t, tui.RenderHistory(nil), "No score history found.")
}

func TestRenderRules(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Sections[domain.SectionFAQ] = false
	out := tui.RenderRules(cfg)
	assert.Contains(t, out, "altImages")
	assert.Contains(t, out, "off")
}

func TestRenderReport_SortsSectionsAlphabetically(t *testing.T) {
	report := &domain.ScoreReport{
		Score:   10,
		Hits:    []domain.Section{domain.SectionTitle, domain.SectionTagline},
		Missing: []domain.Section{domain.SectionBadges, domain.SectionLicense, domain.SectionAltImages},
	}
	output := tui.RenderReport(report)

	assert.Less(t, strings.Index(output, "add-altImages"), strings.Index(output, "add-badges"))
	assert.Less(t, strings.Index(output, "add-badges"), strings.Index(output, "add-license"))
	assert.Less(t, strings.Index(output, "alt images"), strings.Index(output, "badges"))
	assert.Less(t, strings.Index(output, "tagline"), strings.Index(output, "title"))

	assert.Equal(t, []domain.Section{domain.SectionBadges, domain.SectionLicense, domain.SectionAltImages}, report.Missing,
		"report keeps rule table order")
}
