package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readmedoctor/readme-doctor/internal/domain"
	"github.com/readmedoctor/readme-doctor/internal/domain/scoring"
)

const fullReadme = "# readme-doctor\n\n" +
	"> Score and fix your README.\n\n" +
	"[![CI](https://img.shields.io/badge/ci-passing-green.svg)](./actions)\n\n" +
	"![logo](docs/logo.png)\n\n" +
	"## Table of contents\n- [Usage](#usage)\n\n" +
	"## Quick start\n```bash\ngo install github.com/readmedoctor/readme-doctor@latest\n```\n\n" +
	"## Usage\nRun it.\n\n" +
	"## Configuration\nSee below.\n\n" +
	"## CI\nUse the GitHub Action.\n\n" +
	"## Security\nSee SECURITY.md.\n\n" +
	"## Contributing\nSee CONTRIBUTING.md.\n\n" +
	"## Roadmap\n- more rules\n\n" +
	"## FAQ\nNone yet.\n\n" +
	"## License\nMIT, see [LICENSE](https://example.com/LICENSE).\n"

func TestEvaluate_EmptyDocument(t *testing.T) {
	report := scoring.Evaluate("", domain.DefaultConfig())

	assert.Equal(t, 0, report.Score)
	assert.Equal(t, 100, report.Max)
	assert.Empty(t, report.Hits)
	assert.Equal(t, domain.AllSections, report.Missing)
}

func TestEvaluate_MinimalDocument(t *testing.T) {
	report := scoring.Evaluate("# Title\n\n> Tagline\n", domain.DefaultConfig())

	assert.Equal(t, 10, report.Score, "title 6 + tagline 4")
	assert.Equal(t, []domain.Section{domain.SectionTitle, domain.SectionTagline}, report.Hits)
	assert.Contains(t, report.Missing, domain.SectionBadges)
	assert.Contains(t, report.Missing, domain.SectionInstall)
	assert.Contains(t, report.Missing, domain.SectionQuickstart)
	assert.Contains(t, report.Missing, domain.SectionUsage)
	assert.Len(t, report.Missing, 14)
}

func TestEvaluate_FullDocumentIsCapped(t *testing.T) {
	report := scoring.Evaluate(fullReadme, domain.DefaultConfig())

	require.Empty(t, report.Missing, "every section should be detected")
	assert.Equal(t, domain.AllSections, report.Hits)
	assert.Equal(t, 100, report.Score, "104 raw points are clamped to 100")
}

func TestEvaluate_Deterministic(t *testing.T) {
	cfg := domain.DefaultConfig()
	first := scoring.Evaluate(fullReadme, cfg)
	for range 5 {
		assert.Equal(t, first, scoring.Evaluate(fullReadme, cfg))
	}
}

func TestEvaluate_ScoreBounds(t *testing.T) {
	docs := []string{"", "#", "# A", fullReadme, fullReadme + fullReadme, "\n\n\n"}
	for _, doc := range docs {
		report := scoring.Evaluate(doc, domain.DefaultConfig())
		assert.GreaterOrEqual(t, report.Score, 0)
		assert.LessOrEqual(t, report.Score, 100)
	}
}

func TestEvaluate_DisabledSectionExcluded(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Sections[domain.SectionFAQ] = false
	cfg.Sections[domain.SectionBadges] = false

	withFAQ := scoring.Evaluate(fullReadme, cfg)
	assert.NotContains(t, withFAQ.Hits, domain.SectionFAQ)
	assert.NotContains(t, withFAQ.Hits, domain.SectionBadges)
	assert.Equal(t, 89, withFAQ.Score, "104 - faq 5 - badges 10")

	empty := scoring.Evaluate("", cfg)
	assert.NotContains(t, empty.Missing, domain.SectionFAQ)
	assert.NotContains(t, empty.Missing, domain.SectionBadges)
	assert.Len(t, empty.Missing, 14)
}

func TestEvaluate_DisabledSectionContributesNothing(t *testing.T) {
	doc := "# Title\n\n## FAQ\n"
	cfg := domain.DefaultConfig()

	on := scoring.Evaluate(doc, cfg)
	cfg.Sections[domain.SectionFAQ] = false
	off := scoring.Evaluate(doc, cfg)

	assert.Equal(t, on.Score-5, off.Score)
}

func TestEvaluate_TaglineFollowsTitleFlag(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Sections[domain.SectionTitle] = false

	report := scoring.Evaluate("# Title\n\n> Tagline\n", cfg)

	assert.Equal(t, 0, report.Score)
	assert.NotContains(t, report.Hits, domain.SectionTitle)
	assert.NotContains(t, report.Hits, domain.SectionTagline)
	assert.NotContains(t, report.Missing, domain.SectionTagline)
}

func TestEvaluate_AbsentKeyMeansEnabled(t *testing.T) {
	cfg := domain.Config{Sections: map[domain.Section]bool{domain.SectionLinks: false}}

	report := scoring.Evaluate("", cfg)

	assert.Len(t, report.Missing, 15)
	assert.NotContains(t, report.Missing, domain.SectionLinks)
}

func TestEvaluate_DoesNotShareSlicesBetweenCalls(t *testing.T) {
	a := scoring.Evaluate("# A", domain.DefaultConfig())
	b := scoring.Evaluate("# B", domain.DefaultConfig())
	a.Hits[0] = "mutated"
	assert.Equal(t, domain.SectionTitle, b.Hits[0])
}
