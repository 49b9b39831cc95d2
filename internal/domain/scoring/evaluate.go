package scoring

import "github.com/readmedoctor/readme-doctor/internal/domain"

// Evaluate scores doc against every enabled rule.
//
// Disabled rules are left out of both Hits and Missing and earn nothing. The
// tagline is gated by the title flag. Hits and Missing follow rule table
// order, and the score is capped at domain.MaxScore.
func Evaluate(doc string, cfg domain.Config) domain.ScoreReport {
	report := domain.ScoreReport{
		Max:     domain.MaxScore,
		Hits:    []domain.Section{},
		Missing: []domain.Section{},
	}

	points := 0
	for _, r := range rules {
		if !cfg.Enabled(r.Section) {
			continue
		}
		if r.Detect(doc) {
			points += r.Weight
			report.Hits = append(report.Hits, r.Section)
		} else {
			report.Missing = append(report.Missing, r.Section)
		}
	}

	report.Score = min(points, domain.MaxScore)
	return report
}
