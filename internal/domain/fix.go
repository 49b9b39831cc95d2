package domain

// FixResult is the outcome of applying fixes to a document.
type FixResult struct {
	Changed bool     `json:"changed"`
	Text    string   `json:"-"`
	Applied []string `json:"applied"`
}

// FixOptions controls how the fix pipeline persists its result.
type FixOptions struct {
	DryRun bool `json:"dry_run"`
}

// FixPlan summarises a fix run for rendering and JSON output.
type FixPlan struct {
	Path        string   `json:"path"`
	Applied     []string `json:"applied"`
	Written     bool     `json:"written"`
	Preview     string   `json:"preview,omitempty"`
	ScoreBefore int      `json:"score_before"`
	ScoreAfter  int      `json:"score_after"`
}
