package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/readmedoctor/readme-doctor/internal/adapters/outbound/document"
	"github.com/readmedoctor/readme-doctor/internal/adapters/outbound/gitinfo"
	"github.com/readmedoctor/readme-doctor/internal/adapters/outbound/history"
	"github.com/readmedoctor/readme-doctor/internal/adapters/outbound/tui"
	"github.com/readmedoctor/readme-doctor/internal/application"
	"github.com/readmedoctor/readme-doctor/internal/domain"
)

type checkOptions struct {
	failBelow   int
	jsonOutput  bool
	badge       bool
	showHistory bool
}

func addCheckFlags(cmd *cobra.Command, o *checkOptions) {
	cmd.Flags().IntVar(&o.failBelow, "fail-below", 0, "Exit 1 when the score is below this value (overrides minScore)")
	cmd.Flags().BoolVar(&o.jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVar(&o.badge, "badge", false, "Output a shields.io badge URL")
	cmd.Flags().BoolVar(&o.showHistory, "history", false, "Show score history")
}

func newCheckCmd(root *rootOptions) *cobra.Command {
	o := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check [docs...]",
		Short: "Score a README against the section checklist",
		Long: "Evaluate one or more documents (default README.md, or the path in config) and " +
			"print the score, the sections present and missing, and suggestions. " +
			"Exits 1 when the score is below --fail-below, or below minScore from config.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, root, o, args)
		},
	}
	addCheckFlags(cmd, o)

	return cmd
}

func runCheck(cmd *cobra.Command, root *rootOptions, o *checkOptions, args []string) error {
	projectPath, docPath, err := root.target()
	if err != nil {
		return err
	}
	if len(args) == 0 && docPath != "" {
		args = []string{docPath}
	}

	svc := application.NewCheckService(root.configLoader(), document.New(), root.logger)
	cfg, err := svc.LoadConfig(projectPath)
	if err != nil {
		return err
	}

	reports, err := svc.CheckAll(cmd.Context(), projectPath, args, cfg)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	hist := history.New()
	recordHistory(hist, projectPath, reports, root.logger)

	out := cmd.OutOrStdout()
	switch {
	case o.showHistory:
		entries, err := hist.Load(projectPath)
		if err != nil {
			return fmt.Errorf("loading history: %w", err)
		}
		for _, r := range reports {
			fmt.Fprint(out, tui.RenderHistory(history.ForPath(entries, relPath(projectPath, r.Path))))
		}
		return nil
	case o.jsonOutput:
		if err := renderJSON(cmd, reports); err != nil {
			return err
		}
	case o.badge:
		for _, r := range reports {
			fmt.Fprintln(out, badgeURL(r.Score))
		}
	default:
		for _, r := range reports {
			fmt.Fprint(out, tui.RenderReport(r))
		}
	}

	var override *int
	if cmd.Flags().Changed("fail-below") {
		override = &o.failBelow
	}
	return application.EnforceThreshold(reports, application.Threshold(cfg, override))
}

// recordHistory appends one entry per report. Failures are logged, never
// returned.
func recordHistory(hist domain.ScoreHistory, projectPath string, reports []*domain.ScoreReport, logger *log.Logger) {
	var hash string
	gi := gitinfo.New()
	if gi.IsGitRepo(projectPath) {
		if h, err := gi.CommitHash(projectPath); err == nil {
			hash = h
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for _, r := range reports {
		entry := domain.ScoreEntry{
			Timestamp:  now,
			CommitHash: hash,
			Path:       relPath(projectPath, r.Path),
			Score:      r.Score,
			Grade:      r.Grade(),
		}
		if err := hist.Save(projectPath, entry); err != nil {
			logger.Warn("could not record score history", "err", err)
			return
		}
	}
}

func renderJSON(cmd *cobra.Command, reports []*domain.ScoreReport) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if len(reports) == 1 {
		return enc.Encode(reports[0])
	}
	return enc.Encode(reports)
}

func badgeURL(score int) string {
	return fmt.Sprintf("https://img.shields.io/badge/readme-%d%%2F100-%s", score, domain.BadgeColor(score))
}
