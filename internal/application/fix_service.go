package application

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/readmedoctor/readme-doctor/internal/domain"
	"github.com/readmedoctor/readme-doctor/internal/domain/fixer"
	"github.com/readmedoctor/readme-doctor/internal/domain/scoring"
)

// FixService orchestrates the fix pipeline:
// read -> score -> append missing blocks -> re-score -> write if changed.
type FixService struct {
	docs   domain.DocumentStore
	git    domain.GitInfo
	logger *log.Logger
}

func NewFixService(docs domain.DocumentStore, git domain.GitInfo, logger *log.Logger) *FixService {
	return &FixService{docs: docs, git: git, logger: logger}
}

// Fix appends boilerplate for the sections cfg reports missing. The document
// is written only when the text changed and opts.DryRun is false.
func (s *FixService) Fix(projectPath, docPath string, cfg domain.Config, opts domain.FixOptions) (*domain.FixPlan, error) {
	path := ResolvePath(projectPath, docPath, cfg)

	text, err := s.docs.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	before := scoring.Evaluate(text, cfg)
	result := fixer.Apply(text, before.Missing)
	after := scoring.Evaluate(result.Text, cfg)

	plan := &domain.FixPlan{
		Path:        path,
		Applied:     result.Applied,
		ScoreBefore: before.Score,
		ScoreAfter:  after.Score,
	}

	if !result.Changed {
		s.logger.Debug("no fixable sections missing", "path", path)
		return plan, nil
	}

	if opts.DryRun {
		plan.Preview = fixer.Preview(text, before.Missing)
		return plan, nil
	}

	s.warnIfDirty(path)

	if err := s.docs.Write(path, result.Text); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	plan.Written = true

	s.logger.Info("applied fixes",
		"path", path,
		"blocks", result.Applied,
		"before", before.Score,
		"after", after.Score,
	)
	return plan, nil
}

func (s *FixService) warnIfDirty(path string) {
	if s.git == nil {
		return
	}
	dirty, err := s.git.HasUncommittedChanges(path)
	if err != nil {
		s.logger.Debug("skipping git status check", "path", path, "err", err)
		return
	}
	if dirty {
		s.logger.Warn("document has uncommitted changes; fixes are appended on top", "path", path)
	}
}
