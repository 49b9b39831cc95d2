package application

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/readmedoctor/readme-doctor/internal/domain"
	"github.com/readmedoctor/readme-doctor/internal/domain/scoring"
)

// CheckService orchestrates the check pipeline:
// load config -> read document -> evaluate rules.
type CheckService struct {
	configLoader domain.ConfigLoader
	docs         domain.DocumentStore
	logger       *log.Logger
}

func NewCheckService(
	configLoader domain.ConfigLoader,
	docs domain.DocumentStore,
	logger *log.Logger,
) *CheckService {
	return &CheckService{
		configLoader: configLoader,
		docs:         docs,
		logger:       logger,
	}
}

// LoadConfig resolves the effective config for projectPath.
func (s *CheckService) LoadConfig(projectPath string) (domain.Config, error) {
	cfg, err := s.configLoader.Load(projectPath)
	if err != nil {
		return domain.Config{}, fmt.Errorf("loading config: %w", err)
	}
	if disabled := cfg.Disabled(); len(disabled) > 0 {
		s.logger.Debug("sections disabled by config", "sections", disabled)
	}
	return cfg, nil
}

// ResolvePath returns the document path to evaluate: docPath if given,
// otherwise cfg.Path, joined to projectPath when relative.
func ResolvePath(projectPath, docPath string, cfg domain.Config) string {
	if docPath == "" {
		docPath = cfg.Path
	}
	if docPath == "" {
		docPath = domain.DefaultPath
	}
	if filepath.IsAbs(docPath) {
		return docPath
	}
	return filepath.Join(projectPath, docPath)
}

// Check reads and evaluates one document.
func (s *CheckService) Check(projectPath, docPath string, cfg domain.Config) (*domain.ScoreReport, error) {
	path := ResolvePath(projectPath, docPath, cfg)

	text, err := s.docs.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if text == "" {
		s.logger.Debug("document is empty or missing", "path", path)
	}

	report := scoring.Evaluate(text, cfg)
	report.Path = path

	s.logger.Debug("evaluated document",
		"path", path,
		"score", report.Score,
		"hits", len(report.Hits),
		"missing", len(report.Missing),
	)
	return &report, nil
}

// CheckAll evaluates several documents concurrently. Reports come back in
// the order of docPaths; the first read error cancels the rest.
func (s *CheckService) CheckAll(ctx context.Context, projectPath string, docPaths []string, cfg domain.Config) ([]*domain.ScoreReport, error) {
	if len(docPaths) == 0 {
		docPaths = []string{""}
	}

	reports := make([]*domain.ScoreReport, len(docPaths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for i, p := range docPaths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := s.Check(projectPath, p, cfg)
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// Threshold picks the score a report must reach: an explicit override wins,
// otherwise cfg.MinScore. Zero means no threshold.
func Threshold(cfg domain.Config, override *int) int {
	if override != nil {
		return *override
	}
	return cfg.MinScore
}

// EnforceThreshold returns domain.ErrBelowThreshold, wrapped with the first
// failing document, when any report scores under threshold.
func EnforceThreshold(reports []*domain.ScoreReport, threshold int) error {
	if threshold <= 0 {
		return nil
	}
	for _, r := range reports {
		if !r.Passes(threshold) {
			return fmt.Errorf("%s scored %d, minimum is %d: %w", r.Path, r.Score, threshold, domain.ErrBelowThreshold)
		}
	}
	return nil
}
