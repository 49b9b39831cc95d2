package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/readmedoctor/readme-doctor/internal/adapters/outbound/config"
	"github.com/readmedoctor/readme-doctor/internal/domain"
)

func newInitCmd(root *rootOptions) *cobra.Command {
	var (
		force    bool
		minScore int
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .readme-doctor.yaml configuration file",
		Long:  "Create a .readme-doctor.yaml listing every section flag with its default.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectPath, err := root.projectPath()
			if err != nil {
				return err
			}

			if minScore < 0 || minScore > domain.MaxScore {
				return fmt.Errorf("--min must be between 0 and %d, got %d", domain.MaxScore, minScore)
			}

			dest := filepath.Join(projectPath, config.FileName)
			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			if err := os.WriteFile(dest, []byte(generateConfig(minScore)), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing .readme-doctor.yaml")
	cmd.Flags().IntVar(&minScore, "min", domain.DefaultMinScore, "Minimum score check enforces (0 disables)")

	return cmd
}

func generateConfig(minScore int) string {
	cfg := domain.DefaultConfig()

	var b strings.Builder
	b.WriteString("# readme-doctor configuration\n")
	b.WriteString("# Sections set to false are neither scored nor fixed.\n\n")
	fmt.Fprintf(&b, "path: %s\n", cfg.Path)
	fmt.Fprintf(&b, "minScore: %d\n\n", minScore)
	b.WriteString("sections:\n")
	for _, s := range domain.AllSections {
		if _, ok := cfg.Sections[s]; !ok {
			continue
		}
		fmt.Fprintf(&b, "  %s: %t\n", s, cfg.Enabled(s))
	}
	return b.String()
}
