package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/readmedoctor/readme-doctor/internal/adapters/outbound/document"
	"github.com/readmedoctor/readme-doctor/internal/adapters/outbound/gitinfo"
	"github.com/readmedoctor/readme-doctor/internal/adapters/outbound/tui"
	"github.com/readmedoctor/readme-doctor/internal/application"
	"github.com/readmedoctor/readme-doctor/internal/domain"
)

const previewWidth = 80

func newFixCmd(root *rootOptions) *cobra.Command {
	var (
		dryRun     bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "fix [doc]",
		Short: "Append templates for missing README sections",
		Long: "Score the document and append a marked block for every missing section " +
			"that has a template. Existing content is never edited, and running fix " +
			"twice changes nothing the second time.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectPath, docPath, err := root.target()
			if err != nil {
				return err
			}

			checkSvc := application.NewCheckService(root.configLoader(), document.New(), root.logger)
			cfg, err := checkSvc.LoadConfig(projectPath)
			if err != nil {
				return err
			}

			if len(args) > 0 {
				docPath = args[0]
			}

			fixSvc := application.NewFixService(document.New(), gitinfo.New(), root.logger)
			plan, err := fixSvc.Fix(projectPath, docPath, cfg, domain.FixOptions{DryRun: dryRun})
			if err != nil {
				return fmt.Errorf("fix failed: %w", err)
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(plan)
			}

			fmt.Fprint(out, tui.RenderFixPlan(plan, relPath(projectPath, plan.Path)))
			if plan.Preview != "" {
				rendered, err := tui.RenderPreview(plan.Preview, previewWidth)
				if err != nil {
					return fmt.Errorf("rendering preview: %w", err)
				}
				fmt.Fprint(out, rendered)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the blocks that would be appended without writing")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the fix plan as JSON")

	return cmd
}
