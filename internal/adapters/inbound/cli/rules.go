package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/readmedoctor/readme-doctor/internal/adapters/outbound/tui"
)

func newRulesCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the scoring rules and whether config enables them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			projectPath, err := root.projectPath()
			if err != nil {
				return err
			}

			cfg, err := root.configLoader().Load(projectPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderRules(cfg))
			return nil
		},
	}
}
