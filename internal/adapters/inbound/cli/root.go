package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/readmedoctor/readme-doctor/internal/adapters/outbound/config"
	"github.com/readmedoctor/readme-doctor/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	path       string
	configFile string
	verbose    bool
	logger     *log.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{logger: newLogger(io.Discard, false)}
	checkOpts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "readme-doctor",
		Short: "Score your README and fill in what is missing",
		Long: "readme-doctor checks a README against a weighted checklist of sections " +
			"(install, usage, license, ...) and can append templates for the ones it lacks. " +
			"Running it without a subcommand is the same as `readme-doctor check`.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, checkOpts, args)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.path, "path", ".", "Project directory or document (e.g. docs/README.md)")
	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "Explicit config file (default .readme-doctor.yaml in the project)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	addCheckFlags(cmd, checkOpts)

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newFixCmd(opts))
	cmd.AddCommand(newInitCmd(opts))
	cmd.AddCommand(newMCPCmd(opts))
	cmd.AddCommand(newRulesCmd(opts))
	return cmd
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: "readme-doctor"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// configLoader returns the loader for --config, or the project lookup.
func (o *rootOptions) configLoader() domain.ConfigLoader {
	if o.configFile != "" {
		return config.NewWithFile(o.configFile)
	}
	return config.New()
}

// target splits --path into the project directory and, when --path names a
// document, that document. A regular file or a path ending in .md is a
// document and its directory is the project; anything else is the project.
func (o *rootOptions) target() (projectPath, docPath string, err error) {
	abs, err := filepath.Abs(o.path)
	if err != nil {
		return "", "", fmt.Errorf("resolving path: %w", err)
	}

	info, statErr := os.Stat(abs)
	switch {
	case statErr == nil && info.Mode().IsRegular():
		return filepath.Dir(abs), abs, nil
	case statErr != nil && strings.EqualFold(filepath.Ext(abs), ".md"):
		return filepath.Dir(abs), abs, nil
	}
	return abs, "", nil
}

// projectPath returns the project directory named by --path.
func (o *rootOptions) projectPath() (string, error) {
	projectPath, _, err := o.target()
	return projectPath, err
}

// relPath shortens path for display relative to the project.
func relPath(projectPath, path string) string {
	if rel, err := filepath.Rel(projectPath, path); err == nil {
		return filepath.ToSlash(rel)
	}
	return path
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
