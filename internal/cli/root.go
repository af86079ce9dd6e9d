// Package cli implements the tagrename command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mydehq/tagrename/internal/config"
	"github.com/mydehq/tagrename/internal/types"
	"github.com/mydehq/tagrename/internal/ui"
	"github.com/spf13/cobra"
)

var (
	flagDryRun  bool
	flagYAML    bool
	flagVerbose bool
)

var logger = ui.NewLogger(os.Stderr, log.InfoLevel)

// globalCfg is loaded before every command runs.
var globalCfg = config.GetDefaults()

// RootCmd is the interactive rename command.
var RootCmd = &cobra.Command{
	Use:   "tagrename [dir]",
	Short: "Batch-rename episode files from the tags in their names",
	Long: "Extracts season, episode and segment tags from every file in a directory " +
		"and renames them to <series>_第N季_第N集_<segment>.<ext>. " +
		"Directory, tag convention and series name are asked interactively.",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loadGlobalConfig()
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := ""
		if len(args) > 0 {
			dir = args[0]
		}
		s := &Session{
			Prompter: ui.FormPrompter{DryRun: flagDryRun || flagYAML},
			Out:      cmd.OutOrStdout(),
			Formats:  globalCfg.Formats,
			DryRun:   flagDryRun,
			YAML:     flagYAML,
		}
		err := s.Run(cmd.Context(), dir)
		if errors.Is(err, ui.ErrCancelled) {
			fmt.Fprintln(cmd.ErrOrStderr())
			logger.Info(ui.StyleDim.Render("Cancelled"))
			return nil
		}
		return err
	},
}

func init() {
	RootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "show the rename plan without renaming")
	RootCmd.Flags().BoolVar(&flagYAML, "yaml", false, "print the rename plan as YAML (implies --dry-run)")
	RootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	ui.SetLogger(logger)
}

func loadGlobalConfig() {
	cfg, err := config.LoadGlobal()
	if err != nil {
		logger.Warn("Failed to load global config, using defaults", "error", err)
	} else {
		globalCfg = *cfg
	}

	logger.SetLevel(ui.ParseLevel(globalCfg.LogLevel))
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
}

// Execute runs the root command and returns the process exit code.
// Panics are reported as errors without a stack trace.
func Execute(ctx context.Context) (code int) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Unexpected failure", "error", r)
			code = 1
		}
	}()

	if err := RootCmd.ExecuteContext(ctx); err != nil {
		var pathErr types.ErrInvalidPath
		if errors.As(err, &pathErr) {
			logger.Error(fmt.Sprintf("%s: %s", ui.StylePath.Render(pathErr.Path), pathErr.Reason))
		} else {
			logger.Error(err.Error())
		}
		return 1
	}
	return 0
}
