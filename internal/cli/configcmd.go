package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mydehq/tagrename/internal/config"
	"github.com/mydehq/tagrename/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var flagConfigInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective global configuration",
	Long:  "Prints the configuration after applying the global config file and TAGRENAME_* environment variables.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GlobalConfigPath()
		if err != nil {
			return err
		}
		if flagConfigInit {
			return initConfig(path)
		}
		return printConfig(cmd.OutOrStdout(), path)
	},
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigInit, "init", false, "write the default config file if none exists")
	RootCmd.AddCommand(configCmd)
}

func initConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists: %s", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to stat config: %w", err)
	}

	cfg := config.GetDefaults()
	if err := config.Save(path, &cfg); err != nil {
		return err
	}
	logger.Info("Created config", "path", ui.StylePath.Render(path))
	return nil
}

func printConfig(w io.Writer, path string) error {
	data, err := yaml.Marshal(globalCfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Fprintf(w, "%s %s\n", ui.StyleDim.Render("#"), ui.StyleDim.Render(path))
	fmt.Fprint(w, string(data))
	return nil
}
