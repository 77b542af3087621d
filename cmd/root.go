package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/capturecli/internal/config"
	"github.com/fakeyudi/capturecli/internal/prompt"
	"github.com/fakeyudi/capturecli/internal/script"
)

// cfg holds the merged configuration, populated in PersistentPreRunE.
var cfg config.Config

// store resolves script names under the configured home directory.
var store *script.Store

var rootCmd = &cobra.Command{
	Use:   "capturecli [name] <command...>",
	Short: "Captures commands and saves them to a script file for later use",
	Long: `Captures commands and saves them to a script file for later use.

  capturecli <name> <command...>   run a command and append it to <name>.sh
  capturecli <command>             same, using the "default" script`,
	Version:      "0.1.0",
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		home, err := c.ResolveHome()
		if err != nil {
			return fmt.Errorf("resolving script home: %w", err)
		}
		s, err := script.NewStore(home)
		if err != nil {
			return err
		}
		cfg = c
		store = s
		return nil
	},
	RunE: runCapture,
}

func init() {
	// Everything after the script name belongs to the captured command,
	// including its flags.
	rootCmd.Flags().SetInterspersed(false)
}

// Execute runs the root command. Exits with code 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetConfig returns the merged configuration for use by subcommands.
func GetConfig() config.Config {
	return cfg
}

// newPrompter asks questions on the command's own streams.
func newPrompter(cmd *cobra.Command) prompt.Prompter {
	return prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
}
