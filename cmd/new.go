package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/capturecli/internal/script"
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Creates a new script file for capturing commands",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return configureScript(cmd, args[0])
	},
}

var configCmd = &cobra.Command{
	Use:   "config <name>",
	Short: "Add or edit configuration for the script file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return configureScript(cmd, args[0])
	},
}

// configureScript makes sure the script exists and asks for its settings.
// `new` and `config` share it and behave the same on existing scripts.
func configureScript(cmd *cobra.Command, name string) error {
	path, _, err := store.Ensure(name)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created or updated script file: %s\n", name)

	enabled, err := script.Configure(path, newPrompter(cmd))
	if err != nil {
		return err
	}
	state := "disabled"
	if enabled {
		state = "enabled"
	}
	fmt.Fprintf(out, "Step comments %s for %s\n", state, name)
	return nil
}

func init() {
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(configCmd)
}
