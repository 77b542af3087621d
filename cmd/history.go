package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/capturecli/internal/journal"
)

var historyScript string
var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently captured commands and their exit status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		j, err := journal.NewStore(GetConfig().JournalLimit)
		if err != nil {
			return err
		}
		entries, err := j.Load()
		if err != nil {
			return err
		}

		entries = journal.Filter(entries, historyScript, historyLimit)
		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "no captured commands")
			return nil
		}
		for _, e := range entries {
			fmt.Fprintf(out, "%s  [%3d]  %-12s  %s\n",
				e.Timestamp.Format("2006-01-02 15:04:05"), e.ExitCode, e.Script, e.Command)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVar(&historyScript, "script", "", "Only show commands captured into this script")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of entries to show (0 for all)")
	rootCmd.AddCommand(historyCmd)
}
