package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/fakeyudi/capturecli/internal/script"
	"github.com/fakeyudi/capturecli/internal/tui"
)

var plainOutput bool
var followScript bool

var viewCmd = &cobra.Command{
	Use:   "view <name>",
	Short: "View a captured script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := store.Open(args[0])
		if err != nil {
			return err
		}

		if plainOutput || !term.IsTerminal(os.Stdout.Fd()) {
			doc, err := tui.Load(path)
			if err != nil {
				return err
			}
			printScript(cmd.OutOrStdout(), doc)
			return nil
		}
		return tui.Run(path, followScript)
	},
}

// printScript writes the script with line numbers followed by a summary.
func printScript(w io.Writer, doc *script.Document) {
	width := len(fmt.Sprint(len(doc.Lines)))
	for i, line := range doc.Lines {
		fmt.Fprintf(w, "%*d  %s\n", width, i+1, line)
	}

	comments := "unset"
	if enabled, found := doc.StepComments(); found {
		comments = fmt.Sprint(enabled)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Steps: %d\n", len(doc.Steps()))
	fmt.Fprintf(w, "Step comments: %s\n", comments)
}

func init() {
	viewCmd.Flags().BoolVar(&plainOutput, "plain", false, "Print the script instead of opening the viewer")
	viewCmd.Flags().BoolVarP(&followScript, "follow", "f", false, "Reload the viewer when the script changes")
	rootCmd.AddCommand(viewCmd)
}
