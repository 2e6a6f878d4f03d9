package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mvp_launchpad/internal/render"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect or clear past generations",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List past generations, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer a.Close()

		entries := a.History.Entries()
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No generations yet.")
			return nil
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCREATED\tPROJECT")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\n", e.ID, e.CreatedAt, e.MVPPlan.ProjectName)
		}
		return w.Flush()
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one generation as Markdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer a.Close()

		entry, ok := a.History.Get(args[0])
		if !ok {
			return fmt.Errorf("history entry %s not found", args[0])
		}
		fmt.Fprint(cmd.OutOrStdout(), render.Markdown(entry))
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every past generation",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer a.Close()

		a.History.Clear(cmd.Context())
		fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
		return nil
	},
}

func init() {
	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyClearCmd)
}
