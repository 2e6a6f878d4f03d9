package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mvp_launchpad/internal/render"
	"mvp_launchpad/internal/workflow"
)

var generateJSON bool

var generateCmd = &cobra.Command{
	Use:   "generate <idea...>",
	Short: "Generate an MVP plan and landing page copy for an idea",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), true)
		if err != nil {
			return err
		}
		defer a.Close()

		entry, err := a.Orchestrator.Submit(cmd.Context(), strings.Join(args, " "))
		switch {
		case errors.Is(err, workflow.ErrLimitReached):
			return fmt.Errorf("you've generated %d MVP plans today; please come back tomorrow", a.Usage.Limit())
		case err != nil:
			return err
		}

		out := cmd.OutOrStdout()
		if generateJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(entry)
		}
		fmt.Fprint(out, render.Markdown(entry))
		return nil
	},
}

func init() {
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "Print the history entry as JSON")
}
