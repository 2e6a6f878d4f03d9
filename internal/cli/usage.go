package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show today's generation count",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer a.Close()

		count, limit := a.Usage.Count(cmd.Context()), a.Usage.Limit()
		fmt.Fprintf(cmd.OutOrStdout(), "%d of %d generations used today\n", count, limit)
		if count >= limit {
			fmt.Fprintln(cmd.OutOrStdout(), "Daily limit reached. Please come back tomorrow to generate more!")
		}
		return nil
	},
}

var usageResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear today's usage record",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context(), false)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Usage.Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset usage: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Usage reset.")
		return nil
	},
}

func init() {
	usageCmd.AddCommand(usageResetCmd)
}
