package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List intrinsic logging calls",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := listArgs(args)
			if err != nil {
				return err
			}

			return workflow.List(cmd.Context(), list)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
