package cmd

import (
	"github.com/spf13/cobra"

	"github.com/half-rabbit/geode/internal/domain"
)

var viewFileFlag string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [project]",
		Short: "Browse the volume hierarchy of a document",
		Long:  "View expands a stored project (or a document file with --file) and browses the resulting volume hierarchy.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			project := ""
			if len(args) > 0 {
				project = args[0]
			}

			return workflow.View(domain.ViewArgs{Project: project, Input: viewFileFlag})
		},
	}
	cmd.Flags().StringVarP(&viewFileFlag, "file", "f", "", "read the document from a file instead of the project store")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
