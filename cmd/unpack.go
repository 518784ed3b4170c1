package cmd

import (
	"github.com/spf13/cobra"

	"github.com/half-rabbit/geode/internal/domain"
)

var unpackFileFlag string
var unpackIntoFlag string
var unpackOutFlag string

// unpackCmd represents the unpack command.
var unpackCmd = newUnpackCmd()

func newUnpackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unpack [project]",
		Short: "Expand a compound document into a flat geometry",
		Long: `Unpack loads a document from the project store (or from a file with
--file) and expands its templates into uniquely named volume instances.

With --into the document is pasted into an existing geometry: every
expanded instance gets fresh session names so nothing collides with what
is already there.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			project := ""
			if len(args) > 0 {
				project = args[0]
			}

			return workflow.Unpack(domain.UnpackArgs{
				Project: project,
				Input:   unpackFileFlag,
				Into:    unpackIntoFlag,
				Output:  unpackOutFlag,
			})
		},
	}
	cmd.Flags().StringVarP(&unpackFileFlag, "file", "f", "", "read the document from a file instead of the project store")
	cmd.Flags().StringVar(&unpackIntoFlag, "into", "", "existing geometry file to paste the document into")
	cmd.Flags().StringVarP(&unpackOutFlag, "out", "o", "geometry.json", "geometry file to write")

	return cmd
}

func init() {
	rootCmd.AddCommand(unpackCmd)
}
