package cmd

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/half-rabbit/geode/internal/domain"
)

var packProjectFlag string
var packOutFlag string

// packCmd represents the pack command.
var packCmd = newPackCmd()

func newPackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack <geometry.json>",
		Short: "Compress a flat geometry into a compound document",
		Long: `Pack reads a flat geometry file, collapses repeated assemblies and
boolean compounds into shared templates, and saves the resulting document
as a project. With --out the document is written to a file instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			project := packProjectFlag
			if project == "" && packOutFlag == "" {
				project = projectNameFromPath(args[0])
			}

			return workflow.Pack(domain.PackArgs{
				Input:   args[0],
				Project: project,
				Output:  packOutFlag,
			})
		},
	}
	cmd.Flags().StringVarP(&packProjectFlag, "project", "n", "", "project name to save under (defaults to the input file name)")
	cmd.Flags().StringVarP(&packOutFlag, "out", "o", "", "write the document to a file instead of the project store")

	return cmd
}

func init() {
	rootCmd.AddCommand(packCmd)
}

func projectNameFromPath(path string) string {
	base := filepath.Base(path)

	return strings.TrimSuffix(base, filepath.Ext(base))
}
