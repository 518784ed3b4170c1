// Package cmd provides the root command and CLI setup for geode.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/half-rabbit/geode/internal/adapter"
	"github.com/half-rabbit/geode/internal/controller"
	"github.com/half-rabbit/geode/internal/domain"
)

var projectStore adapter.ProjectStore
var geometryFS adapter.GeometryFS
var ui controller.UI
var workflow domain.Workflow

var storeFlag string
var verboseFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "geode",
		Short: "Detector geometry converter",
		Long: `Geode converts flat detector geometries to and from the compound
document format. Repeated assemblies and boolean compounds collapse into
shared templates on the way in, and expand back into uniquely named
volume instances on the way out.

Documents are kept as projects in a local store, or read and written as
plain JSON files.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if verboseFlag {
				logger, err := zap.NewDevelopment()
				if err != nil {
					return err
				}

				domain.SetLogger(logger)
			}

			ui = controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))
			projectStore = adapter.NewFileStore(storeFlag)
			geometryFS = adapter.NewLocalGeometryFS()
			workflow = domain.NewWorkflow(projectStore, geometryFS, ui)

			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&storeFlag, "store", defaultStoreDir(), "directory holding saved projects")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")

	return cmd
}

func defaultStoreDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".geode"
	}

	return filepath.Join(home, ".geode")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
