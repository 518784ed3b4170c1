package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayProjects prints the stored projects as a table.
func (s *SimpleUI) DisplayProjects(projects []ProjectInfo) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Project", "Volumes", "Templates", "Materials"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	volumes := 0

	for _, project := range projects {
		table.Append([]string{
			project.Name,
			fmt.Sprintf("%d", project.Volumes),
			fmt.Sprintf("%d", project.Templates),
			fmt.Sprintf("%d", project.Materials),
		})

		volumes += project.Volumes
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Projects %d", len(projects)),
		fmt.Sprintf("%d", volumes),
		"",
		"",
	})

	table.Render()
	s.DisplayMessage("\n%s", tableBuffer.String())

	return nil
}

// BrowseTree prints the volume hierarchy as indented text.
func (s *SimpleUI) BrowseTree(title string, nodes []TreeNode) error {
	s.DisplayMessage("%s\n", title)

	for _, node := range nodes {
		indent := strings.Repeat("  ", node.Depth)

		line := fmt.Sprintf("%s%s [%s]", indent, node.Name, node.Type)
		if node.Material != "" {
			line += " " + node.Material
		}

		s.DisplayMessage("%s\n", line)
	}

	return nil
}

// DisplayMessage prints a formatted message.
func (s *SimpleUI) DisplayMessage(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
