// Package controller provides output adapters for displaying geometry projects.
package controller

// ProjectInfo holds per-project counts for the listing table.
type ProjectInfo struct {
	Name      string
	Volumes   int
	Templates int
	Materials int
}

// TreeNode is one row of the volume hierarchy: an instance at its depth
// below the world volume.
type TreeNode struct {
	Depth    int
	Name     string
	Type     string
	Material string
}

// UI defines the interface for displaying stored projects and geometry trees.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayProjects(projects []ProjectInfo) error
	DisplayMessage(format string, args ...any)
	BrowseTree(title string, nodes []TreeNode) error
}
