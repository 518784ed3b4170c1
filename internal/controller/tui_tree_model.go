package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type treeItem struct {
	node TreeNode
}

func (t treeItem) FilterValue() string { return t.node.Name }

// Simple delegate for tree rows.
type treeDelegate struct{}

func (d treeDelegate) Height() int  { return 1 }
func (d treeDelegate) Spacing() int { return 0 }
func (d treeDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d treeDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	row, ok := item.(treeItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	var nameStyle, metaStyle lipgloss.Style

	if isSelected {
		nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6"))
	} else {
		nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		metaStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	}

	indent := strings.Repeat("  ", row.node.Depth)

	meta := row.node.Type
	if row.node.Material != "" {
		meta += " · " + row.node.Material
	}

	width := m.Width() - lipgloss.Width(indent) - lipgloss.Width(meta) - 2

	line := fmt.Sprintf("%s%s  %s",
		indent,
		nameStyle.Render(truncateToWidth(row.node.Name, width)),
		metaStyle.Render(meta),
	)
	_, _ = fmt.Fprint(w, line)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// treeModel browses a flattened volume hierarchy.
type treeModel struct {
	width   int
	height  int
	title   string
	rowList list.Model
	total   int
}

func newTreeModel(title string, nodes []TreeNode) treeModel {
	items := make([]list.Item, 0, len(nodes))
	for _, node := range nodes {
		items = append(items, treeItem{node: node})
	}

	rowList := list.New(items, treeDelegate{}, 80, 20)
	rowList.SetShowPagination(false)
	rowList.SetShowFilter(true)
	rowList.SetShowHelp(false)
	rowList.SetShowTitle(false)
	rowList.SetShowStatusBar(false)
	rowList.FilterInput.Placeholder = "Filter by name…"

	return treeModel{
		title:   title,
		rowList: rowList,
		total:   len(nodes),
	}
}

func (m treeModel) Init() tea.Cmd {
	return nil
}

func (m treeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.rowList.SetWidth(m.width)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		default:
			// Pass all key events to the list
			var newList list.Model

			newList, cmd = m.rowList.Update(msg)
			m.rowList = newList

			return m, cmd
		}
	}

	return m, cmd
}

func (m treeModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan

	title := titleStyle.Render("🧭 " + m.title)

	summary := summaryStyle.Render(fmt.Sprintf(
		"Volumes: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.total)),
	))

	table := m.renderTable()

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • g/G top/bottom • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		table,
		footer,
	)
}

func (m treeModel) renderTable() string {
	// Screen height minus title, summary, footer, border and header rows.
	listHeight := m.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	// Window width minus margin, border and padding.
	listWidth := m.width - 6

	m.rowList.SetHeight(listHeight)
	m.rowList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render("Volume  Type · Material")

	tableContainer := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Margin(0, 1).
		Padding(0, 1)

	return tableContainer.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.rowList.View(),
		),
	)
}
