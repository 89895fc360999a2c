package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/layerforge/layerforge/pkg/errors"
	"github.com/layerforge/layerforge/pkg/layer"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ElementListModel - Interactive element selection
// =============================================================================

// elementRow is one selectable entry in the element picker.
type elementRow struct {
	id     string
	tag    string
	depth  int
	bounds layer.Bounds
}

// flattenTree lists every element in pre-order with its depth.
func flattenTree(root *layer.Node) []elementRow {
	var rows []elementRow
	var walk func(n *layer.Node, depth int)
	walk = func(n *layer.Node, depth int) {
		rows = append(rows, elementRow{
			id:     n.ElementID,
			tag:    n.TagName,
			depth:  depth,
			bounds: n.Bounds,
		})
		for i := range n.Children {
			walk(&n.Children[i], depth+1)
		}
	}
	walk(root, 0)
	return rows
}

// ElementListModel is the bubbletea model for interactive element selection.
type ElementListModel struct {
	Rows     []elementRow
	Cursor   int
	Selected string
	Height   int
	Offset   int
}

// NewElementListModel creates a new element list model for a layer tree.
func NewElementListModel(root *layer.Node) ElementListModel {
	return ElementListModel{
		Rows:   flattenTree(root),
		Height: 15,
	}
}

func (m ElementListModel) Init() tea.Cmd {
	return nil
}

func (m ElementListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Selected = m.Rows[m.Cursor].id
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ElementListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Element"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Rows) {
		end = len(m.Rows)
	}

	for i := m.Offset; i < end; i++ {
		r := m.Rows[i]

		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}

		label := fmt.Sprintf("%s<%s> %s", strings.Repeat("  ", r.depth), r.tag, r.id)
		size := listDimStyle.Render(fmt.Sprintf("  %.0fx%.0f", r.bounds.Width, r.bounds.Height))
		b.WriteString(cursor + style.Render(label) + size + "\n")
	}

	return b.String()
}

// pickElement runs the interactive picker and returns the chosen element id.
func pickElement(root *layer.Node) (string, error) {
	p := tea.NewProgram(NewElementListModel(root))
	final, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := final.(ElementListModel)
	if !ok || m.Selected == "" {
		return "", errors.New(errors.ErrCodeInvalidSelector, "no element selected")
	}
	return m.Selected, nil
}
