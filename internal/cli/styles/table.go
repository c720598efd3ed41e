package styles

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tiler/internal/domain/entity"
)

// headerHeight is the header line plus its bottom border.
const headerHeight = 2

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	// Apply theme styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// RenderTable renders rows once, without a selection, for plain command
// output.
func RenderTable(theme *Theme, columns []table.Column, rows []table.Row) string {
	width := 0
	for _, c := range columns {
		width += c.Width + 2
	}
	t := NewStyledTable(theme, columns, rows, width, len(rows)+headerHeight)
	t.Blur()

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Cell = s.Cell.Foreground(theme.Text)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
	return t.View()
}

// WindowTableColumns returns columns for the window list of a layout.
func WindowTableColumns() []table.Column {
	return []table.Column{
		{Title: "Window", Width: 14},
		{Title: "Desktop", Width: 8},
		{Title: "State", Width: 9},
		{Title: "X", Width: 6},
		{Title: "Y", Width: 6},
		{Title: "W", Width: 6},
		{Title: "H", Width: 6},
		{Title: "Decoration", Width: 10},
	}
}

// WindowRow is one window of a layout.
type WindowRow struct {
	ID         entity.WindowID
	Desktop    string
	State      string
	Focused    bool
	Geometry   entity.Rect
	Decoration string
}

// ToRow converts to table.Row.
func (w WindowRow) ToRow() table.Row {
	id := string(w.ID)
	if w.Focused {
		id = IconCursor + " " + id
	}
	g := w.Geometry
	return table.Row{
		id,
		w.Desktop,
		w.State,
		strconv.Itoa(g.X),
		strconv.Itoa(g.Y),
		strconv.Itoa(g.W),
		strconv.Itoa(g.H),
		w.Decoration,
	}
}

// SnapshotTableColumns returns columns for the stored layout list.
func SnapshotTableColumns() []table.Column {
	return []table.Column{
		{Title: "Desktop", Width: 8},
		{Title: "Windows", Width: 8},
		{Title: "Version", Width: 8},
		{Title: "Saved", Width: 20},
	}
}

// SnapshotRow converts a stored layout to a table row.
func SnapshotRow(snap *entity.LayoutSnapshot) table.Row {
	return table.Row{
		snap.Desktop.String(),
		strconv.Itoa(snap.WindowCount),
		strconv.Itoa(snap.Version),
		snap.SavedAt.Local().Format(time.DateTime),
	}
}
