package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tiler/internal/domain/entity"
)

const (
	backgroundCell = '·'
	thinCell       = '▒'
	noOwner        = -1
)

// LayoutPane is one window drawn by LayoutRenderer.
type LayoutPane struct {
	ID       entity.WindowID
	Rect     entity.Rect
	Focused  bool
	Floating bool
}

// LayoutRenderer draws desktop layouts as scaled character boxes.
type LayoutRenderer struct {
	theme *Theme
}

// NewLayoutRenderer creates a layout renderer with the given theme.
func NewLayoutRenderer(theme *Theme) *LayoutRenderer {
	return &LayoutRenderer{theme: theme}
}

type canvas struct {
	cols, rows int
	cells      [][]rune
	owner      [][]int
}

func newCanvas(cols, rows int) *canvas {
	c := &canvas{cols: cols, rows: rows, cells: make([][]rune, rows), owner: make([][]int, rows)}
	for y := range rows {
		c.cells[y] = make([]rune, cols)
		c.owner[y] = make([]int, cols)
		for x := range cols {
			c.cells[y][x] = backgroundCell
			c.owner[y][x] = noOwner
		}
	}
	return c
}

// scale maps a pixel rect of area onto the canvas. The result is inclusive
// and at least one cell wide and high.
func (c *canvas) scale(area, r entity.Rect) (x0, y0, x1, y1 int) {
	x0 = (r.X - area.X) * c.cols / area.W
	x1 = (r.Right()-area.X)*c.cols/area.W - 1
	y0 = (r.Y - area.Y) * c.rows / area.H
	y1 = (r.Bottom()-area.Y)*c.rows/area.H - 1

	x0 = min(max(x0, 0), c.cols-1)
	y0 = min(max(y0, 0), c.rows-1)
	x1 = min(max(x1, x0), c.cols-1)
	y1 = min(max(y1, y0), c.rows-1)
	return x0, y0, x1, y1
}

func (c *canvas) set(x, y int, r rune, owner int) {
	c.cells[y][x] = r
	c.owner[y][x] = owner
}

func (c *canvas) box(x0, y0, x1, y1 int, label string, owner int) {
	if x1-x0 < 1 || y1-y0 < 1 {
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				c.set(x, y, thinCell, owner)
			}
		}
		return
	}

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			var r rune
			switch {
			case y == y0 && x == x0:
				r = '┌'
			case y == y0 && x == x1:
				r = '┐'
			case y == y1 && x == x0:
				r = '└'
			case y == y1 && x == x1:
				r = '┘'
			case y == y0 || y == y1:
				r = '─'
			case x == x0 || x == x1:
				r = '│'
			default:
				r = ' '
			}
			c.set(x, y, r, owner)
		}
	}

	inner := x1 - x0 - 1
	if inner <= 0 || y1-y0 < 2 {
		return
	}
	text := []rune(label)
	if len(text) > inner {
		text = text[:inner]
	}
	row := (y0 + y1) / 2
	start := x0 + 1 + (inner-len(text))/2
	for i, r := range text {
		c.set(start+i, row, r, owner)
	}
}

func (c *canvas) lines() []string {
	out := make([]string, c.rows)
	for y := range c.rows {
		out[y] = string(c.cells[y])
	}
	return out
}

func draw(area entity.Rect, panes []LayoutPane, cols, rows int) *canvas {
	if cols <= 0 || rows <= 0 || area.Empty() {
		return nil
	}
	c := newCanvas(cols, rows)
	for i, p := range panes {
		if p.Rect.Empty() {
			continue
		}
		x0, y0, x1, y1 := c.scale(area, p.Rect)
		c.box(x0, y0, x1, y1, string(p.ID), i)
	}
	return c
}

// Render draws area scaled to cols x rows cells with every pane as a box
// labelled with its window ID. Panes later in the slice are drawn on top.
func (r *LayoutRenderer) Render(area entity.Rect, panes []LayoutPane, cols, rows int) string {
	c := draw(area, panes, cols, rows)
	if c == nil {
		return ""
	}

	styleFor := func(owner int) lipgloss.Style {
		if owner == noOwner {
			return r.theme.Desktop
		}
		p := panes[owner]
		switch {
		case p.Focused:
			return r.theme.PaneFocused
		case p.Floating:
			return r.theme.PaneFloating
		default:
			return r.theme.Pane
		}
	}

	var sb strings.Builder
	for y := range rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		start := 0
		for x := 1; x <= cols; x++ {
			if x < cols && c.owner[y][x] == c.owner[y][start] {
				continue
			}
			sb.WriteString(styleFor(c.owner[y][start]).Render(string(c.cells[y][start:x])))
			start = x
		}
	}
	return sb.String()
}

// Plain draws the same layout as Render without colors.
func (*LayoutRenderer) Plain(area entity.Rect, panes []LayoutPane, cols, rows int) []string {
	c := draw(area, panes, cols, rows)
	if c == nil {
		return nil
	}
	return c.lines()
}
