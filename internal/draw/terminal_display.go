package draw

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// DefaultUnitsPerPixel is the logical size of one half-block sub-pixel.
// An 80x24 terminal gives a 640x384 playfield.
const DefaultUnitsPerPixel = 8

// Terminal is a Display that renders half-block characters to an ANSI terminal.
// The playfield size follows the terminal size, re-read on every query.
type Terminal struct {
	out    *frameWriter
	canvas *Canvas
	size   TermSizeFunc
	text   lipgloss.Style
	points []Point
}

var _ Display = (*Terminal)(nil)

// NewTerminal creates a terminal display writing to w.
func NewTerminal(w io.Writer, size TermSizeFunc, unitsPerPixel float64) *Terminal {
	t := &Terminal{
		out:  newFrameWriter(w),
		size: size,
		text: lipgloss.NewRenderer(w).NewStyle().Bold(true),
	}
	cols, rows, err := size()
	if err != nil {
		cols, rows = 80, 24
	}
	t.canvas = NewCanvas(cols, rows, unitsPerPixel)
	return t
}

// refresh picks up terminal resizes. A failing size query keeps the last size.
func (t *Terminal) refresh() {
	cols, rows, err := t.size()
	if err != nil {
		return
	}
	t.canvas.Resize(cols, rows)
}

func (t *Terminal) Width() float64 {
	t.refresh()
	return t.canvas.LogicalWidth()
}

func (t *Terminal) Height() float64 {
	t.refresh()
	return t.canvas.LogicalHeight()
}

func (t *Terminal) Clear() {
	t.refresh()
	t.canvas.Clear()
}

func (t *Terminal) DrawCircle(x, y, radius float64) {
	t.canvas.FillCircle(Point{X: x, Y: y}, radius)
}

func (t *Terminal) DrawPolyLines(x, y float64, sides int, radius, rotation float64) {
	t.points = RegularPolygon(t.points, x, y, sides, radius, rotation)
	t.canvas.DrawPolygon(t.points, false)
}

func (t *Terminal) DrawTriangleLines(a, b, c Point) {
	points := t.canvas.BorrowPoints(3)
	points[0], points[1], points[2] = a, b, c
	t.canvas.DrawPolygon(points, false)
}

// MeasureText measures in terminal cells; the font size does not apply.
func (t *Terminal) MeasureText(text string, _ float64) (width, height float64) {
	return float64(lipgloss.Width(text)) * t.canvas.UnitsPerColumn(), t.canvas.UnitsPerRow()
}

func (t *Terminal) DrawText(text string, x, y, _ float64) {
	t.canvas.PutText(x, y, text)
}

// Present clears the terminal and writes the frame, text on top.
func (t *Terminal) Present() error {
	t.out.WriteString(escClearScreen)
	if err := t.canvas.Render(t.out); err != nil {
		return err
	}
	for _, run := range t.canvas.Texts() {
		t.out.writeAt(run.Col, run.Row, t.text.Render(run.Text))
	}
	return t.out.Flush()
}
