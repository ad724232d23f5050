// Package raster draws frames into an in-memory image with gg, for headless
// runs that save the result as PNG.
package raster

import (
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/tomz197/polyroids/internal/draw"
)

// LineWidth is the stroke width of polygon and triangle outlines.
const LineWidth = 2.0

var (
	background = gg.RGB(0.78, 0.78, 0.78) // light gray
	foreground = gg.RGB(0, 0, 0)
	textColor  = gg.RGB(0.31, 0.31, 0.31) // dark gray
)

// Display renders into a fixed-size gg context. Draw errors are kept and
// reported by the next Present.
type Display struct {
	dc     *gg.Context
	source *text.FontSource
	faces  map[float64]text.Face
	frames int
	err    error
}

var _ draw.Display = (*Display)(nil)

// New creates a display of width x height pixels.
func New(width, height int) (*Display, error) {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &Display{
		dc:     gg.NewContext(width, height),
		source: source,
		faces:  make(map[float64]text.Face),
	}, nil
}

func (d *Display) Width() float64  { return float64(d.dc.Width()) }
func (d *Display) Height() float64 { return float64(d.dc.Height()) }

func (d *Display) Clear() {
	d.dc.ClearWithColor(background)
}

func (d *Display) keep(err error) {
	if err != nil && d.err == nil {
		d.err = err
	}
}

func (d *Display) DrawCircle(x, y, radius float64) {
	d.dc.SetColor(foreground.Color())
	d.dc.DrawCircle(x, y, radius)
	d.keep(d.dc.Fill())
}

func (d *Display) DrawPolyLines(x, y float64, sides int, radius, rotation float64) {
	if sides < 3 {
		return
	}
	d.dc.SetColor(foreground.Color())
	d.dc.SetLineWidth(LineWidth)
	d.dc.DrawRegularPolygon(sides, x, y, radius, mgl64.DegToRad(rotation))
	d.keep(d.dc.Stroke())
}

func (d *Display) DrawTriangleLines(a, b, c draw.Point) {
	d.dc.SetColor(foreground.Color())
	d.dc.SetLineWidth(LineWidth)
	d.dc.MoveTo(a.X, a.Y)
	d.dc.LineTo(b.X, b.Y)
	d.dc.LineTo(c.X, c.Y)
	d.dc.ClosePath()
	d.keep(d.dc.Stroke())
}

func (d *Display) face(size float64) text.Face {
	f, ok := d.faces[size]
	if !ok {
		f = d.source.Face(size)
		d.faces[size] = f
	}
	return f
}

func (d *Display) MeasureText(s string, fontSize float64) (width, height float64) {
	d.dc.SetFont(d.face(fontSize))
	return d.dc.MeasureString(s)
}

// DrawText places the top of the line box at y; gg draws on the baseline.
func (d *Display) DrawText(s string, x, y, fontSize float64) {
	f := d.face(fontSize)
	d.dc.SetFont(f)
	d.dc.SetColor(textColor.Color())
	d.dc.DrawString(s, x, y+f.Metrics().Ascent)
}

// Present finishes the frame and reports the first draw error since the last one.
func (d *Display) Present() error {
	d.frames++
	err := d.err
	d.err = nil
	if err != nil {
		return fmt.Errorf("render frame %d: %w", d.frames, err)
	}
	return nil
}

// Frames returns how many frames were presented.
func (d *Display) Frames() int {
	return d.frames
}

// EncodePNG writes the current frame as PNG.
func (d *Display) EncodePNG(w io.Writer) error {
	if err := d.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Close releases the drawing context.
func (d *Display) Close() error {
	return d.dc.Close()
}
