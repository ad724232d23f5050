package draw

import (
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Game coordinates are logical units; every sub-pixel covers UnitsPerPixel units
// on both axes, so the logical playfield grows with the terminal.
type Canvas struct {
	termWidth      int    // Terminal columns
	termHeight     int    // Terminal rows
	subPixelHeight int    // termHeight * 2
	pixels         []bool // Flat slice: [y * termWidth + x] - true if pixel is set

	unitsPerPixel float64 // Logical units covered by one sub-pixel
	scale         float64 // 1 / unitsPerPixel

	texts []TextRun // Text overlays, drawn after the pixels

	// Reusable buffers to reduce allocations
	renderBuf       strings.Builder // Buffer for batching render output
	numBuf          [20]byte        // Scratch buffer for allocation-free integer formatting
	scaledBuf       []Point         // Reusable buffer for fillPolygon scaled points
	intersectionBuf []float64       // Reusable buffer for scanline intersections
	polygonBuf      []Point         // Reusable buffer for polygon point generation
}

// TextRun is a string placed at a 1-based terminal cell.
type TextRun struct {
	Col, Row int
	Text     string
}

// NewCanvas creates a canvas for the given terminal dimensions.
func NewCanvas(termWidth, termHeight int, unitsPerPixel float64) *Canvas {
	if unitsPerPixel <= 0 {
		unitsPerPixel = 1
	}
	c := &Canvas{
		unitsPerPixel: unitsPerPixel,
		scale:         1 / unitsPerPixel,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions.
// Returns true if the dimensions actually changed.
func (c *Canvas) Resize(termWidth, termHeight int) bool {
	if termWidth < 0 {
		termWidth = 0
	}
	if termHeight < 0 {
		termHeight = 0
	}
	if termWidth == c.termWidth && termHeight == c.termHeight && c.pixels != nil {
		return false
	}

	c.termWidth = termWidth
	c.termHeight = termHeight
	c.subPixelHeight = termHeight * 2
	c.pixels = make([]bool, c.subPixelHeight*termWidth)
	return true
}

// Clear resets all pixels and text overlays.
func (c *Canvas) Clear() {
	clear(c.pixels)
	c.texts = c.texts[:0]
}

// setPixel sets a pixel at sub-pixel coordinates (no scaling).
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// Pixel reports whether the sub-pixel at (x, y) is set.
func (c *Canvas) Pixel(x, y int) bool {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return false
	}
	return c.pixels[y*c.termWidth+x]
}

// SetFloat sets a pixel using float logical coordinates (applies scaling).
func (c *Canvas) SetFloat(x, y float64) {
	c.setPixel(int(math.Floor(x*c.scale)), int(math.Floor(y*c.scale)))
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point) {
	x1 := int(math.Floor(p1.X * c.scale))
	y1 := int(math.Floor(p1.Y * c.scale))
	x2 := int(math.Floor(p2.X * c.scale))
	y2 := int(math.Floor(p2.Y * c.scale))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a polygon on the canvas.
// If filled is true, the interior is filled using scanline algorithm.
func (c *Canvas) DrawPolygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}

	if filled {
		c.fillPolygon(points)
	}

	// Draw outline
	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n])
	}
}

// fillPolygon fills a polygon using scanline algorithm.
// Works in pixel space for proper scaling.
func (c *Canvas) fillPolygon(points []Point) {
	// Reuse or grow scaled points buffer
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]

	// Scale points to pixel coordinates
	for i, p := range points {
		scaled[i] = Point{
			X: p.X * c.scale,
			Y: p.Y * c.scale,
		}
	}

	// Find bounding box in pixel space
	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	yStart := int(math.Floor(minY))
	yEnd := int(math.Ceil(maxY))

	// Scanline fill in pixel space
	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		// Reuse intersection buffer
		intersections := c.intersectionBuf[:0]

		// Find intersections with all edges
		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				x := p1.X + t*(p2.X-p1.X)
				intersections = append(intersections, x)
			}
		}

		// Store back in case it grew
		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i]))
			xEnd := int(math.Floor(intersections[i+1]))
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// FillCircle draws a filled disc. Discs smaller than a sub-pixel still set
// the pixel under their centre.
func (c *Canvas) FillCircle(center Point, radius float64) {
	if radius*c.scale < 1 {
		c.SetFloat(center.X, center.Y)
		return
	}
	const segments = 16
	points := c.BorrowPoints(segments)
	for i := range points {
		a := 2 * math.Pi * float64(i) / segments
		points[i] = Point{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
	}
	c.DrawPolygon(points, true)
}

// PutText places a text overlay whose top-left corner is at logical (x, y).
// Text that would start left of or above the terminal starts at its edge.
func (c *Canvas) PutText(x, y float64, text string) {
	col, row := c.LogicalToTerminal(x, y)
	c.texts = append(c.texts, TextRun{Col: max(col, 1), Row: max(row, 1), Text: text})
}

// Texts returns the text overlays placed since the last Clear.
func (c *Canvas) Texts() []TextRun {
	return c.texts
}

// EachCell calls fn for every terminal cell that has at least one sub-pixel set,
// with the half-block rune that represents it. col and row are 0-based.
func (c *Canvas) EachCell(fn func(col, row int, ch rune)) {
	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			switch {
			case top && bottom:
				fn(col, row, BlockFull)
			case top:
				fn(col, row, BlockUpperHalf)
			case bottom:
				fn(col, row, BlockLowerHalf)
			}
		}
	}
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1400 bytes stays under a typical MTU for smooth SSH/network transmission.
const maxChunkSize = 1400

// Render outputs the canvas pixels to the writer using half-block characters.
// Text overlays are not written; the caller decides how to style them.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 2)

	c.EachCell(func(col, row int, ch rune) {
		c.renderBuf.WriteString("\033[")
		c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row+1), 10))
		c.renderBuf.WriteByte(';')
		c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col+1), 10))
		c.renderBuf.WriteByte('H')
		c.renderBuf.WriteRune(ch)
	})

	// Write output in chunks for optimal network flow
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := io.WriteString(w, chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return nil
}

// LogicalWidth returns the playfield width covered by the canvas.
func (c *Canvas) LogicalWidth() float64 {
	return float64(c.termWidth) * c.unitsPerPixel
}

// LogicalHeight returns the playfield height covered by the canvas.
func (c *Canvas) LogicalHeight() float64 {
	return float64(c.subPixelHeight) * c.unitsPerPixel
}

// UnitsPerColumn returns the logical width of one terminal cell.
func (c *Canvas) UnitsPerColumn() float64 {
	return c.unitsPerPixel
}

// UnitsPerRow returns the logical height of one terminal cell.
func (c *Canvas) UnitsPerRow() float64 {
	return 2 * c.unitsPerPixel
}

// LogicalToTerminal converts logical coordinates to 1-based terminal position (col, row).
// This is useful for placing text overlays at positions matching canvas-drawn objects.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Floor(x * c.scale))
	py := int(math.Floor(y * c.scale))
	return px + 1, py/2 + 1
}

// BorrowPoints returns a reusable slice of Points with the given length.
// The returned slice is only valid until the next call to BorrowPoints.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
