// Package tui runs the game on a tcell screen, which serves as both the
// display and the input source.
package tui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/polyroids/internal/draw"
	"github.com/tomz197/polyroids/internal/input"
)

// Screen adapts a tcell.Screen to draw.Display and input.Poller.
// Pixels are drawn with half blocks, the same way as the plain terminal display.
type Screen struct {
	screen tcell.Screen
	canvas *draw.Canvas
	points []draw.Point

	events  chan tcell.Event
	tracker *input.Tracker
	quit    bool
	now     func() time.Time

	pixelStyle tcell.Style
	textStyle  tcell.Style
}

var (
	_ draw.Display = (*Screen)(nil)
	_ input.Poller = (*Screen)(nil)
)

// New wraps an initialised tcell screen. Call Start to begin reading events.
func New(screen tcell.Screen, unitsPerPixel float64) *Screen {
	cols, rows := screen.Size()
	return &Screen{
		screen:     screen,
		canvas:     draw.NewCanvas(cols, rows, unitsPerPixel),
		events:     make(chan tcell.Event, 128),
		tracker:    input.NewTracker(),
		now:        time.Now,
		pixelStyle: tcell.StyleDefault.Foreground(tcell.ColorWhite),
		textStyle:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	}
}

// Start spawns the goroutine that forwards screen events. It stops once the
// screen is finalised.
func (s *Screen) Start() {
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				close(s.events)
				return
			}
			s.events <- ev
		}
	}()
}

// Poll drains pending events (non-blocking) and returns the held key state.
func (s *Screen) Poll() input.Input {
	now := s.now()

drain:
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.quit = true
				break drain
			}
			s.handleEvent(ev, now)
		default:
			break drain
		}
	}

	in := s.tracker.Snapshot(now)
	if s.quit {
		in.Quit = true
	}
	return in
}

// handleEvent maps a tcell event onto the key tracker.
func (s *Screen) handleEvent(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			s.quit = true
		case tcell.KeyUp:
			s.tracker.Press(input.KeyThrust, now)
		case tcell.KeyLeft:
			s.tracker.Press(input.KeyRotateLeft, now)
		case tcell.KeyRight:
			s.tracker.Press(input.KeyRotateRight, now)
		case tcell.KeyEnter:
			s.tracker.Press(input.KeyConfirm, now)
		case tcell.KeyRune:
			if ev.Rune() <= 0x7f {
				input.ParseBytes(s.tracker, []byte{byte(ev.Rune())}, now)
			}
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
}

func (s *Screen) refresh() {
	cols, rows := s.screen.Size()
	s.canvas.Resize(cols, rows)
}

func (s *Screen) Width() float64 {
	s.refresh()
	return s.canvas.LogicalWidth()
}

func (s *Screen) Height() float64 {
	s.refresh()
	return s.canvas.LogicalHeight()
}

func (s *Screen) Clear() {
	s.refresh()
	s.canvas.Clear()
}

func (s *Screen) DrawCircle(x, y, radius float64) {
	s.canvas.FillCircle(draw.Point{X: x, Y: y}, radius)
}

func (s *Screen) DrawPolyLines(x, y float64, sides int, radius, rotation float64) {
	s.points = draw.RegularPolygon(s.points, x, y, sides, radius, rotation)
	s.canvas.DrawPolygon(s.points, false)
}

func (s *Screen) DrawTriangleLines(a, b, c draw.Point) {
	points := s.canvas.BorrowPoints(3)
	points[0], points[1], points[2] = a, b, c
	s.canvas.DrawPolygon(points, false)
}

// MeasureText measures in cells; the font size does not apply.
func (s *Screen) MeasureText(text string, _ float64) (width, height float64) {
	return float64(lipgloss.Width(text)) * s.canvas.UnitsPerColumn(), s.canvas.UnitsPerRow()
}

func (s *Screen) DrawText(text string, x, y, _ float64) {
	s.canvas.PutText(x, y, text)
}

// Present copies the canvas into the tcell back buffer and shows it.
func (s *Screen) Present() error {
	s.screen.Clear()
	s.canvas.EachCell(func(col, row int, ch rune) {
		s.screen.SetContent(col, row, ch, nil, s.pixelStyle)
	})
	for _, run := range s.canvas.Texts() {
		col := run.Col - 1
		for _, r := range run.Text {
			s.screen.SetContent(col, run.Row-1, r, nil, s.textStyle)
			col++
		}
	}
	s.screen.Show()
	return nil
}
