package draw

import "fmt"

// Recorder is a Display that records draw calls as strings. It is meant for
// tests that assert on what a frame contains.
type Recorder struct {
	W, H     float64
	Calls    []string
	Frames   int
	CharSize float64 // MeasureText width per rune, times fontSize
}

var _ Display = (*Recorder)(nil)

// NewRecorder creates a recorder with the given playfield size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h, CharSize: 0.5}
}

func (r *Recorder) Width() float64  { return r.W }
func (r *Recorder) Height() float64 { return r.H }

func (r *Recorder) Clear() {
	r.Calls = r.Calls[:0]
}

func (r *Recorder) DrawCircle(x, y, radius float64) {
	r.Calls = append(r.Calls, fmt.Sprintf("circle %.2f %.2f %.2f", x, y, radius))
}

func (r *Recorder) DrawPolyLines(x, y float64, sides int, radius, rotation float64) {
	r.Calls = append(r.Calls, fmt.Sprintf("poly %.2f %.2f %d %.2f %.2f", x, y, sides, radius, rotation))
}

func (r *Recorder) DrawTriangleLines(a, b, c Point) {
	r.Calls = append(r.Calls, fmt.Sprintf("triangle %.2f %.2f %.2f %.2f %.2f %.2f", a.X, a.Y, b.X, b.Y, c.X, c.Y))
}

func (r *Recorder) MeasureText(text string, fontSize float64) (float64, float64) {
	return float64(len([]rune(text))) * fontSize * r.CharSize, fontSize
}

func (r *Recorder) DrawText(text string, x, y, fontSize float64) {
	r.Calls = append(r.Calls, fmt.Sprintf("text %q %.2f %.2f %.0f", text, x, y, fontSize))
}

func (r *Recorder) Present() error {
	r.Frames++
	return nil
}

// Count returns how many recorded calls start with kind ("circle", "poly", ...).
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, c := range r.Calls {
		if len(c) > len(kind) && c[:len(kind)] == kind && c[len(kind)] == ' ' {
			n++
		}
	}
	return n
}
