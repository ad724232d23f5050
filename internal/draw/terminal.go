package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	escClearScreen = "\033[H\033[2J"
	escHideCursor  = "\033[?25l"
	escShowCursor  = "\033[?25h"
)

// frameWriter collects one frame of terminal output and sends it in
// maxChunkSize pieces on Flush.
type frameWriter struct {
	buf    strings.Builder
	out    *bufio.Writer
	numBuf [20]byte
}

func newFrameWriter(w io.Writer) *frameWriter {
	return &frameWriter{out: bufio.NewWriterSize(w, 8192)}
}

// Write appends p to the frame.
func (fw *frameWriter) Write(p []byte) (int, error) {
	return fw.buf.Write(p)
}

// WriteString appends s to the frame.
func (fw *frameWriter) WriteString(s string) (int, error) {
	return fw.buf.WriteString(s)
}

// writeAt appends s at the 1-based terminal cell (col, row).
func (fw *frameWriter) writeAt(col, row int, s string) {
	fw.buf.WriteString("\033[")
	fw.buf.Write(strconv.AppendInt(fw.numBuf[:0], int64(row), 10))
	fw.buf.WriteByte(';')
	fw.buf.Write(strconv.AppendInt(fw.numBuf[:0], int64(col), 10))
	fw.buf.WriteByte('H')
	fw.buf.WriteString(s)
}

// Flush sends the frame and starts a new one.
func (fw *frameWriter) Flush() error {
	data := fw.buf.String()
	fw.buf.Reset()
	for len(data) > 0 {
		n := min(len(data), maxChunkSize)
		if _, err := fw.out.WriteString(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return fw.out.Flush()
}

var _ io.StringWriter = (*frameWriter)(nil)

// TermSizeFunc returns the terminal size in columns and rows.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc reads the size of os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// ClearScreen clears the terminal and homes the cursor.
func ClearScreen(w io.Writer) {
	io.WriteString(w, escClearScreen)
}

func HideCursor(w io.Writer) {
	io.WriteString(w, escHideCursor)
}

func ShowCursor(w io.Writer) {
	io.WriteString(w, escShowCursor)
}
