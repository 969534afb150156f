// Package device provides software stand-ins for the terminal's hardware:
// a character display and a scripted joystick and token reader.
package device

import (
	"fmt"
	"io"
	"strings"
)

// Screen is a fixed-size character display held in memory
type Screen struct {
	rows  int
	cols  int
	cells [][]rune
}

// NewScreen creates a blank screen
func NewScreen(rows, cols int) *Screen {
	s := &Screen{rows: rows, cols: cols, cells: make([][]rune, rows)}
	for i := range s.cells {
		s.cells[i] = make([]rune, cols)
	}
	s.Clear()
	return s
}

// Rows returns the number of display rows
func (s *Screen) Rows() int {
	return s.rows
}

// Cols returns the number of display columns
func (s *Screen) Cols() int {
	return s.cols
}

// Clear blanks every cell
func (s *Screen) Clear() {
	for _, row := range s.cells {
		for c := range row {
			row[c] = ' '
		}
	}
}

// WriteAt writes text starting at (row, col). Text past the last column is
// dropped, as is any write to a row that does not exist.
func (s *Screen) WriteAt(row, col int, text string) {
	if row < 0 || row >= s.rows || col < 0 {
		return
	}
	for i, r := range []rune(text) {
		if col+i >= s.cols {
			break
		}
		s.cells[row][col+i] = r
	}
}

// Line returns a row with trailing blanks removed
func (s *Screen) Line(row int) string {
	if row < 0 || row >= s.rows {
		return ""
	}
	return strings.TrimRight(string(s.cells[row]), " ")
}

// Lines returns every row with trailing blanks removed
func (s *Screen) Lines() []string {
	lines := make([]string, s.rows)
	for i := range lines {
		lines[i] = s.Line(i)
	}
	return lines
}

// Frame renders the full screen inside a border
func (s *Screen) Frame() string {
	var sb strings.Builder
	border := "+" + strings.Repeat("-", s.cols) + "+\n"
	sb.WriteString(border)
	for _, row := range s.cells {
		fmt.Fprintf(&sb, "|%s|\n", string(row))
	}
	sb.WriteString(border)
	return sb.String()
}

// Console is a Screen that prints a frame to w whenever its content changes
type Console struct {
	*Screen
	w    io.Writer
	last string
}

// NewConsole creates a console display writing to w
func NewConsole(w io.Writer, rows, cols int) *Console {
	return &Console{Screen: NewScreen(rows, cols), w: w}
}

// Clear blanks the screen and prints it
func (c *Console) Clear() {
	c.Screen.Clear()
	c.flush()
}

// WriteAt writes text and prints the screen
func (c *Console) WriteAt(row, col int, text string) {
	c.Screen.WriteAt(row, col, text)
	c.flush()
}

func (c *Console) flush() {
	frame := c.Frame()
	if frame == c.last {
		return
	}
	c.last = frame
	_, _ = io.WriteString(c.w, frame)
}
