// Package menu implements a scrolling selection list windowed to the
// display's row count.
package menu

// Navigator tracks the cursor over a fixed list of labels. The cursor moves
// freely inside the window; the window only scrolls once the cursor is
// pinned against an edge.
type Navigator struct {
	labels []string
	window int
	offset int
	cursor int
}

// New creates a navigator showing window rows at a time. The window is
// clamped to the number of labels.
func New(labels []string, window int) *Navigator {
	if window > len(labels) {
		window = len(labels)
	}
	if window < 1 {
		window = 1
	}
	return &Navigator{
		labels: labels,
		window: window,
	}
}

// MoveUp moves the cursor up one line, scrolling if it is on the top row.
// It returns false when already at the first label.
func (n *Navigator) MoveUp() bool {
	switch {
	case n.cursor > 0:
		n.cursor--
	case n.offset > 0:
		n.offset--
	default:
		return false
	}
	return true
}

// MoveDown moves the cursor down one line, scrolling if it is on the bottom
// row. It returns false when already at the last label.
func (n *Navigator) MoveDown() bool {
	switch {
	case n.cursor < n.window-1 && n.offset+n.cursor+1 < len(n.labels):
		n.cursor++
	case n.offset < len(n.labels)-n.window:
		n.offset++
	default:
		return false
	}
	return true
}

// Selected returns the index of the label under the cursor
func (n *Navigator) Selected() int {
	return n.offset + n.cursor
}

// Cursor returns the cursor's row within the window
func (n *Navigator) Cursor() int {
	return n.cursor
}

// Offset returns the index of the first visible label
func (n *Navigator) Offset() int {
	return n.offset
}

// Visible returns the labels currently inside the window
func (n *Navigator) Visible() []string {
	end := n.offset + n.window
	if end > len(n.labels) {
		end = len(n.labels)
	}
	return n.labels[n.offset:end]
}
