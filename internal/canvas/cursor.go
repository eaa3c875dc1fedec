package canvas

import "fmt"

// Cursor is a system pointer shape.
type Cursor uint8

// Pointer shapes the editor requests.
const (
	CursorDefault Cursor = iota
	CursorResizeAll
	CursorResizeNS
	CursorResizeEW
	CursorResizeNWSE
	CursorResizeNESW

	cursorCount
)

// String returns the cursor name.
func (c Cursor) String() string {
	switch c {
	case CursorDefault:
		return "default"
	case CursorResizeAll:
		return "resize-all"
	case CursorResizeNS:
		return "resize-ns"
	case CursorResizeEW:
		return "resize-ew"
	case CursorResizeNWSE:
		return "resize-nwse"
	case CursorResizeNESW:
		return "resize-nesw"
	default:
		return fmt.Sprintf("cursor(%d)", c)
	}
}

// CursorSink applies a pointer shape to the platform.
type CursorSink interface {
	SetCursor(Cursor)
}

// CursorTracker forwards cursor requests to a sink only when they change.
// The zero value has issued nothing yet, so the first request always goes
// through.
type CursorTracker struct {
	last   Cursor
	issued bool
}

// Set forwards c to sink unless it equals the last cursor issued. It
// reports whether the sink was called.
func (t *CursorTracker) Set(c Cursor, sink CursorSink) bool {
	if t.issued && t.last == c {
		return false
	}
	if sink != nil {
		sink.SetCursor(c)
	}
	t.last = c
	t.issued = true
	return true
}

// Current returns the last cursor issued.
func (t *CursorTracker) Current() Cursor {
	return t.last
}

// Reset forgets the last cursor, forcing the next Set through. Used after a
// platform change (window recreation, code reload) that may have reset the
// pointer behind the tracker's back.
func (t *CursorTracker) Reset() {
	t.issued = false
}
