package core

// ScreenPos represents a position on screen (0-indexed).
type ScreenPos struct {
	Row int
	Col int
}

// ScreenRect represents a rectangular region on screen.
type ScreenRect struct {
	Top    int // First row (inclusive)
	Left   int // First column (inclusive)
	Bottom int // Last row (exclusive)
	Right  int // Last column (exclusive)
}

// RectFromSize creates a rectangle from position and size.
func RectFromSize(top, left, height, width int) ScreenRect {
	return ScreenRect{Top: top, Left: left, Bottom: top + height, Right: left + width}
}

// Width returns the width of the rectangle.
func (r ScreenRect) Width() int {
	if r.Right <= r.Left {
		return 0
	}
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r ScreenRect) Height() int {
	if r.Bottom <= r.Top {
		return 0
	}
	return r.Bottom - r.Top
}

// IsEmpty returns true if the rectangle has no area.
func (r ScreenRect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Contains returns true if pos is within the rectangle.
func (r ScreenRect) Contains(pos ScreenPos) bool {
	return pos.Row >= r.Top && pos.Row < r.Bottom &&
		pos.Col >= r.Left && pos.Col < r.Right
}

// Inset returns a rectangle inset by the given amounts.
func (r ScreenRect) Inset(top, right, bottom, left int) ScreenRect {
	return ScreenRect{
		Top:    r.Top + top,
		Left:   r.Left + left,
		Bottom: r.Bottom - bottom,
		Right:  r.Right - right,
	}
}

// Inner returns the area inside a one-cell border.
func (r ScreenRect) Inner() ScreenRect {
	return r.Inset(1, 1, 1, 1)
}

// SplitHorizontal divides r into a left and right part, the left part
// taking percent of the width.
func (r ScreenRect) SplitHorizontal(percent int) (left, right ScreenRect) {
	w := r.Width() * percent / 100
	left = ScreenRect{Top: r.Top, Left: r.Left, Bottom: r.Bottom, Right: r.Left + w}
	right = ScreenRect{Top: r.Top, Left: r.Left + w, Bottom: r.Bottom, Right: r.Right}
	return left, right
}

// SplitVertical divides r into a top and bottom part. The top part takes
// percent of the height but never fewer than minTop rows, limited by the
// height of r.
func (r ScreenRect) SplitVertical(percent, minTop int) (top, bottom ScreenRect) {
	h := r.Height() * percent / 100
	if h < minTop {
		h = minTop
	}
	if h > r.Height() {
		h = r.Height()
	}
	top = ScreenRect{Top: r.Top, Left: r.Left, Bottom: r.Top + h, Right: r.Right}
	bottom = ScreenRect{Top: r.Top + h, Left: r.Left, Bottom: r.Bottom, Right: r.Right}
	return top, bottom
}

// Centered returns a width x height rectangle centered in r, clipped to r.
func (r ScreenRect) Centered(width, height int) ScreenRect {
	width = min(width, r.Width())
	height = min(height, r.Height())
	top := r.Top + (r.Height()-height)/2
	left := r.Left + (r.Width()-width)/2
	return RectFromSize(top, left, height, width)
}
