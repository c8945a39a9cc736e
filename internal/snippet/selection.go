package snippet

// Selection is a cursor into a View.
// The index is only meaningful against the view it was moved with; callers
// reset it whenever the view changes shape.
type Selection struct {
	index int
}

// Index returns the position within the view.
func (s *Selection) Index() int {
	return s.index
}

// Reset moves the selection back to the first entry.
func (s *Selection) Reset() {
	s.index = 0
}

// Select moves the selection to index without validating it.
func (s *Selection) Select(index int) {
	s.index = index
}

// Next advances to the following entry, wrapping to the first.
// Does nothing on an empty view.
func (s *Selection) Next(view View) {
	n := view.Len()
	if n == 0 {
		return
	}
	s.index = (s.index + 1) % n
}

// Previous retreats to the preceding entry, wrapping to the last.
// Does nothing on an empty view.
func (s *Selection) Previous(view View) {
	n := view.Len()
	if n == 0 {
		return
	}
	if s.index <= 0 || s.index >= n {
		s.index = n - 1
		return
	}
	s.index--
}

// Current maps the selection through view to a Store index.
// Returns false if the view is empty or the selection is out of range.
func (s *Selection) Current(view View) (int, bool) {
	if s.index < 0 || s.index >= view.Len() {
		return 0, false
	}
	return view[s.index].Index, true
}
