// Package buffer provides the gap buffer that backs every editable text
// surface in dial: the snippet editor, the search box and the fields of the
// create form.
//
// A gap buffer keeps its text in a single rune slice with one contiguous
// run of unused slots (the gap) at the edit position:
//
//	[ H e l l o _ _ _ _ w o r l d ]
//	            ^     ^
//	        gapStart  gapEnd (inclusive)
//
// Inserting writes into the first gap slot and deleting to the left of the
// cursor widens the gap, so both are O(1). Moving the edit position shifts
// runes across the gap one slot at a time, costing O(distance). When the
// gap is about to close the buffer reallocates with double the previous
// spare capacity, keeping growth amortized.
//
// Basic usage:
//
//	buf := buffer.New("Hello", 16)
//	buf.Insert(' ')
//	buf.InsertString("world")
//	buf.MoveGap(5)
//	buf.Backspace()
//	text := buf.String() // "Hell world"
//
// Positions are rune indices. The buffer works on code points and does not
// cluster graphemes.
//
// Thread Safety:
//
// A GapBuffer is owned by a single input surface on the run loop and is not
// safe for concurrent use.
package buffer
