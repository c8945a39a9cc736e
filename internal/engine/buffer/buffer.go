package buffer

// MinSpare is the smallest spare capacity a buffer is created with.
// The gap needs two free slots so that the slot written by an insert never
// closes it completely.
const MinSpare = 2

// GapBuffer is a rune buffer with a movable gap at the edit position.
type GapBuffer struct {
	runes []rune

	// gapStart is the index of the first free slot and the logical cursor.
	gapStart int

	// gapEnd is the index of the last free slot (inclusive).
	gapEnd int

	// spare is the gap width the buffer was last sized with. Each grow
	// doubles it.
	spare int

	logger Logger
}

// New creates a buffer holding initial with spare free slots after it.
// The gap starts at the end of the text.
func New(initial string, spare int, opts ...Option) *GapBuffer {
	if spare < MinSpare {
		spare = MinSpare
	}

	text := []rune(initial)
	runes := make([]rune, len(text)+spare)
	copy(runes, text)

	b := &GapBuffer{
		runes:    runes,
		gapStart: len(text),
		gapEnd:   len(text) + spare - 1,
		spare:    spare,
		logger:   nopLogger{},
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Insert writes r at the cursor and advances the cursor past it.
// The buffer grows first when the write would leave the gap with fewer
// than one free slot.
func (b *GapBuffer) Insert(r rune) {
	if b.gapEnd-b.gapStart <= 1 {
		b.grow()
	}
	b.runes[b.gapStart] = r
	b.gapStart++
}

// InsertString inserts every rune of s at the cursor, in order.
func (b *GapBuffer) InsertString(s string) {
	for _, r := range s {
		b.Insert(r)
	}
}

// Backspace deletes the rune immediately left of the cursor.
// It does nothing at the start of the buffer.
func (b *GapBuffer) Backspace() {
	if b.gapStart == 0 {
		return
	}
	b.gapStart--
	b.runes[b.gapStart] = 0
}

// MoveGap relocates the gap so that it starts at index.
// Indices that would push the gap past either end of the buffer are
// ignored and logged.
func (b *GapBuffer) MoveGap(index int) {
	if index < 0 || index+b.gapWidth() > len(b.runes) {
		b.logger.Warn("gap move to %d would overflow the buffer (len=%d)", index, b.Len())
		return
	}
	if index == b.gapStart {
		b.logger.Debug("gap already positioned at %d", index)
		return
	}
	if index < b.gapStart {
		b.moveLeft(index)
	} else {
		b.moveRight(index)
	}
}

// MoveLeft moves the cursor one rune to the left.
func (b *GapBuffer) MoveLeft() {
	if b.gapStart == 0 {
		return
	}
	b.MoveGap(b.gapStart - 1)
}

// MoveRight moves the cursor one rune to the right.
func (b *GapBuffer) MoveRight() {
	b.MoveGap(b.gapStart + 1)
}

// moveLeft shifts runes from before the gap to after it until the gap
// starts at index.
func (b *GapBuffer) moveLeft(index int) {
	for b.gapStart > index {
		b.gapStart--
		b.gapEnd--
		b.runes[b.gapEnd+1] = b.runes[b.gapStart]
		b.runes[b.gapStart] = 0
	}
}

// moveRight shifts runes from after the gap to before it until the gap
// starts at index.
func (b *GapBuffer) moveRight(index int) {
	for b.gapStart < index {
		b.runes[b.gapStart] = b.runes[b.gapEnd+1]
		b.runes[b.gapEnd+1] = 0
		b.gapStart++
		b.gapEnd++
	}
}

// grow reallocates the backing slice with double the previous spare
// capacity. Text on both sides of the gap keeps its order and the new
// gap spans all the added slots.
func (b *GapBuffer) grow() {
	spare := b.spare * 2
	after := b.runes[b.gapEnd+1:]

	runes := make([]rune, b.gapStart+spare+len(after))
	copy(runes, b.runes[:b.gapStart])
	copy(runes[b.gapStart+spare:], after)

	b.logger.Debug("gap buffer grow: cap %d -> %d", len(b.runes), len(runes))

	b.runes = runes
	b.gapEnd = b.gapStart + spare - 1
	b.spare = spare
}

// gapWidth returns the number of free slots.
func (b *GapBuffer) gapWidth() int {
	return b.gapEnd - b.gapStart + 1
}

// String returns the live text in document order, without gap filler.
func (b *GapBuffer) String() string {
	out := make([]rune, 0, b.Len())
	out = append(out, b.runes[:b.gapStart]...)
	out = append(out, b.runes[b.gapEnd+1:]...)
	return string(out)
}

// BeforeGap returns a copy of the runes left of the cursor.
func (b *GapBuffer) BeforeGap() []rune {
	out := make([]rune, b.gapStart)
	copy(out, b.runes[:b.gapStart])
	return out
}

// Len returns the number of live runes.
func (b *GapBuffer) Len() int {
	return len(b.runes) - b.gapWidth()
}

// Cap returns the size of the backing storage, gap included.
func (b *GapBuffer) Cap() int {
	return len(b.runes)
}

// IsEmpty returns true if the buffer holds no text.
func (b *GapBuffer) IsEmpty() bool {
	return b.Len() == 0
}

// GapStart returns the cursor position as a rune index.
func (b *GapBuffer) GapStart() int {
	return b.gapStart
}

// GapEnd returns the index of the last free slot.
func (b *GapBuffer) GapEnd() int {
	return b.gapEnd
}
