package seq

// Cursor is a repositionable forward iterator over one sequence. Copies are
// O(1): they share the backing slice and advance independently.
type Cursor struct {
	seq []int32
	idx int
}

func NewCursor(sequence []int32) *Cursor {
	return &Cursor{seq: sequence}
}

func (c *Cursor) HasNext() bool {
	return c.idx < len(c.seq)
}

// Next consumes and returns the item under the cursor. The caller must have
// checked HasNext.
func (c *Cursor) Next() int32 {
	item := c.seq[c.idx]
	c.idx++
	return item
}

// Peek returns the item under the cursor without consuming it.
func (c *Cursor) Peek() int32 {
	return c.seq[c.idx]
}

func (c *Cursor) Copy() *Cursor {
	return &Cursor{seq: c.seq, idx: c.idx}
}

// Set transplants this cursor's position to match o. Both cursors must share
// the same backing sequence.
func (c *Cursor) Set(o *Cursor) {
	c.idx = o.idx
}
