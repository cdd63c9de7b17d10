package store

import (
	"github.com/denismitr/dll"

	"github.com/xNaCly/ladybird/value"
)

// Cursor is a forward-only live iterator over the store in insertion
// order. The visitation contract: an element removed before its turn is
// never visited; an element added while the cursor is open is visited
// when the cursor reaches its position; a removed-then-re-added element
// is visited at its new tail position.
//
// A Cursor holds store resources until it is exhausted or closed; an
// abandoned cursor must be closed by its owner.
type Cursor struct {
	o       *Ordered
	curr    *dll.Element[*node]
	started bool
	done    bool
}

// Cursor issues a new cursor positioned before the first element.
func (o *Ordered) Cursor() *Cursor {
	o.cursors++
	return &Cursor{o: o}
}

// Next advances to the next live element. It returns false once the
// store end is reached, after which the cursor is released and every
// further call returns false.
func (c *Cursor) Next() (value.Value, bool) {
	if c.done {
		return nil, false
	}

	var el *dll.Element[*node]
	if !c.started {
		c.started = true
		el = c.o.list.Head()
	} else {
		el = c.curr.Next()
	}

	for el != nil && el.Value().deleted {
		el = el.Next()
	}

	if el == nil {
		c.release()
		return nil, false
	}

	c.curr = el
	return el.Value().val, true
}

// Close releases the cursor before exhaustion. Closing an already
// released cursor is a no-op.
func (c *Cursor) Close() {
	c.release()
}

func (c *Cursor) release() {
	if c.done {
		return
	}
	c.done = true
	c.curr = nil
	c.o.cursors--
	if c.o.cursors == 0 && c.o.tombstones > 0 {
		c.o.compact()
	}
}
