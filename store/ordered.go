package store

import (
	"github.com/denismitr/dll"

	"github.com/xNaCly/ladybird/value"
)

type node struct {
	val     value.Value
	deleted bool
}

// Ordered is an insertion-ordered set of dynamic values. Equality is
// same-value-zero: -0 matches +0 and NaN matches NaN. Elements must be
// comparable Go values.
//
// While at least one Cursor is live, removed elements are tombstoned
// instead of unlinked so that issued cursors keep a valid position; the
// list is compacted when the last cursor is released.
type Ordered struct {
	m          map[value.Value]*dll.Element[*node]
	list       *dll.DoublyLinkedList[*node]
	size       int
	cursors    int
	tombstones int
}

func NewOrdered() *Ordered {
	return &Ordered{
		m:    make(map[value.Value]*dll.Element[*node]),
		list: dll.New[*node](),
	}
}

// Add appends v unless already present and reports whether it did.
// A value re-added after removal takes a fresh tail position.
func (o *Ordered) Add(v value.Value) (modified bool) {
	k := value.Canonical(v)
	if _, found := o.m[k]; found {
		return false
	}

	newEl := dll.NewElement(&node{val: v})
	o.m[k] = newEl
	o.list.PushTail(newEl)
	o.size++
	return true
}

// Remove deletes v and reports whether it was present.
func (o *Ordered) Remove(v value.Value) bool {
	k := value.Canonical(v)
	el, found := o.m[k]
	if !found {
		return false
	}

	delete(o.m, k)
	o.size--

	if o.cursors == 0 {
		o.list.Remove(el)
	} else {
		el.Value().deleted = true
		o.tombstones++
	}
	return true
}

func (o *Ordered) Has(v value.Value) bool {
	_, found := o.m[value.Canonical(v)]
	return found
}

func (o *Ordered) Len() int {
	return o.size
}

// Clear empties the store. Live cursors observe the emptiness: they will
// not visit any element that was present before the call.
func (o *Ordered) Clear() {
	if o.cursors == 0 {
		o.m = make(map[value.Value]*dll.Element[*node])
		o.list = dll.New[*node]()
		o.size = 0
		o.tombstones = 0
		return
	}

	curr := o.list.Head()
	for curr != nil {
		n := curr.Value()
		if !n.deleted {
			n.deleted = true
			o.tombstones++
		}
		curr = curr.Next()
	}
	o.m = make(map[value.Value]*dll.Element[*node])
	o.size = 0
}

// Items returns the live elements in insertion order.
func (o *Ordered) Items() []value.Value {
	items := make([]value.Value, 0, o.size)
	curr := o.list.Head()
	for curr != nil {
		if !curr.Value().deleted {
			items = append(items, curr.Value().val)
		}
		curr = curr.Next()
	}
	return items
}

func (o *Ordered) compact() {
	curr := o.list.Head()
	for curr != nil {
		next := curr.Next()
		if curr.Value().deleted {
			o.list.Remove(curr)
		}
		curr = next
	}
	o.tombstones = 0
}
