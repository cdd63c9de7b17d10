package ladybird

import (
	"math"

	"github.com/pkg/errors"

	"github.com/xNaCly/ladybird/value"
)

// SetRecord is a frozen snapshot of an arbitrary object's set-like
// capabilities. It is built once by GetSetRecord and never re-reads the
// source object; mutating the object afterwards does not affect it.
type SetRecord struct {
	Object value.Object
	Size   float64
	Has    *value.Callable
	Keys   *value.Callable
}

// IteratorRecord pairs an iterator object with its next method. Done is
// owned by the consuming iteration loop.
type IteratorRecord struct {
	Iterator value.Object
	Next     *value.Callable
	Done     bool
}

// GetSetRecord validates v into a SetRecord. Validation is eager and
// ordered: object check, size read (the getter may run user code), NaN
// check on the coerced size, has read and callable check, keys read and
// callable check. The first failing step's error is returned, even when
// a later step would fail too, and no partial record escapes.
func GetSetRecord(v value.Value) (SetRecord, error) {
	obj, ok := value.AsObject(v)
	if !ok {
		return SetRecord{}, errors.Wrapf(ErrNotAnObject, "%v", v)
	}

	rawSize, err := obj.Get("size")
	if err != nil {
		return SetRecord{}, err
	}

	numSize := value.ToNumber(rawSize)
	if math.IsNaN(numSize) {
		return SetRecord{}, errors.Wrapf(ErrSizeNotANumber, "%v", rawSize)
	}
	intSize := value.ToIntegerOrInfinity(numSize)

	rawHas, err := obj.Get("has")
	if err != nil {
		return SetRecord{}, err
	}
	has, ok := value.AsCallable(rawHas)
	if !ok {
		return SetRecord{}, errors.Wrapf(ErrNotAFunction, "has is %v", rawHas)
	}

	rawKeys, err := obj.Get("keys")
	if err != nil {
		return SetRecord{}, err
	}
	keys, ok := value.AsCallable(rawKeys)
	if !ok {
		return SetRecord{}, errors.Wrapf(ErrNotAFunction, "keys is %v", rawKeys)
	}

	return SetRecord{Object: obj, Size: intSize, Has: has, Keys: keys}, nil
}

// GetKeysIterator calls the record's keys method on the record's object
// and validates the result into an IteratorRecord. Closing the iterator
// when a downstream operation fails is the consumer's responsibility.
func GetKeysIterator(rec SetRecord) (IteratorRecord, error) {
	res, err := rec.Keys.Call(rec.Object)
	if err != nil {
		return IteratorRecord{}, err
	}

	iter, ok := value.AsObject(res)
	if !ok {
		return IteratorRecord{}, errors.Wrapf(ErrNotAnObject, "%v", res)
	}

	rawNext, err := iter.Get("next")
	if err != nil {
		return IteratorRecord{}, err
	}
	next, ok := value.AsCallable(rawNext)
	if !ok {
		return IteratorRecord{}, errors.Wrapf(ErrNotAFunction, "next is %v", rawNext)
	}

	return IteratorRecord{Iterator: iter, Next: next, Done: false}, nil
}
