package value

import "math"

// Value is a dynamic value: float64, string, bool, Undefined, nil,
// *Callable, or anything implementing Object.
type Value = any

type undefinedType struct{}

func (undefinedType) String() string {
	return "undefined"
}

// Undefined is the absent-value sentinel, distinct from nil (null).
var Undefined = undefinedType{}

// IsUndefined reports whether v is the Undefined sentinel.
func IsUndefined(v Value) bool {
	_, ok := v.(undefinedType)
	return ok
}

// CallFunc is the underlying implementation of a Callable. The receiver
// and arguments are supplied by the caller; the call may run arbitrary
// user code and end abruptly with an error.
type CallFunc func(receiver Value, args []Value) (Value, error)

// Callable is a function object. Two Callables are the same function
// object iff they are the same pointer.
type Callable struct {
	name string
	fn   CallFunc
}

func NewCallable(name string, fn CallFunc) *Callable {
	return &Callable{name: name, fn: fn}
}

func (c *Callable) Name() string {
	return c.name
}

func (c *Callable) Call(receiver Value, args ...Value) (Value, error) {
	return c.fn(receiver, args)
}

// Object is the property-read capability. Get may invoke a getter and
// therefore re-enter arbitrary user code; a missing property yields
// Undefined, not an error.
type Object interface {
	Get(name string) (Value, error)
}

// AsObject returns v as an Object if it is one.
func AsObject(v Value) (Object, bool) {
	o, ok := v.(Object)
	return o, ok
}

// AsCallable returns v as a *Callable if it is one.
func AsCallable(v Value) (*Callable, bool) {
	c, ok := v.(*Callable)
	return c, ok
}

// Arg returns the i-th argument, or Undefined when fewer were passed.
func Arg(args []Value, i int) Value {
	if i < 0 || i >= len(args) {
		return Undefined
	}
	return args[i]
}

type canonicalNaN struct{}

// Canonical maps v to its same-value-zero map key: negative zero folds
// into positive zero and every NaN folds into a single sentinel, so that
// map lookups agree with set equality.
func Canonical(v Value) Value {
	f, ok := v.(float64)
	if !ok {
		return v
	}
	if math.IsNaN(f) {
		return canonicalNaN{}
	}
	if f == 0 {
		return float64(0)
	}
	return v
}

// Pair is a (key, value) tuple; entries iteration yields Pair{v, v}.
type Pair struct {
	Key   Value
	Value Value
}
