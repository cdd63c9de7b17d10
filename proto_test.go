package ladybird_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xNaCly/ladybird"
	"github.com/xNaCly/ladybird/value"
)

func TestPrototype_KeysValuesIdentity(t *testing.T) {
	p := ladybird.DefaultPrototype()

	t.Run("keys, values and @@iterator are one function object", func(t *testing.T) {
		assert.Same(t, p.Values, p.Keys())
		assert.Same(t, p.Values, p.Iterator())
	})

	t.Run("lookup resolves all three names to it", func(t *testing.T) {
		for _, name := range []string{"keys", "values", ladybird.SymbolIterator} {
			fn, found := p.Lookup(name)
			require.True(t, found, name)
			assert.Same(t, p.Values, fn, name)
		}
	})

	t.Run("a fresh prototype has its own identity", func(t *testing.T) {
		other := ladybird.NewPrototype()
		assert.NotSame(t, p.Values, other.Values)
		assert.Same(t, other.Values, other.Keys())
	})
}

func TestPrototype_ReceiverCheck(t *testing.T) {
	p := ladybird.DefaultPrototype()

	callables := map[string]*value.Callable{
		"add":      p.Add,
		"clear":    p.Clear,
		"delete":   p.Delete,
		"entries":  p.Entries,
		"forEach":  p.ForEach,
		"has":      p.Has,
		"values":   p.Values,
		"get size": p.SizeGetter,
	}

	for name, fn := range callables {
		fn := fn
		t.Run(name+" rejects a receiver without a store", func(t *testing.T) {
			_, err := fn.Call(value.NewObject())
			assert.ErrorIs(t, err, ladybird.ErrWrongReceiverType)

			_, err = fn.Call(value.Undefined)
			assert.ErrorIs(t, err, ladybird.ErrWrongReceiverType)
		})
	}
}

func TestPrototype_Methods(t *testing.T) {
	p := ladybird.DefaultPrototype()

	t.Run("add returns the receiver and normalizes negative zero", func(t *testing.T) {
		s := ladybird.New()

		got, err := p.Add.Call(s, value.NegativeZero())
		require.NoError(t, err)
		assert.Same(t, s, got)
		assert.True(t, s.Has(float64(0)))
	})

	t.Run("delete returns whether the value was present", func(t *testing.T) {
		s := ladybird.NewFromItems("foo")

		got, err := p.Delete.Call(s, "foo")
		require.NoError(t, err)
		assert.Equal(t, value.Value(true), got)

		got, err = p.Delete.Call(s, "foo")
		require.NoError(t, err)
		assert.Equal(t, value.Value(false), got)
	})

	t.Run("has returns a boolean", func(t *testing.T) {
		s := ladybird.NewFromItems("foo")

		got, err := p.Has.Call(s, "foo")
		require.NoError(t, err)
		assert.Equal(t, value.Value(true), got)

		got, err = p.Has.Call(s, "bar")
		require.NoError(t, err)
		assert.Equal(t, value.Value(false), got)
	})

	t.Run("missing argument reads as undefined", func(t *testing.T) {
		s := ladybird.New()

		got, err := p.Has.Call(s)
		require.NoError(t, err)
		assert.Equal(t, value.Value(false), got)

		_, err = p.Add.Call(s)
		require.NoError(t, err)
		assert.True(t, s.Has(value.Undefined))
	})

	t.Run("clear empties and yields undefined", func(t *testing.T) {
		s := ladybird.NewFromItems("foo", "bar")

		got, err := p.Clear.Call(s)
		require.NoError(t, err)
		assert.True(t, value.IsUndefined(got))
		assert.Equal(t, 0, s.Len())
	})

	t.Run("size getter yields cardinality as a number", func(t *testing.T) {
		s := ladybird.NewFromItems(1.0, 2.0, 3.0)

		got, err := p.SizeGetter.Call(s)
		require.NoError(t, err)
		assert.Equal(t, value.Value(3.0), got)
	})

	t.Run("forEach rejects a non-callable callback", func(t *testing.T) {
		s := ladybird.New()

		_, err := p.ForEach.Call(s, "nope")
		assert.ErrorIs(t, err, ladybird.ErrNotAFunction)

		_, err = p.ForEach.Call(s)
		assert.ErrorIs(t, err, ladybird.ErrNotAFunction)
	})

	t.Run("forEach passes thisArg as receiver", func(t *testing.T) {
		s := ladybird.NewFromItems(1.0)

		cb := value.NewCallable("cb", func(recv value.Value, args []value.Value) (value.Value, error) {
			assert.Equal(t, value.Value("ctx"), recv)
			return value.Undefined, nil
		})

		got, err := p.ForEach.Call(s, cb, "ctx")
		require.NoError(t, err)
		assert.True(t, value.IsUndefined(got))
	})

	t.Run("forEach receiver check precedes callback check", func(t *testing.T) {
		_, err := p.ForEach.Call(value.Undefined, "nope")
		assert.ErrorIs(t, err, ladybird.ErrWrongReceiverType)
	})
}
