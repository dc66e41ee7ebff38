package platform

import (
	"github.com/wippyai/idl-bindings/convert"
	"github.com/wippyai/idl-bindings/value"
)

// Pair is one element of an iterable's backing sequence.
type Pair struct {
	Key   value.Value
	Value value.Value
}

type pairKind uint8

const (
	pairKeys pairKind = iota
	pairValues
	pairEntries
)

// PairIterable attaches the paired-iteration protocol to an interface.
// The backing sequence is supplied live by the pairs function; cursors
// observe growth and shrinkage between steps.
type PairIterable struct {
	iface *Interface
	pairs func(*Object) []Pair
}

// NewPairIterable binds the protocol to an interface. Instances of the
// interface become iterable (default iteration is entries).
func NewPairIterable(iface *Interface, pairs func(*Object) []Pair) *PairIterable {
	pi := &PairIterable{iface: iface, pairs: pairs}
	iface.iterable = pi
	return pi
}

// Cursor is per-call iteration state. It is not restartable: once the
// backing sequence is exhausted the cursor stays done even if the
// sequence grows afterwards.
type Cursor struct {
	it     *PairIterable
	target *Object
	kind   pairKind
	index  int
	done   bool
}

func (c *Cursor) Next() (value.Value, bool, error) {
	if c.done {
		return value.Undefined(), true, nil
	}
	pairs := c.it.pairs(c.target)
	if c.index >= len(pairs) {
		c.done = true
		return value.Undefined(), true, nil
	}
	p := pairs[c.index]
	c.index++
	switch c.kind {
	case pairKeys:
		return p.Key, false, nil
	case pairValues:
		return p.Value, false, nil
	default:
		return value.ObjectOf(value.NewArray(p.Key, p.Value)), false, nil
	}
}

func (it *PairIterable) cursor(target *Object, kind pairKind) *Cursor {
	return &Cursor{it: it, target: target, kind: kind}
}

// Entries returns a fresh cursor over [key, value] pairs. The receiver
// must be a branded instance of the iterable's interface.
func (it *PairIterable) Entries(recv value.Value, ctx convert.Context) (*Cursor, error) {
	return it.open(recv, ctx, pairEntries)
}

// Keys returns a fresh cursor over keys.
func (it *PairIterable) Keys(recv value.Value, ctx convert.Context) (*Cursor, error) {
	return it.open(recv, ctx, pairKeys)
}

// Values returns a fresh cursor over values.
func (it *PairIterable) Values(recv value.Value, ctx convert.Context) (*Cursor, error) {
	return it.open(recv, ctx, pairValues)
}

func (it *PairIterable) open(recv value.Value, ctx convert.Context, kind pairKind) (*Cursor, error) {
	target, err := it.iface.Assert(recv, ctx)
	if err != nil {
		return nil, err
	}
	return it.cursor(target, kind), nil
}

// ForEach eagerly visits every pair in backing order, invoking the
// callback with (value, key, target) and thisArg as receiver. It
// returns after the last pair; a callback error stops the walk.
func (it *PairIterable) ForEach(recv value.Value, callback value.Value, thisArg value.Value, ctx convert.Context) error {
	target, err := it.iface.Assert(recv, ctx)
	if err != nil {
		return err
	}
	fn, err := convert.Callback()(callback, ctx)
	if err != nil {
		return err
	}
	for _, p := range it.pairs(target) {
		if _, err := fn.Call(thisArg, p.Value, p.Key, value.ObjectOf(target)); err != nil {
			return err
		}
	}
	return nil
}

// Install composes the protocol onto the interface's prototype:
// entries, keys, values and forEach become callable members, and the
// shape is normalized afterwards.
func (it *PairIterable) Install() {
	proto := it.iface.proto
	prefix := func(op string) string {
		return "Failed to execute '" + op + "' on '" + it.iface.name + "'"
	}

	open := func(op string, kind pairKind) *value.Func {
		return value.NewFunc(op, func(this value.Value, args ...value.Value) (value.Value, error) {
			c, err := it.open(this, convert.Context{Prefix: prefix(op)}, kind)
			if err != nil {
				return value.Undefined(), err
			}
			return value.ObjectOf(&iterObject{cursor: c}), nil
		})
	}
	proto.DefineMethod(open("entries", pairEntries))
	proto.DefineMethod(open("keys", pairKeys))
	proto.DefineMethod(open("values", pairValues))
	proto.DefineMethod(value.NewFunc("forEach", func(this value.Value, args ...value.Value) (value.Value, error) {
		ctx := convert.Context{Prefix: prefix("forEach"), Label: "Parameter 1"}
		if err := convert.RequireArgs(len(args), 1, ctx.Prefix); err != nil {
			return value.Undefined(), err
		}
		thisArg := value.Undefined()
		if len(args) > 1 {
			thisArg = args[1]
		}
		return value.Undefined(), it.ForEach(this, args[0], thisArg, ctx)
	}))
	NormalizeShape(proto)
}

// iterObject exposes a cursor as a dynamic iterator object. Its
// iteration capability always hands back the same cursor, so the
// object cannot be restarted.
type iterObject struct {
	cursor *Cursor
}

func (o *iterObject) Get(key string) value.Value { return value.Undefined() }
func (o *iterObject) Has(key string) bool        { return false }
func (o *iterObject) OwnKeys() []string          { return nil }
func (o *iterObject) Proto() value.Object        { return nil }

func (o *iterObject) Iterator() value.Iterator {
	return o.cursor
}
