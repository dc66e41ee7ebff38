package value

import (
	"sort"
	"strconv"
)

// Object is the minimal host object surface the engine consumes. OwnKeys
// returns own enumerable string keys in property order: integer-index keys
// ascending first, then the remaining keys in insertion order.
type Object interface {
	// Get returns the property value, or undefined if absent.
	Get(key string) Value

	// Has reports whether the property exists, including inherited ones.
	Has(key string) bool

	// OwnKeys returns own enumerable keys in property order.
	OwnKeys() []string

	// Proto returns the prototype object, or nil at the end of the chain.
	Proto() Object
}

// Callable is an object that can be invoked.
type Callable interface {
	Object
	Call(this Value, args ...Value) (Value, error)
}

// Iterator yields values until done. A malformed step surfaces as an error.
type Iterator interface {
	Next() (v Value, done bool, err error)
}

// Iterable is an object exposing the iteration capability. Iterator may
// return nil for objects that turn out not to be iterable after all, which
// consumers treat the same as the capability being absent.
type Iterable interface {
	Object
	Iterator() Iterator
}

// Thenable is an object exposing promise-style settlement. Exactly one of
// the two callbacks is eventually invoked.
type Thenable interface {
	Object
	Then(onFulfilled, onRejected func(Value))
}

// Dict is an ordered string-keyed plain object. All properties are own and
// enumerable.
type Dict struct {
	props map[string]Value
	keys  []string
	proto Object
}

func NewDict() *Dict {
	return &Dict{props: make(map[string]Value)}
}

// Set defines or overwrites a property, preserving first-insertion order
// for existing keys. It returns the Dict for chaining.
func (d *Dict) Set(key string, v Value) *Dict {
	if _, ok := d.props[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.props[key] = v
	return d
}

// SetProto sets the prototype used for inherited lookups. Inherited
// properties never appear in OwnKeys.
func (d *Dict) SetProto(proto Object) *Dict {
	d.proto = proto
	return d
}

func (d *Dict) Get(key string) Value {
	if v, ok := d.props[key]; ok {
		return v
	}
	if d.proto != nil {
		return d.proto.Get(key)
	}
	return Undefined()
}

func (d *Dict) Has(key string) bool {
	if _, ok := d.props[key]; ok {
		return true
	}
	return d.proto != nil && d.proto.Has(key)
}

func (d *Dict) OwnKeys() []string {
	var indexed []string
	var named []string
	for _, k := range d.keys {
		if isIndexKey(k) {
			indexed = append(indexed, k)
		} else {
			named = append(named, k)
		}
	}
	sort.Slice(indexed, func(i, j int) bool {
		a, _ := strconv.ParseUint(indexed[i], 10, 64)
		b, _ := strconv.ParseUint(indexed[j], 10, 64)
		return a < b
	})
	return append(indexed, named...)
}

func (d *Dict) Proto() Object {
	return d.proto
}

// isIndexKey reports whether key is a canonical array index: no leading
// zeros, below 2^32-1.
func isIndexKey(key string) bool {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return false
	}
	n, err := strconv.ParseUint(key, 10, 64)
	return err == nil && n < 1<<32-1
}

// Array is an ordered, iterable list object.
type Array struct {
	elems []Value
}

func NewArray(elems ...Value) *Array {
	return &Array{elems: elems}
}

func (a *Array) Append(v Value) {
	a.elems = append(a.elems, v)
}

func (a *Array) Len() int {
	return len(a.elems)
}

func (a *Array) At(i int) Value {
	return a.elems[i]
}

func (a *Array) Get(key string) Value {
	if key == "length" {
		return Number(float64(len(a.elems)))
	}
	if i, err := strconv.Atoi(key); err == nil && i >= 0 && i < len(a.elems) {
		return a.elems[i]
	}
	return Undefined()
}

func (a *Array) Has(key string) bool {
	if key == "length" {
		return true
	}
	i, err := strconv.Atoi(key)
	return err == nil && i >= 0 && i < len(a.elems)
}

func (a *Array) OwnKeys() []string {
	keys := make([]string, len(a.elems))
	for i := range a.elems {
		keys[i] = strconv.Itoa(i)
	}
	return keys
}

func (a *Array) Proto() Object {
	return nil
}

func (a *Array) Iterator() Iterator {
	return &arrayIterator{arr: a}
}

type arrayIterator struct {
	arr   *Array
	index int
}

func (it *arrayIterator) Next() (Value, bool, error) {
	if it.index >= len(it.arr.elems) {
		return Undefined(), true, nil
	}
	v := it.arr.elems[it.index]
	it.index++
	return v, false, nil
}

// Func wraps a Go function as a callable object.
type Func struct {
	name string
	fn   func(this Value, args ...Value) (Value, error)
}

func NewFunc(name string, fn func(this Value, args ...Value) (Value, error)) *Func {
	return &Func{name: name, fn: fn}
}

func (f *Func) Name() string {
	return f.name
}

func (f *Func) Get(key string) Value {
	if key == "name" {
		return String(f.name)
	}
	return Undefined()
}

func (f *Func) Has(key string) bool {
	return key == "name"
}

func (f *Func) OwnKeys() []string {
	return nil
}

func (f *Func) Proto() Object {
	return nil
}

func (f *Func) Call(this Value, args ...Value) (Value, error) {
	return f.fn(this, args...)
}
