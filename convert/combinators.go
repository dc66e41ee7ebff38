package convert

import (
	"github.com/wippyai/idl-bindings/errors"
	"github.com/wippyai/idl-bindings/value"
)

// Nullable short-circuits null and undefined to a nil result; anything
// else delegates to the inner converter.
func Nullable[T any](conv Converter[T]) Converter[*T] {
	return func(v value.Value, ctx Context) (*T, error) {
		if v.IsNullish() {
			return nil, nil
		}
		out, err := conv(v, ctx)
		if err != nil {
			return nil, err
		}
		return &out, nil
	}
}

// Sequence drains an iterable input, converting each element. A missing
// iteration capability or a malformed iteration step is a type mismatch.
func Sequence[T any](conv Converter[T]) Converter[[]T] {
	return func(v value.Value, ctx Context) ([]T, error) {
		if v.Kind() != value.KindObject {
			return nil, errors.TypeMismatch(ctx.Prefix, ctx.Label, "can not be converted to a sequence")
		}
		iterable, ok := v.Obj().(value.Iterable)
		if !ok {
			return nil, errors.TypeMismatch(ctx.Prefix, ctx.Label, "is not iterable")
		}
		it := iterable.Iterator()
		if it == nil {
			return nil, errors.TypeMismatch(ctx.Prefix, ctx.Label, "is not iterable")
		}

		var out []T
		for i := 0; ; i++ {
			elem, done, err := it.Next()
			if err != nil {
				return nil, errors.TypeMismatch(ctx.Prefix, ctx.Label, "is not iterable")
			}
			if done {
				return out, nil
			}
			item, err := conv(elem, ctx.atIndex(i))
			if err != nil {
				return nil, err
			}
			out = append(out, item)
		}
	}
}

// Record is an ordered key→value mapping built from an object's own
// enumerable properties.
type Record[T any] struct {
	keys    []string
	entries map[string]T
}

func (r *Record[T]) Len() int {
	return len(r.keys)
}

// Keys returns the keys in entry order.
func (r *Record[T]) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

func (r *Record[T]) Get(key string) (T, bool) {
	v, ok := r.entries[key]
	return v, ok
}

// Each visits entries in order until fn returns false.
func (r *Record[T]) Each(fn func(key string, v T) bool) {
	for _, k := range r.keys {
		if !fn(k, r.entries[k]) {
			return
		}
	}
}

func (r *Record[T]) set(key string, v T) {
	if _, ok := r.entries[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.entries[key] = v
}

// RecordOf converts an object's own enumerable properties in property
// order, converting key and value independently. Inherited and
// non-enumerable properties never appear.
func RecordOf[T any](keyConv Converter[string], valConv Converter[T]) Converter[*Record[T]] {
	return func(v value.Value, ctx Context) (*Record[T], error) {
		if v.Kind() != value.KindObject {
			return nil, errors.TypeMismatch(ctx.Prefix, ctx.Label, "can not be converted to a record")
		}
		obj := v.Obj()
		out := &Record[T]{entries: make(map[string]T)}
		for _, key := range obj.OwnKeys() {
			k, err := keyConv(value.String(key), ctx)
			if err != nil {
				return nil, err
			}
			item, err := valConv(obj.Get(key), ctx)
			if err != nil {
				return nil, err
			}
			out.set(k, item)
		}
		return out, nil
	}
}
