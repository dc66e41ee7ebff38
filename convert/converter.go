package convert

import (
	"github.com/wippyai/idl-bindings/errors"
	"github.com/wippyai/idl-bindings/value"
)

// Converter converts a dynamic value into a typed one. Converters are pure
// functions of (value, context); configuration is closed over at
// construction time and never mutated.
type Converter[T any] func(v value.Value, ctx Context) (T, error)

// Erase adapts a typed converter for heterogeneous composition, such as
// dictionary member lists.
func Erase[T any](conv Converter[T]) Converter[any] {
	return func(v value.Value, ctx Context) (any, error) {
		out, err := conv(v, ctx)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}

// Any passes the value through unconverted.
func Any() Converter[value.Value] {
	return func(v value.Value, _ Context) (value.Value, error) {
		return v, nil
	}
}

// Bool applies the host truthiness coercion; it never fails.
func Bool() Converter[bool] {
	return func(v value.Value, _ Context) (bool, error) {
		return value.ToBoolean(v), nil
	}
}

// Object requires any object value.
func Object() Converter[value.Object] {
	return func(v value.Value, ctx Context) (value.Object, error) {
		if v.Kind() != value.KindObject {
			return nil, errors.TypeMismatch(ctx.Prefix, ctx.Label, "is not an object")
		}
		return v.Obj(), nil
	}
}

// Callback requires a callable object.
func Callback() Converter[value.Callable] {
	return func(v value.Value, ctx Context) (value.Callable, error) {
		if v.Kind() == value.KindObject {
			if fn, ok := v.Obj().(value.Callable); ok {
				return fn, nil
			}
		}
		return nil, errors.TypeMismatch(ctx.Prefix, ctx.Label, "is not a function")
	}
}

// notANumber renders the type-mismatch failure for values whose kind never
// coerces to a number.
func notANumber(v value.Value, ctx Context) error {
	return errors.TypeMismatch(ctx.Prefix, ctx.Label,
		"is a "+v.Kind().String()+", which cannot be converted to a number")
}
