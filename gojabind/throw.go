package gojabind

import (
	"github.com/dop251/goja"

	"github.com/wippyai/idl-bindings/convert"
	"github.com/wippyai/idl-bindings/errors"
)

// For resolves the realm a failure should be constructed against: the
// conversion context's alternate-realm override when it names one of
// ours, otherwise the ambient realm.
func For(ctx convert.Context, ambient *Realm) *Realm {
	if r, ok := ctx.Realm.(*Realm); ok && r != nil {
		return r
	}
	return ambient
}

// JSError builds the realm-correct script error for a conversion
// failure: range violations become RangeError, everything else
// TypeError. The rendered failure text carries over unchanged.
func JSError(r *Realm, err error) goja.Value {
	if errors.IsKind(err, errors.KindRangeViolation) {
		if ctor, ok := goja.AssertConstructor(r.vm.Get("RangeError")); ok {
			if inst, cerr := ctor(nil, r.vm.ToValue(err.Error())); cerr == nil {
				return inst
			}
		}
	}
	return r.vm.NewTypeError(err.Error())
}

// Throw panics with the script error for err, unwinding into the
// runtime as a thrown exception. Call only from code executing inside
// the runtime.
func Throw(r *Realm, err error) {
	panic(JSError(r, err))
}
