package convert

import (
	"github.com/wippyai/idl-bindings/errors"
	"github.com/wippyai/idl-bindings/value"
)

// RequireArgs checks a call-site argument count against the operation's
// minimum before any per-argument conversion runs.
func RequireArgs(present, required int, prefix string) error {
	if present >= required {
		return nil
	}
	return errors.MissingArguments(prefix, required, present)
}

// Invoke calls a host callback and converts its return value. A call
// error propagates as-is; a return-conversion failure reports under
// the invocation context.
func Invoke[T any](fn value.Callable, this value.Value, ret Converter[T], ctx Context, args ...value.Value) (T, error) {
	var zero T
	res, err := fn.Call(this, args...)
	if err != nil {
		return zero, err
	}
	return ret(res, ctx)
}

// InvokeAsync calls a host callback and lifts the outcome into a
// promise: a synchronous call error or return-conversion failure
// rejects, a thenable return settles the promise when it does.
func InvokeAsync[T any](fn value.Callable, this value.Value, ret Converter[T], ctx Context, args ...value.Value) *Promise[T] {
	res, err := fn.Call(this, args...)
	if err != nil {
		return RejectedPromise[T](ctx, err)
	}
	return PromiseOf(ret)(res, ctx)
}
