package gojabind

import (
	"github.com/dop251/goja"

	"github.com/wippyai/idl-bindings/buffer"
	"github.com/wippyai/idl-bindings/value"
)

// hostObject is the base wrapper around a script object. It implements
// value.Object; the capability wrappers below embed it and add one
// interface each, so the engine's type assertions discover exactly what
// the script object supports.
type hostObject struct {
	realm *Realm
	obj   *goja.Object
}

func (h *hostObject) gojaObject() *goja.Object {
	return h.obj
}

func (h *hostObject) Get(key string) value.Value {
	return h.realm.Value(h.obj.Get(key))
}

func (h *hostObject) Has(key string) bool {
	v := h.obj.Get(key)
	return v != nil && !goja.IsUndefined(v)
}

func (h *hostObject) OwnKeys() []string {
	return h.obj.Keys()
}

func (h *hostObject) Proto() value.Object {
	proto := h.obj.Prototype()
	if proto == nil {
		return nil
	}
	return h.realm.wrapObject(proto)
}

// hostFunc adds the callable capability.
type hostFunc struct {
	hostObject
	fn goja.Callable
}

func (h *hostFunc) Call(this value.Value, args ...value.Value) (value.Value, error) {
	jsArgs := make([]goja.Value, len(args))
	for i, a := range args {
		jsArgs[i] = h.realm.ToGoja(a)
	}
	res, err := h.fn(h.realm.ToGoja(this), jsArgs...)
	if err != nil {
		return value.Undefined(), err
	}
	return h.realm.Value(res), nil
}

// hostThenable adds the thenable capability.
type hostThenable struct {
	hostObject
	then goja.Callable
}

func (h *hostThenable) Then(onFulfilled, onRejected func(value.Value)) {
	realm := h.realm
	fulfill := realm.vm.ToValue(func(call goja.FunctionCall) goja.Value {
		if onFulfilled != nil {
			onFulfilled(realm.Value(call.Argument(0)))
		}
		return goja.Undefined()
	})
	reject := realm.vm.ToValue(func(call goja.FunctionCall) goja.Value {
		if onRejected != nil {
			onRejected(realm.Value(call.Argument(0)))
		}
		return goja.Undefined()
	})
	if _, err := h.then(h.obj, fulfill, reject); err != nil {
		if onRejected != nil {
			onRejected(errValue(realm, err))
		}
	}
}

// errValue maps a thrown error to the value it carried, when one is
// recoverable.
func errValue(r *Realm, err error) value.Value {
	if ex, ok := err.(*goja.Exception); ok {
		return r.Value(ex.Value())
	}
	return value.String(err.Error())
}

// hostIterable adds the iteration capability via the script's iterator
// protocol.
type hostIterable struct {
	hostObject
}

func (h *hostIterable) Iterator() value.Iterator {
	openFn, ok := goja.AssertFunction(h.obj.GetSymbol(goja.SymIterator))
	if !ok {
		return nil
	}
	res, err := openFn(h.obj)
	if err != nil {
		return &failedIterator{err: err}
	}
	iterObj, ok := res.(*goja.Object)
	if !ok {
		return &failedIterator{err: errNotIterator}
	}
	next, ok := goja.AssertFunction(iterObj.Get("next"))
	if !ok {
		return &failedIterator{err: errNotIterator}
	}
	return &hostIterator{realm: h.realm, obj: iterObj, next: next}
}

var errNotIterator = iteratorError("iterator protocol violation")

type iteratorError string

func (e iteratorError) Error() string { return string(e) }

type hostIterator struct {
	realm *Realm
	obj   *goja.Object
	next  goja.Callable
}

func (it *hostIterator) Next() (value.Value, bool, error) {
	res, err := it.next(it.obj)
	if err != nil {
		return value.Undefined(), false, err
	}
	step, ok := res.(*goja.Object)
	if !ok {
		return value.Undefined(), false, errNotIterator
	}
	if step.Get("done").ToBoolean() {
		return value.Undefined(), true, nil
	}
	return it.realm.Value(step.Get("value")), false, nil
}

// failedIterator reports a protocol failure on the first pull instead
// of at open time, matching how the engine consumes iterators.
type failedIterator struct {
	err error
}

func (it *failedIterator) Next() (value.Value, bool, error) {
	return value.Undefined(), false, it.err
}

// hostBuffer surfaces a script ArrayBuffer as a raw buffer resource.
type hostBuffer struct {
	hostObject
	buf *buffer.ArrayBuffer
}

func (h *hostBuffer) Buffer() *buffer.ArrayBuffer {
	return h.buf
}

// hostView surfaces a script typed array or DataView as a typed window.
type hostView struct {
	hostObject
	view *buffer.View
}

func (h *hostView) BufferView() *buffer.View {
	return h.view
}
