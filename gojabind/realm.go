package gojabind

import (
	"math/big"

	"github.com/dop251/goja"

	idl "github.com/wippyai/idl-bindings"
	"github.com/wippyai/idl-bindings/buffer"
	"github.com/wippyai/idl-bindings/value"
)

// Realm adapts a goja runtime as a dynamic-value host: it classifies
// script values into the engine's tagged value model and owns the task
// queue asynchronous continuations run on.
//
// A Realm is bound to one runtime and, like the runtime itself, is not
// safe for concurrent use.
type Realm struct {
	vm    *goja.Runtime
	tasks *idl.TaskQueue

	// symbols keeps the script identity of symbols that crossed the
	// boundary, so they round-trip instead of being re-minted.
	symbols map[*value.Symbol]*goja.Symbol
}

// NewRealm wraps a runtime. A nil runtime gets a fresh one.
func NewRealm(vm *goja.Runtime) *Realm {
	if vm == nil {
		vm = goja.New()
	}
	return &Realm{
		vm:      vm,
		tasks:   idl.NewTaskQueue(),
		symbols: make(map[*value.Symbol]*goja.Symbol),
	}
}

// Runtime returns the underlying goja runtime.
func (r *Realm) Runtime() *goja.Runtime {
	return r.vm
}

// Queue implements idl.Realm.
func (r *Realm) Queue() idl.JobQueue {
	return r.tasks
}

// Drain runs all pending continuations and returns how many ran.
func (r *Realm) Drain() int {
	return r.tasks.Drain()
}

// Value classifies a script value into the engine's value model.
// Objects are wrapped with exactly the capabilities they exhibit:
// callables become value.Callable, thenables value.Thenable, iterables
// value.Iterable, and binary resources surface the buffer package's
// provider capabilities with their unforgeable element tags.
func (r *Realm) Value(v goja.Value) value.Value {
	if v == nil || goja.IsUndefined(v) {
		return value.Undefined()
	}
	if goja.IsNull(v) {
		return value.Null()
	}
	if sym, ok := v.(*goja.Symbol); ok {
		return value.SymbolOf(r.internSymbol(sym))
	}
	if obj, ok := v.(*goja.Object); ok {
		return value.ObjectOf(r.wrapObject(obj))
	}
	switch exported := v.Export().(type) {
	case bool:
		return value.Boolean(exported)
	case int64:
		return value.Number(float64(exported))
	case float64:
		return value.Number(exported)
	case string:
		return value.String(exported)
	case *big.Int:
		return value.BigInt(exported)
	default:
		// Remaining primitives stringify; goja does not produce others
		// for non-object values.
		return value.String(v.String())
	}
}

func (r *Realm) internSymbol(sym *goja.Symbol) *value.Symbol {
	for token, s := range r.symbols {
		if s == sym {
			return token
		}
	}
	token := value.NewSymbol(sym.String())
	r.symbols[token] = sym
	return token
}

// wrapObject picks the most capable wrapper the object supports. The
// choice is made once at the boundary; later shape changes on the
// script side do not re-classify the wrapper.
func (r *Realm) wrapObject(obj *goja.Object) value.Object {
	if ab, ok := obj.Export().(goja.ArrayBuffer); ok {
		return &hostBuffer{hostObject: hostObject{realm: r, obj: obj}, buf: importArrayBuffer(ab)}
	}
	if view, ok := r.importView(obj); ok {
		return &hostView{hostObject: hostObject{realm: r, obj: obj}, view: view}
	}
	if fn, ok := goja.AssertFunction(obj); ok {
		return &hostFunc{hostObject: hostObject{realm: r, obj: obj}, fn: fn}
	}
	if then, ok := goja.AssertFunction(obj.Get("then")); ok {
		return &hostThenable{hostObject: hostObject{realm: r, obj: obj}, then: then}
	}
	if _, ok := goja.AssertFunction(obj.GetSymbol(goja.SymIterator)); ok {
		return &hostIterable{hostObject: hostObject{realm: r, obj: obj}}
	}
	return &hostObject{realm: r, obj: obj}
}

func importArrayBuffer(ab goja.ArrayBuffer) *buffer.ArrayBuffer {
	if ab.Detached() {
		return buffer.NewDetached()
	}
	return buffer.FromBytes(ab.Bytes())
}

// importView reconstructs a typed window from a script view object. The
// element tag comes from the object's internal class, which scripts
// cannot reassign, keeping the tag unforgeable.
func (r *Realm) importView(obj *goja.Object) (*buffer.View, bool) {
	elem, ok := buffer.ElementTypeByName(obj.ClassName())
	if !ok {
		return nil, false
	}
	bufVal := obj.Get("buffer")
	if bufVal == nil {
		return nil, false
	}
	ab, ok := bufVal.Export().(goja.ArrayBuffer)
	if !ok {
		return nil, false
	}
	backing := importArrayBuffer(ab)
	offset := int(obj.Get("byteOffset").ToInteger())
	var length int
	if elem == buffer.DataView {
		length = int(obj.Get("byteLength").ToInteger())
	} else {
		length = int(obj.Get("length").ToInteger())
	}
	view, err := buffer.NewView(backing, elem, offset, length)
	if err != nil {
		return nil, false
	}
	return view, true
}

// ToGoja maps an engine value back into the realm's runtime.
func (r *Realm) ToGoja(v value.Value) goja.Value {
	switch v.Kind() {
	case value.KindUndefined:
		return goja.Undefined()
	case value.KindNull:
		return goja.Null()
	case value.KindBoolean:
		return r.vm.ToValue(v.Bool())
	case value.KindNumber:
		return r.vm.ToValue(v.Num())
	case value.KindString:
		return r.vm.ToValue(v.Str())
	case value.KindBigInt:
		return r.vm.ToValue(v.Big())
	case value.KindSymbol:
		if sym, ok := r.symbols[v.Sym()]; ok {
			return sym
		}
		return goja.NewSymbol(v.Sym().Description())
	default:
		if h, ok := v.Obj().(interface{ gojaObject() *goja.Object }); ok {
			return h.gojaObject()
		}
		// Engine-native objects cross as plain exports of their
		// visible properties.
		return r.exportObject(v.Obj())
	}
}

func (r *Realm) exportObject(o value.Object) goja.Value {
	out := r.vm.NewObject()
	for _, key := range o.OwnKeys() {
		_ = out.Set(key, r.ToGoja(o.Get(key)))
	}
	return out
}
