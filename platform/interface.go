package platform

import (
	"github.com/wippyai/idl-bindings/convert"
	"github.com/wippyai/idl-bindings/errors"
	"github.com/wippyai/idl-bindings/value"
)

// brand is the unforgeable identity token. Tokens are allocated only by
// NewInterface and compared by pointer, so no code outside this package
// can mint one or forge equality.
type brand struct {
	name string
}

// Interface describes a named platform interface: its prototype shape
// and the brand its instances carry.
type Interface struct {
	name     string
	brand    *brand
	proto    *Prototype
	iterable *PairIterable
}

// NewInterface registers a named interface. If proto is nil an empty
// prototype with the interface's name is created.
func NewInterface(name string, proto *Prototype) *Interface {
	if proto == nil {
		proto = NewPrototype(name, nil)
	}
	return &Interface{name: name, brand: &brand{name: name}, proto: proto}
}

func (i *Interface) Name() string {
	return i.name
}

func (i *Interface) Prototype() *Prototype {
	return i.proto
}

// Create manufactures a branded instance without routing through any
// externally reachable constructor.
func (i *Interface) Create() *Object {
	return &Object{iface: i, brand: i.brand, props: value.NewDict()}
}

// Constructor returns the externally reachable constructor, which
// unconditionally rejects: instances exist only via Create.
func (i *Interface) Constructor() value.Callable {
	name := i.name
	return value.NewFunc(name, func(this value.Value, args ...value.Value) (value.Value, error) {
		return value.Undefined(), errors.IllegalConstructor("Failed to construct '" + name + "'")
	})
}

// instance unwraps v when it is a branded instance of this interface.
func (i *Interface) instance(v value.Value) (*Object, bool) {
	if v.Kind() != value.KindObject {
		return nil, false
	}
	o, ok := v.Obj().(*Object)
	if !ok || o.brand != i.brand {
		return nil, false
	}
	if !protoChainContains(o.Proto(), i.proto) {
		return nil, false
	}
	return o, true
}

// Assert checks a method receiver. A wrong or foreign receiver fails
// with IllegalInvocation: receivers are a different failure family than
// arguments.
func (i *Interface) Assert(v value.Value, ctx convert.Context) (*Object, error) {
	o, ok := i.instance(v)
	if !ok {
		return nil, errors.IllegalInvocation(ctx.Prefix)
	}
	return o, nil
}

// As builds the argument converter for the interface: the input must
// both sit on the interface's prototype chain and carry its brand.
// Forged same-shaped objects are a wrong type, never a wrong state.
func As(iface *Interface) convert.Converter[*Object] {
	return func(v value.Value, ctx convert.Context) (*Object, error) {
		o, ok := iface.instance(v)
		if !ok {
			return nil, errors.TypeMismatch(ctx.Prefix, ctx.Label, "is not of type '"+iface.name+"'")
		}
		return o, nil
	}
}

func protoChainContains(p value.Object, target *Prototype) bool {
	for p != nil {
		if p == value.Object(target) {
			return true
		}
		p = p.Proto()
	}
	return false
}
