package platform

import "github.com/wippyai/idl-bindings/value"

// Object is a branded platform instance. It behaves as an ordinary
// dynamic object (own properties, prototype lookup) but carries its
// interface's brand in an unexported field, so identity survives any
// amount of visible reshaping and cannot be replicated externally.
type Object struct {
	iface *Interface
	brand *brand
	props *value.Dict

	// Native holds the Go-side state behind the instance.
	Native any
}

// Interface returns the interface this instance belongs to.
func (o *Object) Interface() *Interface {
	return o.iface
}

// Set defines an own data property.
func (o *Object) Set(key string, v value.Value) *Object {
	o.props.Set(key, v)
	return o
}

func (o *Object) Get(key string) value.Value {
	if o.props.Has(key) {
		return o.props.Get(key)
	}
	if p := o.Proto(); p != nil {
		return p.Get(key)
	}
	return value.Undefined()
}

func (o *Object) Has(key string) bool {
	if o.props.Has(key) {
		return true
	}
	p := o.Proto()
	return p != nil && p.Has(key)
}

func (o *Object) OwnKeys() []string {
	return o.props.OwnKeys()
}

func (o *Object) Proto() value.Object {
	return o.iface.proto
}

// Iterator returns the instance's default iteration, entries order,
// when the interface carries a paired-iterable protocol. nil otherwise.
func (o *Object) Iterator() value.Iterator {
	if o.iface.iterable == nil {
		return nil
	}
	return o.iface.iterable.cursor(o, pairEntries)
}
