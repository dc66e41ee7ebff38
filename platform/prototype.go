package platform

import "github.com/wippyai/idl-bindings/value"

// Member is one prototype slot: either a data member (Value) or an
// accessor (Get/Set). The attribute flags describe how the member
// presents externally.
type Member struct {
	Value value.Value
	Get   value.Callable
	Set   value.Callable

	Enumerable   bool
	Writable     bool
	Configurable bool
}

// IsAccessor reports whether the member is accessor-shaped.
func (m Member) IsAccessor() bool {
	return m.Get != nil || m.Set != nil
}

// Prototype is an ordered member shape shared by every instance of an
// interface. Lookup falls through to the parent prototype.
type Prototype struct {
	name    string
	parent  *Prototype
	order   []string
	members map[string]Member
}

func NewPrototype(name string, parent *Prototype) *Prototype {
	return &Prototype{name: name, parent: parent, members: make(map[string]Member)}
}

func (p *Prototype) Name() string {
	return p.name
}

// Define adds or replaces a member, keeping first-definition order.
func (p *Prototype) Define(key string, m Member) *Prototype {
	if _, ok := p.members[key]; !ok {
		p.order = append(p.order, key)
	}
	p.members[key] = m
	return p
}

// DefineMethod adds a callable data member under the function's name.
func (p *Prototype) DefineMethod(fn *value.Func) *Prototype {
	return p.Define(fn.Name(), Member{Value: value.ObjectOf(fn)})
}

// Member returns the own member descriptor for key.
func (p *Prototype) Member(key string) (Member, bool) {
	m, ok := p.members[key]
	return m, ok
}

func (p *Prototype) Get(key string) value.Value {
	if m, ok := p.members[key]; ok {
		if m.IsAccessor() {
			return value.Undefined()
		}
		return m.Value
	}
	if p.parent != nil {
		return p.parent.Get(key)
	}
	return value.Undefined()
}

func (p *Prototype) Has(key string) bool {
	if _, ok := p.members[key]; ok {
		return true
	}
	return p.parent != nil && p.parent.Has(key)
}

func (p *Prototype) OwnKeys() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

func (p *Prototype) Proto() value.Object {
	if p.parent == nil {
		return nil
	}
	return p.parent
}

// NormalizeShape makes an internally defined shape present as an
// ordinary external object: callable data members become
// enumerable+writable+configurable, accessors enumerable+configurable.
// Plain data members are left as defined.
func NormalizeShape(p *Prototype) {
	for _, key := range p.order {
		m := p.members[key]
		switch {
		case m.IsAccessor():
			m.Enumerable = true
			m.Configurable = true
		case isCallable(m.Value):
			m.Enumerable = true
			m.Writable = true
			m.Configurable = true
		default:
			continue
		}
		p.members[key] = m
	}
}

func isCallable(v value.Value) bool {
	if v.Kind() != value.KindObject {
		return false
	}
	_, ok := v.Obj().(value.Callable)
	return ok
}
