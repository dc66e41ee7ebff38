package buffer

import (
	"github.com/wippyai/idl-bindings/convert"
	"github.com/wippyai/idl-bindings/errors"
	"github.com/wippyai/idl-bindings/value"
)

// Validate applies the shared/detached rules to a raw buffer: shared
// stores are rejected unless the context allows them, detached stores
// are always rejected.
func Validate(b *ArrayBuffer, ctx convert.Context) error {
	if b.Shared() && !ctx.AllowShared {
		return errors.Shared(ctx.Prefix, ctx.Label)
	}
	if b.Detached() {
		return errors.Detached(ctx.Prefix, ctx.Label)
	}
	return nil
}

func provided(v value.Value) (Provider, bool) {
	if v.Kind() != value.KindObject {
		return nil, false
	}
	p, ok := v.Obj().(Provider)
	return p, ok
}

func viewProvided(v value.Value) (ViewProvider, bool) {
	if v.Kind() != value.KindObject {
		return nil, false
	}
	p, ok := v.Obj().(ViewProvider)
	return p, ok
}

// Raw converts an input surfacing a raw buffer resource, applying the
// shared/detached rules.
func Raw() convert.Converter[*ArrayBuffer] {
	return func(v value.Value, ctx convert.Context) (*ArrayBuffer, error) {
		p, ok := provided(v)
		if !ok {
			return nil, errors.TypeMismatch(ctx.Prefix, ctx.Label, "is not an ArrayBuffer")
		}
		b := p.Buffer()
		if err := Validate(b, ctx); err != nil {
			return nil, err
		}
		return b, nil
	}
}

// TypedView converts an input surfacing a view whose unforgeable
// element tag matches elem, then validates its backing buffer.
func TypedView(elem ElementType) convert.Converter[*View] {
	return func(v value.Value, ctx convert.Context) (*View, error) {
		p, ok := viewProvided(v)
		if !ok {
			return nil, errors.TypeMismatch(ctx.Prefix, ctx.Label, "is not a "+elem.String())
		}
		view := p.BufferView()
		if view.Elem() != elem {
			return nil, errors.TypeMismatch(ctx.Prefix, ctx.Label, "is not a "+elem.String())
		}
		if err := Validate(view.Buffer(), ctx); err != nil {
			return nil, err
		}
		return view, nil
	}
}

// AnyView converts an input surfacing any typed view, regardless of
// element tag.
func AnyView() convert.Converter[*View] {
	return func(v value.Value, ctx convert.Context) (*View, error) {
		p, ok := viewProvided(v)
		if !ok {
			return nil, errors.TypeMismatch(ctx.Prefix, ctx.Label, "is not a view on an ArrayBuffer")
		}
		view := p.BufferView()
		if err := Validate(view.Buffer(), ctx); err != nil {
			return nil, err
		}
		return view, nil
	}
}

// Bytes converts any buffer source, raw buffer or view, to its live
// byte window.
func Bytes() convert.Converter[[]byte] {
	return func(v value.Value, ctx convert.Context) ([]byte, error) {
		if p, ok := viewProvided(v); ok {
			view := p.BufferView()
			if err := Validate(view.Buffer(), ctx); err != nil {
				return nil, err
			}
			return view.Bytes(), nil
		}
		if p, ok := provided(v); ok {
			b := p.Buffer()
			if err := Validate(b, ctx); err != nil {
				return nil, err
			}
			return b.Bytes(), nil
		}
		return nil, errors.TypeMismatch(ctx.Prefix, ctx.Label, "is not an ArrayBuffer or a view on one")
	}
}
