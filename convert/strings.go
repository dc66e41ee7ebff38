package convert

import (
	"github.com/wippyai/idl-bindings/errors"
	"github.com/wippyai/idl-bindings/value"
	"github.com/wippyai/idl-bindings/internal/wtf8"
)

// String applies the host string coercion. Null becomes the empty string
// only when the context says so; symbols always fail.
func String() Converter[string] {
	return func(v value.Value, ctx Context) (string, error) {
		if v.Kind() == value.KindSymbol {
			return "", errors.TypeMismatch(ctx.Prefix, ctx.Label,
				"is a symbol, which cannot be converted to a string")
		}
		if v.Kind() == value.KindNull && ctx.TreatNullAsEmptyString {
			return "", nil
		}
		s, err := value.ToString(v)
		if err != nil {
			return "", errors.TypeMismatch(ctx.Prefix, ctx.Label, "cannot be converted to a string")
		}
		return s, nil
	}
}

// ByteString is String restricted to code points at or below 255.
func ByteString() Converter[string] {
	str := String()
	return func(v value.Value, ctx Context) (string, error) {
		s, err := str(v, ctx)
		if err != nil {
			return "", err
		}
		for i := 0; i < len(s); {
			r, size := wtf8.DecodeRune(s[i:])
			if r > 0xFF {
				return "", errors.TypeMismatch(ctx.Prefix, ctx.Label, "is not a valid ByteString")
			}
			i += size
		}
		return s, nil
	}
}

// ScalarValueString is String with every unpaired surrogate code unit
// replaced one-for-one by U+FFFD; valid surrogate pairs combine into their
// supplementary code point and pass through unchanged.
func ScalarValueString() Converter[string] {
	str := String()
	return func(v value.Value, ctx Context) (string, error) {
		s, err := str(v, ctx)
		if err != nil {
			return "", err
		}
		return wtf8.ToScalar(s), nil
	}
}
