package convert

import (
	stderrors "errors"

	"github.com/wippyai/idl-bindings/convert/internal/numeric"
	"github.com/wippyai/idl-bindings/errors"
	"github.com/wippyai/idl-bindings/value"
)

// convertInt coerces and converts one integer value, returning the
// sign-extended bit pattern numeric.Convert produces.
func convertInt(v value.Value, ctx Context, bits uint, signed bool) (uint64, error) {
	x, err := value.ToNumber(v)
	if err != nil {
		return 0, notANumber(v, ctx)
	}

	mode := numeric.ModeWrap
	switch {
	case ctx.EnforceRange:
		mode = numeric.ModeEnforce
	case ctx.Clamp:
		mode = numeric.ModeClamp
	}

	raw, err := numeric.Convert(x, bits, signed, mode)
	if err != nil {
		if stderrors.Is(err, numeric.ErrNotFinite) {
			return 0, errors.NotFinite(ctx.Prefix, ctx.Label)
		}
		var oor *numeric.OutOfRangeError
		if stderrors.As(err, &oor) {
			return 0, errors.OutOfRange(ctx.Prefix, ctx.Label, oor.Lo, oor.Hi)
		}
		return 0, err
	}
	return raw, nil
}

func Int8() Converter[int8] {
	return func(v value.Value, ctx Context) (int8, error) {
		raw, err := convertInt(v, ctx, 8, true)
		return int8(raw), err
	}
}

func Int16() Converter[int16] {
	return func(v value.Value, ctx Context) (int16, error) {
		raw, err := convertInt(v, ctx, 16, true)
		return int16(raw), err
	}
}

func Int32() Converter[int32] {
	return func(v value.Value, ctx Context) (int32, error) {
		raw, err := convertInt(v, ctx, 32, true)
		return int32(raw), err
	}
}

func Int64() Converter[int64] {
	return func(v value.Value, ctx Context) (int64, error) {
		raw, err := convertInt(v, ctx, 64, true)
		return int64(raw), err
	}
}

func Uint8() Converter[uint8] {
	return func(v value.Value, ctx Context) (uint8, error) {
		raw, err := convertInt(v, ctx, 8, false)
		return uint8(raw), err
	}
}

func Uint16() Converter[uint16] {
	return func(v value.Value, ctx Context) (uint16, error) {
		raw, err := convertInt(v, ctx, 16, false)
		return uint16(raw), err
	}
}

func Uint32() Converter[uint32] {
	return func(v value.Value, ctx Context) (uint32, error) {
		raw, err := convertInt(v, ctx, 32, false)
		return uint32(raw), err
	}
}

func Uint64() Converter[uint64] {
	return func(v value.Value, ctx Context) (uint64, error) {
		return convertInt(v, ctx, 64, false)
	}
}
