package convert

import (
	"math"

	"github.com/wippyai/idl-bindings/errors"
	"github.com/wippyai/idl-bindings/value"
)

// toFloat coerces the value, failing on kinds that never convert.
func toFloat(v value.Value, ctx Context) (float64, error) {
	x, err := value.ToNumber(v)
	if err != nil {
		return 0, notANumber(v, ctx)
	}
	return x, nil
}

// Float64 requires a finite double-precision value. Signed zero is
// preserved.
func Float64() Converter[float64] {
	return func(v value.Value, ctx Context) (float64, error) {
		x, err := toFloat(v, ctx)
		if err != nil {
			return 0, err
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, errors.NotFinite(ctx.Prefix, ctx.Label)
		}
		return x, nil
	}
}

// UnrestrictedFloat64 passes NaN and the infinities through unchanged.
func UnrestrictedFloat64() Converter[float64] {
	return func(v value.Value, ctx Context) (float64, error) {
		return toFloat(v, ctx)
	}
}

// Float32 requires a finite value and rounds it to the nearest
// representable single-precision one, failing if the rounding itself
// produces a non-finite result.
func Float32() Converter[float32] {
	return func(v value.Value, ctx Context) (float32, error) {
		x, err := toFloat(v, ctx)
		if err != nil {
			return 0, err
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, errors.NotFinite(ctx.Prefix, ctx.Label)
		}
		y := float32(x)
		if math.IsInf(float64(y), 0) {
			return 0, errors.Conversion(errors.KindRangeViolation, ctx.Prefix, ctx.Label,
				"is outside the range of a single-precision floating-point value")
		}
		return y, nil
	}
}

// UnrestrictedFloat32 rounds to single precision without the finiteness
// requirements.
func UnrestrictedFloat32() Converter[float32] {
	return func(v value.Value, ctx Context) (float32, error) {
		x, err := toFloat(v, ctx)
		if err != nil {
			return 0, err
		}
		return float32(x), nil
	}
}
