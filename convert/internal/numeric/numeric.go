// Package numeric implements the integer conversion algorithm shared by
// the bit-width-tagged integer converters.
package numeric

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

// Mode selects what happens to out-of-range input.
type Mode uint8

const (
	ModeWrap Mode = iota
	ModeClamp
	ModeEnforce
)

// ErrNotFinite reports non-finite input where enforce-range demands a
// finite number.
var ErrNotFinite = errors.New("not a finite number")

// OutOfRangeError reports enforce-range input outside the type bounds.
type OutOfRangeError struct {
	Lo, Hi int64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("outside the range %d to %d", e.Lo, e.Hi)
}

// Bounds returns the inclusive bounds of an integer family. The 64-bit
// bounds degrade to the safe-integer range to avoid float inexactness.
func Bounds(bits uint, signed bool) (lo, hi int64) {
	if bits == 64 {
		if signed {
			return -(1<<53 - 1), 1<<53 - 1
		}
		return 0, 1<<53 - 1
	}
	if signed {
		return -(int64(1) << (bits - 1)), int64(1)<<(bits-1) - 1
	}
	return 0, int64(1)<<bits - 1
}

// Convert applies the integer conversion algorithm to an already-coerced
// number. The result is the two's-complement bit pattern restricted to the
// requested width; callers reinterpret it as signed or unsigned. Negative
// zero needs no explicit censoring: every path maps it to the zero pattern.
func Convert(x float64, bits uint, signed bool, mode Mode) (uint64, error) {
	lo, hi := Bounds(bits, signed)

	switch mode {
	case ModeEnforce:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, ErrNotFinite
		}
		t := math.Trunc(x)
		if t < float64(lo) || t > float64(hi) {
			return 0, &OutOfRangeError{Lo: lo, Hi: hi}
		}
		return uint64(int64(t)), nil

	case ModeClamp:
		if !math.IsNaN(x) {
			if x < float64(lo) {
				x = float64(lo)
			}
			if x > float64(hi) {
				x = float64(hi)
			}
			return uint64(int64(math.RoundToEven(x))), nil
		}
		// NaN falls through to the wrap path, which zeroes it.
	}

	if math.IsNaN(x) || math.IsInf(x, 0) || x == 0 {
		return 0, nil
	}
	t := math.Trunc(x)
	if t >= float64(lo) && t <= float64(hi) {
		return uint64(int64(t)), nil
	}
	return wrap(t, bits, signed), nil
}

// wrap reduces an integral float modulo 2^bits using exact large-integer
// arithmetic; for signed targets, residues at or above 2^(bits-1) fold
// down by 2^bits. Exactness matters for 64-bit wrap beyond the
// safe-integer range, where float modulo would drift.
func wrap(t float64, bits uint, signed bool) uint64 {
	bi, _ := big.NewFloat(t).Int(nil)
	mod := new(big.Int).Lsh(big.NewInt(1), bits)
	bi.Mod(bi, mod) // Euclidean: residue in [0, 2^bits)
	if signed {
		half := new(big.Int).Rsh(mod, 1)
		if bi.Cmp(half) >= 0 {
			bi.Sub(bi, mod)
		}
		return uint64(bi.Int64())
	}
	return bi.Uint64()
}
