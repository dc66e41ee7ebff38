package value

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Safe integer bounds of the host numeric model.
const (
	MaxSafeInteger = 1<<53 - 1
	MinSafeInteger = -MaxSafeInteger
)

// Coercion failures for the two kinds that never coerce.
var (
	ErrSymbolCoercion = errors.New("cannot coerce a symbol")
	ErrBigIntCoercion = errors.New("cannot coerce a bigint to a number")
)

// NumberConvertible is implemented by objects that expose a primitive
// numeric form. Objects without it coerce to NaN.
type NumberConvertible interface {
	ToNumber() float64
}

// StringConvertible is implemented by objects that expose a primitive
// string form. Objects without it stringify as "[object Object]".
type StringConvertible interface {
	ToString() string
}

// ToNumber applies the host numeric coercion.
func ToNumber(v Value) (float64, error) {
	switch v.Kind() {
	case KindUndefined:
		return math.NaN(), nil
	case KindNull:
		return 0, nil
	case KindBoolean:
		if v.Bool() {
			return 1, nil
		}
		return 0, nil
	case KindNumber:
		return v.Num(), nil
	case KindString:
		return StringToNumber(v.Str()), nil
	case KindSymbol:
		return 0, ErrSymbolCoercion
	case KindBigInt:
		return 0, ErrBigIntCoercion
	default:
		if n, ok := v.Obj().(NumberConvertible); ok {
			return n.ToNumber(), nil
		}
		return math.NaN(), nil
	}
}

// ToString applies the host string coercion.
func ToString(v Value) (string, error) {
	switch v.Kind() {
	case KindUndefined:
		return "undefined", nil
	case KindNull:
		return "null", nil
	case KindBoolean:
		if v.Bool() {
			return "true", nil
		}
		return "false", nil
	case KindNumber:
		return FormatNumber(v.Num()), nil
	case KindString:
		return v.Str(), nil
	case KindSymbol:
		return "", ErrSymbolCoercion
	case KindBigInt:
		return v.Big().String(), nil
	default:
		if s, ok := v.Obj().(StringConvertible); ok {
			return s.ToString(), nil
		}
		if f, ok := v.Obj().(*Func); ok {
			return "function " + f.Name() + "() { [native code] }", nil
		}
		return "[object Object]", nil
	}
}

// ToBoolean applies the host truthiness coercion; it never fails.
func ToBoolean(v Value) bool {
	switch v.Kind() {
	case KindUndefined, KindNull:
		return false
	case KindBoolean:
		return v.Bool()
	case KindNumber:
		return v.Num() != 0 && !math.IsNaN(v.Num())
	case KindString:
		return v.Str() != ""
	case KindBigInt:
		return v.Big().Sign() != 0
	default:
		return true
	}
}

// FormatNumber renders a number the way the host stringifies it: plain
// notation inside [1e-6, 1e21), exponent notation with a bare exponent
// outside, NaN and signed infinities by name, and both zeros as "0".
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		return trimExponent(s)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// trimExponent strips the zero padding Go adds to exponents: "1e+21" stays,
// "1.5e-07" becomes "1.5e-7".
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 {
		return s
	}
	mant, exp := s[:i], s[i+1:]
	sign := ""
	if len(exp) > 0 && (exp[0] == '+' || exp[0] == '-') {
		sign, exp = string(exp[0]), exp[1:]
	}
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
	}
	return mant + "e" + sign + exp
}

// StringToNumber parses a string numeric literal: leading and trailing
// whitespace ignored, empty string is zero, named infinities, 0x/0o/0b
// integer prefixes, otherwise a decimal literal. Anything else is NaN.
func StringToNumber(s string) float64 {
	s = strings.TrimFunc(s, isStrWhitespace)
	if s == "" {
		return 0
	}
	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	if len(s) > 2 && s[0] == '0' {
		var base int
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			bi, ok := new(big.Int).SetString(s[2:], base)
			if !ok {
				return math.NaN()
			}
			f, _ := new(big.Float).SetInt(bi).Float64()
			return f
		}
	}
	if !isDecimalLiteral(s) {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

func isStrWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r', 0x00A0, 0x2028, 0x2029, 0xFEFF:
		return true
	}
	return r >= 0x2000 && r <= 0x200A || r == 0x1680 || r == 0x202F || r == 0x205F || r == 0x3000
}

// isDecimalLiteral validates the shape strconv would otherwise be too
// permissive about (it accepts "Inf", "NaN", hex floats and underscores).
func isDecimalLiteral(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := func() bool {
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		return i > start
	}
	intPart := digits()
	fracPart := false
	if i < len(s) && s[i] == '.' {
		i++
		fracPart = digits()
	}
	if !intPart && !fracPart {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if !digits() {
			return false
		}
	}
	return i == len(s)
}
