package convert

import (
	"github.com/wippyai/idl-bindings/errors"
	"github.com/wippyai/idl-bindings/value"
)

// NewEnum builds a converter that stringifies its input and checks
// membership in the enumeration. Matching is exact: no case folding,
// no trimming.
func NewEnum(name string, values ...string) Converter[string] {
	allowed := make(map[string]struct{}, len(values))
	for _, v := range values {
		allowed[v] = struct{}{}
	}
	return func(v value.Value, ctx Context) (string, error) {
		s, err := value.ToString(v)
		if err != nil {
			return "", errors.TypeMismatch(ctx.Prefix, ctx.Label, "is a symbol, which cannot be converted to a string")
		}
		if _, ok := allowed[s]; !ok {
			return "", errors.InvalidEnum(ctx.Prefix, ctx.Label, s, name)
		}
		return s, nil
	}
}
