package convert

import (
	"sort"

	"github.com/wippyai/idl-bindings/errors"
	"github.com/wippyai/idl-bindings/value"
)

// Member describes one dictionary member. Exactly one of Default and
// DefaultFn should be set when a default is wanted; DefaultFn exists
// for mutable defaults (slices, maps) that must be fresh per
// conversion.
type Member struct {
	Key       string
	Converter Converter[any]
	Required  bool
	Default   any
	DefaultFn func() any
}

// NewDictionary builds a dictionary converter from one or more member
// lists (later lists model derived dictionaries). Members are processed
// in lexicographic key order regardless of declaration order.
// Undefined and null convert to a dictionary with only defaulted
// members; any other non-object input is a type mismatch.
func NewDictionary(name string, lists ...[]Member) Converter[map[string]any] {
	var members []Member
	for _, list := range lists {
		members = append(members, list...)
	}
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].Key < members[j].Key
	})

	return func(v value.Value, ctx Context) (map[string]any, error) {
		var obj value.Object
		switch v.Kind() {
		case value.KindUndefined, value.KindNull:
		case value.KindObject:
			obj = v.Obj()
		default:
			return nil, errors.TypeMismatch(ctx.Prefix, ctx.Label, "can not be converted to '"+name+"'")
		}

		out := make(map[string]any, len(members))
		for _, m := range members {
			var present bool
			var raw value.Value
			if obj != nil {
				raw = obj.Get(m.Key)
				present = raw.Kind() != value.KindUndefined
			}
			if !present {
				if m.Required {
					return nil, errors.MissingRequired(ctx.Prefix, ctx.Label, name, m.Key)
				}
				if m.DefaultFn != nil {
					out[m.Key] = m.DefaultFn()
				} else if m.Default != nil {
					out[m.Key] = m.Default
				}
				continue
			}
			item, err := m.Converter(raw, ctx.atMember(m.Key, name))
			if err != nil {
				return nil, err
			}
			out[m.Key] = item
		}
		return out, nil
	}
}
