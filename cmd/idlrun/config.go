package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/wippyai/idl-bindings/convert"
	"github.com/wippyai/idl-bindings/registry"
	"github.com/wippyai/idl-bindings/value"
)

// Config describes a converter set assembled from a TOML file: enum
// and dictionary definitions plus named converter aliases written as
// IDL type expressions.
type Config struct {
	Prefix       string             `toml:"prefix"`
	Enums        map[string]EnumDef `toml:"enums"`
	Dictionaries map[string]DictDef `toml:"dictionaries"`
	Converters   map[string]string  `toml:"converters"`
}

type EnumDef struct {
	Values []string `toml:"values"`
}

type DictDef struct {
	Members []MemberDef `toml:"members"`
}

type MemberDef struct {
	Key      string `toml:"key"`
	Type     string `toml:"type"`
	Required bool   `toml:"required"`
	Default  any    `toml:"default"`
}

// LoadConfig reads and decodes a TOML converter description.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// Build assembles the registry: builtin primitive types first, then the
// config's enums, dictionaries, and aliases.
func (c *Config) Build() (*registry.Registry, error) {
	reg := registry.New()
	registerBuiltins(reg)

	for name, e := range c.Enums {
		if len(e.Values) == 0 {
			return nil, fmt.Errorf("enum %q has no values", name)
		}
		if err := reg.Register(name, convert.Erase(convert.NewEnum(name, e.Values...))); err != nil {
			return nil, err
		}
	}

	for name, d := range c.Dictionaries {
		members := make([]convert.Member, 0, len(d.Members))
		for _, m := range d.Members {
			conv, err := resolveType(reg, m.Type)
			if err != nil {
				return nil, fmt.Errorf("dictionary %q member %q: %w", name, m.Key, err)
			}
			members = append(members, convert.Member{
				Key:       m.Key,
				Converter: conv,
				Required:  m.Required,
				Default:   m.Default,
			})
		}
		if err := reg.Register(name, convert.Erase(convert.NewDictionary(name, members))); err != nil {
			return nil, err
		}
	}

	for alias, expr := range c.Converters {
		conv, err := resolveType(reg, expr)
		if err != nil {
			return nil, fmt.Errorf("converter %q: %w", alias, err)
		}
		if err := reg.Register(alias, conv); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func registerBuiltins(reg *registry.Registry) {
	reg.MustRegister("any", convert.Erase(convert.Any()))
	reg.MustRegister("boolean", convert.Erase(convert.Bool()))
	reg.MustRegister("byte", convert.Erase(convert.Int8()))
	reg.MustRegister("octet", convert.Erase(convert.Uint8()))
	reg.MustRegister("short", convert.Erase(convert.Int16()))
	reg.MustRegister("unsigned short", convert.Erase(convert.Uint16()))
	reg.MustRegister("long", convert.Erase(convert.Int32()))
	reg.MustRegister("unsigned long", convert.Erase(convert.Uint32()))
	reg.MustRegister("long long", convert.Erase(convert.Int64()))
	reg.MustRegister("unsigned long long", convert.Erase(convert.Uint64()))
	reg.MustRegister("float", convert.Erase(convert.Float32()))
	reg.MustRegister("unrestricted float", convert.Erase(convert.UnrestrictedFloat32()))
	reg.MustRegister("double", convert.Erase(convert.Float64()))
	reg.MustRegister("unrestricted double", convert.Erase(convert.UnrestrictedFloat64()))
	reg.MustRegister("DOMString", convert.Erase(convert.String()))
	reg.MustRegister("ByteString", convert.Erase(convert.ByteString()))
	reg.MustRegister("USVString", convert.Erase(convert.ScalarValueString()))
	reg.MustRegister("object", convert.Erase(convert.Object()))
}

// resolveType parses an IDL type expression against the registry:
// a base or registered name, optional [Clamp]/[EnforceRange] prefix,
// sequence<T>, and a trailing ? for nullable.
func resolveType(reg *registry.Registry, expr string) (convert.Converter[any], error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, fmt.Errorf("empty type expression")
	}

	if rest, ok := strings.CutPrefix(expr, "[Clamp]"); ok {
		inner, err := resolveType(reg, rest)
		if err != nil {
			return nil, err
		}
		return func(v value.Value, ctx convert.Context) (any, error) {
			ctx.Clamp = true
			return inner(v, ctx)
		}, nil
	}
	if rest, ok := strings.CutPrefix(expr, "[EnforceRange]"); ok {
		inner, err := resolveType(reg, rest)
		if err != nil {
			return nil, err
		}
		return func(v value.Value, ctx convert.Context) (any, error) {
			ctx.EnforceRange = true
			return inner(v, ctx)
		}, nil
	}

	if inner, ok := strings.CutSuffix(expr, "?"); ok {
		conv, err := resolveType(reg, inner)
		if err != nil {
			return nil, err
		}
		return func(v value.Value, ctx convert.Context) (any, error) {
			if v.IsNullish() {
				return nil, nil
			}
			return conv(v, ctx)
		}, nil
	}

	if inner, ok := strings.CutPrefix(expr, "sequence<"); ok {
		inner, ok = strings.CutSuffix(inner, ">")
		if !ok {
			return nil, fmt.Errorf("unterminated sequence in %q", expr)
		}
		conv, err := resolveType(reg, inner)
		if err != nil {
			return nil, err
		}
		return convert.Erase(convert.Sequence(conv)), nil
	}

	if inner, ok := strings.CutPrefix(expr, "record<DOMString,"); ok {
		inner, ok = strings.CutSuffix(inner, ">")
		if !ok {
			return nil, fmt.Errorf("unterminated record in %q", expr)
		}
		conv, err := resolveType(reg, inner)
		if err != nil {
			return nil, err
		}
		return convert.Erase(convert.RecordOf(convert.String(), conv)), nil
	}

	if conv, ok := reg.Lookup(expr); ok {
		return conv, nil
	}
	return nil, fmt.Errorf("unknown type %q", expr)
}
