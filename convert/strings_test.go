package convert

import (
	"testing"

	"github.com/wippyai/idl-bindings/errors"
	"github.com/wippyai/idl-bindings/value"
)

func TestStringConverter(t *testing.T) {
	tests := []struct {
		name string
		in   value.Value
		ctx  Context
		want string
	}{
		{"passthrough", value.String("abc"), Context{}, "abc"},
		{"number", value.Number(12.5), Context{}, "12.5"},
		{"boolean", value.Boolean(true), Context{}, "true"},
		{"null", value.Null(), Context{}, "null"},
		{"undefined", value.Undefined(), Context{}, "undefined"},
		{"legacy null", value.Null(), Context{TreatNullAsEmptyString: true}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := String()(tt.in, tt.ctx)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	_, err := String()(value.SymbolOf(value.NewSymbol("x")), Context{})
	if !errors.IsKind(err, errors.KindTypeMismatch) {
		t.Errorf("expected type mismatch for symbol, got %v", err)
	}
}

func TestByteString(t *testing.T) {
	got, err := ByteString()(value.String("\x00\x7fÿ"), Context{})
	if err != nil {
		t.Fatal(err)
	}
	if got != "\x00\x7fÿ" {
		t.Errorf("got %q", got)
	}

	_, err = ByteString()(value.String("Ā"), Context{})
	if !errors.IsKind(err, errors.KindTypeMismatch) {
		t.Errorf("expected type mismatch above U+00FF, got %v", err)
	}
}

func TestScalarValueStringRepairsSurrogates(t *testing.T) {
	loneHigh := "a\xed\xa0\x81b"
	got, err := ScalarValueString()(value.String(loneHigh), Context{})
	if err != nil {
		t.Fatal(err)
	}
	if got != "a�b" {
		t.Errorf("got %q, want lone surrogate replaced", got)
	}

	pair := "\xed\xa0\x81\xed\xb0\xb7"
	got, err = ScalarValueString()(value.String(pair), Context{})
	if err != nil {
		t.Fatal(err)
	}
	if got != "\U00010437" {
		t.Errorf("got %q, want combined supplementary character", got)
	}

	clean := "plain ascii"
	got, err = ScalarValueString()(value.String(clean), Context{})
	if err != nil {
		t.Fatal(err)
	}
	if got != clean {
		t.Errorf("got %q, want unchanged", got)
	}
}
