package convert

import (
	"math"
	"testing"

	"github.com/wippyai/idl-bindings/errors"
	"github.com/wippyai/idl-bindings/value"
)

func TestUint8Wrap(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want uint8
	}{
		{"zero", 0, 0},
		{"in range", 200, 200},
		{"modulus", 256, 0},
		{"modulus plus one", 257, 1},
		{"negative wraps", -1, 255},
		{"fraction truncates", 3.9, 3},
		{"negative fraction truncates", -0.9, 0},
		{"nan", math.NaN(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Uint8()(value.Number(tt.in), Context{})
			if err != nil {
				t.Fatalf("Uint8(%v): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Uint8(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestInt32Wrap(t *testing.T) {
	got, err := Int32()(value.Number(4294967296+5), Context{})
	if err != nil {
		t.Fatal(err)
	}
	if got != 5 {
		t.Errorf("got %d, want 5", got)
	}
	got, err = Int32()(value.Number(2147483648), Context{})
	if err != nil {
		t.Fatal(err)
	}
	if got != -2147483648 {
		t.Errorf("got %d, want -2147483648", got)
	}
}

func TestClampRoundsHalfToEven(t *testing.T) {
	tests := []struct {
		in   float64
		want int8
	}{
		{2.5, 2},
		{3.5, 4},
		{-2.5, -2},
		{200, 127},
		{-200, -128},
	}
	for _, tt := range tests {
		got, err := Int8()(value.Number(tt.in), Context{Clamp: true})
		if err != nil {
			t.Fatalf("Int8 clamp(%v): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Int8 clamp(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestEnforceRange(t *testing.T) {
	got, err := Uint8()(value.Number(3.9), Context{EnforceRange: true})
	if err != nil {
		t.Fatal(err)
	}
	if got != 3 {
		t.Errorf("got %d, want 3", got)
	}

	_, err = Uint8()(value.Number(300), Context{EnforceRange: true})
	if !errors.IsKind(err, errors.KindRangeViolation) {
		t.Errorf("expected range violation, got %v", err)
	}

	_, err = Uint8()(value.Number(math.NaN()), Context{EnforceRange: true})
	if !errors.IsKind(err, errors.KindRangeViolation) {
		t.Errorf("expected range violation for NaN, got %v", err)
	}
}

func TestEnforceRangeMessage(t *testing.T) {
	_, err := Uint8()(value.Number(300), Context{
		Prefix:       "Failed to execute 'write' on 'Port'",
		Label:        "Parameter 1",
		EnforceRange: true,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	want := "Failed to execute 'write' on 'Port': Parameter 1 is outside the accepted range of 0 to 255, inclusive"
	if err.Error() != want {
		t.Errorf("message:\n got %q\nwant %q", err.Error(), want)
	}
}

func TestIntegerFromNonNumber(t *testing.T) {
	got, err := Uint16()(value.String("42"), Context{})
	if err != nil {
		t.Fatal(err)
	}
	if got != 42 {
		t.Errorf("got %d, want 42", got)
	}

	_, err = Uint16()(value.SymbolOf(value.NewSymbol("tag")), Context{})
	if !errors.IsKind(err, errors.KindTypeMismatch) {
		t.Errorf("expected type mismatch for symbol, got %v", err)
	}
}

func TestInt64WrapLargeValue(t *testing.T) {
	// 2^63 is exactly representable; wrapping folds it to the minimum.
	got, err := Int64()(value.Number(9223372036854775808), Context{})
	if err != nil {
		t.Fatal(err)
	}
	if got != -9223372036854775808 {
		t.Errorf("got %d, want minimum int64", got)
	}
}
