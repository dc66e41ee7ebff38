package convert

import (
	"testing"

	"github.com/wippyai/idl-bindings/errors"
	"github.com/wippyai/idl-bindings/value"
)

func TestEnum(t *testing.T) {
	conv := NewEnum("ScanMode", "fast", "deep", "auto")

	got, err := conv(value.String("deep"), Context{})
	if err != nil || got != "deep" {
		t.Fatalf("got %q, %v", got, err)
	}

	// Inputs stringify before the membership check.
	_, err = conv(value.Number(1), Context{})
	if !errors.IsKind(err, errors.KindInvalidEnum) {
		t.Errorf("got %v", err)
	}
}

func TestEnumCaseSensitive(t *testing.T) {
	conv := NewEnum("ScanMode", "fast")
	_, err := conv(value.String("Fast"), Context{
		Prefix: "Failed to execute 'scan' on 'Scanner'",
		Label:  "Parameter 2",
	})
	if !errors.IsKind(err, errors.KindInvalidEnum) {
		t.Fatalf("got %v", err)
	}
	want := "Failed to execute 'scan' on 'Scanner': Parameter 2 is 'Fast', which is not a valid enum value of type ScanMode"
	if err.Error() != want {
		t.Errorf("message:\n got %q\nwant %q", err.Error(), want)
	}
}

func TestEnumRejectsSymbol(t *testing.T) {
	conv := NewEnum("ScanMode", "fast")
	_, err := conv(value.SymbolOf(value.NewSymbol("s")), Context{})
	if !errors.IsKind(err, errors.KindTypeMismatch) {
		t.Errorf("got %v", err)
	}
}
