package convert

import (
	"math"
	"testing"

	"github.com/wippyai/idl-bindings/errors"
	"github.com/wippyai/idl-bindings/value"
)

func TestFloat64RejectsNonFinite(t *testing.T) {
	for _, in := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Float64()(value.Number(in), Context{})
		if !errors.IsKind(err, errors.KindRangeViolation) {
			t.Errorf("Float64(%v): expected range violation, got %v", in, err)
		}
	}
}

func TestFloat64PreservesSignedZero(t *testing.T) {
	got, err := Float64()(value.Number(math.Copysign(0, -1)), Context{})
	if err != nil {
		t.Fatal(err)
	}
	if !math.Signbit(got) {
		t.Error("negative zero lost its sign")
	}
}

func TestUnrestrictedFloat64PassesNonFinite(t *testing.T) {
	got, err := UnrestrictedFloat64()(value.Number(math.Inf(1)), Context{})
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(got, 1) {
		t.Errorf("got %v, want +Inf", got)
	}
	got, err = UnrestrictedFloat64()(value.Undefined(), Context{})
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(got) {
		t.Errorf("got %v, want NaN", got)
	}
}

func TestFloat32OverflowFails(t *testing.T) {
	// Finite in double precision, infinite after narrowing.
	_, err := Float32()(value.Number(3.5e38), Context{})
	if !errors.IsKind(err, errors.KindRangeViolation) {
		t.Errorf("expected range violation, got %v", err)
	}

	got, err := UnrestrictedFloat32()(value.Number(3.5e38), Context{})
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(float64(got), 1) {
		t.Errorf("got %v, want +Inf after narrowing", got)
	}
}

func TestFloat32SubnormalFlushRoundTrips(t *testing.T) {
	got, err := Float32()(value.Number(1.5), Context{})
	if err != nil {
		t.Fatal(err)
	}
	if got != 1.5 {
		t.Errorf("got %v, want 1.5", got)
	}
}
