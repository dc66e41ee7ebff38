package convert

import (
	"testing"

	"github.com/wippyai/idl-bindings/errors"
	"github.com/wippyai/idl-bindings/value"
)

func TestDictionaryBasic(t *testing.T) {
	conv := NewDictionary("ScanOptions",
		[]Member{
			{Key: "depth", Converter: Erase(Uint8()), Default: uint8(1)},
			{Key: "path", Converter: Erase(String()), Required: true},
		},
	)

	in := value.NewDict().
		Set("path", value.String("/tmp")).
		Set("depth", value.Number(3))
	got, err := conv(value.ObjectOf(in), Context{})
	if err != nil {
		t.Fatal(err)
	}
	if got["path"] != "/tmp" || got["depth"] != uint8(3) {
		t.Errorf("got %v", got)
	}
}

func TestDictionaryDefaults(t *testing.T) {
	conv := NewDictionary("ScanOptions",
		[]Member{
			{Key: "depth", Converter: Erase(Uint8()), Default: uint8(1)},
			{Key: "tags", Converter: Erase(Sequence(String())), DefaultFn: func() any { return []string{} }},
			{Key: "label", Converter: Erase(String())},
		},
	)

	got, err := conv(value.Undefined(), Context{})
	if err != nil {
		t.Fatal(err)
	}
	if got["depth"] != uint8(1) {
		t.Errorf("depth default: %v", got["depth"])
	}
	if _, present := got["label"]; present {
		t.Error("member with no default must be absent")
	}

	if tags, ok := got["tags"].([]string); !ok || tags == nil {
		t.Errorf("tags default: %v", got["tags"])
	}
}

func TestDictionaryDefaultFnRunsPerConversion(t *testing.T) {
	calls := 0
	conv := NewDictionary("Opts",
		[]Member{{Key: "tags", Converter: Erase(Sequence(String())), DefaultFn: func() any {
			calls++
			return []string{}
		}}},
	)
	if _, err := conv(value.Undefined(), Context{}); err != nil {
		t.Fatal(err)
	}
	if _, err := conv(value.Null(), Context{}); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Errorf("DefaultFn ran %d times, want one fresh default per conversion", calls)
	}
}

func TestDictionaryRequiredMissing(t *testing.T) {
	conv := NewDictionary("ScanOptions",
		[]Member{{Key: "path", Converter: Erase(String()), Required: true}},
	)

	_, err := conv(value.ObjectOf(value.NewDict()), Context{
		Prefix: "Failed to execute 'scan' on 'Scanner'",
		Label:  "Parameter 1",
	})
	if !errors.IsKind(err, errors.KindMissingMember) {
		t.Fatalf("got %v", err)
	}
	want := "Failed to execute 'scan' on 'Scanner': Parameter 1 can not be converted to 'ScanOptions' because 'path' is required in 'ScanOptions'"
	if err.Error() != want {
		t.Errorf("message:\n got %q\nwant %q", err.Error(), want)
	}

	// Undefined input fails the same way: no members are present.
	_, err = conv(value.Undefined(), Context{})
	if !errors.IsKind(err, errors.KindMissingMember) {
		t.Errorf("got %v", err)
	}
}

func TestDictionaryRejectsPrimitives(t *testing.T) {
	conv := NewDictionary("ScanOptions", nil)
	for _, in := range []value.Value{value.Number(1), value.String("x"), value.Boolean(true)} {
		_, err := conv(in, Context{})
		if !errors.IsKind(err, errors.KindTypeMismatch) {
			t.Errorf("%v: got %v", in.Kind(), err)
		}
	}
}

func TestDictionaryMemberLabel(t *testing.T) {
	conv := NewDictionary("ScanOptions",
		[]Member{{Key: "depth", Converter: Erase(Uint8())}},
	)
	in := value.NewDict().Set("depth", value.SymbolOf(value.NewSymbol("d")))
	_, err := conv(value.ObjectOf(in), Context{Label: "Parameter 1"})
	if err == nil {
		t.Fatal("expected error")
	}
	want := "'depth' of 'ScanOptions' (Parameter 1) is a symbol, which cannot be converted to a number"
	if err.Error() != want {
		t.Errorf("message:\n got %q\nwant %q", err.Error(), want)
	}
}

func TestDictionaryProcessesMembersInKeyOrder(t *testing.T) {
	var seen []string
	track := func(key string) Converter[any] {
		return func(v value.Value, ctx Context) (any, error) {
			seen = append(seen, key)
			return nil, nil
		}
	}
	conv := NewDictionary("Opts",
		[]Member{
			{Key: "zeta", Converter: track("zeta")},
			{Key: "alpha", Converter: track("alpha")},
		},
	)
	in := value.NewDict().
		Set("zeta", value.Number(1)).
		Set("alpha", value.Number(2))
	if _, err := conv(value.ObjectOf(in), Context{}); err != nil {
		t.Fatal(err)
	}
	if len(seen) != 2 || seen[0] != "alpha" || seen[1] != "zeta" {
		t.Errorf("member order %v, want lexicographic", seen)
	}
}
