package value

import (
	"math/big"
	"testing"
)

func TestZeroValueIsUndefined(t *testing.T) {
	var v Value
	if v.Kind() != KindUndefined {
		t.Errorf("zero Value kind = %v, want undefined", v.Kind())
	}
	if !v.IsNullish() {
		t.Error("undefined should be nullish")
	}
}

func TestKindClassification(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		kind Kind
	}{
		{"undefined", Undefined(), KindUndefined},
		{"null", Null(), KindNull},
		{"boolean", Boolean(true), KindBoolean},
		{"number", Number(3.5), KindNumber},
		{"string", String("abc"), KindString},
		{"symbol", SymbolOf(NewSymbol("tag")), KindSymbol},
		{"bigint", BigInt(big.NewInt(7)), KindBigInt},
		{"object", ObjectOf(NewDict()), KindObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.v.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", tt.v.Kind(), tt.kind)
			}
			if tt.v.Kind().String() != tt.name {
				t.Errorf("Kind().String() = %q, want %q", tt.v.Kind().String(), tt.name)
			}
		})
	}
}

func TestDictOwnKeysOrdering(t *testing.T) {
	d := NewDict()
	d.Set("b", Number(1))
	d.Set("10", Number(2))
	d.Set("a", Number(3))
	d.Set("2", Number(4))

	got := d.OwnKeys()
	want := []string{"2", "10", "b", "a"}
	if len(got) != len(want) {
		t.Fatalf("OwnKeys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("OwnKeys() = %v, want %v", got, want)
		}
	}
}

func TestDictSetPreservesInsertionOrder(t *testing.T) {
	d := NewDict()
	d.Set("x", Number(1))
	d.Set("y", Number(2))
	d.Set("x", Number(3)) // overwrite keeps position

	got := d.OwnKeys()
	if len(got) != 2 || got[0] != "x" || got[1] != "y" {
		t.Fatalf("OwnKeys() = %v, want [x y]", got)
	}
	if d.Get("x").Num() != 3 {
		t.Errorf("Get(x) = %v, want 3", d.Get("x").Num())
	}
}

func TestDictProtoLookup(t *testing.T) {
	parent := NewDict().Set("inherited", String("yes"))
	d := NewDict().Set("own", String("mine"))
	d.SetProto(parent)

	if !d.Has("inherited") {
		t.Error("Has should see inherited properties")
	}
	if d.Get("inherited").Str() != "yes" {
		t.Error("Get should walk the prototype chain")
	}
	keys := d.OwnKeys()
	if len(keys) != 1 || keys[0] != "own" {
		t.Errorf("OwnKeys() = %v, inherited keys must be excluded", keys)
	}
}

func TestArrayIterator(t *testing.T) {
	a := NewArray(Number(1), Number(2), Number(3))
	it := a.Iterator()

	var got []float64
	for {
		v, done, err := it.Next()
		if err != nil {
			t.Fatalf("Next() error: %v", err)
		}
		if done {
			break
		}
		got = append(got, v.Num())
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Errorf("iterated %v, want [1 2 3]", got)
	}

	// Exhausted iterators stay done.
	if _, done, _ := it.Next(); !done {
		t.Error("exhausted iterator should report done")
	}
}

func TestFuncCall(t *testing.T) {
	f := NewFunc("double", func(this Value, args ...Value) (Value, error) {
		return Number(args[0].Num() * 2), nil
	})
	var c Callable = f
	out, err := c.Call(Undefined(), Number(21))
	if err != nil {
		t.Fatalf("Call error: %v", err)
	}
	if out.Num() != 42 {
		t.Errorf("Call = %v, want 42", out.Num())
	}
	if f.Get("name").Str() != "double" {
		t.Errorf("name property = %q", f.Get("name").Str())
	}
}
