package value

import "math/big"

// Value is a dynamic host value: a Kind plus exactly one payload. The zero
// Value is undefined.
type Value struct {
	obj  Object
	bi   *big.Int
	sym  *Symbol
	str  string
	num  float64
	kind Kind
	b    bool
}

// Symbol is an opaque unique token. Two symbols are the same symbol only if
// they are the same pointer.
type Symbol struct {
	desc string
}

func NewSymbol(desc string) *Symbol {
	return &Symbol{desc: desc}
}

func (s *Symbol) Description() string {
	return s.desc
}

func Undefined() Value {
	return Value{kind: KindUndefined}
}

func Null() Value {
	return Value{kind: KindNull}
}

func Boolean(b bool) Value {
	return Value{kind: KindBoolean, b: b}
}

func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

func String(s string) Value {
	return Value{kind: KindString, str: s}
}

func BigInt(i *big.Int) Value {
	return Value{kind: KindBigInt, bi: i}
}

func SymbolOf(s *Symbol) Value {
	return Value{kind: KindSymbol, sym: s}
}

func ObjectOf(o Object) Value {
	if o == nil {
		return Null()
	}
	return Value{kind: KindObject, obj: o}
}

func (v Value) Kind() Kind {
	return v.kind
}

// IsNullish reports whether the value is undefined or null.
func (v Value) IsNullish() bool {
	return v.kind == KindUndefined || v.kind == KindNull
}

// Bool returns the boolean payload. Valid only for KindBoolean.
func (v Value) Bool() bool {
	return v.b
}

// Num returns the number payload. Valid only for KindNumber.
func (v Value) Num() float64 {
	return v.num
}

// Str returns the string payload. Valid only for KindString.
func (v Value) Str() string {
	return v.str
}

// Big returns the bigint payload. Valid only for KindBigInt.
func (v Value) Big() *big.Int {
	return v.bi
}

// Sym returns the symbol payload. Valid only for KindSymbol.
func (v Value) Sym() *Symbol {
	return v.sym
}

// Obj returns the object payload. Valid only for KindObject.
func (v Value) Obj() Object {
	return v.obj
}
