// Package convert implements typed conversion of dynamic host values.
//
// Every conversion is a Converter[T]: a function from a dynamic value
// and a Context to a strictly typed Go result or a structured failure.
// Primitive converters (integers, floats, strings, booleans) are
// package functions; parameterized families (dictionaries, enums,
// sequences, records, promises) are built by factories that capture
// their configuration once and return reusable converters.
//
// The Context carries everything a conversion site knows: the failure
// message prefix, the value's label, range-handling flags (Clamp,
// EnforceRange), buffer policy (AllowShared), and the realm whose job
// queue asynchronous work runs on. Contexts are values; derived
// contexts for sequence elements and dictionary members are created
// per step and never mutate the parent.
//
// Integer conversion supports three out-of-range policies: modular
// wrap (the default), saturating clamp with round-half-to-even, and
// enforced range which fails on non-finite or out-of-range input.
// 64-bit wrap operates on the host's float approximation of the input,
// so values beyond 2^53 wrap the approximation, not the mathematical
// integer.
package convert
