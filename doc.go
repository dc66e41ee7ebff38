// Package idl provides an IDL binding layer: it converts dynamic,
// weakly-typed host values arriving at an API boundary into strictly-typed
// values according to a standardized binding specification.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	idl-bindings/        Root package with the shared Realm and JobQueue interfaces
//	├── value/           Closed tagged-variant dynamic value model and host coercions
//	├── convert/         Conversion contexts, primitive converters, combinators,
//	│                    dictionary and enum factories, callback invocation
//	├── buffer/          Buffer resources: raw buffers, typed views, validators
//	├── platform/        Interface identity (brands), prototypes, paired iteration
//	├── registry/        Explicit named-converter registry
//	├── gojabind/        goja (JavaScript) host boundary adapter
//	└── errors/          Structured conversion failures
//
// # Quick Start
//
// Converters are assembled programmatically and invoked with a value and a
// context:
//
//	conv := convert.Uint8()
//	n, err := conv(value.Number(257), convert.Context{Prefix: "Failed to set brightness"})
//	// n == 1, the default conversion mode wraps modulo 2^8
//
// Higher-order converters compose:
//
//	colors := convert.Sequence(convert.String())
//	opts := convert.NewDictionary("ScrollOptions", []convert.Member{
//	    {Key: "behavior", Converter: convert.Erase(behaviorEnum), Default: "auto"},
//	    {Key: "left", Converter: convert.Erase(convert.UnrestrictedFloat64()), Required: true},
//	})
//
// # Conversion Modes
//
// Integer converters honor the context's mode flags:
//
//	Mode          Out-of-range input
//	─────────────────────────────────
//	default       wraps modulo 2^N
//	Clamp         saturates to the nearest bound, rounds half to even
//	EnforceRange  fails with a range violation
//
// # Failures
//
// All failures are structured [errors.Failure] values rendering final
// user-facing text ("<prefix>: <label> <suffix>"). Consumers propagate them
// unchanged; the gojabind adapter raises them as TypeError or RangeError in
// the correct realm.
//
// # Concurrency
//
// Conversions are synchronous and free of shared mutable state; a converter
// is a pure function of its input and context. The only asynchronous
// elements are the promise combinator and asynchronous callback adaptation,
// which schedule continuations on the realm's JobQueue without blocking.
package idl
