// Package value defines the engine's dynamic value model: a closed tagged
// variant (undefined, null, boolean, number, string, symbol, bigint,
// object) with the minimal host coercions the conversion engine composes
// atop.
//
// Host objects enter the model through the Object interface; optional
// capabilities (Callable, Iterable, Thenable) are separate interfaces a
// wrapper implements only when the underlying host object actually has the
// capability.
//
// Strings are Go strings in WTF-8: UTF-16 surrogate code points, including
// unpaired ones, are representable as their three-byte encodings. The
// internal/wtf8 package performs surrogate-aware decoding and the
// lone-surrogate repair used by scalar-value string conversion.
package value
