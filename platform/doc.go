// Package platform implements the identity layer for opaque interface
// objects: brands, prototypes, instance factories, and the paired
// iteration protocol.
//
// A brand is a token minted only by NewInterface and compared by
// pointer. An instance carries its brand in an unexported field, so an
// externally assembled object with the same visible shape is
// indistinguishable from a wrong type, never mistaken for a right type
// in a wrong state. Argument checking (As) and receiver checking
// (Assert) fail differently on purpose: a wrong argument is a
// TypeMismatch, a wrong or foreign receiver is an IllegalInvocation.
//
// Interfaces whose instances expose an ordered key/value sequence
// attach a PairIterable, which installs entries/keys/values cursors
// and an eager forEach onto the prototype. Cursors read the backing
// sequence live and are never restartable once exhausted.
package platform
