// Package buffer models binary resources crossing the conversion
// boundary: raw backing stores, typed windows over them, and the
// validators that gate their use.
//
// Validation enforces two structural rules regardless of element type:
// a shared store is rejected unless the conversion context explicitly
// allows it, and a detached store is always rejected. A view's element
// tag lives in an unexported field readable only through Elem, so a
// host object cannot impersonate a different view type by reshaping
// its visible properties.
//
// Host objects opt in by implementing Provider or ViewProvider; the
// converters Raw, TypedView, AnyView and Bytes dispatch on those
// capabilities.
package buffer
