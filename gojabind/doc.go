// Package gojabind adapts a dop251/goja runtime as the engine's
// dynamic-value host.
//
// Realm.Value classifies script values into the tagged value model at
// the boundary. Script objects are wrapped with the capability
// interfaces they actually exhibit: functions become callables,
// objects with a callable then become thenables, objects carrying
// Symbol.iterator become iterables, and ArrayBuffers, typed arrays and
// DataViews surface the buffer package's provider capabilities. View
// element tags are read from the object's internal class, which
// scripts cannot tamper with.
//
// Failures flow back the other way through JSError and Throw, mapping
// the engine's failure kinds onto the realm's own error constructors.
package gojabind
