// Package fst is the ergonomic, Go-idiomatic facade over the engine: a
// Transducer type with error-returning methods, hiding the opaque-handle
// boundary API (pkg/fstapi) that the facade is built on.
//
// A struct wraps a lower-level handle, re-exporting its operations as
// methods that return (value, error) instead of a numeric status code.
package fst
