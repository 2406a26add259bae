// Package fstapi is the engine's boundary API: every exported method
// takes and returns opaque uint32 handles and primitive values only, never
// a Go pointer or slice of structs owned by the engine. It is the layer a
// foreign-function boundary would bind against.
//
// Every method brackets its work between the shared Engine mutex's Lock
// and Unlock, resolving an opaque handle before touching the object it
// names: a generated-C-bindings layer would do the same resolve-then-act
// dance against a foreign library; here it collapses to an in-process
// registry.
package fstapi
