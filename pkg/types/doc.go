// Package types holds the scalar types, error kinds, and option structs
// shared by the boundary API (pkg/fstapi), the ergonomic facade (pkg/fst),
// and the internal algorithm packages. Nothing in here touches graph
// storage or algorithms; it is the vocabulary the rest of the module talks.
package types
