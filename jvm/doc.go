// Package jvm defines the contract between the bridge and the host runtime.
//
// Env is the set of primitives the runtime must provide: class resolution,
// exact-match field resolution, typed field access, and a pending-error slot.
// Class, Object, and FieldID are opaque handles owned by the runtime; Value
// is the tagged union that carries field payloads across the boundary.
//
// The package holds no state and performs no resolution itself. The vm
// package provides a reference in-memory implementation of Env.
package jvm
