// Package bridge implements the typed field-access dispatch protocol.
//
// Sixteen primitive entry points (a get/set pair per kind, named by the
// kind's descriptor tag) plus one object pair route each call through the
// host runtime: resolve the owner class, resolve the field as static or
// instance depending on whether a receiver was supplied, then read or write
// through the runtime's typed primitives. Nothing is cached; every call
// re-resolves.
//
// The package is deliberately unforgiving. It is an internal bridge invoked
// by a constrained higher-level API that has already validated its inputs,
// so every failure mode (malformed identifiers, unresolved classes,
// unresolved or mismatched-descriptor fields, kind mismatches) panics with
// a structured *errors.Error instead of returning one. Callers that need
// graceful failure use the accessor package instead.
package bridge
