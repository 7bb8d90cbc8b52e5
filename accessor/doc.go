// Package accessor provides bound field accessors with graceful errors.
//
// It is the forgiving tier above the bridge package: the same resolution
// semantics (exact name+descriptor match, static iff no receiver is bound to
// the operation, re-resolution on every call), but every failure comes back
// as a structured error instead of a panic. Use it from code that has to
// survive misconfigured identifiers; use the bridge entry points from
// constrained callers that treat misuse as fatal.
package accessor
