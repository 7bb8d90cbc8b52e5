// Package vm provides a reference in-memory runtime implementing jvm.Env.
//
// The runtime models exactly the JVM surface the bridge depends on: a class
// table with superclass chains, exact (name, descriptor) field resolution,
// typed static and instance field storage, and a pending-error slot. Classes
// are defined programmatically via DefineClass or loaded from TOML class
// image manifests.
//
// It exists so the bridge, the lookup path, and their callers can be
// exercised in-process, in tests and in the jfield CLI, without attaching
// to a real JVM. It performs no bytecode execution and enforces no
// access control beyond kind checking on writes.
package vm
