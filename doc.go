// Package jvmbridge provides a native-side bridge for typed JVM field access.
//
// The library lets a host program read and write JVM fields across all
// primitive kinds and object references, and acquire the runtime's trusted
// lookup capability that bypasses normal access checks. It is the native half
// of a reflection API: callers supply string identifiers (owner class, field
// name, type descriptor) and the bridge routes each call through the host
// runtime's resolution and field-access primitives.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	jvm-bridge/          Root package, documentation only
//	├── descriptor/      Primitive kind enum and JVM type-descriptor tags
//	├── jvm/             Host runtime contract: Env, handles, tagged Value
//	├── bridge/          Typed field accessors and the field resolver
//	├── lookup/          Trusted lookup acquisition
//	├── accessor/        Bound field accessors with graceful error returns
//	├── vm/              Reference in-memory runtime implementing jvm.Env
//	└── errors/          Structured error types for debugging
//
// # Quick Start
//
// Get and set a static int field through the reference runtime:
//
//	rt := vm.New()
//	rt.DefineClass(vm.ClassDef{
//	    Name:   "com/example/Counter",
//	    Fields: []vm.FieldDef{{Name: "value", Descriptor: "I", Static: true}},
//	})
//
//	bridge.SetIFieldValue(rt, "com/example/Counter", "value", nil, 42)
//	n := bridge.GetIFieldValue(rt, "com/example/Counter", "value", nil)
//	fmt.Println(n) // 42
//
// # Error Policy
//
// Two disjoint policies apply. The bridge package treats every failure as a
// contract violation by a trusted caller and panics: unresolved classes,
// unresolved or mismatched-descriptor fields, and kind mismatches all abort
// the in-flight call. The lookup package is the single exception: acquiring
// the trusted lookup is feature detection across divergent runtimes, so every
// failure there is a structured, catchable error. The accessor package offers
// a graceful tier on top of the same primitives for callers that prefer error
// returns throughout.
//
// # Thread Safety
//
// The bridge holds no state of its own. Every call is independent and
// re-entrant; concurrent invocation from multiple goroutines is permitted.
// Class and field metadata, and the trusted lookup singleton, are owned and
// synchronized by the host runtime behind the jvm.Env implementation.
package jvmbridge
