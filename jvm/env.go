package jvm

// Class is an opaque handle to a resolved runtime class.
type Class interface {
	// Name returns the class internal name, e.g. "java/lang/String".
	Name() string
}

// Object is an opaque reference to a live runtime object. A nil Object is
// the "no receiver" sentinel: field operations without a receiver resolve
// the field as static.
type Object interface {
	Class() Class
}

// FieldID is an opaque handle to a resolved field. It is only valid for the
// class it was resolved from and must not outlive the call that produced it.
type FieldID interface {
	Name() string
	Descriptor() string
	IsStatic() bool
}

// Env is the contract the host runtime must provide: class resolution by
// internal name, field resolution by exact (name, descriptor) match, typed
// field access, and a pending-error slot that a caller can raise into, read,
// and clear.
//
// Implementations own all synchronization. The bridge performs no locking
// and never assumes exclusive access to runtime metadata.
type Env interface {
	// FindClass resolves a class by internal name ("com/example/Counter").
	FindClass(name string) (Class, error)

	// GetStaticFieldID resolves a static field declared on the class or one
	// of its superclasses. The descriptor must match exactly; a name match
	// with a different descriptor is a resolution failure.
	GetStaticFieldID(c Class, name, descriptor string) (FieldID, error)

	// GetFieldID resolves an instance field, searching the class and its
	// superclasses. Exact-match rules are the same as for static fields.
	GetFieldID(c Class, name, descriptor string) (FieldID, error)

	GetStaticField(c Class, f FieldID) (Value, error)
	SetStaticField(c Class, f FieldID, v Value) error

	GetField(o Object, f FieldID) (Value, error)
	SetField(o Object, f FieldID, v Value) error

	// Throw records err as the pending error condition on the environment.
	Throw(err error)

	// PendingError returns the current pending error condition, if any.
	PendingError() error

	// ClearPendingError discards any pending error condition.
	ClearPendingError()
}

// FieldInfo describes one field of a class for introspection.
type FieldInfo struct {
	Name       string
	Descriptor string
	Static     bool
}

// Introspector is an optional interface an Env may implement to enumerate
// the fields a class declares (not including inherited fields). The bridge
// never needs it; it exists for matchers and tooling.
type Introspector interface {
	Fields(c Class) ([]FieldInfo, error)
}
