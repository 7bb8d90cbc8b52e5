package accessor

import (
	"github.com/wippyai/jvm-bridge/descriptor"
	"github.com/wippyai/jvm-bridge/errors"
	"github.com/wippyai/jvm-bridge/jvm"
)

// Field is a bound accessor for one field: owner class name, field name, and
// descriptor, validated once at bind time. It holds identifiers only, never
// resolved handles: every Get and Set re-resolves through the environment,
// so a Field stays valid for as long as the class exists and never outlives
// runtime-owned state.
type Field struct {
	env    jvm.Env
	owner  string
	name   string
	desc   string
	kind   descriptor.Kind
	static bool
}

// Bind validates the identifiers and resolves the field once to establish
// that it exists and whether it is static. Unlike the bridge entry points,
// every failure is returned as a structured error.
func Bind(env jvm.Env, owner, name, desc string) (*Field, error) {
	if owner == "" || name == "" {
		return nil, errors.InvalidInput(errors.PhaseResolve, "empty owner class or field name")
	}
	kind, ok := descriptor.KindOf(desc)
	if !ok {
		return nil, errors.New(errors.PhaseResolve, errors.KindInvalidInput).
			Class(owner).Field(name).Descriptor(desc).
			Detail("invalid field descriptor").Build()
	}

	cls, err := env.FindClass(owner)
	if err != nil {
		return nil, err
	}

	static := true
	if _, err := env.GetStaticFieldID(cls, name, desc); err != nil {
		static = false
		if _, err := env.GetFieldID(cls, name, desc); err != nil {
			return nil, err
		}
	}

	return &Field{
		env:    env,
		owner:  owner,
		name:   name,
		desc:   desc,
		kind:   kind,
		static: static,
	}, nil
}

func (f *Field) Owner() string         { return f.owner }
func (f *Field) Name() string          { return f.name }
func (f *Field) Descriptor() string    { return f.desc }
func (f *Field) Kind() descriptor.Kind { return f.kind }
func (f *Field) IsStatic() bool        { return f.static }

// Get reads the field value. For a static field the receiver is ignored
// silently; for an instance field it is required.
func (f *Field) Get(on jvm.Object) (jvm.Value, error) {
	cls, fid, err := f.resolve()
	if err != nil {
		return jvm.Value{}, err
	}

	if f.static {
		return f.env.GetStaticField(cls, fid)
	}
	if on == nil {
		return jvm.Value{}, errors.NullReceiver(errors.PhaseAccess, f.owner, f.name)
	}
	return f.env.GetField(on, fid)
}

// Set writes the field value. The value's kind must match the field's kind;
// a mismatch is reported as an error here rather than reaching the runtime.
func (f *Field) Set(on jvm.Object, v jvm.Value) error {
	if v.Kind() != f.kind {
		return errors.KindMismatch(errors.PhaseAccess, f.owner, f.name, v.Kind(), f.kind)
	}

	cls, fid, err := f.resolve()
	if err != nil {
		return err
	}

	if f.static {
		return f.env.SetStaticField(cls, fid, v)
	}
	if on == nil {
		return errors.NullReceiver(errors.PhaseAccess, f.owner, f.name)
	}
	return f.env.SetField(on, fid, v)
}

func (f *Field) resolve() (jvm.Class, jvm.FieldID, error) {
	cls, err := f.env.FindClass(f.owner)
	if err != nil {
		return nil, nil, err
	}

	var fid jvm.FieldID
	if f.static {
		fid, err = f.env.GetStaticFieldID(cls, f.name, f.desc)
	} else {
		fid, err = f.env.GetFieldID(cls, f.name, f.desc)
	}
	if err != nil {
		return nil, nil, err
	}
	return cls, fid, nil
}
