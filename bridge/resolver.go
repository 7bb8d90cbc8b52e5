package bridge

import (
	"github.com/wippyai/jvm-bridge/errors"
	"github.com/wippyai/jvm-bridge/jvm"
)

// getFieldValue resolves and reads a field. The receiver decides staticness:
// nil resolves the field as static on the owner class, anything else resolves
// it as an instance field. Resolution fully precedes the read.
//
// Every failure panics. This path is invoked only from the kind-specific
// entry points, whose callers are required to have validated their inputs;
// a failure here is a contract violation, not a recoverable condition.
func getFieldValue(env jvm.Env, owner, name, desc string, on jvm.Object) jvm.Value {
	cls, fid := resolveField(env, owner, name, desc, on == nil)

	var v jvm.Value
	var err error
	if on == nil {
		v, err = env.GetStaticField(cls, fid)
	} else {
		v, err = env.GetField(on, fid)
	}
	if err != nil {
		panic(errors.New(errors.PhaseAccess, errors.KindInvalidData).
			Class(owner).Field(name).Descriptor(desc).
			Detail("unable to retrieve field value").Cause(err).Build())
	}
	return v
}

// setFieldValue resolves and writes a field. Resolution fully precedes the
// write, so a failed set never leaves the field half-modified. Same fatal
// policy as getFieldValue.
func setFieldValue(env jvm.Env, owner, name, desc string, on jvm.Object, value jvm.Value) {
	cls, fid := resolveField(env, owner, name, desc, on == nil)

	var err error
	if on == nil {
		err = env.SetStaticField(cls, fid, value)
	} else {
		err = env.SetField(on, fid, value)
	}
	if err != nil {
		panic(errors.New(errors.PhaseAccess, errors.KindInvalidData).
			Class(owner).Field(name).Descriptor(desc).
			Detail("unable to set field value").Cause(err).Build())
	}
}

func resolveField(env jvm.Env, owner, name, desc string, static bool) (jvm.Class, jvm.FieldID) {
	if owner == "" || name == "" {
		panic(errors.InvalidInput(errors.PhaseResolve, "empty owner class or field name"))
	}

	cls, err := env.FindClass(owner)
	if err != nil {
		panic(errors.New(errors.PhaseResolve, errors.KindClassNotFound).
			Class(owner).Detail("invalid target class given").Cause(err).Build())
	}

	var fid jvm.FieldID
	if static {
		fid, err = env.GetStaticFieldID(cls, name, desc)
	} else {
		fid, err = env.GetFieldID(cls, name, desc)
	}
	if err != nil {
		panic(errors.New(errors.PhaseResolve, errors.KindFieldNotFound).
			Class(owner).Field(name).Descriptor(desc).
			Detail("illegal field given").Cause(err).Build())
	}

	debugf("resolved %s.%s %s static=%v", owner, name, desc, static)
	return cls, fid
}
