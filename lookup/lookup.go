package lookup

import (
	"github.com/wippyai/jvm-bridge/descriptor"
	"github.com/wippyai/jvm-bridge/errors"
	"github.com/wippyai/jvm-bridge/jvm"
)

const (
	// LookupClassName is the internal name of the runtime class holding the
	// trusted lookup singleton.
	LookupClassName = "java/lang/invoke/MethodHandles$Lookup"

	// ImplLookupField is the privileged static field holding the singleton.
	ImplLookupField = "IMPL_LOOKUP"
)

// LookupDescriptor is the type descriptor of the trusted lookup field.
var LookupDescriptor = descriptor.ForClass(LookupClassName)

// AcquireTrustedLookup retrieves the runtime's trusted lookup object, the
// capability that suppresses normal visibility checks for reflective
// operations. Each call performs a fresh lookup; the singleton is owned by
// the runtime and must never be cached by the caller.
//
// Unlike the bridge entry points this operation never panics. Availability
// of the privileged class and field varies across runtime versions and
// configurations, so every failure is reported as a structured error the
// caller can inspect and handle. Any pre-existing pending error state on the
// environment is cleared first, and the returned error is also raised into
// the environment's pending-error slot.
func AcquireTrustedLookup(env jvm.Env) (jvm.Object, error) {
	env.ClearPendingError()

	cls, err := env.FindClass(LookupClassName)
	if err != nil {
		return nil, raise(env, errors.New(errors.PhaseLookup, errors.KindClassNotFound).
			Class(LookupClassName).
			Detail("privileged lookup class not resolvable").
			Cause(err).Build())
	}

	fid, err := env.GetStaticFieldID(cls, ImplLookupField, LookupDescriptor)
	if err != nil {
		return nil, raise(env, errors.New(errors.PhaseLookup, errors.KindFieldNotFound).
			Class(LookupClassName).Field(ImplLookupField).Descriptor(LookupDescriptor).
			Detail("privileged lookup field not resolvable").
			Cause(err).Build())
	}

	v, err := env.GetStaticField(cls, fid)
	if err != nil {
		return nil, raise(env, errors.New(errors.PhaseLookup, errors.KindInvalidData).
			Class(LookupClassName).Field(ImplLookupField).
			Detail("unable to read privileged lookup field").
			Cause(err).Build())
	}

	obj, ok := v.TryRef()
	if !ok {
		return nil, raise(env, errors.New(errors.PhaseLookup, errors.KindWrongHandleType).
			Class(LookupClassName).Field(ImplLookupField).
			Detail("field holds a %s, not an object reference", v.Kind()).Build())
	}
	if obj == nil || obj.Class() == nil || obj.Class().Name() != LookupClassName {
		got := "null"
		if obj != nil && obj.Class() != nil {
			got = obj.Class().Name()
		}
		return nil, raise(env, errors.WrongHandleType(errors.PhaseLookup, LookupClassName, got))
	}

	return obj, nil
}

// raise records err as the environment's pending error condition and returns
// it, so the failure is observable both as a Go error and through the
// runtime's own error channel.
func raise(env jvm.Env, err *errors.Error) error {
	env.Throw(err)
	return err
}
