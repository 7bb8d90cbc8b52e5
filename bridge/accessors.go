package bridge

import (
	"github.com/wippyai/jvm-bridge/descriptor"
	"github.com/wippyai/jvm-bridge/jvm"
)

// The entry points below mirror the host runtime's per-kind native call
// convention: one get/set pair per primitive kind, named by descriptor tag,
// plus one pair for object fields. Primitive pairs synthesize the descriptor
// from the kind; only the object pair takes an explicit descriptor, since any
// object type is admissible there.
//
// All entry points share the resolver's fatal policy and additionally panic
// if the resolved field's kind differs from the entry point's declared kind.
// A getInt on a long field aborts; it never truncates or reinterprets bits.

// GetObjectFieldValue returns the object reference held by the named field.
// The descriptor selects the field's exact reference type, e.g.
// "Ljava/lang/String;". A nil receiver reads the field as static, a live
// receiver as an instance field. Panics if the field cannot be resolved or
// does not hold an object reference.
func GetObjectFieldValue(env jvm.Env, owner, name, signature string, on jvm.Object) jvm.Object {
	return getFieldValue(env, owner, name, signature, on).AsRef()
}

// SetObjectFieldValue sets the named object field to val. Resolution and
// failure behavior match GetObjectFieldValue.
func SetObjectFieldValue(env jvm.Env, owner, name, signature string, on jvm.Object, val jvm.Object) {
	setFieldValue(env, owner, name, signature, on, jvm.Ref(val))
}

// GetZFieldValue returns the value of a boolean field.
func GetZFieldValue(env jvm.Env, owner, name string, on jvm.Object) bool {
	return getFieldValue(env, owner, name, descriptor.KindBool.TagString(), on).AsBool()
}

// SetZFieldValue sets the value of a boolean field.
func SetZFieldValue(env jvm.Env, owner, name string, on jvm.Object, val bool) {
	setFieldValue(env, owner, name, descriptor.KindBool.TagString(), on, jvm.Bool(val))
}

// GetBFieldValue returns the value of a byte field.
func GetBFieldValue(env jvm.Env, owner, name string, on jvm.Object) int8 {
	return getFieldValue(env, owner, name, descriptor.KindByte.TagString(), on).AsByte()
}

// SetBFieldValue sets the value of a byte field.
func SetBFieldValue(env jvm.Env, owner, name string, on jvm.Object, val int8) {
	setFieldValue(env, owner, name, descriptor.KindByte.TagString(), on, jvm.Byte(val))
}

// GetCFieldValue returns the value of a char field as a UTF-16 code unit.
func GetCFieldValue(env jvm.Env, owner, name string, on jvm.Object) uint16 {
	return getFieldValue(env, owner, name, descriptor.KindChar.TagString(), on).AsChar()
}

// SetCFieldValue sets the value of a char field.
func SetCFieldValue(env jvm.Env, owner, name string, on jvm.Object, val uint16) {
	setFieldValue(env, owner, name, descriptor.KindChar.TagString(), on, jvm.Char(val))
}

// GetSFieldValue returns the value of a short field.
func GetSFieldValue(env jvm.Env, owner, name string, on jvm.Object) int16 {
	return getFieldValue(env, owner, name, descriptor.KindShort.TagString(), on).AsShort()
}

// SetSFieldValue sets the value of a short field.
func SetSFieldValue(env jvm.Env, owner, name string, on jvm.Object, val int16) {
	setFieldValue(env, owner, name, descriptor.KindShort.TagString(), on, jvm.Short(val))
}

// GetIFieldValue returns the value of an int field.
func GetIFieldValue(env jvm.Env, owner, name string, on jvm.Object) int32 {
	return getFieldValue(env, owner, name, descriptor.KindInt.TagString(), on).AsInt()
}

// SetIFieldValue sets the value of an int field.
func SetIFieldValue(env jvm.Env, owner, name string, on jvm.Object, val int32) {
	setFieldValue(env, owner, name, descriptor.KindInt.TagString(), on, jvm.Int(val))
}

// GetJFieldValue returns the value of a long field.
func GetJFieldValue(env jvm.Env, owner, name string, on jvm.Object) int64 {
	return getFieldValue(env, owner, name, descriptor.KindLong.TagString(), on).AsLong()
}

// SetJFieldValue sets the value of a long field.
func SetJFieldValue(env jvm.Env, owner, name string, on jvm.Object, val int64) {
	setFieldValue(env, owner, name, descriptor.KindLong.TagString(), on, jvm.Long(val))
}

// GetFFieldValue returns the value of a float field.
func GetFFieldValue(env jvm.Env, owner, name string, on jvm.Object) float32 {
	return getFieldValue(env, owner, name, descriptor.KindFloat.TagString(), on).AsFloat()
}

// SetFFieldValue sets the value of a float field.
func SetFFieldValue(env jvm.Env, owner, name string, on jvm.Object, val float32) {
	setFieldValue(env, owner, name, descriptor.KindFloat.TagString(), on, jvm.Float(val))
}

// GetDFieldValue returns the value of a double field.
func GetDFieldValue(env jvm.Env, owner, name string, on jvm.Object) float64 {
	return getFieldValue(env, owner, name, descriptor.KindDouble.TagString(), on).AsDouble()
}

// SetDFieldValue sets the value of a double field.
func SetDFieldValue(env jvm.Env, owner, name string, on jvm.Object, val float64) {
	setFieldValue(env, owner, name, descriptor.KindDouble.TagString(), on, jvm.Double(val))
}
