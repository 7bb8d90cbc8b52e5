package jvm

import (
	"fmt"
	"math"

	"github.com/wippyai/jvm-bridge/descriptor"
)

// Value is a tagged union over the eight primitive kinds plus object
// references. Exactly one tag is active per value. The typed extractors
// (AsBool, AsInt, ...) assert the active tag and panic on mismatch: a
// mismatch means the caller invoked the wrong kind-specific entry point,
// which is a contract violation, never a recoverable condition.
//
// Primitive payloads are stored as raw bits so a value is never silently
// truncated or reinterpreted across kinds.
type Value struct {
	kind descriptor.Kind
	bits uint64
	ref  Object
}

func Bool(v bool) Value {
	var bits uint64
	if v {
		bits = 1
	}
	return Value{kind: descriptor.KindBool, bits: bits}
}

func Byte(v int8) Value {
	return Value{kind: descriptor.KindByte, bits: uint64(uint8(v))}
}

// Char carries a UTF-16 code unit, matching the JVM's 16-bit unsigned char.
func Char(v uint16) Value {
	return Value{kind: descriptor.KindChar, bits: uint64(v)}
}

func Short(v int16) Value {
	return Value{kind: descriptor.KindShort, bits: uint64(uint16(v))}
}

func Int(v int32) Value {
	return Value{kind: descriptor.KindInt, bits: uint64(uint32(v))}
}

func Long(v int64) Value {
	return Value{kind: descriptor.KindLong, bits: uint64(v)}
}

func Float(v float32) Value {
	return Value{kind: descriptor.KindFloat, bits: uint64(math.Float32bits(v))}
}

func Double(v float64) Value {
	return Value{kind: descriptor.KindDouble, bits: math.Float64bits(v)}
}

// Ref wraps an object reference. A nil reference is a valid object value
// (the null reference), distinct from the zero Value.
func Ref(o Object) Value {
	return Value{kind: descriptor.KindObject, ref: o}
}

// Zero returns the default value for a kind: false, numeric zero, or null.
func Zero(k descriptor.Kind) Value {
	return Value{kind: k}
}

func (v Value) Kind() descriptor.Kind {
	return v.kind
}

func (v Value) AsBool() bool {
	v.mustBe(descriptor.KindBool)
	return v.bits != 0
}

func (v Value) AsByte() int8 {
	v.mustBe(descriptor.KindByte)
	return int8(uint8(v.bits))
}

func (v Value) AsChar() uint16 {
	v.mustBe(descriptor.KindChar)
	return uint16(v.bits)
}

func (v Value) AsShort() int16 {
	v.mustBe(descriptor.KindShort)
	return int16(uint16(v.bits))
}

func (v Value) AsInt() int32 {
	v.mustBe(descriptor.KindInt)
	return int32(uint32(v.bits))
}

func (v Value) AsLong() int64 {
	v.mustBe(descriptor.KindLong)
	return int64(v.bits)
}

func (v Value) AsFloat() float32 {
	v.mustBe(descriptor.KindFloat)
	return math.Float32frombits(uint32(v.bits))
}

func (v Value) AsDouble() float64 {
	v.mustBe(descriptor.KindDouble)
	return math.Float64frombits(v.bits)
}

func (v Value) AsRef() Object {
	v.mustBe(descriptor.KindObject)
	return v.ref
}

// TryRef returns the object reference without asserting the tag, for paths
// that must degrade gracefully instead of aborting.
func (v Value) TryRef() (Object, bool) {
	if v.kind != descriptor.KindObject {
		return nil, false
	}
	return v.ref, true
}

// Interface returns the payload as a Go value, for display and encoding.
func (v Value) Interface() any {
	switch v.kind {
	case descriptor.KindBool:
		return v.bits != 0
	case descriptor.KindByte:
		return int8(uint8(v.bits))
	case descriptor.KindChar:
		return uint16(v.bits)
	case descriptor.KindShort:
		return int16(uint16(v.bits))
	case descriptor.KindInt:
		return int32(uint32(v.bits))
	case descriptor.KindLong:
		return int64(v.bits)
	case descriptor.KindFloat:
		return math.Float32frombits(uint32(v.bits))
	case descriptor.KindDouble:
		return math.Float64frombits(v.bits)
	default:
		return v.ref
	}
}

func (v Value) mustBe(k descriptor.Kind) {
	if v.kind != k {
		panic(fmt.Sprintf("jvm: value holds %s, extracted as %s", v.kind, k))
	}
}
