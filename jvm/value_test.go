package jvm

import (
	"math"
	"testing"

	"github.com/wippyai/jvm-bridge/descriptor"
)

func TestValueRoundTrip(t *testing.T) {
	if v := Bool(true); !v.AsBool() || v.Kind() != descriptor.KindBool {
		t.Error("bool round trip failed")
	}
	if v := Byte(-5); v.AsByte() != -5 {
		t.Errorf("byte: got %d", v.AsByte())
	}
	if v := Char(0xFFFF); v.AsChar() != 0xFFFF {
		t.Errorf("char: got %d", v.AsChar())
	}
	if v := Short(-32768); v.AsShort() != -32768 {
		t.Errorf("short: got %d", v.AsShort())
	}
	if v := Int(math.MinInt32); v.AsInt() != math.MinInt32 {
		t.Errorf("int: got %d", v.AsInt())
	}
	if v := Long(math.MaxInt64); v.AsLong() != math.MaxInt64 {
		t.Errorf("long: got %d", v.AsLong())
	}
	if v := Float(1.5); v.AsFloat() != 1.5 {
		t.Errorf("float: got %v", v.AsFloat())
	}
	if v := Double(math.Pi); v.AsDouble() != math.Pi {
		t.Errorf("double: got %v", v.AsDouble())
	}
	if v := Ref(nil); v.AsRef() != nil {
		t.Error("null ref round trip failed")
	}
}

func TestValueNaNBitsPreserved(t *testing.T) {
	// A quiet NaN with payload bits must survive the union unchanged.
	bits := uint32(0x7FC00123)
	v := Float(math.Float32frombits(bits))
	if got := math.Float32bits(v.AsFloat()); got != bits {
		t.Errorf("float NaN bits: got %#x, want %#x", got, bits)
	}
}

func TestValueKindMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("extracting a long as int must panic")
		}
	}()
	Long(7).AsInt()
}

func TestValueZero(t *testing.T) {
	tests := []struct {
		kind descriptor.Kind
		want any
	}{
		{descriptor.KindBool, false},
		{descriptor.KindInt, int32(0)},
		{descriptor.KindDouble, float64(0)},
	}
	for _, tt := range tests {
		v := Zero(tt.kind)
		if v.Kind() != tt.kind {
			t.Errorf("Zero(%s).Kind() = %s", tt.kind, v.Kind())
		}
		if got := v.Interface(); got != tt.want {
			t.Errorf("Zero(%s) = %v (%T), want %v", tt.kind, got, got, tt.want)
		}
	}

	if obj, ok := Zero(descriptor.KindObject).TryRef(); !ok || obj != nil {
		t.Error("Zero(object) must be the null reference")
	}
}

func TestTryRef(t *testing.T) {
	if _, ok := Int(1).TryRef(); ok {
		t.Error("TryRef on an int value must report false")
	}
}
