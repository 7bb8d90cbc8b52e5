package vm

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wippyai/jvm-bridge/descriptor"
	"github.com/wippyai/jvm-bridge/errors"
	"github.com/wippyai/jvm-bridge/jvm"
)

func kindIs(err error, phase errors.Phase, kind errors.Kind) bool {
	return stderrors.Is(err, &errors.Error{Phase: phase, Kind: kind})
}

func TestDefineClass(t *testing.T) {
	rt := New()

	err := rt.DefineClass(ClassDef{
		Name: "com/example/A",
		Fields: []FieldDef{
			{Name: "x", Descriptor: "I"},
			{Name: "y", Descriptor: "J", Static: true},
		},
	})
	if err != nil {
		t.Fatalf("define: %v", err)
	}

	if _, err := rt.FindClass("com/example/A"); err != nil {
		t.Fatalf("find: %v", err)
	}

	// Duplicates are rejected.
	err = rt.DefineClass(ClassDef{Name: "com/example/A"})
	if !kindIs(err, errors.PhaseRegistry, errors.KindDuplicate) {
		t.Fatalf("duplicate define: %v", err)
	}

	// Unknown supers are rejected.
	err = rt.DefineClass(ClassDef{Name: "com/example/B", Super: "no/such/Super"})
	if !kindIs(err, errors.PhaseRegistry, errors.KindClassNotFound) {
		t.Fatalf("missing super: %v", err)
	}

	// Invalid descriptors are rejected.
	err = rt.DefineClass(ClassDef{
		Name:   "com/example/C",
		Fields: []FieldDef{{Name: "bad", Descriptor: "Q"}},
	})
	if !kindIs(err, errors.PhaseRegistry, errors.KindInvalidInput) {
		t.Fatalf("invalid descriptor: %v", err)
	}
}

func TestFieldResolutionExactMatch(t *testing.T) {
	rt := New()
	if err := rt.DefineClass(ClassDef{
		Name:   "com/example/A",
		Fields: []FieldDef{{Name: "x", Descriptor: "I"}},
	}); err != nil {
		t.Fatal(err)
	}
	cls, _ := rt.FindClass("com/example/A")

	if _, err := rt.GetFieldID(cls, "x", "I"); err != nil {
		t.Fatalf("exact match failed: %v", err)
	}

	// Right name, wrong descriptor: not found.
	_, err := rt.GetFieldID(cls, "x", "J")
	if !kindIs(err, errors.PhaseResolve, errors.KindFieldNotFound) {
		t.Fatalf("wrong descriptor: %v", err)
	}

	// Instance field is invisible to static resolution.
	_, err = rt.GetStaticFieldID(cls, "x", "I")
	if !kindIs(err, errors.PhaseResolve, errors.KindFieldNotFound) {
		t.Fatalf("staticness crossover: %v", err)
	}
}

func TestSuperclassResolution(t *testing.T) {
	rt := New()
	if err := rt.DefineClass(ClassDef{
		Name: "com/example/Base",
		Fields: []FieldDef{
			{Name: "inherited", Descriptor: "I"},
			{Name: "shared", Descriptor: "J", Static: true},
		},
	}); err != nil {
		t.Fatal(err)
	}
	if err := rt.DefineClass(ClassDef{
		Name:  "com/example/Derived",
		Super: "com/example/Base",
	}); err != nil {
		t.Fatal(err)
	}

	derived, _ := rt.FindClass("com/example/Derived")

	// Instance fields resolve up the chain and exist on instances.
	fid, err := rt.GetFieldID(derived, "inherited", "I")
	if err != nil {
		t.Fatalf("inherited instance field: %v", err)
	}
	obj, err := rt.NewInstance("com/example/Derived")
	if err != nil {
		t.Fatal(err)
	}
	if err := rt.SetField(obj, fid, jvm.Int(11)); err != nil {
		t.Fatalf("set inherited: %v", err)
	}
	v, err := rt.GetField(obj, fid)
	if err != nil || v.AsInt() != 11 {
		t.Fatalf("get inherited: %v %v", v, err)
	}

	// Static fields resolve up the chain and share the declaring class slot.
	sfid, err := rt.GetStaticFieldID(derived, "shared", "J")
	if err != nil {
		t.Fatalf("inherited static field: %v", err)
	}
	if err := rt.SetStaticField(derived, sfid, jvm.Long(99)); err != nil {
		t.Fatal(err)
	}
	base, _ := rt.FindClass("com/example/Base")
	bfid, _ := rt.GetStaticFieldID(base, "shared", "J")
	v, err = rt.GetStaticField(base, bfid)
	if err != nil || v.AsLong() != 99 {
		t.Fatalf("base sees %v, %v", v, err)
	}
}

func TestSetRejectsKindMismatch(t *testing.T) {
	rt := New()
	if err := rt.DefineClass(ClassDef{
		Name:   "com/example/A",
		Fields: []FieldDef{{Name: "x", Descriptor: "I", Static: true}},
	}); err != nil {
		t.Fatal(err)
	}
	cls, _ := rt.FindClass("com/example/A")
	fid, _ := rt.GetStaticFieldID(cls, "x", "I")

	err := rt.SetStaticField(cls, fid, jvm.Long(1))
	if !kindIs(err, errors.PhaseAccess, errors.KindKindMismatch) {
		t.Fatalf("got %v", err)
	}

	// The failed set left the original zero value in place.
	v, _ := rt.GetStaticField(cls, fid)
	if v.AsInt() != 0 {
		t.Fatalf("field modified by failed set: %v", v.Interface())
	}
}

func TestZeroInitialization(t *testing.T) {
	rt := New()
	if err := rt.DefineClass(ClassDef{
		Name: "com/example/Fresh",
		Fields: []FieldDef{
			{Name: "n", Descriptor: "D"},
			{Name: "o", Descriptor: "Ljava/lang/Object;"},
		},
	}); err != nil {
		t.Fatal(err)
	}

	obj, _ := rt.NewInstance("com/example/Fresh")
	cls, _ := rt.FindClass("com/example/Fresh")

	nid, _ := rt.GetFieldID(cls, "n", "D")
	v, _ := rt.GetField(obj, nid)
	if v.AsDouble() != 0 {
		t.Errorf("double zero = %v", v.AsDouble())
	}

	oid, _ := rt.GetFieldID(cls, "o", "Ljava/lang/Object;")
	v, _ = rt.GetField(obj, oid)
	if v.AsRef() != nil {
		t.Error("object field not initialized to null")
	}
}

func TestPendingError(t *testing.T) {
	rt := New()
	if rt.PendingError() != nil {
		t.Fatal("fresh runtime has a pending error")
	}

	cond := stderrors.New("raised")
	rt.Throw(cond)
	if rt.PendingError() != cond {
		t.Fatal("pending error not observable")
	}

	rt.ClearPendingError()
	if rt.PendingError() != nil {
		t.Fatal("pending error survived clear")
	}
}

func TestNewString(t *testing.T) {
	rt := New()
	s := rt.NewString("hej")

	if s.Class().Name() != "java/lang/String" {
		t.Fatalf("class = %s", s.Class().Name())
	}
	if got, ok := StringValue(s); !ok || got != "hej" {
		t.Fatalf("StringValue = %q, %v", got, ok)
	}
	if _, ok := StringValue(nil); ok {
		t.Fatal("StringValue on nil must report false")
	}
}

func TestIntrospection(t *testing.T) {
	rt := New()
	if err := rt.DefineClass(ClassDef{
		Name: "com/example/A",
		Fields: []FieldDef{
			{Name: "x", Descriptor: "I"},
			{Name: "y", Descriptor: "Z", Static: true},
		},
	}); err != nil {
		t.Fatal(err)
	}
	cls, _ := rt.FindClass("com/example/A")

	fields, err := rt.Fields(cls)
	if err != nil {
		t.Fatal(err)
	}
	want := []jvm.FieldInfo{
		{Name: "x", Descriptor: "I"},
		{Name: "y", Descriptor: "Z", Static: true},
	}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestForeignHandlesRejected(t *testing.T) {
	rt := New()

	type foreignClass struct{ jvm.Class }
	_, err := rt.GetFieldID(foreignClass{}, "x", "I")
	if !kindIs(err, errors.PhaseResolve, errors.KindInvalidInput) {
		t.Fatalf("got %v", err)
	}
}

func TestTrustedLookupInstall(t *testing.T) {
	rt := New(WithTrustedLookup())

	cls, err := rt.FindClass("java/lang/invoke/MethodHandles$Lookup")
	if err != nil {
		t.Fatalf("lookup class missing: %v", err)
	}
	desc := descriptor.ForClass("java/lang/invoke/MethodHandles$Lookup")
	fid, err := rt.GetStaticFieldID(cls, "IMPL_LOOKUP", desc)
	if err != nil {
		t.Fatalf("IMPL_LOOKUP missing: %v", err)
	}
	v, err := rt.GetStaticField(cls, fid)
	if err != nil {
		t.Fatal(err)
	}
	obj := v.AsRef()
	if obj == nil || obj.Class() != cls {
		t.Fatal("IMPL_LOOKUP does not hold a lookup instance")
	}
}
