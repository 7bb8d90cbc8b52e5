package vm

import (
	"testing"
)

func TestInstanceTable(t *testing.T) {
	rt := New()
	if err := rt.DefineClass(ClassDef{Name: "com/example/A"}); err != nil {
		t.Fatal(err)
	}
	obj, err := rt.NewInstance("com/example/A")
	if err != nil {
		t.Fatal(err)
	}

	table := NewInstanceTable()

	if err := table.Put("a1", obj); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := table.Put("a1", obj); err == nil {
		t.Fatal("duplicate name accepted")
	}
	if err := table.Put("", obj); err == nil {
		t.Fatal("empty name accepted")
	}

	got, ok := table.Get("a1")
	if !ok || got != obj {
		t.Fatal("get failed")
	}
	if _, ok := table.Get("missing"); ok {
		t.Fatal("get of unknown name succeeded")
	}

	if names := table.Names(); len(names) != 1 || names[0] != "a1" {
		t.Fatalf("names = %v", names)
	}

	removed, ok := table.Remove("a1")
	if !ok || removed != obj {
		t.Fatal("remove failed")
	}
	if table.Len() != 0 {
		t.Fatal("table not empty after remove")
	}
}
