package vm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wippyai/jvm-bridge/jvm"
)

const counterImage = `
[[class]]
name = "com/example/Counter"

  [[class.field]]
  name = "value"
  descriptor = "I"
  static = true
`

// The derived class appears before its super; loading must still succeed.
const hierarchyImage = `
[[class]]
name = "com/example/Derived"
super = "com/example/Base"

  [[class.field]]
  name = "extra"
  descriptor = "Z"

[[class]]
name = "com/example/Base"

  [[class.field]]
  name = "inherited"
  descriptor = "J"
`

func writeImage(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest([]byte(counterImage))
	if err != nil {
		t.Fatal(err)
	}

	want := &Manifest{Classes: []ManifestClass{{
		Name: "com/example/Counter",
		Fields: []ManifestField{
			{Name: "value", Descriptor: "I", Static: true},
		},
	}}}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("manifest mismatch (-want +got):\n%s", diff)
	}
}

func TestParseManifestRejectsBadTOML(t *testing.T) {
	if _, err := ParseManifest([]byte("[[class]\nname=")); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLoadManifest(t *testing.T) {
	rt := New()
	path := writeImage(t, "counter.toml", counterImage)

	if err := rt.LoadManifest(path); err != nil {
		t.Fatalf("load: %v", err)
	}

	cls, err := rt.FindClass("com/example/Counter")
	if err != nil {
		t.Fatal(err)
	}
	fid, err := rt.GetStaticFieldID(cls, "value", "I")
	if err != nil {
		t.Fatal(err)
	}
	if err := rt.SetStaticField(cls, fid, jvm.Int(3)); err != nil {
		t.Fatal(err)
	}
}

func TestLoadManifestOrdersSupers(t *testing.T) {
	rt := New()
	path := writeImage(t, "hierarchy.toml", hierarchyImage)

	if err := rt.LoadManifest(path); err != nil {
		t.Fatalf("load: %v", err)
	}

	derived, err := rt.FindClass("com/example/Derived")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := rt.GetFieldID(derived, "inherited", "J"); err != nil {
		t.Fatalf("inherited field not resolvable: %v", err)
	}
}

func TestLoadManifestsAcrossFiles(t *testing.T) {
	rt := New()
	base := writeImage(t, "base.toml", `
[[class]]
name = "com/example/Base"
`)
	derived := writeImage(t, "derived.toml", `
[[class]]
name = "com/example/Derived"
super = "com/example/Base"
`)

	// Argument order decides definition order across files.
	if err := rt.LoadManifests(base, derived); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := rt.FindClass("com/example/Derived"); err != nil {
		t.Fatal(err)
	}
}

func TestLoadManifestMissingFile(t *testing.T) {
	rt := New()
	if err := rt.LoadManifest(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
