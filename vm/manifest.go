package vm

import (
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/sync/errgroup"

	"github.com/wippyai/jvm-bridge/errors"
)

// Manifest is a class image: a TOML description of classes and their fields
// that can be loaded into a runtime. Example:
//
//	[[class]]
//	name = "com/example/Counter"
//
//	  [[class.field]]
//	  name = "value"
//	  descriptor = "I"
//	  static = true
type Manifest struct {
	Classes []ManifestClass `toml:"class"`
}

type ManifestClass struct {
	Name   string          `toml:"name"`
	Super  string          `toml:"super"`
	Fields []ManifestField `toml:"field"`
}

type ManifestField struct {
	Name       string `toml:"name"`
	Descriptor string `toml:"descriptor"`
	Static     bool   `toml:"static"`
}

// ParseManifest decodes a class image from TOML.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Manifest("parse class image", err)
	}
	return &m, nil
}

// LoadManifest reads a class image file and defines its classes in order.
func (r *Runtime) LoadManifest(path string) error {
	return r.LoadManifests(path)
}

// LoadManifests reads several class image files. Files are parsed
// concurrently, then classes are defined file by file in argument order so
// superclasses from earlier files are visible to later ones.
func (r *Runtime) LoadManifests(paths ...string) error {
	manifests := make([]*Manifest, len(paths))

	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return errors.Manifest("read class image", err)
			}
			m, err := ParseManifest(data)
			if err != nil {
				return err
			}
			manifests[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, m := range manifests {
		if err := r.define(m); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runtime) define(m *Manifest) error {
	// Within one manifest, definition order follows superclass depth so a
	// class may appear before its super in the file.
	ordered := make([]ManifestClass, len(m.Classes))
	copy(ordered, m.Classes)
	depths := superDepths(m.Classes)
	sort.SliceStable(ordered, func(i, j int) bool {
		return depths[ordered[i].Name] < depths[ordered[j].Name]
	})

	for _, mc := range ordered {
		def := ClassDef{Name: mc.Name, Super: mc.Super}
		for _, mf := range mc.Fields {
			def.Fields = append(def.Fields, FieldDef{
				Name:       mf.Name,
				Descriptor: mf.Descriptor,
				Static:     mf.Static,
			})
		}
		if err := r.DefineClass(def); err != nil {
			return err
		}
	}
	return nil
}

func superDepths(classes []ManifestClass) map[string]int {
	supers := make(map[string]string, len(classes))
	for _, c := range classes {
		supers[c.Name] = c.Super
	}

	depths := make(map[string]int, len(classes))
	var depth func(name string, seen int) int
	depth = func(name string, seen int) int {
		// seen bounds recursion in case of a super cycle; DefineClass
		// reports the actual error.
		if seen > len(classes) {
			return seen
		}
		if d, ok := depths[name]; ok {
			return d
		}
		super := supers[name]
		if super == "" {
			depths[name] = 0
			return 0
		}
		d := depth(super, seen+1) + 1
		depths[name] = d
		return d
	}
	for _, c := range classes {
		depth(c.Name, 0)
	}
	return depths
}
