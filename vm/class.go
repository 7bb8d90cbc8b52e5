package vm

import (
	"github.com/wippyai/jvm-bridge/descriptor"
	"github.com/wippyai/jvm-bridge/jvm"
)

// FieldDef describes one field of a class definition.
type FieldDef struct {
	Name       string
	Descriptor string
	Static     bool
}

// ClassDef describes a class to install into the runtime. Super names an
// already-defined class or is empty for a root class.
type ClassDef struct {
	Name   string
	Super  string
	Fields []FieldDef
}

// class implements jvm.Class.
type class struct {
	name    string
	super   *class
	decls   []*fieldDecl
	statics map[string]jvm.Value
}

func (c *class) Name() string { return c.name }

// fieldDecl implements jvm.FieldID. The declaring class pins where static
// storage lives when the field was resolved through a subclass.
type fieldDecl struct {
	name      string
	desc      string
	kind      descriptor.Kind
	static    bool
	declaring *class
}

func (f *fieldDecl) Name() string       { return f.name }
func (f *fieldDecl) Descriptor() string { return f.desc }
func (f *fieldDecl) IsStatic() bool     { return f.static }

// key identifies a field slot. The descriptor is part of the key so two
// fields can never alias across descriptors.
func (f *fieldDecl) key() string { return f.name + ":" + f.desc }

// object implements jvm.Object. str carries the payload of string objects.
type object struct {
	class *class
	slots map[string]jvm.Value
	str   string
}

func (o *object) Class() jvm.Class { return o.class }

// findDecl walks the superclass chain for an exact (name, descriptor,
// staticness) match. A name match with a different descriptor is not a match.
func (c *class) findDecl(name, desc string, static bool) *fieldDecl {
	for cur := c; cur != nil; cur = cur.super {
		for _, d := range cur.decls {
			if d.name == name && d.desc == desc && d.static == static {
				return d
			}
		}
	}
	return nil
}
