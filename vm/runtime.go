package vm

import (
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/jvm-bridge/descriptor"
	"github.com/wippyai/jvm-bridge/errors"
	"github.com/wippyai/jvm-bridge/jvm"
)

const stringClassName = "java/lang/String"

// Runtime is an in-memory host runtime implementing jvm.Env. It models the
// parts of a JVM the bridge depends on: a class table, exact-match field
// resolution along the superclass chain, typed field storage, and a
// per-runtime pending-error slot.
//
// All methods are safe for concurrent use.
type Runtime struct {
	mu      sync.RWMutex
	classes map[string]*class
	pending error
	log     *zap.Logger
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithLogger routes class definition and throw events to l.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runtime) { r.log = l }
}

// WithTrustedLookup installs the privileged lookup class and its IMPL_LOOKUP
// singleton, modeling a runtime where trusted lookup acquisition succeeds.
// Runtimes built without this option model configurations where the
// privileged class is absent and acquisition must fail gracefully.
func WithTrustedLookup() Option {
	return func(r *Runtime) { r.installTrustedLookup() }
}

// New creates an empty runtime.
func New(opts ...Option) *Runtime {
	r := &Runtime{
		classes: make(map[string]*class),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DefineClass installs a class. The super class, if named, must already be
// defined. Field descriptors are validated syntactically and static slots
// are initialized to their kind's zero value.
func (r *Runtime) DefineClass(def ClassDef) error {
	if def.Name == "" {
		return errors.InvalidInput(errors.PhaseRegistry, "class name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.classes[def.Name]; exists {
		return errors.Duplicate(errors.PhaseRegistry, "class", def.Name)
	}

	var super *class
	if def.Super != "" {
		super = r.classes[def.Super]
		if super == nil {
			return errors.ClassNotFound(errors.PhaseRegistry, def.Super)
		}
	}

	c := &class{
		name:    def.Name,
		super:   super,
		statics: make(map[string]jvm.Value),
	}
	for _, fd := range def.Fields {
		if fd.Name == "" {
			return errors.InvalidInput(errors.PhaseRegistry, "field name cannot be empty")
		}
		kind, ok := descriptor.KindOf(fd.Descriptor)
		if !ok {
			return errors.New(errors.PhaseRegistry, errors.KindInvalidInput).
				Class(def.Name).Field(fd.Name).Descriptor(fd.Descriptor).
				Detail("invalid field descriptor").Build()
		}
		d := &fieldDecl{
			name:      fd.Name,
			desc:      fd.Descriptor,
			kind:      kind,
			static:    fd.Static,
			declaring: c,
		}
		c.decls = append(c.decls, d)
		if fd.Static {
			c.statics[d.key()] = jvm.Zero(kind)
		}
	}

	r.classes[def.Name] = c
	r.log.Debug("class defined",
		zap.String("class", def.Name),
		zap.Int("fields", len(def.Fields)))
	return nil
}

// NewInstance creates an object of the named class with every instance slot,
// including inherited ones, initialized to its kind's zero value.
func (r *Runtime) NewInstance(className string) (jvm.Object, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := r.classes[className]
	if c == nil {
		return nil, errors.ClassNotFound(errors.PhaseResolve, className)
	}
	return newObject(c), nil
}

func newObject(c *class) *object {
	o := &object{class: c, slots: make(map[string]jvm.Value)}
	for cur := c; cur != nil; cur = cur.super {
		for _, d := range cur.decls {
			if !d.static {
				o.slots[d.key()] = jvm.Zero(d.kind)
			}
		}
	}
	return o
}

// NewString creates a java/lang/String instance carrying s. The string class
// is defined lazily on first use.
func (r *Runtime) NewString(s string) jvm.Object {
	r.mu.Lock()
	c := r.classes[stringClassName]
	if c == nil {
		c = &class{name: stringClassName, statics: make(map[string]jvm.Value)}
		r.classes[stringClassName] = c
	}
	r.mu.Unlock()

	return &object{class: c, slots: make(map[string]jvm.Value), str: s}
}

// StringValue extracts the payload of an object created by NewString.
func StringValue(o jvm.Object) (string, bool) {
	obj, ok := o.(*object)
	if !ok || obj.class.name != stringClassName {
		return "", false
	}
	return obj.str, true
}

// FindClass implements jvm.Env.
func (r *Runtime) FindClass(name string) (jvm.Class, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c := r.classes[name]
	if c == nil {
		return nil, errors.ClassNotFound(errors.PhaseResolve, name)
	}
	return c, nil
}

// GetStaticFieldID implements jvm.Env.
func (r *Runtime) GetStaticFieldID(cls jvm.Class, name, desc string) (jvm.FieldID, error) {
	return r.fieldID(cls, name, desc, true)
}

// GetFieldID implements jvm.Env.
func (r *Runtime) GetFieldID(cls jvm.Class, name, desc string) (jvm.FieldID, error) {
	return r.fieldID(cls, name, desc, false)
}

func (r *Runtime) fieldID(cls jvm.Class, name, desc string, static bool) (jvm.FieldID, error) {
	c, err := r.ownClass(cls)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	d := c.findDecl(name, desc, static)
	if d == nil {
		return nil, errors.FieldNotFound(errors.PhaseResolve, c.name, name, desc)
	}
	return d, nil
}

// GetStaticField implements jvm.Env.
func (r *Runtime) GetStaticField(cls jvm.Class, fid jvm.FieldID) (jvm.Value, error) {
	d, err := r.ownField(fid, true)
	if err != nil {
		return jvm.Value{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return d.declaring.statics[d.key()], nil
}

// SetStaticField implements jvm.Env.
func (r *Runtime) SetStaticField(cls jvm.Class, fid jvm.FieldID, v jvm.Value) error {
	d, err := r.ownField(fid, true)
	if err != nil {
		return err
	}
	if v.Kind() != d.kind {
		return errors.KindMismatch(errors.PhaseAccess, d.declaring.name, d.name, v.Kind(), d.kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	d.declaring.statics[d.key()] = v
	return nil
}

// GetField implements jvm.Env.
func (r *Runtime) GetField(on jvm.Object, fid jvm.FieldID) (jvm.Value, error) {
	obj, d, err := r.ownInstanceField(on, fid)
	if err != nil {
		return jvm.Value{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return obj.slots[d.key()], nil
}

// SetField implements jvm.Env.
func (r *Runtime) SetField(on jvm.Object, fid jvm.FieldID, v jvm.Value) error {
	obj, d, err := r.ownInstanceField(on, fid)
	if err != nil {
		return err
	}
	if v.Kind() != d.kind {
		return errors.KindMismatch(errors.PhaseAccess, d.declaring.name, d.name, v.Kind(), d.kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	obj.slots[d.key()] = v
	return nil
}

// Fields implements jvm.Introspector, returning the fields the class itself
// declares (not inherited ones).
func (r *Runtime) Fields(cls jvm.Class) ([]jvm.FieldInfo, error) {
	c, err := r.ownClass(cls)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]jvm.FieldInfo, 0, len(c.decls))
	for _, d := range c.decls {
		infos = append(infos, jvm.FieldInfo{
			Name:       d.name,
			Descriptor: d.desc,
			Static:     d.static,
		})
	}
	return infos, nil
}

// ClassNames returns the internal names of all defined classes.
func (r *Runtime) ClassNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.classes))
	for name := range r.classes {
		names = append(names, name)
	}
	return names
}

// Throw implements jvm.Env.
func (r *Runtime) Throw(err error) {
	r.mu.Lock()
	r.pending = err
	r.mu.Unlock()
	r.log.Debug("pending error raised", zap.Error(err))
}

// PendingError implements jvm.Env.
func (r *Runtime) PendingError() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.pending
}

// ClearPendingError implements jvm.Env.
func (r *Runtime) ClearPendingError() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = nil
}

func (r *Runtime) ownClass(cls jvm.Class) (*class, error) {
	c, ok := cls.(*class)
	if !ok || c == nil {
		return nil, errors.InvalidInput(errors.PhaseResolve, "class handle not owned by this runtime")
	}
	return c, nil
}

func (r *Runtime) ownField(fid jvm.FieldID, static bool) (*fieldDecl, error) {
	d, ok := fid.(*fieldDecl)
	if !ok || d == nil {
		return nil, errors.InvalidInput(errors.PhaseAccess, "field handle not owned by this runtime")
	}
	if d.static != static {
		kind := errors.KindNotStatic
		detail := "instance field accessed through static primitive"
		if static {
			detail = "static field accessed through instance primitive"
		}
		return nil, errors.New(errors.PhaseAccess, kind).
			Class(d.declaring.name).Field(d.name).Detail("%s", detail).Build()
	}
	return d, nil
}

func (r *Runtime) ownInstanceField(on jvm.Object, fid jvm.FieldID) (*object, *fieldDecl, error) {
	d, err := r.ownField(fid, false)
	if err != nil {
		return nil, nil, err
	}
	obj, ok := on.(*object)
	if !ok || obj == nil {
		return nil, nil, errors.NullReceiver(errors.PhaseAccess, d.declaring.name, d.name)
	}
	if _, present := obj.slots[d.key()]; !present {
		return nil, nil, errors.FieldNotFound(errors.PhaseAccess, obj.class.name, d.name, d.desc)
	}
	return obj, d, nil
}

func (r *Runtime) installTrustedLookup() {
	lookupClass := "java/lang/invoke/MethodHandles$Lookup"
	lookupDesc := descriptor.ForClass(lookupClass)

	err := r.DefineClass(ClassDef{
		Name: lookupClass,
		Fields: []FieldDef{
			{Name: "IMPL_LOOKUP", Descriptor: lookupDesc, Static: true},
		},
	})
	if err != nil {
		return // already installed
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.classes[lookupClass]
	singleton := &object{class: c, slots: make(map[string]jvm.Value)}
	c.statics["IMPL_LOOKUP:"+lookupDesc] = jvm.Ref(singleton)
}
