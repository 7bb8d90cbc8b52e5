package accessor

import (
	"strings"

	"github.com/wippyai/jvm-bridge/descriptor"
	"github.com/wippyai/jvm-bridge/errors"
	"github.com/wippyai/jvm-bridge/jvm"
)

// Matcher selects a field by predicate instead of exact identifiers.
// Zero-valued criteria are ignored; set criteria must all hold.
type Matcher struct {
	// Name matches the field name exactly.
	Name string

	// NamePrefix matches any field whose name starts with the prefix.
	NamePrefix string

	// Descriptor matches the field descriptor exactly.
	Descriptor string

	// Kind matches the kind the field descriptor resolves to.
	// HasKind distinguishes "match KindBool" from "no kind criterion".
	Kind    descriptor.Kind
	HasKind bool

	// Static, if non-nil, matches the field's staticness.
	Static *bool
}

func (m Matcher) matches(fi jvm.FieldInfo) bool {
	if m.Name != "" && fi.Name != m.Name {
		return false
	}
	if m.NamePrefix != "" && !strings.HasPrefix(fi.Name, m.NamePrefix) {
		return false
	}
	if m.Descriptor != "" && fi.Descriptor != m.Descriptor {
		return false
	}
	if m.HasKind {
		kind, ok := descriptor.KindOf(fi.Descriptor)
		if !ok || kind != m.Kind {
			return false
		}
	}
	if m.Static != nil && fi.Static != *m.Static {
		return false
	}
	return true
}

// Match finds the first declared field of owner satisfying the matcher and
// binds an accessor to it. The environment must implement jvm.Introspector;
// environments that cannot enumerate fields report an invalid input error.
func Match(env jvm.Env, owner string, m Matcher) (*Field, error) {
	intro, ok := env.(jvm.Introspector)
	if !ok {
		return nil, errors.InvalidInput(errors.PhaseResolve, "environment does not support field enumeration")
	}

	cls, err := env.FindClass(owner)
	if err != nil {
		return nil, err
	}

	fields, err := intro.Fields(cls)
	if err != nil {
		return nil, err
	}

	for _, fi := range fields {
		if m.matches(fi) {
			return Bind(env, owner, fi.Name, fi.Descriptor)
		}
	}
	return nil, errors.New(errors.PhaseResolve, errors.KindFieldNotFound).
		Class(owner).Detail("no field satisfies the matcher").Build()
}
