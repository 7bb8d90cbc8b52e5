package vm

import (
	"sort"
	"sync"

	"github.com/wippyai/jvm-bridge/errors"
	"github.com/wippyai/jvm-bridge/jvm"
)

// InstanceTable is a named registry of live objects. The bridge itself never
// needs one, since receivers are passed directly, but tooling that addresses
// instances by name (the jfield CLI, test fixtures) keeps them here.
type InstanceTable struct {
	mu     sync.RWMutex
	byName map[string]jvm.Object
}

func NewInstanceTable() *InstanceTable {
	return &InstanceTable{byName: make(map[string]jvm.Object)}
}

// Put registers obj under name. Names are unique.
func (t *InstanceTable) Put(name string, obj jvm.Object) error {
	if name == "" {
		return errors.InvalidInput(errors.PhaseRegistry, "instance name cannot be empty")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.byName[name]; exists {
		return errors.Duplicate(errors.PhaseRegistry, "instance", name)
	}
	t.byName[name] = obj
	return nil
}

// Get retrieves an instance by name.
func (t *InstanceTable) Get(name string) (jvm.Object, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	obj, ok := t.byName[name]
	return obj, ok
}

// Remove drops an instance and returns it if it was present.
func (t *InstanceTable) Remove(name string) (jvm.Object, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	obj, ok := t.byName[name]
	if ok {
		delete(t.byName, name)
	}
	return obj, ok
}

// Names returns the registered names in sorted order.
func (t *InstanceTable) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, 0, len(t.byName))
	for name := range t.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered instances.
func (t *InstanceTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byName)
}
