package descriptor

import "strings"

// ForClass builds the object descriptor for a class internal name,
// e.g. "java/lang/String" -> "Ljava/lang/String;".
func ForClass(internalName string) string {
	return "L" + internalName + ";"
}

// ClassName extracts the class internal name from an object descriptor.
// It returns false if the descriptor is not of the L<name>; form.
func ClassName(desc string) (string, bool) {
	if len(desc) < 3 || desc[0] != 'L' || desc[len(desc)-1] != ';' {
		return "", false
	}
	return desc[1 : len(desc)-1], true
}

// KindOf returns the kind a descriptor string resolves to. Array descriptors
// are object references regardless of their element type.
func KindOf(desc string) (Kind, bool) {
	if len(desc) == 0 {
		return 0, false
	}
	switch desc[0] {
	case 'L':
		if !Valid(desc) {
			return 0, false
		}
		return KindObject, true
	case '[':
		if !Valid(desc) {
			return 0, false
		}
		return KindObject, true
	default:
		if len(desc) != 1 {
			return 0, false
		}
		return KindForTag(desc[0])
	}
}

// Valid reports whether a string is a syntactically valid field descriptor:
// a primitive tag, an object descriptor, or an array of either.
func Valid(desc string) bool {
	elem := strings.TrimLeft(desc, "[")
	if elem == "" {
		return false
	}
	if elem[0] == 'L' {
		name, ok := ClassName(elem)
		return ok && validClassName(name)
	}
	if len(elem) != 1 {
		return false
	}
	_, ok := KindForTag(elem[0])
	return ok
}

// validClassName rejects the characters the JVM forbids in internal names.
// It does not enforce the full identifier grammar; exact matching against
// runtime metadata is the resolver's job.
func validClassName(name string) bool {
	if name == "" {
		return false
	}
	return !strings.ContainsAny(name, ";[.")
}
