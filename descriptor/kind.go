package descriptor

// Kind identifies the runtime type of a field value. The eight primitive
// kinds form a fixed closed set; everything else is an object reference.
type Kind uint8

const (
	KindBool Kind = iota
	KindByte
	KindChar
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindObject
)

var kindNames = [...]string{
	KindBool:   "boolean",
	KindByte:   "byte",
	KindChar:   "char",
	KindShort:  "short",
	KindInt:    "int",
	KindLong:   "long",
	KindFloat:  "float",
	KindDouble: "double",
	KindObject: "object",
}

// kindTags maps each primitive kind to its one-character descriptor tag.
// KindObject has no single tag; object descriptors are open-ended.
var kindTags = [...]byte{
	KindBool:   'Z',
	KindByte:   'B',
	KindChar:   'C',
	KindShort:  'S',
	KindInt:    'I',
	KindLong:   'J',
	KindFloat:  'F',
	KindDouble: 'D',
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

func (k Kind) IsPrimitive() bool {
	return k < KindObject
}

// Tag returns the one-character type tag used in descriptor strings,
// or 0 for KindObject.
func (k Kind) Tag() byte {
	if k.IsPrimitive() {
		return kindTags[k]
	}
	return 0
}

// TagString returns the primitive kind's descriptor as a string ("I", "Z", ...).
// It returns "" for KindObject.
func (k Kind) TagString() string {
	if !k.IsPrimitive() {
		return ""
	}
	return string(kindTags[k])
}

// KindForTag returns the primitive kind encoded by a one-character type tag.
func KindForTag(tag byte) (Kind, bool) {
	for k, t := range kindTags {
		if t == tag {
			return Kind(k), true
		}
	}
	return 0, false
}
