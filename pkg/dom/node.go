package dom

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <div>, <section>, etc.
	KindText                 // Plain text node, escaped on render
	KindRaw                  // Raw HTML (dangerous)
	KindFragment             // Grouping without wrapper
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindRaw:
		return "Raw"
	case KindFragment:
		return "Fragment"
	default:
		return "Unknown"
	}
}

// Node is a content markup node.
type Node struct {
	Kind     Kind    // Node type
	Tag      string  // Element tag name (e.g., "div")
	Attrs    Attrs   // Attributes
	Children []*Node // Child nodes
	Text     string  // For KindText and KindRaw
}

// Attrs holds element attributes keyed by attribute name.
type Attrs map[string]any

// Merge returns a copy of a overlaid with b. Keys in b win on conflict;
// neither receiver nor argument is mutated.
func (a Attrs) Merge(b Attrs) Attrs {
	if len(a) == 0 && len(b) == 0 {
		return Attrs{}
	}
	merged := make(Attrs, len(a)+len(b))
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range b {
		merged[k] = v
	}
	return merged
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}
