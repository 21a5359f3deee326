package dom

// Attr is a single attribute. Prefix is non-empty only for the foreign-
// content namespaced attributes the HTML Standard special-cases: xlink:*,
// xml:*, and xmlns/xmlns:xlink (spec.md §3 "attrs" / §4.10). For ordinary
// HTML and unprefixed foreign attributes Prefix is "".
type Attr struct {
	Prefix string
	Local  string
	Value  string
}

// Name returns the attribute's serialized name, e.g. "xlink:href" or
// "href".
func (a Attr) Name() string {
	if a.Prefix == "" {
		return a.Local
	}
	return a.Prefix + ":" + a.Local
}

// Attributes is an ordered sequence of Attr with first-occurrence-wins
// semantics on duplicate names (spec.md §4.3 "duplicate attribute names
// keep the first and drop the rest"), keyed by (Prefix, Local) so that,
// say, xlink:href and a plain href attribute never collide.
type Attributes struct {
	items []Attr
}

// NewAttributes returns an empty, ready-to-use Attributes.
func NewAttributes() *Attributes {
	return &Attributes{}
}

func (a *Attributes) indexOf(prefix, local string) int {
	for i := range a.items {
		if a.items[i].Prefix == prefix && a.items[i].Local == local {
			return i
		}
	}
	return -1
}

// Has reports whether a bare (unprefixed) attribute name is present.
func (a *Attributes) Has(local string) bool { return a.HasNS("", local) }

// HasNS reports whether a (prefix, local) attribute is present.
func (a *Attributes) HasNS(prefix, local string) bool {
	return a.indexOf(prefix, local) != -1
}

// Get returns the value of a bare attribute name.
func (a *Attributes) Get(local string) (string, bool) { return a.GetNS("", local) }

// GetNS returns the value of a (prefix, local) attribute.
func (a *Attributes) GetNS(prefix, local string) (string, bool) {
	if i := a.indexOf(prefix, local); i != -1 {
		return a.items[i].Value, true
	}
	return "", false
}

// Set adds a bare attribute, unless one with the same name already
// exists, in which case the call is a no-op (first occurrence wins).
func (a *Attributes) Set(local, value string) { a.SetNS("", local, value) }

// SetNS adds a (prefix, local) attribute, unless one already exists.
func (a *Attributes) SetNS(prefix, local, value string) {
	if a.indexOf(prefix, local) != -1 {
		return
	}
	a.items = append(a.items, Attr{Prefix: prefix, Local: local, Value: value})
}

// Len returns the number of attributes.
func (a *Attributes) Len() int { return len(a.items) }

// At returns the i'th attribute in insertion order.
func (a *Attributes) At(i int) Attr { return a.items[i] }

// All returns the attributes in insertion order. The returned slice must
// not be mutated by the caller.
func (a *Attributes) All() []Attr { return a.items }
