package dom

const (
	elementChunkSize  = 128
	textChunkSize     = 256
	commentChunkSize  = 64
	doctypeChunkSize  = 8
	documentChunkSize = 4
	fragmentChunkSize = 64
)

// Allocator is the arena for one parse invocation: it hands out node
// memory from growable chunks per node kind, rather than allocating each
// node individually, so a large document costs a handful of slice growths
// instead of thousands of small allocations. Grounded on JustGoHTML's
// dom/allocator.go NodeAllocator.
//
// The zero value is not usable; call NewAllocator. An Allocator's handles
// (the returned pointers) remain valid for the lifetime of the Allocator;
// nothing is ever freed before the parse completes (spec.md §3 Lifecycle).
type Allocator struct {
	elements  []Element
	elementAt int

	texts  []Text
	textAt int

	comments  []Comment
	commentAt int

	doctypes  []DocumentType
	doctypeAt int

	documents  []Document
	documentAt int

	fragments  []DocumentFragment
	fragmentAt int
}

// NewAllocator returns an empty arena ready to allocate DOM nodes.
func NewAllocator() *Allocator {
	return &Allocator{}
}

func (a *Allocator) nextElement() *Element {
	if a.elementAt >= len(a.elements) {
		a.elements = make([]Element, elementChunkSize)
		a.elementAt = 0
	}
	e := &a.elements[a.elementAt]
	a.elementAt++
	return e
}

func (a *Allocator) nextText() *Text {
	if a.textAt >= len(a.texts) {
		a.texts = make([]Text, textChunkSize)
		a.textAt = 0
	}
	t := &a.texts[a.textAt]
	a.textAt++
	return t
}

func (a *Allocator) nextComment() *Comment {
	if a.commentAt >= len(a.comments) {
		a.comments = make([]Comment, commentChunkSize)
		a.commentAt = 0
	}
	c := &a.comments[a.commentAt]
	a.commentAt++
	return c
}

func (a *Allocator) nextDoctype() *DocumentType {
	if a.doctypeAt >= len(a.doctypes) {
		a.doctypes = make([]DocumentType, doctypeChunkSize)
		a.doctypeAt = 0
	}
	d := &a.doctypes[a.doctypeAt]
	a.doctypeAt++
	return d
}

func (a *Allocator) nextDocument() *Document {
	if a.documentAt >= len(a.documents) {
		a.documents = make([]Document, documentChunkSize)
		a.documentAt = 0
	}
	d := &a.documents[a.documentAt]
	a.documentAt++
	return d
}

func (a *Allocator) nextFragment() *DocumentFragment {
	if a.fragmentAt >= len(a.fragments) {
		a.fragments = make([]DocumentFragment, fragmentChunkSize)
		a.fragmentAt = 0
	}
	f := &a.fragments[a.fragmentAt]
	a.fragmentAt++
	return f
}

// NewDocument allocates a fresh, empty Document node.
func (a *Allocator) NewDocument() *Document {
	d := a.nextDocument()
	*d = Document{}
	return d
}

// NewDocumentFragment allocates a fresh, empty DocumentFragment node.
func (a *Allocator) NewDocumentFragment() *DocumentFragment {
	f := a.nextFragment()
	*f = DocumentFragment{}
	return f
}

// NewElement allocates an HTML-namespace element with the given tag name.
func (a *Allocator) NewElement(tagName string) *Element {
	return a.NewElementNS(tagName, "")
}

// NewElementNS allocates an element in the given namespace ("" for HTML,
// "svg" or "math" for foreign content).
func (a *Allocator) NewElementNS(tagName, namespace string) *Element {
	e := a.nextElement()
	*e = Element{TagName: tagName, Namespace: namespace, Attrs: NewAttributes()}
	if tagName == "template" && namespace == "" {
		e.TemplateContent = a.NewDocumentFragment()
	}
	return e
}

// NewText allocates a text node.
func (a *Allocator) NewText(data string) *Text {
	t := a.nextText()
	*t = Text{Data: data}
	return t
}

// NewComment allocates a comment node.
func (a *Allocator) NewComment(data string) *Comment {
	c := a.nextComment()
	*c = Comment{Data: data}
	return c
}

// NewDocumentType allocates a DOCTYPE node.
func (a *Allocator) NewDocumentType(name, publicID, systemID string) *DocumentType {
	d := a.nextDoctype()
	*d = DocumentType{Name: name, PublicID: publicID, SystemID: systemID}
	return d
}
