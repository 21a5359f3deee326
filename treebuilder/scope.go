package treebuilder

import "github.com/corvidlabs/html5/internal/constants"

// scope selects one of the five scope-predicate flavors the HTML
// Standard defines over the stack of open elements (spec.md C5 "Scope
// predicates"). Grounded on chtml/html/parse.go's local (unexported)
// scope type and its defaultScopeStopTags-driven elementInScope.
type scope int

const (
	defaultScope scope = iota
	listItemScope
	buttonScope
	tableScope
	selectScope
)

// stopTags reports the set of tag names (keyed by namespace) that halt
// the scope walk for s, per spec.md C5's five scope tables.
func (s scope) stopTags(namespace, tag string) bool {
	switch s {
	case tableScope:
		switch tag {
		case "html", "table", "template":
			return namespace == ""
		}
		return false
	case selectScope:
		// selectScope stops at everything except optgroup/option: it is
		// defined as "has an element in the specific scope... with a
		// list consisting of all element types except optgroup and
		// option", i.e. it stops at every other element.
		return namespace == "" && tag != "optgroup" && tag != "option"
	}
	for _, stop := range constants.DefaultScopeStopTags[namespace] {
		if stop == tag {
			return true
		}
	}
	switch s {
	case listItemScope:
		return namespace == "" && (tag == "ol" || tag == "ul")
	case buttonScope:
		return namespace == "" && tag == "button"
	}
	return false
}

// elementInScope walks the stack of open elements from the top down,
// stopping the search (and returning false) as soon as it passes an
// element matching s's stop-tag set, and returning true as soon as it
// finds an element whose tag is in names.
func (tb *TreeBuilder) elementInScope(s scope, names ...string) bool {
	for i := len(tb.openElements) - 1; i >= 0; i-- {
		el := tb.openElements[i]
		if el.Namespace == "" {
			for _, n := range names {
				if el.TagName == n {
					return true
				}
			}
		}
		if s.stopTags(el.Namespace, el.TagName) {
			return false
		}
	}
	return false
}

// inScope is the common case: default scope, single tag name.
func (tb *TreeBuilder) inScope(name string) bool { return tb.elementInScope(defaultScope, name) }

func (tb *TreeBuilder) inListItemScope(name string) bool {
	return tb.elementInScope(listItemScope, name)
}

func (tb *TreeBuilder) inButtonScope(name string) bool {
	return tb.elementInScope(buttonScope, name)
}

func (tb *TreeBuilder) inTableScope(name string) bool {
	return tb.elementInScope(tableScope, name)
}

func (tb *TreeBuilder) inSelectScope(name string) bool {
	return tb.elementInScope(selectScope, name)
}

// popUntil pops the stack of open elements, inclusive, until an element
// with tag name name has been popped. It is a no-op if name never
// appears on the stack.
func (tb *TreeBuilder) popUntil(name string) {
	for i := len(tb.openElements) - 1; i >= 0; i-- {
		popped := tb.openElements[i].TagName
		tb.openElements = tb.openElements[:i]
		if popped == name {
			return
		}
	}
}

// popUntilOneOf is popUntil generalized to a set of stop tags.
func (tb *TreeBuilder) popUntilOneOf(names ...string) {
	for i := len(tb.openElements) - 1; i >= 0; i-- {
		popped := tb.openElements[i].TagName
		tb.openElements = tb.openElements[:i]
		for _, n := range names {
			if popped == n {
				return
			}
		}
	}
}

// elementInStack reports whether name appears anywhere on the stack of
// open elements.
func (tb *TreeBuilder) elementInStack(name string) bool {
	for _, el := range tb.openElements {
		if el.TagName == name {
			return true
		}
	}
	return false
}

// generateImpliedEndTags pops elements matching the HTML Standard's
// "implied end tags" list, skipping any whose tag is in exceptions.
func (tb *TreeBuilder) generateImpliedEndTags(exceptions ...string) {
	implied := map[string]bool{
		"dd": true, "dt": true, "li": true, "optgroup": true, "option": true,
		"p": true, "rb": true, "rp": true, "rt": true, "rtc": true,
	}
	for len(tb.openElements) > 0 {
		tag := tb.currentElement().TagName
		if !implied[tag] {
			return
		}
		for _, ex := range exceptions {
			if tag == ex {
				return
			}
		}
		tb.openElements = tb.openElements[:len(tb.openElements)-1]
	}
}

// generateImpliedEndTagsThoroughly is generateImpliedEndTags's wider
// variant used by the adoption agency algorithm: it also pops tbody,
// td, tfoot, th, thead and tr.
func (tb *TreeBuilder) generateImpliedEndTagsThoroughly() {
	implied := map[string]bool{
		"dd": true, "dt": true, "li": true, "optgroup": true, "option": true,
		"p": true, "rb": true, "rp": true, "rt": true, "rtc": true,
		"tbody": true, "td": true, "tfoot": true, "th": true, "thead": true, "tr": true,
	}
	for len(tb.openElements) > 0 {
		tag := tb.currentElement().TagName
		if !implied[tag] {
			return
		}
		tb.openElements = tb.openElements[:len(tb.openElements)-1]
	}
}
