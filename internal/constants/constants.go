// Package constants holds the tag-name sets the HTML5 tree construction
// algorithm treats specially: void elements, formatting elements, the
// "special" element set used by scope predicates and the adoption agency
// algorithm, and the table foster-parenting target/allowed-child sets.
//
// These are the tag tables from the HTML Standard's tree construction
// section (https://html.spec.whatwg.org/multipage/parsing.html), the same
// tables golang.org/x/net/html's parser keeps as package-level vars
// (defaultScopeStopTags and friends in chtml/html/parse.go).
package constants

// VoidElements never have an end tag and never have children.
var VoidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// FormattingElements are subject to reconstruction and the adoption agency
// algorithm (spec.md §4.8, Glossary "Formatting element").
var FormattingElements = map[string]bool{
	"a": true, "b": true, "big": true, "code": true, "em": true,
	"font": true, "i": true, "nobr": true, "s": true, "small": true,
	"strike": true, "strong": true, "tt": true, "u": true,
}

// specialHTML is the HTML-namespace portion of the "special" element set
// (spec.md §4.5 default-scope boundary set, minus the non-HTML entries
// which are namespaced separately below).
var specialHTML = map[string]bool{
	"address": true, "applet": true, "area": true, "article": true,
	"aside": true, "base": true, "basefont": true, "bgsound": true,
	"blockquote": true, "body": true, "br": true, "button": true,
	"caption": true, "center": true, "col": true, "colgroup": true,
	"dd": true, "details": true, "dir": true, "div": true, "dl": true,
	"dt": true, "embed": true, "fieldset": true, "figcaption": true,
	"figure": true, "footer": true, "form": true, "frame": true,
	"frameset": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "head": true, "header": true, "hgroup": true,
	"hr": true, "html": true, "iframe": true, "img": true, "input": true,
	"keygen": true, "li": true, "link": true, "listing": true, "main": true,
	"marquee": true, "menu": true, "meta": true, "nav": true, "noembed": true,
	"noframes": true, "noscript": true, "object": true, "ol": true,
	"p": true, "param": true, "plaintext": true, "pre": true, "script": true,
	"section": true, "select": true, "source": true, "style": true,
	"summary": true, "table": true, "tbody": true, "td": true,
	"template": true, "textarea": true, "tfoot": true, "th": true,
	"thead": true, "title": true, "tr": true, "track": true, "ul": true,
	"wbr": true, "xmp": true,
}

var specialSVG = map[string]bool{
	"foreignObject": true, "desc": true, "title": true,
}

var specialMathML = map[string]bool{
	"mi": true, "mo": true, "mn": true, "ms": true, "mtext": true,
	"annotation-xml": true,
}

// IsSpecial reports whether the (namespace, tag) pair is in the HTML
// Standard's "special" category, used to find the furthest block in the
// adoption agency algorithm (spec.md §4.8 step 4) and as an implicit
// boundary for "any other end tag" handling.
func IsSpecial(namespace, tag string) bool {
	switch namespace {
	case "", "html":
		return specialHTML[tag]
	case "svg":
		return specialSVG[tag]
	case "math":
		return specialMathML[tag]
	}
	return false
}

// DefaultScopeStopTags is the boundary element set for the four
// "in-scope" flavors derived from default scope (spec.md §4.5 table).
// Keyed by namespace ("" for HTML, "svg", "math").
var DefaultScopeStopTags = map[string][]string{
	"": {
		"applet", "caption", "html", "table", "td", "th", "marquee",
		"object", "template",
	},
	"math": {"annotation-xml", "mi", "mn", "mo", "ms", "mtext"},
	"svg":  {"desc", "foreignObject", "title"},
}

// TableFosterTargets are the table-structural elements that trigger
// foster parenting of non-table-allowed content (spec.md §4.9).
var TableFosterTargets = map[string]bool{
	"table": true, "tbody": true, "tfoot": true, "thead": true, "tr": true,
}

// TableAllowedChildren are tags that may be inserted directly under a
// table-structural element without triggering foster parenting.
var TableAllowedChildren = map[string]bool{
	"table": true, "tbody": true, "tfoot": true, "thead": true, "tr": true,
	"td": true, "th": true, "caption": true, "colgroup": true, "col": true,
	"style": true, "script": true, "template": true, "input": true,
	"form": true,
}

// ForeignBreakoutSet is the start-tag name set that forces breakout from
// foreign content back to HTML (spec.md §4.10 "Breakout"). "font" is only
// in the set when it carries a color/face/size attribute; callers check
// that separately.
var ForeignBreakoutSet = map[string]bool{
	"b": true, "big": true, "blockquote": true, "body": true, "br": true,
	"center": true, "code": true, "dd": true, "div": true, "dl": true,
	"dt": true, "em": true, "embed": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "head": true, "hr": true, "i": true,
	"img": true, "li": true, "listing": true, "menu": true, "meta": true,
	"nobr": true, "ol": true, "p": true, "pre": true, "ruby": true, "s": true,
	"small": true, "span": true, "strong": true, "strike": true, "sub": true,
	"sup": true, "table": true, "tt": true, "u": true, "ul": true, "var": true,
}

// AdoptionAgencySubjects are the end-tag names that invoke the adoption
// agency algorithm in in_body (spec.md §4.8).
var AdoptionAgencySubjects = FormattingElements
