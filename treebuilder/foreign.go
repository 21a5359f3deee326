package treebuilder

import (
	"github.com/corvidlabs/html5/dom"
	"github.com/corvidlabs/html5/internal/constants"
	"github.com/corvidlabs/html5/token"
)

// shouldUseForeignContent decides whether tok should be routed through
// processForeignContent rather than the current insertion mode's own
// handler (spec.md C9 "Foreign content router": HTML Standard section
// "The rules for parsing tokens in foreign content" applies to any
// token whose adjusted current node is a foreign element, except for a
// short list of breakout cases).
//
// Grounded on chtml/html/parse.go's inForeignContent, generalized to
// svg and math namespaces and to the full MathML text-integration-point
// table rather than just annotation-xml.
func (tb *TreeBuilder) shouldUseForeignContent(tok token.Token) bool {
	cur := tb.adjustedCurrentNode()
	if cur == nil || cur.Namespace == "" {
		return false
	}
	if len(tb.openElements) == 0 {
		return false
	}
	if mathMLTextIntegrationPoint(cur) {
		if tok.Type == token.CharacterToken {
			return false
		}
		if tok.Type == token.StartTagToken && tok.TagName != "mglyph" && tok.TagName != "malignmark" {
			return false
		}
	}
	if cur.Namespace == "math" && cur.TagName == "annotation-xml" && tok.Type == token.StartTagToken && tok.TagName == "svg" {
		return false
	}
	if htmlIntegrationPoint(cur) && (tok.Type == token.StartTagToken || tok.Type == token.CharacterToken) {
		return false
	}
	if tok.Type == token.ErrorToken {
		return false
	}
	return true
}

// InForeignContent reports whether the adjusted current node is
// currently in a non-HTML namespace, the bit a driver must feed back
// into the tokenizer via SetForeignContent after every processed token
// (spec.md §4.3 "Tree-builder feedback").
func (tb *TreeBuilder) InForeignContent() bool {
	cur := tb.adjustedCurrentNode()
	return cur != nil && cur.Namespace != ""
}

func mathMLTextIntegrationPoint(el *dom.Element) bool {
	if el.Namespace != "math" {
		return false
	}
	switch el.TagName {
	case "mi", "mo", "mn", "ms", "mtext":
		return true
	}
	return false
}

func htmlIntegrationPoint(el *dom.Element) bool {
	if el.Namespace == "svg" {
		switch el.TagName {
		case "foreignObject", "desc", "title":
			return true
		}
		return false
	}
	if el.Namespace == "math" && el.TagName == "annotation-xml" {
		enc, _ := el.Attrs.Get("encoding")
		return eqFold(enc, "text/html") || eqFold(enc, "application/xhtml+xml")
	}
	return false
}

func eqFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// processForeignContent implements "the rules for parsing tokens in
// foreign content" (spec.md C9), returning true if tok should be
// reprocessed (e.g. a breakout start tag reprocessed in HTML content,
// or forceHTMLMode set for one pass through the HTML insertion modes).
func (tb *TreeBuilder) processForeignContent(tok token.Token) bool {
	switch tok.Type {
	case token.CharacterToken:
		if containsNul(tok.Chars) {
			tok.Chars = replaceNul(tok.Chars)
		}
		if !isAllWhitespace(tok.Chars) {
			tb.framesetOK = false
		}
		tb.insertCharacter(tok.Chars)
		return false
	case token.CommentToken:
		tb.insertComment(tok)
		return false
	case token.DoctypeToken:
		return false
	case token.StartTagToken:
		return tb.foreignStartTag(tok)
	case token.EndTagToken:
		return tb.foreignEndTag(tok)
	}
	return false
}

func containsNul(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return true
		}
	}
	return false
}

func replaceNul(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			out = append(out, "�"...)
		} else {
			out = append(out, s[i])
		}
	}
	return string(out)
}

func (tb *TreeBuilder) foreignStartTag(tok token.Token) bool {
	if isForeignBreakout(tok) {
		for len(tb.openElements) > 0 {
			cur := tb.currentElement()
			if cur.Namespace == "" || htmlIntegrationPoint(cur) || mathMLTextIntegrationPoint(cur) {
				break
			}
			tb.popCurrent()
		}
		tb.forceHTMLMode = true
		return true
	}

	cur := tb.adjustedCurrentNode()
	namespace := cur.Namespace
	tagName := tok.TagName
	if namespace == "svg" {
		tagName = adjustSVGTagName(tagName)
	}

	adjusted := make([]token.Attribute, len(tok.Attr))
	copy(adjusted, tok.Attr)
	if namespace == "svg" {
		for i := range adjusted {
			if n, ok := svgAttributeAdjustments[adjusted[i].Name]; ok {
				adjusted[i].Name = n
			}
		}
	} else if namespace == "math" {
		for i := range adjusted {
			if n, ok := mathMLAttributeAdjustments[adjusted[i].Name]; ok {
				adjusted[i].Name = n
			}
		}
	}

	adjustedTok := tok
	adjustedTok.TagName = tagName
	adjustedTok.Attr = adjusted
	tb.insertElementNS(adjustedTok, namespace)
	if tok.SelfClosing {
		tb.popCurrent()
	}
	return false
}

func isForeignBreakout(tok token.Token) bool {
	if tok.TagName == "font" {
		for _, a := range tok.Attr {
			if a.Name == "color" || a.Name == "face" || a.Name == "size" {
				return true
			}
		}
		return constants.ForeignBreakoutSet["font"]
	}
	return constants.ForeignBreakoutSet[tok.TagName]
}

func (tb *TreeBuilder) foreignEndTag(tok token.Token) bool {
	if tok.TagName == "script" {
		if cur := tb.currentElement(); cur != nil && cur.Namespace == "svg" && cur.TagName == "script" {
			tb.popCurrent()
			return false
		}
	}
	lower := tok.TagName
	for i := len(tb.openElements) - 1; i > 0; i-- {
		el := tb.openElements[i]
		if eqFold(el.TagName, lower) {
			tb.openElements = tb.openElements[:i]
			return false
		}
		if el.Namespace == "" {
			tb.forceHTMLMode = true
			return true
		}
	}
	return false
}

// adjustSVGTagName applies the HTML Standard's SVG tag-name
// case-fixups ("the adjusted SVG attributes" table's tag-name cousin);
// every other tag name passes through unchanged.
func adjustSVGTagName(name string) string {
	if adj, ok := svgTagNameAdjustments[name]; ok {
		return adj
	}
	return name
}

var svgTagNameAdjustments = map[string]string{
	"altglyph":            "altGlyph",
	"altglyphdef":         "altGlyphDef",
	"altglyphitem":        "altGlyphItem",
	"animatecolor":        "animateColor",
	"animatemotion":       "animateMotion",
	"animatetransform":    "animateTransform",
	"clippath":            "clipPath",
	"feblend":             "feBlend",
	"fecolormatrix":       "feColorMatrix",
	"fecomponenttransfer": "feComponentTransfer",
	"fecomposite":         "feComposite",
	"feconvolvematrix":    "feConvolveMatrix",
	"fediffuselighting":   "feDiffuseLighting",
	"fedisplacementmap":   "feDisplacementMap",
	"fedistantlight":      "feDistantLight",
	"fedropshadow":        "feDropShadow",
	"feflood":             "feFlood",
	"fefunca":             "feFuncA",
	"fefuncb":             "feFuncB",
	"fefuncg":             "feFuncG",
	"fefuncr":             "feFuncR",
	"fegaussianblur":      "feGaussianBlur",
	"feimage":             "feImage",
	"femerge":             "feMerge",
	"femergenode":         "feMergeNode",
	"femorphology":        "feMorphology",
	"feoffset":            "feOffset",
	"fepointlight":        "fePointLight",
	"fespecularlighting":  "feSpecularLighting",
	"fespotlight":         "feSpotLight",
	"fetile":              "feTile",
	"feturbulence":        "feTurbulence",
	"foreignobject":       "foreignObject",
	"glyphref":            "glyphRef",
	"lineargradient":      "linearGradient",
	"radialgradient":      "radialGradient",
	"textpath":            "textPath",
}

var svgAttributeAdjustments = map[string]string{
	"attributename":     "attributeName",
	"attributetype":     "attributeType",
	"basefrequency":     "baseFrequency",
	"baseprofile":       "baseProfile",
	"calcmode":          "calcMode",
	"clippathunits":     "clipPathUnits",
	"diffuseconstant":   "diffuseConstant",
	"edgemode":          "edgeMode",
	"filterunits":       "filterUnits",
	"glyphref":          "glyphRef",
	"gradienttransform": "gradientTransform",
	"gradientunits":     "gradientUnits",
	"kernelmatrix":      "kernelMatrix",
	"kernelunitlength":  "kernelUnitLength",
	"keypoints":         "keyPoints",
	"keysplines":        "keySplines",
	"keytimes":          "keyTimes",
	"lengthadjust":      "lengthAdjust",
	"limitingconeangle": "limitingConeAngle",
	"markerheight":      "markerHeight",
	"markerunits":       "markerUnits",
	"markerwidth":       "markerWidth",
	"maskcontentunits":  "maskContentUnits",
	"maskunits":         "maskUnits",
	"numoctaves":        "numOctaves",
	"pathlength":        "pathLength",
	"patterncontentunits": "patternContentUnits",
	"patterntransform":  "patternTransform",
	"patternunits":      "patternUnits",
	"pointsatx":         "pointsAtX",
	"pointsaty":         "pointsAtY",
	"pointsatz":         "pointsAtZ",
	"preservealpha":     "preserveAlpha",
	"preserveaspectratio": "preserveAspectRatio",
	"primitiveunits":    "primitiveUnits",
	"refx":              "refX",
	"refy":              "refY",
	"repeatcount":       "repeatCount",
	"repeatdur":         "repeatDur",
	"requiredextensions": "requiredExtensions",
	"requiredfeatures":  "requiredFeatures",
	"specularconstant":  "specularConstant",
	"specularexponent":  "specularExponent",
	"spreadmethod":      "spreadMethod",
	"startoffset":       "startOffset",
	"stddeviation":      "stdDeviation",
	"stitchtiles":       "stitchTiles",
	"surfacescale":      "surfaceScale",
	"systemlanguage":    "systemLanguage",
	"tablevalues":       "tableValues",
	"targetx":           "targetX",
	"targety":           "targetY",
	"textlength":        "textLength",
	"viewbox":           "viewBox",
	"viewtarget":        "viewTarget",
	"xchannelselector":  "xChannelSelector",
	"ychannelselector":  "yChannelSelector",
	"zoomandpan":        "zoomAndPan",
}

var mathMLAttributeAdjustments = map[string]string{
	"definitionurl": "definitionURL",
}
