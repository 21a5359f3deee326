package treebuilder

import (
	"strings"

	"github.com/corvidlabs/html5/dom"
	"github.com/corvidlabs/html5/token"
)

// quirksModePublicIDPrefixes and limitedQuirksModePublicIDPrefixes are
// the DOCTYPE public-identifier prefix tables from the HTML Standard's
// "initial insertion mode" DOCTYPE branch, reproduced in full since
// neither the teacher nor the rest of the pack carries them (the
// teacher relies on golang.org/x/net/html's tokenizer, which doesn't
// compute quirks mode at all).
var quirksModePublicIDPrefixes = []string{
	"-//W3O//DTD W3 HTML Strict 3.0//EN//",
	"-/W3C/DTD HTML 4.0 Transitional/EN",
	"HTML",
	"+//Silmaril//dtd html Pro v0r11 19970101//",
	"-//AS//DTD HTML 3.0 asWedit + extensions//",
	"-//AdvaSoft Ltd//DTD HTML 3.0 asWedit + extensions//",
	"-//IETF//DTD HTML 2.0 Level 1//",
	"-//IETF//DTD HTML 2.0 Level 2//",
	"-//IETF//DTD HTML 2.0 Strict Level 1//",
	"-//IETF//DTD HTML 2.0 Strict Level 2//",
	"-//IETF//DTD HTML 2.0 Strict//",
	"-//IETF//DTD HTML 2.0//",
	"-//IETF//DTD HTML 2.1E//",
	"-//IETF//DTD HTML 3.0//",
	"-//IETF//DTD HTML 3.2 Final//",
	"-//IETF//DTD HTML 3.2//",
	"-//IETF//DTD HTML 3//",
	"-//IETF//DTD HTML Level 0//",
	"-//IETF//DTD HTML Level 1//",
	"-//IETF//DTD HTML Level 2//",
	"-//IETF//DTD HTML Level 3//",
	"-//IETF//DTD HTML Strict Level 0//",
	"-//IETF//DTD HTML Strict Level 1//",
	"-//IETF//DTD HTML Strict Level 2//",
	"-//IETF//DTD HTML Strict Level 3//",
	"-//IETF//DTD HTML Strict//",
	"-//IETF//DTD HTML//",
	"-//Metrius//DTD Metrius Presentational//",
	"-//Microsoft//DTD Internet Explorer 2.0 HTML Strict//",
	"-//Microsoft//DTD Internet Explorer 2.0 HTML//",
	"-//Microsoft//DTD Internet Explorer 2.0 Tables//",
	"-//Microsoft//DTD Internet Explorer 3.0 HTML Strict//",
	"-//Microsoft//DTD Internet Explorer 3.0 HTML//",
	"-//Microsoft//DTD Internet Explorer 3.0 Tables//",
	"-//Netscape Comm. Corp.//DTD HTML//",
	"-//Netscape Comm. Corp.//DTD Strict HTML//",
	"-//O'Reilly and Associates//DTD HTML 2.0//",
	"-//O'Reilly and Associates//DTD HTML Extended 1.0//",
	"-//O'Reilly and Associates//DTD HTML Extended Relaxed 1.0//",
	"-//SQ//DTD HTML 2.0 HoTMetaL + extensions//",
	"-//SoftQuad Software//DTD HoTMetaL PRO 6.0::19990601::extensions to HTML 4.0//",
	"-//SoftQuad//DTD HoTMetaL PRO 4.0::19971010::extensions to HTML 4.0//",
	"-//Spyglass//DTD HTML 2.0 Extended//",
	"-//Sun Microsystems Corp.//DTD HotJava HTML//",
	"-//Sun Microsystems Corp.//DTD HotJava Strict HTML//",
	"-//W3C//DTD HTML 3 1995-03-24//",
	"-//W3C//DTD HTML 3.2 Draft//",
	"-//W3C//DTD HTML 3.2 Final//",
	"-//W3C//DTD HTML 3.2//",
	"-//W3C//DTD HTML 3.2S Draft//",
	"-//W3C//DTD HTML 4.0 Frameset//",
	"-//W3C//DTD HTML 4.0 Transitional//",
	"-//W3C//DTD HTML Experimental 19960712//",
	"-//W3C//DTD HTML Experimental 970421//",
	"-//W3C//DTD W3 HTML//",
	"-//W3O//DTD W3 HTML 3.0//",
	"-//WebTechs//DTD Mozilla HTML 2.0//",
	"-//WebTechs//DTD Mozilla HTML//",
}

var limitedQuirksModePublicIDPrefixes = []string{
	"-//W3C//DTD XHTML 1.0 Frameset//",
	"-//W3C//DTD XHTML 1.0 Transitional//",
}

const quirksModeFramesetSystemID = "http://www.ibm.com/data/dtd/v11/ibmxhtml1-transitional.dtd"

// computeQuirksMode implements the HTML Standard's "initial insertion
// mode" DOCTYPE token branch: force-quirks, a non-"html" name, or a
// matching public/system identifier selects quirks or limited-quirks
// mode; everything else is no-quirks.
func computeQuirksMode(tok token.Token) dom.QuirksMode {
	if tok.ForceQuirks {
		return dom.Quirks
	}
	if !strings.EqualFold(tok.Name, "html") {
		return dom.Quirks
	}
	publicID := strings.ToLower(tok.PublicID)
	if tok.HasSystemID && strings.EqualFold(tok.SystemID, quirksModeFramesetSystemID) {
		return dom.Quirks
	}
	for _, prefix := range quirksModePublicIDPrefixes {
		if strings.HasPrefix(publicID, strings.ToLower(prefix)) {
			return dom.Quirks
		}
	}
	if !tok.HasSystemID {
		switch {
		case strings.HasPrefix(publicID, "-//w3c//dtd html 4.01 frameset//"),
			strings.HasPrefix(publicID, "-//w3c//dtd html 4.01 transitional//"):
			return dom.Quirks
		}
	}
	for _, prefix := range limitedQuirksModePublicIDPrefixes {
		if strings.HasPrefix(publicID, strings.ToLower(prefix)) {
			return dom.LimitedQuirks
		}
	}
	return dom.NoQuirks
}
