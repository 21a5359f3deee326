package token

import "testing"

func collect(t *testing.T, input string, opts Options) []Token {
	t.Helper()
	tk := New([]byte(input), opts)
	var out []Token
	for {
		tok := tk.Next()
		if tok.Type == ErrorToken {
			break
		}
		out = append(out, tok)
	}
	return out
}

func TestStartTagWithAttributes(t *testing.T) {
	toks := collect(t, `<a href="x" class='y'>`, Options{})
	if len(toks) != 1 || toks[0].Type != StartTagToken {
		t.Fatalf("got %+v", toks)
	}
	tag := toks[0]
	if tag.TagName != "a" {
		t.Fatalf("tag name = %q", tag.TagName)
	}
	if len(tag.Attr) != 2 || tag.Attr[0].Name != "href" || tag.Attr[0].Value != "x" {
		t.Fatalf("attrs = %+v", tag.Attr)
	}
	if tag.Attr[1].Name != "class" || tag.Attr[1].Value != "y" {
		t.Fatalf("attrs = %+v", tag.Attr)
	}
}

func TestDuplicateAttributeDropped(t *testing.T) {
	toks := collect(t, `<a href="x" href="y">`, Options{})
	if len(toks[0].Attr) != 1 || toks[0].Attr[0].Value != "x" {
		t.Fatalf("attrs = %+v", toks[0].Attr)
	}
}

func TestCharacterCoalescing(t *testing.T) {
	toks := collect(t, "abc<b>def", Options{})
	if len(toks) != 3 {
		t.Fatalf("want 3 tokens, got %+v", toks)
	}
	if toks[0].Type != CharacterToken || toks[0].Chars != "abc" {
		t.Fatalf("first = %+v", toks[0])
	}
	if toks[2].Type != CharacterToken || toks[2].Chars != "def" {
		t.Fatalf("third = %+v", toks[2])
	}
}

func TestEndTag(t *testing.T) {
	toks := collect(t, "</div>", Options{})
	if len(toks) != 1 || toks[0].Type != EndTagToken || toks[0].TagName != "div" {
		t.Fatalf("got %+v", toks)
	}
}

func TestComment(t *testing.T) {
	toks := collect(t, "<!-- hi -->", Options{})
	if len(toks) != 1 || toks[0].Type != CommentToken || toks[0].Data != " hi " {
		t.Fatalf("got %+v", toks)
	}
}

func TestDoctypeBasic(t *testing.T) {
	toks := collect(t, "<!DOCTYPE html>", Options{})
	if len(toks) != 1 || toks[0].Type != DoctypeToken || toks[0].Name != "html" {
		t.Fatalf("got %+v", toks)
	}
	if toks[0].ForceQuirks {
		t.Fatalf("should not force quirks")
	}
}

func TestDoctypeWithPublicAndSystem(t *testing.T) {
	toks := collect(t, `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`, Options{})
	dt := toks[0]
	if !dt.HasPublicID || dt.PublicID != "-//W3C//DTD HTML 4.01//EN" {
		t.Fatalf("public id = %+v", dt)
	}
	if !dt.HasSystemID || dt.SystemID != "http://www.w3.org/TR/html4/strict.dtd" {
		t.Fatalf("system id = %+v", dt)
	}
}

func TestDoctypeEOFForcesQuirks(t *testing.T) {
	toks := collect(t, "<!DOCTYPE", Options{})
	if len(toks) != 1 || !toks[0].ForceQuirks {
		t.Fatalf("got %+v", toks)
	}
}

func TestRAWTEXTAppropriateEndTag(t *testing.T) {
	toks := collect(t, "<style>a{color:</style>red}</style>body", Options{})
	var gotStyleText bool
	for _, tok := range toks {
		if tok.Type == CharacterToken && tok.Chars == "a{color:" {
			gotStyleText = true
		}
	}
	if !gotStyleText {
		t.Fatalf("expected raw style text before first </style>, got %+v", toks)
	}
	if toks[len(toks)-1].Type != CharacterToken || toks[len(toks)-1].Chars != "body" {
		t.Fatalf("trailing text = %+v", toks[len(toks)-1])
	}
}

func TestScriptDataEscaped(t *testing.T) {
	input := "<script><!--var x = 1;--></script>"
	toks := collect(t, input, Options{})
	if toks[0].Type != StartTagToken || toks[0].TagName != "script" {
		t.Fatalf("first = %+v", toks)
	}
	var sawEnd bool
	for _, tok := range toks {
		if tok.Type == EndTagToken && tok.TagName == "script" {
			sawEnd = true
		}
	}
	if !sawEnd {
		t.Fatalf("missing end tag, got %+v", toks)
	}
}

func TestCDATASectionInForeignContent(t *testing.T) {
	tk := New([]byte("<![CDATA[a<b]]>c"), Options{})
	tk.SetForeignContent(true)
	var out []Token
	for {
		tok := tk.Next()
		if tok.Type == ErrorToken {
			break
		}
		out = append(out, tok)
	}
	if len(out) != 1 || out[0].Type != CharacterToken || out[0].Chars != "a<bc" {
		t.Fatalf("got %+v", out)
	}
}

func TestCDATATreatedAsBogusCommentOutsideForeignContent(t *testing.T) {
	toks := collect(t, "<![CDATA[x]]>", Options{})
	if len(toks) != 1 || toks[0].Type != CommentToken {
		t.Fatalf("got %+v", toks)
	}
}

func TestNamedCharacterReference(t *testing.T) {
	toks := collect(t, "a&copy;b", Options{})
	if len(toks) != 1 || toks[0].Chars != "a©b" {
		t.Fatalf("got %+v", toks)
	}
}

func TestNamedCharacterReferenceAttributeValueAmbiguous(t *testing.T) {
	toks := collect(t, `<a href="?a=1&copy=2">`, Options{})
	if toks[0].Attr[0].Value != "?a=1&copy=2" {
		t.Fatalf("attr value = %q", toks[0].Attr[0].Value)
	}
}

func TestNumericCharacterReferenceDecimal(t *testing.T) {
	toks := collect(t, "&#65;", Options{})
	if toks[0].Chars != "A" {
		t.Fatalf("got %+v", toks)
	}
}

func TestNumericCharacterReferenceHex(t *testing.T) {
	toks := collect(t, "&#x41;", Options{})
	if toks[0].Chars != "A" {
		t.Fatalf("got %+v", toks)
	}
}

func TestNumericCharacterReferenceWindows1252(t *testing.T) {
	toks := collect(t, "&#128;", Options{})
	if toks[0].Chars != "€" {
		t.Fatalf("got %q", toks[0].Chars)
	}
}

func TestNumericCharacterReferenceNulBecomesReplacement(t *testing.T) {
	toks := collect(t, "&#0;", Options{})
	if toks[0].Chars != "�" {
		t.Fatalf("got %q", toks[0].Chars)
	}
}

func TestAmbiguousAmpersandPassesThrough(t *testing.T) {
	toks := collect(t, "a & b", Options{})
	if toks[0].Chars != "a & b" {
		t.Fatalf("got %q", toks[0].Chars)
	}
}

func TestNulInDataBecomesReplacementChar(t *testing.T) {
	toks := collect(t, "a\x00b", Options{})
	if toks[0].Chars != "a�b" {
		t.Fatalf("got %q", toks[0].Chars)
	}
}

func TestCRLFNormalizedToLF(t *testing.T) {
	toks := collect(t, "a\r\nb\rc", Options{})
	if toks[0].Chars != "a\nb\nc" {
		t.Fatalf("got %q", toks[0].Chars)
	}
}

func TestXMLViolationFormFeedAndNonCharacter(t *testing.T) {
	toks := collect(t, "a\x0Cb￿c", Options{XMLViolationMode: true})
	if toks[0].Chars != "a b�c" {
		t.Fatalf("got %q", toks[0].Chars)
	}
}

func TestXMLViolationCommentDoubleDash(t *testing.T) {
	toks := collect(t, "<!--a--b-->", Options{XMLViolationMode: true})
	if toks[0].Data != "a- -b" {
		t.Fatalf("got %q", toks[0].Data)
	}
}

func TestSelfClosingStartTag(t *testing.T) {
	toks := collect(t, `<br/>`, Options{})
	if !toks[0].SelfClosing {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestScriptDataCouplingSetsNextState(t *testing.T) {
	toks := collect(t, "<script>1<2</script>", Options{})
	var sawLt bool
	for _, tok := range toks {
		if tok.Type == CharacterToken && tok.Chars == "1<2" {
			sawLt = true
		}
	}
	if !sawLt {
		t.Fatalf("expected literal '<' inside script data, got %+v", toks)
	}
}

func TestPlaintextConsumesRestVerbatim(t *testing.T) {
	toks := collect(t, "a", Options{InitialState: PLAINTEXTState})
	if len(toks) != 1 || toks[0].Chars != "a" {
		t.Fatalf("got %+v", toks)
	}
}

func TestBogusCommentFromQuestionMark(t *testing.T) {
	toks := collect(t, "<?xml version=\"1.0\"?>", Options{})
	if len(toks) != 1 || toks[0].Type != CommentToken {
		t.Fatalf("got %+v", toks)
	}
}
