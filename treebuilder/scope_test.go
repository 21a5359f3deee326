package treebuilder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// pushElement is a test helper that allocates and pushes an HTML-namespace
// element with the given tag name onto tb's stack of open elements.
func pushElement(tb *TreeBuilder, tagName string) {
	tb.push(tb.alloc.NewElement(tagName))
}

func TestElementInScopeStopsAtTableBoundary(t *testing.T) {
	tb := New(false, nil)
	pushElement(tb, "html")
	pushElement(tb, "body")
	pushElement(tb, "table")
	pushElement(tb, "tbody")
	pushElement(tb, "tr")
	pushElement(tb, "td")
	pushElement(tb, "p")

	require.True(t, tb.inScope("p"), "expected p in default scope")
	require.False(t, tb.inScope("body"), "default scope must stop at td, not reach body")
	require.True(t, tb.inTableScope("table"), "expected table in table scope")
}

func TestInButtonScopeStopsAtButton(t *testing.T) {
	tb := New(false, nil)
	pushElement(tb, "html")
	pushElement(tb, "body")
	pushElement(tb, "button")
	pushElement(tb, "p")

	require.True(t, tb.inButtonScope("p"), "p should be in button scope directly under button")

	tb2 := New(false, nil)
	pushElement(tb2, "html")
	pushElement(tb2, "body")
	pushElement(tb2, "p")
	pushElement(tb2, "button")
	require.False(t, tb2.inButtonScope("p"), "button must stop the button-scope walk before reaching the outer p")
}

func TestInSelectScopeOnlyPassesOptionAndOptgroup(t *testing.T) {
	tb := New(false, nil)
	pushElement(tb, "html")
	pushElement(tb, "select")
	pushElement(tb, "optgroup")
	pushElement(tb, "option")

	require.True(t, tb.inSelectScope("select"), "expected select in select scope through optgroup/option")

	tb2 := New(false, nil)
	pushElement(tb2, "html")
	pushElement(tb2, "select")
	pushElement(tb2, "div")
	pushElement(tb2, "option")
	require.False(t, tb2.inSelectScope("select"), "select scope must stop at the div, which isn't optgroup/option")
}

func TestGenerateImpliedEndTags(t *testing.T) {
	tb := New(false, nil)
	pushElement(tb, "html")
	pushElement(tb, "ul")
	pushElement(tb, "li")
	pushElement(tb, "p")

	tb.generateImpliedEndTags()
	require.Equal(t, "ul", tb.currentElement().TagName, "generateImpliedEndTags should pop p and li, leaving ul")
}

func TestGenerateImpliedEndTagsRespectsException(t *testing.T) {
	tb := New(false, nil)
	pushElement(tb, "html")
	pushElement(tb, "dl")
	pushElement(tb, "dt")

	tb.generateImpliedEndTags("dt")
	require.Equal(t, "dt", tb.currentElement().TagName, "dt is excepted, should not be popped")
}

func TestPopUntil(t *testing.T) {
	tb := New(false, nil)
	pushElement(tb, "html")
	pushElement(tb, "body")
	pushElement(tb, "div")
	pushElement(tb, "span")

	tb.popUntil("div")
	require.Equal(t, "body", tb.currentElement().TagName, "popUntil(div) should leave body on top")
}
