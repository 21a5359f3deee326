package treebuilder

import (
	"testing"

	"github.com/corvidlabs/html5/dom"
	"github.com/corvidlabs/html5/token"
)

func TestComputeQuirksMode(t *testing.T) {
	tests := []struct {
		name string
		tok  token.Token
		want dom.QuirksMode
	}{
		{
			name: "html5 doctype",
			tok:  token.Token{Name: "html"},
			want: dom.NoQuirks,
		},
		{
			name: "force quirks bit set",
			tok:  token.Token{Name: "html", ForceQuirks: true},
			want: dom.Quirks,
		},
		{
			name: "non-html name",
			tok:  token.Token{Name: "not-html"},
			want: dom.Quirks,
		},
		{
			name: "html 3.2 public id prefix",
			tok:  token.Token{Name: "html", PublicID: "-//W3C//DTD HTML 3.2//EN", HasPublicID: true},
			want: dom.Quirks,
		},
		{
			name: "html 4.01 transitional without system id",
			tok:  token.Token{Name: "html", PublicID: "-//W3C//DTD HTML 4.01 Transitional//EN", HasPublicID: true},
			want: dom.Quirks,
		},
		{
			name: "html 4.01 transitional with system id",
			tok: token.Token{
				Name: "html", PublicID: "-//W3C//DTD HTML 4.01 Transitional//EN", HasPublicID: true,
				SystemID: "http://www.w3.org/TR/html4/loose.dtd", HasSystemID: true,
			},
			want: dom.NoQuirks,
		},
		{
			name: "xhtml 1.0 transitional is limited quirks",
			tok:  token.Token{Name: "html", PublicID: "-//W3C//DTD XHTML 1.0 Transitional//EN", HasPublicID: true},
			want: dom.LimitedQuirks,
		},
		{
			name: "ibm frameset system id forces quirks",
			tok: token.Token{
				Name: "html", SystemID: "http://www.ibm.com/data/dtd/v11/ibmxhtml1-transitional.dtd",
				HasSystemID: true,
			},
			want: dom.Quirks,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := computeQuirksMode(tt.tok); got != tt.want {
				t.Fatalf("computeQuirksMode(%+v) = %v, want %v", tt.tok, got, tt.want)
			}
		})
	}
}
