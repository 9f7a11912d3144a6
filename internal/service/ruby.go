package service

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var sourceNewlines = strings.NewReplacer("\r\n", "", "\n", "", "\r", "")

// ConvertRuby rewrites every <ruby> under sel into the literal text "base(reading)",
// turns <br> into newlines and returns the flattened plain text.
// The selection is modified in place.
func ConvertRuby(sel *goquery.Selection) string {
	if sel == nil || sel.Length() == 0 {
		return ""
	}

	replaceRuby(sel)

	f := &flattener{}
	for _, n := range sel.Nodes {
		f.walk(n)
	}
	return strings.TrimSpace(f.b.String())
}

// replaceRuby swaps each annotated <ruby> for a plain text node.
// A <ruby> without <rt> is left as is.
func replaceRuby(sel *goquery.Selection) {
	sel.Find("ruby").Each(func(_ int, ruby *goquery.Selection) {
		rt := ruby.Find("rt")
		if rt.Length() == 0 {
			return
		}

		ruby.Find("rp").Remove()
		reading := strings.TrimSpace(rt.Text())
		rt.Remove()
		base := strings.TrimSpace(ruby.Text())

		ruby.ReplaceWithNodes(&html.Node{
			Type: html.TextNode,
			Data: base + "(" + reading + ")",
		})
	})
}

// flattener concatenates text nodes in document order. Newlines in the HTML
// source are insignificant; only <br> and block boundaries produce "\n".
type flattener struct {
	b    strings.Builder
	last byte
}

func (f *flattener) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		f.write(sourceNewlines.Replace(n.Data))
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Br:
			f.write("\n")
			return
		case atom.Script, atom.Style:
			return
		}
		block := n.DataAtom == atom.P || n.DataAtom == atom.Div
		if block {
			f.lineBreak()
		}
		f.children(n)
		if block {
			f.lineBreak()
		}
	case html.DocumentNode:
		f.children(n)
	}
}

func (f *flattener) children(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		f.walk(c)
	}
}

func (f *flattener) write(s string) {
	if s == "" {
		return
	}
	f.b.WriteString(s)
	f.last = s[len(s)-1]
}

// lineBreak separates adjacent blocks without doubling an existing newline
func (f *flattener) lineBreak() {
	if f.b.Len() > 0 && f.last != '\n' {
		f.write("\n")
	}
}
