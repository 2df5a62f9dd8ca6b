// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

import (
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// An Element is one rendered top-level node of a document.
// Key identifies the element by its position in the document
// and is stable across renderings of the same document.
type Element struct {
	Key  string
	Node *html.Node
}

// Walk calls fn for e and every element beneath it, in document order,
// with a key made of e.Key and the child positions leading to the element,
// separated by dots: "0", "0.0", "0.1", "0.1.0" and so on.
// Text nodes are not visited.
func (e Element) Walk(fn func(key string, n *html.Node)) {
	walk(e.Key, e.Node, fn)
}

func walk(key string, n *html.Node, fn func(string, *html.Node)) {
	if n.Type != html.ElementNode {
		return
	}
	fn(key, n)
	i := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(key+"."+strconv.Itoa(i), c, fn)
		i++
	}
}

// A renderer holds the collaborators used to render one document.
type renderer struct {
	code  CodeRenderer
	links LinkPolicy
}

func (p *Parser) renderer() *renderer {
	r := &renderer{code: p.Code, links: p.Links}
	if r.code == nil {
		r.code = PlainCode
	}
	if r.links == nil {
		r.links = SafeLinks
	}
	return r
}

// RenderDocument renders each top-level node of doc as an [Element],
// keyed "0", "1", and so on.
func (p *Parser) RenderDocument(doc *Document) []Element {
	r := p.renderer()
	out := make([]Element, len(doc.Nodes))
	for i, x := range doc.Nodes {
		out[i] = Element{Key: strconv.Itoa(i), Node: x.render(r)}
	}
	return out
}

// elem returns a new element node with the given attributes.
func (r *renderer) elem(a atom.Atom, attrs ...html.Attribute) *html.Node {
	n := newElem(a)
	n.Attr = attrs
	return n
}

// text returns a new text node.
func (r *renderer) text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func newElem(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// WriteHTML writes the HTML form of list to w.
func WriteHTML(w io.Writer, list []Element) error {
	for _, e := range list {
		if err := html.Render(w, e.Node); err != nil {
			return err
		}
	}
	return nil
}

// ToHTML returns the HTML form of list.
func ToHTML(list []Element) string {
	var b strings.Builder
	if err := WriteHTML(&b, list); err != nil {
		// Writes to a strings.Builder do not fail.
		// The renderer built a tree that html.Render rejects.
		panic("markup: " + err.Error())
	}
	return b.String()
}
