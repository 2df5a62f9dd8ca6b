// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

import (
	"time"
)

// A Parser is a chat markup parser.
// The exported fields in the struct can be filled in before calling
// [Parser.Parse] in order to change the details of the parsing or rendering.
//
// The zero Parser uses the block rule set, the built-in emoji directory,
// the default code block and link rendering, and no tracing.
// A Parser is not modified by parsing and may be used concurrently.
type Parser struct {
	// Inline selects the inline rule set, which lacks fenced code blocks,
	// line breaks, paragraphs, and role and channel mentions.
	// Both rule sets parse in inline scope, so the block set still
	// recognizes a fenced code block written on a single line.
	Inline bool

	// Jumbo enables the jumbo emoji transform: a message made only of
	// emoji (fewer than 26 other nodes, none with visible text)
	// has every emoji flagged for large display.
	Jumbo bool

	// Emoji is the emoji directory used for shortcodes and literal emoji.
	// If nil, DefaultDirectory is used.
	Emoji *Directory

	// Code renders fenced code blocks.
	// If nil, blocks render as <pre><code class="language-...">.
	Code CodeRenderer

	// Links returns the attributes added to every rendered link.
	// If nil, SafeLinks is used.
	Links LinkPolicy

	// Trace receives a record of every Render call whose parse and
	// render phases took longer than Threshold in total.
	// If nil, nothing is recorded.
	Trace TraceSink

	// Threshold is the tracing threshold. If zero, DefaultThreshold is used.
	Threshold time.Duration

	now func() time.Time // for testing
}

// A State is the parse state passed by value to every rule.
type State struct {
	// Inline reports whether the parse is in inline scope.
	// Inline-scoped rules only match when it is set and
	// block-scoped rules only match when it is not.
	Inline bool

	// Nested reports whether the text being parsed is the result of
	// literal emoji substitution. Plain text found while Nested is set
	// is kept as is.
	Nested bool
}

// Parse parses text and returns the document.
// If p.Jumbo is set, the jumbo emoji transform has been applied.
func (p *Parser) Parse(text string) *Document {
	g := blockGrammar
	if p.Inline {
		g = inlineGrammar
	}
	ps := &parser{g: g, emoji: p.directory()}
	list := ps.parse(text, State{Inline: true})

	doc := &Document{
		Nodes: make(Nodes, len(list)),
		Spans: make([]Span, len(list)),
	}
	start := 0
	for i, x := range list {
		doc.Nodes[i] = x.node
		doc.Spans[i] = Span{start, x.end}
		start = x.end
	}
	if p.Jumbo {
		doc = Jumbosize(doc)
	}
	return doc
}

func (p *Parser) directory() *Directory {
	if p.Emoji != nil {
		return p.Emoji
	}
	return DefaultDirectory
}

// A parser holds the state of a single Parse call.
type parser struct {
	g     *grammar
	emoji *Directory
}

// An item is a parsed node and the offset where its source text ends.
type item struct {
	node Node
	end  int
}

// one returns the items for a rule producing a single node from n bytes.
func one(x Node, n int) []item {
	return []item{{x, n}}
}

// parse parses s, trying the rules of p.g at each offset,
// and returns the nodes with their end offsets in s.
// The plain text rule always matches, so every offset makes progress.
func (p *parser) parse(s string, st State) []item {
	var list []item
	for off := 0; off < len(s); {
		r, c := p.g.match(s[off:], st)
		for _, x := range r.parse(p, c, st) {
			list = appendItem(list, x.node, off+x.end)
		}
		off += c.n
	}
	return list
}

// nodes parses s, as the body of some enclosing node, into a Nodes.
func (p *parser) nodes(s string, st State) Nodes {
	list := p.parse(s, st)
	out := make(Nodes, len(list))
	for i, x := range list {
		out[i] = x.node
	}
	return out
}

// appendItem appends x to list, merging adjacent Text nodes,
// so that for example a*b is Text{a*b} and not Text{a}Text{*}Text{b}.
func appendItem(list []item, x Node, end int) []item {
	if t, ok := x.(*Text); ok && len(list) > 0 {
		if last, ok := list[len(list)-1].node.(*Text); ok {
			list[len(list)-1] = item{&Text{last.Text + t.Text}, end}
			return list
		}
	}
	return append(list, item{x, end})
}
