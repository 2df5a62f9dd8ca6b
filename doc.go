// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package markup parses and renders chat-style message markup:
// **strong**, *em*, __underline__, ~~strikethrough~~, `code`,
// fenced code blocks, [links](https://example.com), bare URLs,
// :emoji: shortcodes and literal emoji, <:custom:123> emoji,
// <@123> mentions and ||spoilers||.
//
// A [Parser] turns text into a [Document], an ordered sequence of [Node]s.
// Parsing is total: every input string produces a document, and text that
// does not match any markup rule is kept as [Text].
//
//	var p markup.Parser
//	doc := p.Parse("hello **world** :wave:")
//	fmt.Print(markup.ToHTML(p.RenderDocument(doc)))
//
// [Parser.Render] combines parsing and rendering and reports slow calls
// to an optional [TraceSink].
package markup

// A Span is a byte range [Start, End) of the parsed source text.
// The spans of a [Document] are never empty, and together they
// cover the source text in order.
type Span struct {
	Start int
	End   int
}

// A Document is the result of parsing one message.
//
// Nodes holds the top-level nodes in source order.
// Spans[i] is the range of the source text that Nodes[i] was parsed from;
// the spans tile the source text exactly, with no gaps and no overlaps.
// Jumbo reports whether the jumbo emoji transform flagged the document.
//
// A Document is never modified after it is returned;
// transforms return a new Document.
type Document struct {
	Nodes Nodes
	Spans []Span
	Jumbo bool
}
