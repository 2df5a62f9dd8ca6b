// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

// maxJumboOther is the number of top-level nodes other than emoji
// at which a message stops being displayed with jumbo emoji.
const maxJumboOther = 26

// Jumbosize applies the jumbo emoji transform to doc.
//
// A document qualifies when it has fewer than 26 top-level nodes that
// are not emoji and none of those nodes has visible text.
// For a qualifying document, Jumbosize returns a copy with Jumbo set
// and every [Emoji] and [CustomEmoji], at any depth, marked Jumboable.
// Otherwise it returns doc unchanged.
// An empty document qualifies.
func Jumbosize(doc *Document) *Document {
	other := 0
	for _, x := range doc.Nodes {
		if isEmoji(x) {
			continue
		}
		if other++; other >= maxJumboOther || hasText(x) {
			return doc
		}
	}
	return &Document{
		Nodes: jumboNodes(doc.Nodes),
		Spans: doc.Spans,
		Jumbo: true,
	}
}

func isEmoji(x Node) bool {
	switch x.(type) {
	case *Emoji, *CustomEmoji:
		return true
	}
	return false
}

// hasText reports whether x displays any text other than white space.
// Emoji and line breaks are not text.
func hasText(x Node) bool {
	switch x := x.(type) {
	case *Text:
		return trimSpace(x.Text) != ""
	case *InlineCode:
		return trimSpace(x.Text) != ""
	case *CodeBlock:
		return trimSpace(x.Text) != ""
	case *Autolink, *Mention:
		return true
	case *Emphasis:
		return anyText(x.Inner)
	case *Link:
		return anyText(x.Inner)
	case *Spoiler:
		return anyText(x.Inner)
	case *Paragraph:
		return anyText(x.Inner)
	}
	return false
}

func anyText(list Nodes) bool {
	for _, x := range list {
		if hasText(x) {
			return true
		}
	}
	return false
}

// jumboNodes returns a copy of list with every emoji marked Jumboable.
// Leaves other than emoji are shared, not copied.
func jumboNodes(list Nodes) Nodes {
	out := make(Nodes, len(list))
	for i, x := range list {
		out[i] = jumboNode(x)
	}
	return out
}

func jumboNode(x Node) Node {
	switch x := x.(type) {
	case *Emoji:
		y := *x
		y.Jumboable = true
		return &y
	case *CustomEmoji:
		y := *x
		y.Jumboable = true
		return &y
	case *Emphasis:
		return &Emphasis{Kind: x.Kind, Inner: jumboNodes(x.Inner)}
	case *Link:
		return &Link{Inner: jumboNodes(x.Inner), URL: x.URL, Title: x.Title}
	case *Spoiler:
		return &Spoiler{Inner: jumboNodes(x.Inner)}
	case *Paragraph:
		return &Paragraph{Inner: jumboNodes(x.Inner)}
	}
	return x
}
