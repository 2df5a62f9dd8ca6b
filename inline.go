// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// A Node is one element of a parsed document, one of
// [Text], [Emphasis], [InlineCode], [CodeBlock],
// [Link], [Autolink], [Emoji], [CustomEmoji],
// [Mention], [Spoiler], [Paragraph], and [LineBreak].
type Node interface {
	Node()

	printText(*printer)
	render(*renderer) *html.Node
}

// A Nodes is a sequence of [Node]s in source order.
type Nodes []Node

func (x Nodes) printText(p *printer) {
	for _, n := range x {
		n.printText(p)
	}
}

// renderInto renders each node of x as a child of parent.
func (x Nodes) renderInto(r *renderer, parent *html.Node) *html.Node {
	for _, n := range x {
		parent.AppendChild(n.render(r))
	}
	return parent
}

// A Text is a [Node] holding plain text.
type Text struct {
	Text string
}

func (*Text) Node() {}

func (x *Text) printText(p *printer) { p.text(x.Text) }

func (x *Text) render(r *renderer) *html.Node { return r.text(x.Text) }

// An EmphKind is the kind of an [Emphasis].
type EmphKind int

const (
	Strong EmphKind = iota
	Em
	Underline
	Strikethrough
)

var emphNames = [...]string{
	Strong:        "strong",
	Em:            "em",
	Underline:     "underline",
	Strikethrough: "strikethrough",
}

func (k EmphKind) String() string {
	if int(k) < len(emphNames) {
		return emphNames[k]
	}
	return "EmphKind(?)"
}

var emphTags = [...]atom.Atom{
	Strong:        atom.Strong,
	Em:            atom.Em,
	Underline:     atom.U,
	Strikethrough: atom.Del,
}

// An Emphasis is a [Node] representing **strong**, *em* or _em_,
// __underline__ or ~~strikethrough~~ text.
type Emphasis struct {
	Kind  EmphKind
	Inner Nodes
}

func (*Emphasis) Node() {}

func (x *Emphasis) printText(p *printer) { x.Inner.printText(p) }

func (x *Emphasis) render(r *renderer) *html.Node {
	return x.Inner.renderInto(r, r.elem(emphTags[x.Kind]))
}

// A Spoiler is a [Node] representing ||hidden|| text.
type Spoiler struct {
	Inner Nodes
}

func (*Spoiler) Node() {}

func (x *Spoiler) printText(p *printer) { x.Inner.printText(p) }

func (x *Spoiler) render(r *renderer) *html.Node {
	return x.Inner.renderInto(r, r.elem(atom.Span, attr("class", "spoiler")))
}

// Plain text rules.
//
// The plain text rule is the catch-all of every grammar: it consumes at
// least one character and then stops before anything that could start
// markup, so that the structural rules get a chance at the next offset.
// At the outermost scope (State.Nested == false) the matched text has its
// literal emoji rewritten into :shortcode: form and is parsed again with
// Nested set, so literal and typed emoji end up as the same [Emoji] node.

// matchText matches plain text. It never fails on non-empty input.
func matchText(s string, _ State) (capture, bool) {
	_, w := utf8.DecodeRuneInString(s)
	i := w
	for i < len(s) {
		if isLetterDigit(s[i]) {
			// A run of word characters followed by ":x" may start a URL.
			// The answer is the same at every offset in the run,
			// up to the first underscore, which is a symbol.
			j := i + 1
			for j < len(s) && isWordByte(s[j]) {
				j++
			}
			if j+1 < len(s) && s[j] == ':' && !startsWithSpace(s[j+1:]) {
				break
			}
			for i < j && isLetterDigit(s[i]) {
				i++
			}
			continue
		}
		if textStop(s[i:]) {
			break
		}
		_, w := utf8.DecodeRuneInString(s[i:])
		i += w
	}
	return capture{n: i, sub: [3]string{s[:i]}}, true
}

// textStop reports whether plain text must stop before s.
func textStop(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	if isSymbol(r) {
		return true
	}
	if strings.HasPrefix(s, "\n\n") {
		return true
	}
	if s[0] == ' ' {
		i := 1
		for i < len(s) && s[i] == ' ' {
			i++
		}
		return i >= 2 && i < len(s) && s[i] == '\n'
	}
	return false
}

func parseText(p *parser, c capture, st State) []item {
	if st.Nested {
		return one(&Text{c.sub[0]}, c.n)
	}
	rw := p.emoji.substitute(c.sub[0])
	if len(rw.edits) == 0 {
		// Without substitutions, a nested parse would
		// reproduce the same text: nothing at this offset
		// matched any other rule.
		return one(&Text{c.sub[0]}, c.n)
	}

	// Each shortcode is parsed on its own, so that it cannot
	// combine with the text around it, and every node keeps
	// a non-empty span of the original text.
	nested := State{Inline: st.Inline, Nested: true}
	var list []item
	last := 0
	for _, e := range rw.edits {
		if last < e.srcStart {
			for _, x := range p.parse(rw.src[last:e.srcStart], nested) {
				list = appendItem(list, x.node, last+x.end)
			}
		}
		var x Node = &Text{rw.src[e.srcStart:e.srcEnd]}
		if sub := p.parse(rw.dst[e.dstStart:e.dstEnd], nested); len(sub) == 1 {
			x = sub[0].node
		}
		list = appendItem(list, x, e.srcEnd)
		last = e.srcEnd
	}
	if last < len(rw.src) {
		for _, x := range p.parse(rw.src[last:], nested) {
			list = appendItem(list, x.node, last+x.end)
		}
	}
	return list
}

// matchEscape matches a backslash-escaped symbol.
func matchEscape(s string, _ State) (capture, bool) {
	if len(s) < 2 || s[0] != '\\' {
		return capture{}, false
	}
	r, w := utf8.DecodeRuneInString(s[1:])
	if r < utf8.RuneSelf && isLetterDigit(byte(r)) || isSpace(r) {
		return capture{}, false
	}
	return capture{n: 1 + w, sub: [3]string{s[1 : 1+w]}}, true
}

func parseEscape(_ *parser, c capture, _ State) []item {
	return one(&Text{c.sub[0]}, c.n)
}

// shrug is matched as text so that its \_ and _ do not start emphasis.
const shrug = `¯\_(ツ)_/¯`

func matchShrug(s string, _ State) (capture, bool) {
	if !strings.HasPrefix(s, shrug) {
		return capture{}, false
	}
	return capture{n: len(shrug), sub: [3]string{shrug}}, true
}

// matchSpoiler matches ||text||.
func matchSpoiler(s string, _ State) (capture, bool) {
	if len(s) < 5 || !strings.HasPrefix(s, "||") {
		return capture{}, false
	}
	_, w := utf8.DecodeRuneInString(s[2:])
	i := strings.Index(s[2+w:], "||")
	if i < 0 {
		return capture{}, false
	}
	end := 2 + w + i
	return capture{n: end + 2, sub: [3]string{s[2:end]}}, true
}

func parseSpoiler(p *parser, c capture, st State) []item {
	return one(&Spoiler{p.nodes(c.sub[0], st)}, c.n)
}

// Emphasis rules.
//
// Strong, em and underline share a priority. All three are tried at an
// offset and the longest match wins; on equal lengths em beats strong
// beats underline. That lets ***x*** parse as em containing strong.

// matchEm matches _em_ between word boundaries or *em*.
func matchEm(s string, _ State) (capture, bool) {
	if len(s) < 3 {
		return capture{}, false
	}
	switch s[0] {
	case '_':
		return matchEmUnder(s)
	case '*':
		return matchEmStar(s)
	}
	return capture{}, false
}

// matchEmUnder matches _text_ where the closing _ ends a word.
// Inside, __ pairs and escapes are skipped and single _ are not allowed.
func matchEmUnder(s string) (capture, bool) {
	for i := 1; i < len(s); {
		if i > 1 && s[i] == '_' && (i+1 == len(s) || !isWordByte(s[i+1])) {
			return capture{n: i + 1, sub: [3]string{s[1:i]}}, true
		}
		switch {
		case strings.HasPrefix(s[i:], "__"):
			i += 2
		case s[i] == '\\':
			w, ok := escapeLen(s[i:])
			if !ok {
				return capture{}, false
			}
			i += w
		case s[i] == '_':
			return capture{}, false
		default:
			_, w := utf8.DecodeRuneInString(s[i:])
			i += w
		}
	}
	return capture{}, false
}

// matchEmStar matches *text* where text starts with a non-space
// and the closing * is not part of a **.
func matchEmStar(s string) (capture, bool) {
	if r, _ := utf8.DecodeRuneInString(s[1:]); isSpace(r) {
		return capture{}, false
	}
	for i := 1; i < len(s); {
		if i > 1 && s[i] == '*' && (i+1 == len(s) || s[i+1] != '*') {
			return capture{n: i + 1, sub: [3]string{s[1:i]}}, true
		}
		w, ok := emStarUnit(s[i:])
		if !ok {
			return capture{}, false
		}
		i += w
	}
	return capture{}, false
}

// emStarUnit returns the length of the em body unit at the start of s:
// a **, an escape, whitespace followed by a non-space unit, or a single
// character other than space, * and \.
func emStarUnit(s string) (int, bool) {
	switch {
	case strings.HasPrefix(s, "**"):
		return 2, true
	case s[0] == '\\':
		return escapeLen(s)
	case s[0] == '*':
		return 0, false
	}
	r, w := utf8.DecodeRuneInString(s)
	if !isSpace(r) {
		return w, true
	}
	i := w
	for i < len(s) {
		r, w := utf8.DecodeRuneInString(s[i:])
		if !isSpace(r) {
			break
		}
		i += w
	}
	if i >= len(s) {
		return 0, false
	}
	switch {
	case s[i] == '\\':
		n, ok := escapeLen(s[i:])
		return i + n, ok
	case strings.HasPrefix(s[i:], "**"):
		return i + 2, true
	case s[i] == '*':
		return 0, false
	}
	_, w = utf8.DecodeRuneInString(s[i:])
	return i + w, true
}

// escapeLen returns the length of the backslash escape at the start of s.
func escapeLen(s string) (int, bool) {
	if len(s) < 2 {
		return 0, false
	}
	_, w := utf8.DecodeRuneInString(s[1:])
	return 1 + w, true
}

// matchDouble matches a body enclosed in a doubled marker,
// such as **strong** or __underline__. The closing marker must not be
// followed by another copy of after.
func matchDouble(s, marker string, after byte) (capture, bool) {
	if !strings.HasPrefix(s, marker) {
		return capture{}, false
	}
	n := len(marker)
	for i := n; i < len(s); {
		if i > n && strings.HasPrefix(s[i:], marker) && (i+n == len(s) || s[i+n] != after) {
			return capture{n: i + n, sub: [3]string{s[n:i]}}, true
		}
		if s[i] == '\\' {
			w, ok := escapeLen(s[i:])
			if !ok {
				return capture{}, false
			}
			i += w
			continue
		}
		_, w := utf8.DecodeRuneInString(s[i:])
		i += w
	}
	return capture{}, false
}

func matchStrong(s string, _ State) (capture, bool) { return matchDouble(s, "**", '*') }

func matchUnderline(s string, _ State) (capture, bool) { return matchDouble(s, "__", '_') }

// matchDel matches ~~text~~. The closing ~~ must not be followed by _,
// so that ~~a~~_b_ is not read as strikethrough followed by emphasis.
func matchDel(s string, _ State) (capture, bool) {
	if !strings.HasPrefix(s, "~~") {
		return capture{}, false
	}
	for i := 2; i < len(s); {
		_, w := utf8.DecodeRuneInString(s[i:])
		i += w
		if strings.HasPrefix(s[i:], "~~") && (i+2 == len(s) || s[i+2] != '_') {
			return capture{n: i + 2, sub: [3]string{s[2:i]}}, true
		}
	}
	return capture{}, false
}

func qualityEm(c capture) float64        { return float64(c.n) + 0.2 }
func qualityStrong(c capture) float64    { return float64(c.n) + 0.1 }
func qualityUnderline(c capture) float64 { return float64(c.n) }

// emphParser returns a rule parser producing an [Emphasis] of kind k.
func emphParser(k EmphKind) func(*parser, capture, State) []item {
	return func(p *parser, c capture, st State) []item {
		return one(&Emphasis{Kind: k, Inner: p.nodes(c.sub[0], st)}, c.n)
	}
}
