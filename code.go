// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// An InlineCode is a [Node] representing a `code` span.
// Its text is not parsed for markup.
type InlineCode struct {
	Text string
}

func (*InlineCode) Node() {}

func (x *InlineCode) printText(p *printer) { p.text(x.Text) }

func (x *InlineCode) render(r *renderer) *html.Node {
	code := r.elem(atom.Code, attr("class", "inline"))
	code.AppendChild(r.text(x.Text))
	return code
}

// matchInlineCode matches a span of text between backtick runs of equal length.
// The opening run may give up leading backticks to the body,
// as in ``` `` ` ```, but the body must end in a character other than a
// backtick and the closing run must have exactly the opening run's length.
func matchInlineCode(s string, _ State) (capture, bool) {
	m := 0
	for m < len(s) && s[m] == '`' {
		m++
	}
	if m == 0 {
		return capture{}, false
	}

	// first[k] is the offset of the first backtick run of length k after
	// the opening run, or -1. A run as long as the opening one ends the
	// search: nothing after it can be chosen.
	first := make([]int, m+1)
	for k := range first {
		first[k] = -1
	}
	for i := m; i < len(s) && first[m] < 0; {
		if s[i] != '`' {
			i++
			continue
		}
		j := i
		for j < len(s) && s[j] == '`' {
			j++
		}
		if k := j - i; k <= m && first[k] < 0 {
			first[k] = i
		}
		i = j
	}

	for k := m; k > 0; k-- {
		if i := first[k]; i >= 0 {
			return capture{n: i + k, sub: [3]string{s[:k], s[k:i]}}, true
		}
	}
	return capture{}, false
}

func parseInlineCode(_ *parser, c capture, _ State) []item {
	return one(&InlineCode{trimCodeSpaces(c.sub[1])}, c.n)
}

// trimCodeSpaces removes the single space separating the code span
// delimiters from a backtick at either end of the text, so that `` `x` ``
// holds `x`. Other leading and trailing spaces are kept.
func trimCodeSpaces(s string) string {
	if strings.HasPrefix(s, " ") && strings.HasPrefix(strings.TrimLeft(s[1:], " "), "`") {
		s = s[1:]
	}
	if strings.HasSuffix(s, " ") && strings.HasSuffix(strings.TrimRight(s[:len(s)-1], " "), "`") {
		s = s[:len(s)-1]
	}
	return s
}

// A CodeBlock is a [Node] representing a fenced code block:
//
//	```go
//	fmt.Println("hello")
//	```
//
// Blank lines at the start and end of the block are not part of Text.
type CodeBlock struct {
	Lang string // language tag following the opening fence, if any
	Text string
}

func (*CodeBlock) Node() {}

func (x *CodeBlock) printText(p *printer) {
	p.text(x.Text)
	p.text("\n")
}

func (x *CodeBlock) render(r *renderer) *html.Node {
	return r.code.RenderCode(x.Lang, x.Text)
}

const fence = "```"

// matchCodeBlock matches a fenced code block.
// The language tag is a run of [a-z0-9-] directly after the opening fence,
// ended by at least one newline; without such a run, everything up to the
// closing fence is content. The block ends at the first closing fence
// that leaves the content non-empty.
func matchCodeBlock(s string, _ State) (capture, bool) {
	if !strings.HasPrefix(s, fence) {
		return capture{}, false
	}

	j := len(fence)
	for j < len(s) && isLangByte(s[j]) {
		j++
	}
	if j > len(fence) && j < len(s) && s[j] == '\n' {
		q := skipNewlines(s, j)
		// Content starts after the newlines, or, if that leaves nothing
		// before the closing fence, with the last newline.
		for c := q; c > j && c >= q-1; c-- {
			if e, t, ok := closeFence(s, c); ok {
				return capture{n: t + len(fence), sub: [3]string{s[:j], trimSpace(s[len(fence):j]), s[c:e]}}, true
			}
		}
	}

	q := skipNewlines(s, len(fence))
	for c := q; c >= len(fence) && c >= q-1; c-- {
		if e, t, ok := closeFence(s, c); ok {
			return capture{n: t + len(fence), sub: [3]string{s[:len(fence)], "", s[c:e]}}, true
		}
	}
	return capture{}, false
}

// closeFence finds the closing fence for content starting at c.
// It returns the end of the content, which excludes the newlines
// before the fence, and the offset of the fence.
func closeFence(s string, c int) (end, at int, ok bool) {
	if c+1 > len(s) {
		return 0, 0, false
	}
	t := strings.Index(s[c+1:], fence)
	if t < 0 {
		return 0, 0, false
	}
	t += c + 1
	e := t
	for e > c+1 && s[e-1] == '\n' {
		e--
	}
	return e, t, true
}

func skipNewlines(s string, i int) int {
	for i < len(s) && s[i] == '\n' {
		i++
	}
	return i
}

func parseCodeBlock(_ *parser, c capture, _ State) []item {
	return one(&CodeBlock{Lang: c.sub[1], Text: c.sub[2]}, c.n)
}

// A CodeRenderer renders the content of fenced code blocks,
// for example with a syntax highlighter.
type CodeRenderer interface {
	RenderCode(lang, text string) *html.Node
}

// A CodeRendererFunc is a function implementing [CodeRenderer].
type CodeRendererFunc func(lang, text string) *html.Node

func (f CodeRendererFunc) RenderCode(lang, text string) *html.Node { return f(lang, text) }

// PlainCode renders a code block as <pre><code class="language-lang">text</code></pre>,
// omitting the class when lang is empty.
var PlainCode CodeRenderer = CodeRendererFunc(plainCode)

func plainCode(lang, text string) *html.Node {
	pre := newElem(atom.Pre)
	code := newElem(atom.Code)
	if lang != "" {
		code.Attr = append(code.Attr, attr("class", "language-"+lang))
	}
	code.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	pre.AppendChild(code)
	return pre
}
