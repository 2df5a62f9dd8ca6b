// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// A Link is a [Node] representing a [label](target "title") link.
type Link struct {
	Inner Nodes
	URL   string
	Title string
}

func (*Link) Node() {}

func (x *Link) printText(p *printer) { x.Inner.printText(p) }

func (x *Link) render(r *renderer) *html.Node {
	a := r.link(x.URL)
	if x.Title != "" {
		a.Attr = append(a.Attr, attr("title", x.Title))
	}
	return x.Inner.renderInto(r, a)
}

// An Autolink is a [Node] representing a bare URL,
// either in running text or wrapped in angle brackets.
type Autolink struct {
	URL string
}

func (*Autolink) Node() {}

func (x *Autolink) printText(p *printer) { p.text(x.URL) }

func (x *Autolink) render(r *renderer) *html.Node {
	a := r.link(x.URL)
	a.AppendChild(r.text(x.URL))
	return a
}

// hasScheme returns the length of the http:// or https:// prefix of s, or 0.
func hasScheme(s string) int {
	switch {
	case strings.HasPrefix(s, "http://"):
		return len("http://")
	case strings.HasPrefix(s, "https://"):
		return len("https://")
	}
	return 0
}

// matchAutolink matches <http://url>.
func matchAutolink(s string, _ State) (capture, bool) {
	if len(s) == 0 || s[0] != '<' {
		return capture{}, false
	}
	n := hasScheme(s[1:])
	if n == 0 {
		return capture{}, false
	}
	i := 1 + n
	for i < len(s) && s[i] != ' ' && s[i] != '>' {
		i++
	}
	if i == 1+n || i == len(s) || s[i] != '>' {
		return capture{}, false
	}
	return capture{n: i + 1, sub: [3]string{s[1:i]}}, true
}

// matchURL matches a bare http or https URL in running text.
// The URL ends at white space or <, and trailing punctuation
// that more likely belongs to the sentence is left out.
func matchURL(s string, _ State) (capture, bool) {
	start := hasScheme(s)
	if start == 0 {
		return capture{}, false
	}
	end := start
	for end < len(s) {
		r, w := utf8.DecodeRuneInString(s[end:])
		if r == '<' || isSpace(r) {
			break
		}
		end += w
	}
	for end > start {
		r, w := utf8.DecodeLastRuneInString(s[start:end])
		if end-w == start {
			break
		}
		if !strings.ContainsRune(`.,:;"')]`, r) {
			return capture{n: end, sub: [3]string{s[:end]}}, true
		}
		end -= w
	}
	return capture{}, false
}

func parseAutolink(_ *parser, c capture, _ State) []item {
	return one(&Autolink{c.sub[0]}, c.n)
}

// matchLink matches [label](target "title").
//
// The label may contain bracketed text, and a ] that is followed by
// another ] before any [. Of the possible label ends, the longest one
// with a valid target wins.
func matchLink(s string, _ State) (capture, bool) {
	if len(s) < 4 || s[0] != '[' {
		return capture{}, false
	}
	var ends []int
	for i := 1; i < len(s); {
		switch s[i] {
		case '[':
			k := strings.IndexByte(s[i+1:], ']')
			if k < 0 {
				i = len(s)
				continue
			}
			i += 1 + k + 1
			continue
		case ']':
			if strings.HasPrefix(s[i:], "](") {
				ends = append(ends, i)
			}
			k := strings.IndexAny(s[i+1:], "[]")
			if k < 0 || s[i+1+k] != ']' {
				i = len(s)
				continue
			}
		}
		i++
	}

	for j := len(ends) - 1; j >= 0; j-- {
		label := ends[j]
		if n, target, title, ok := matchLinkTarget(s, label+2); ok {
			return capture{n: n, sub: [3]string{s[1:label], target, title}}, true
		}
	}
	return capture{}, false
}

// matchLinkTarget matches the target and optional title of a link,
// followed by the closing parenthesis, starting at s[i:].
// The target is as short as possible. It may hold parenthesized text
// (with white space), escapes, and any other non-space characters.
func matchLinkTarget(s string, i int) (end int, target, title string, ok bool) {
	// Every match ends at a closing parenthesis,
	// so nothing past the last one can be part of it.
	limit := strings.LastIndexByte(s, ')')
	if limit < i {
		return 0, "", "", false
	}

	start := skipSpaces(s, i)
	if start < len(s) && s[start] == '<' {
		start++
	}

	// The closing parenthesis for a ( at offset j is the first
	// one after it; remember the last answer to avoid rescanning.
	parenFrom, parenAt := -1, -1
	nextParen := func(j int) int {
		if parenFrom <= j && j <= parenAt {
			return parenAt
		}
		parenFrom, parenAt = j, j+strings.IndexByte(s[j:limit+1], ')')
		return parenAt
	}

	if start <= limit {
		seen := make([]bool, limit-start+2)
		stack := []int{start}
		push := func(e int) {
			if e <= limit+1 {
				stack = append(stack, e)
			}
		}
		for len(stack) > 0 {
			e := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if seen[e-start] {
				continue
			}
			seen[e-start] = true

			if end, title, ok := matchLinkEnd(s, e); ok {
				return end, s[start:e], title, true
			}
			if e >= limit {
				continue
			}
			r, w := utf8.DecodeRuneInString(s[e:])
			if r == '\\' {
				if n, w := utf8.DecodeRuneInString(s[e+1:]); !isLineTerminator(n) {
					push(e + 1 + w)
				}
				continue
			}
			if isSpace(r) {
				continue
			}
			push(e + w)
			if r == '(' {
				if k := nextParen(e + 1); k > e {
					push(k + 1)
				}
			}
		}
	}

	// A target of white space alone leaves room for a title.
	if start := skipSpaces(s, i); start > i {
		if end, title, ok := matchLinkTitle(s, i); ok {
			return end, "", title, true
		}
	}
	return 0, "", "", false
}

// matchLinkEnd matches what follows a link target at s[i:]:
// an optional >, an optional title, and the closing parenthesis.
func matchLinkEnd(s string, i int) (end int, title string, ok bool) {
	if i < len(s) && s[i] == '>' {
		i++
	}
	if end, title, ok := matchLinkTitle(s, i); ok {
		return end, title, true
	}
	if end, ok := matchCloseParen(s, i); ok {
		return end, "", true
	}
	return 0, "", false
}

// matchLinkTitle matches white space, a quoted title, and the closing
// parenthesis. Either quote character may open or close the title.
func matchLinkTitle(s string, i int) (end int, title string, ok bool) {
	j := skipSpaces(s, i)
	if j == i || j >= len(s) || s[j] != '"' && s[j] != '\'' {
		return 0, "", false
	}
	for k := j + 1; k < len(s); k++ {
		if s[k] != '"' && s[k] != '\'' {
			continue
		}
		if end, ok := matchCloseParen(s, k+1); ok {
			return end, s[j+1 : k], true
		}
	}
	return 0, "", false
}

// matchCloseParen matches optional white space and a closing parenthesis.
func matchCloseParen(s string, i int) (end int, ok bool) {
	i = skipSpaces(s, i)
	if i < len(s) && s[i] == ')' {
		return i + 1, true
	}
	return 0, false
}

// skipSpaces returns i advanced past any white space in s[i:].
func skipSpaces(s string, i int) int {
	for i < len(s) {
		r, w := utf8.DecodeRuneInString(s[i:])
		if !isSpace(r) {
			break
		}
		i += w
	}
	return i
}

func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == 0x2028 || r == 0x2029
}

func parseLink(p *parser, c capture, st State) []item {
	return one(&Link{
		Inner: p.nodes(c.sub[0], st),
		URL:   unescapeURL(c.sub[1]),
		Title: c.sub[2],
	}, c.n)
}

// safeURL reports whether target may be used as a link href.
// Targets that fail to parse and targets with
// javascript:, vbscript: or data: schemes are not safe.
func safeURL(target string) bool {
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "javascript", "vbscript", "data":
		return false
	}
	return true
}

// A LinkPolicy returns the attributes to add to a rendered link
// besides its href and title.
type LinkPolicy interface {
	LinkAttrs(target string) []html.Attribute
}

// A LinkPolicyFunc is a function implementing [LinkPolicy].
type LinkPolicyFunc func(target string) []html.Attribute

func (f LinkPolicyFunc) LinkAttrs(target string) []html.Attribute { return f(target) }

// SafeLinks opens every link in a new browsing context
// without passing on the opener or the referrer.
var SafeLinks LinkPolicy = LinkPolicyFunc(func(string) []html.Attribute {
	return []html.Attribute{
		attr("rel", "noopener noreferrer"),
		attr("target", "_blank"),
	}
})

// link returns an <a> element for target, without children.
// Unsafe targets get no href.
func (r *renderer) link(target string) *html.Node {
	a := r.elem(atom.A)
	if safeURL(target) {
		a.Attr = append(a.Attr, attr("href", target))
	}
	a.Attr = append(a.Attr, r.links.LinkAttrs(target)...)
	return a
}
