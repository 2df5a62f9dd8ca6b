// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// A Paragraph is a [Node] representing text followed by a blank line,
// usually displayed in <p>...</p> tags.
// Paragraphs are only recognized in block scope,
// and their text is parsed in inline scope.
type Paragraph struct {
	Inner Nodes
}

func (*Paragraph) Node() {}

func (x *Paragraph) printText(p *printer) {
	x.Inner.printText(p)
	p.text("\n\n")
}

func (x *Paragraph) render(r *renderer) *html.Node {
	return x.Inner.renderInto(r, r.elem(atom.P))
}

// matchParagraph matches text ended by a blank line.
// The match takes in all following blank lines except for trailing spaces.
func matchParagraph(s string, _ State) (capture, bool) {
	end := -1
	for i := 0; i < len(s) && end < 0; i++ {
		if s[i] != '\n' {
			continue
		}
		j := i + 1
		for j < len(s) && s[j] == ' ' {
			j++
		}
		if j < len(s) && s[j] == '\n' {
			end = i
		}
	}
	if end <= 0 {
		return capture{}, false
	}
	n := end
	for j := end; j < len(s) && (s[j] == '\n' || s[j] == ' '); j++ {
		if s[j] == '\n' {
			n = j + 1
		}
	}
	return capture{n: n, sub: [3]string{s[:end]}}, true
}

func parseParagraph(p *parser, c capture, st State) []item {
	st.Inline = true
	return one(&Paragraph{p.nodes(c.sub[0], st)}, c.n)
}
