// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// A LineBreak is a [Node] representing a newline,
// possibly preceded by spaces, that the surrounding text did not absorb.
// It renders as <br>.
type LineBreak struct{}

func (*LineBreak) Node() {}

func (x *LineBreak) printText(p *printer) { p.text("\n") }

func (x *LineBreak) render(r *renderer) *html.Node { return r.elem(atom.Br) }

// matchBreak matches spaces followed by a newline.
func matchBreak(s string, _ State) (capture, bool) {
	i := 0
	for i < len(s) && s[i] == ' ' {
		i++
	}
	if i >= len(s) || s[i] != '\n' {
		return capture{}, false
	}
	return capture{n: i + 1}, true
}

func parseBreak(_ *parser, c capture, _ State) []item {
	return one(&LineBreak{}, c.n)
}
