// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

import "bytes"

// A printer accumulates the plain text form of a document.
type printer struct {
	buf bytes.Buffer
}

func (p *printer) text(list ...string) {
	for _, s := range list {
		p.buf.WriteString(s)
	}
}

// ToText returns the plain text displayed by doc:
// markup delimiters are dropped, emoji are written as emoji,
// custom emoji as :name:, and mentions as their labels.
func ToText(doc *Document) string {
	var p printer
	doc.Nodes.printText(&p)
	return p.buf.String()
}
