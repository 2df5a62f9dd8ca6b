// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

func FuzzParse(f *testing.F) {
	files, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		f.Fatal(err)
	}
	for _, file := range files {
		a, err := txtar.ParseFile(file)
		if err != nil {
			f.Fatal(err)
		}
		for i := 0; i+2 <= len(a.Files); i += 2 {
			md := a.Files[i]
			html := a.Files[i+1]
			name := strings.TrimSuffix(md.Name, ".md")
			if name != strings.TrimSuffix(html.Name, ".html") {
				f.Fatalf("mismatched file pair: %s and %s", md.Name, html.Name)
			}
			f.Add(decode(string(md.Data)), false)
			f.Add(decode(string(md.Data)), true)
		}
	}
	f.Fuzz(func(t *testing.T, s string, inline bool) {
		p := &Parser{Inline: inline, Jumbo: true}
		doc := p.Parse(s)

		if len(doc.Spans) != len(doc.Nodes) {
			t.Fatalf("in: %q\n%d spans for %d nodes", s, len(doc.Spans), len(doc.Nodes))
		}
		off := 0
		for i, sp := range doc.Spans {
			if sp.Start != off || sp.End <= sp.Start {
				t.Fatalf("in: %q\nspan %d is [%d, %d), want start %d and non-empty\nparse:\n%s", s, i, sp.Start, sp.End, off, dump(doc))
			}
			off = sp.End
		}
		if off != len(s) {
			t.Fatalf("in: %q\nspans end at %d, want %d\nparse:\n%s", s, off, len(s), dump(doc))
		}

		if again := p.Parse(s); !reflect.DeepEqual(doc, again) {
			t.Fatalf("in: %q\nparse is not deterministic:\n%s\n%s", s, dump(doc), dump(again))
		}
		_ = ToHTML(p.RenderDocument(doc))
		_ = ToText(doc)
	})
}
