// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

import (
	"bytes"
	"flag"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/sanity-io/litter"
	"github.com/yuin/goldmark"
	"golang.org/x/net/html"
	"golang.org/x/tools/txtar"
)

var goldmarkFlag = flag.Bool("goldmark", false, "run goldmark tests")

func Test(t *testing.T) {
	files, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		t.Fatal(err)
	}
	for _, file := range files {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".txt"), func(t *testing.T) {
			a, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatal(err)
			}

			var p Parser
			gm, err := setParserOptions(&p, a.Comment)
			if err != nil {
				t.Fatal(err)
			}

			var ncase, npass int
			for i := 0; i+2 <= len(a.Files); i += 2 {
				ncase++
				md := a.Files[i]
				out := a.Files[i+1]
				name := strings.TrimSuffix(md.Name, ".md")
				if name != strings.TrimSuffix(out.Name, ".html") {
					t.Fatalf("mismatched file pair: %s and %s", md.Name, out.Name)
				}

				t.Run(name, func(t *testing.T) {
					in := decode(string(md.Data))
					doc := p.Parse(in)
					h := encode(ToHTML(p.RenderDocument(doc)))
					if h != string(out.Data) {
						t.Fatalf("input %q\nparse:\n%s\nhave %q\nwant %q", in, dump(doc), h, out.Data)
					}
					npass++
				})

				if !*goldmarkFlag || !gm {
					continue
				}
				t.Run("goldmark/"+name, func(t *testing.T) {
					var buf bytes.Buffer
					if err := goldmark.Convert([]byte(decode(string(md.Data))), &buf); err != nil {
						t.Fatal(err)
					}
					// Chat messages have no paragraphs.
					gout := strings.TrimSuffix(buf.String(), "\n")
					gout = strings.TrimPrefix(gout, "<p>")
					gout = strings.TrimSuffix(gout, "</p>")
					if gout+"\n" != string(out.Data) {
						t.Fatalf("\n    - input: ``%q``\n    - output: ``%q``\n    - golden: ``%q``", md.Data, gout, out.Data)
					}
					npass++
				})
			}
			t.Logf("%d/%d pass", npass, ncase)
		})
	}
}

// decode returns the message stored in a test file.
// The final newline belongs to the file, not the message.
func decode(s string) string {
	s = strings.TrimSuffix(s, "\n")
	s = strings.ReplaceAll(s, "^M", "\r")
	s = strings.ReplaceAll(s, "^@", "\x00")
	return s
}

func encode(s string) string {
	s = strings.ReplaceAll(s, "\r", "^M")
	s = strings.ReplaceAll(s, "\x00", "^@")
	return s + "\n"
}

func dump(doc *Document) string {
	return litter.Sdump(doc)
}

// setParserOptions extracts lines of the form
//
//	key: value
//
// from data and sets the corresponding options on the Parser.
// It reports whether the file is also checked against goldmark.
func setParserOptions(p *Parser, data []byte) (gm bool, err error) {
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "//") {
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		switch key {
		case "Inline", "Jumbo", "Goldmark":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return false, err
			}
			switch key {
			case "Inline":
				p.Inline = b
			case "Jumbo":
				p.Jumbo = b
			case "Goldmark":
				gm = b
			}
		case "Links":
			if value != "plain" {
				return false, fmt.Errorf("unknown link policy: %q", value)
			}
			p.Links = LinkPolicyFunc(func(string) []html.Attribute { return nil })
		default:
			return false, fmt.Errorf("unknown option: %q", key)
		}
	}
	return gm, nil
}
