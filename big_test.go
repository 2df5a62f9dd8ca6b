// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

import (
	"fmt"
	"strings"
	"testing"
)

var rep = strings.Repeat

func repf(f func(int) string, n int) string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = f(i)
	}
	return strings.Join(out, "")
}

const smileHTML = `<img class="emoji" src="` + TwemojiBase + `1f604.svg" alt="😄" title="smile" draggable="false"/>`

const grinningHTML = `<img class="emoji" src="` + TwemojiBase + `1f600.svg" alt="😀" title="grinning" draggable="false"/>`

// An empty out means the input is expected back unchanged.
// With anyOut set, only the spans and rendering are checked.
var bigTests = []struct {
	name   string
	in     string
	out    string
	inline bool
	anyOut bool
}{
	{
		name: "many link openers with no closers",
		in:   rep("[a", 5000),
	},
	{
		name: "many link closers with no openers",
		in:   rep("a]", 5000),
	},
	{
		name: "nested brackets",
		in:   rep("[", 2000) + "a" + rep("]", 2000),
	},
	{
		name: "unclosed links",
		in:   rep("[a](b", 1000),
	},
	{
		name: "unclosed links with parens",
		in:   rep("[a](b(", 1000),
	},
	{
		name: "link targets with no closing paren",
		in:   rep("[](", 3000),
	},
	{
		name: "many em openers with no closers",
		in:   rep("_a", 5000),
	},
	{
		name: "many star openers with no closers",
		in:   rep("*a ", 5000),
	},
	{
		name: "strong closers doubling as openers",
		in:   rep("**a ", 5000),
		out:  rep("<strong>a </strong>a ", 2500),
	},
	{
		name: "unknown shortcodes",
		in:   rep(":zz", 5000),
	},
	{
		name:   "backticks",
		in:     repf(func(x int) string { return "e" + rep("`", x) }, 100),
		inline: true,
	},
	{
		name:   "alternating backticks",
		in:     rep("`a", 5000),
		out:    rep(`<code class="inline">a</code>a`, 2500),
		inline: true,
	},
	{
		name:   "nested spoilers and strong",
		in:     rep("||**", 500) + "a" + rep("**||", 500),
		anyOut: true,
	},
	{
		name:   "nested strike and underline",
		in:     rep("~~__", 500) + "a" + rep("__~~", 500),
		anyOut: true,
	},
	{
		name:   "control characters",
		in:     rep("\x00\x01\x1b[31m\x7f||\x00||", 1000),
		anyOut: true,
	},
	{
		name: "spoilers",
		in:   rep("||a", 2000),
		out:  rep(`<span class="spoiler">a</span>a`, 1000),
	},
	{
		name: "long text",
		in:   rep("word ", 20000),
	},
	{
		name: "shortcodes",
		in:   rep(":smile:", 2000),
		out:  rep(smileHTML, 2000),
	},
	{
		name: "literal emoji",
		in:   rep("😀", 2000),
		out:  rep(grinningHTML, 2000),
	},
}

func compress(s string) string {
	var out []byte
	start := 0
S:
	for i := 0; i+4 < len(s); i++ {
		c := s[i]
		for j := i + 1; j < i+100 && j < len(s); j++ {
			if s[j] == c {
				n := 1
				w := j - i
				for j+w <= len(s) && s[i:i+w] == s[j:j+w] {
					j += w
					n++
				}
				if n > 2 {
					out = append(out, s[start:i]...)
					out = fmt.Appendf(out, "«%d:%s»", n, s[i:i+w])
					start = j
					i = start - 1
					continue S
				}
			}
		}
	}
	out = append(out, s[start:]...)
	return string(out)
}

func TestBig(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping in -short mode")
	}
	for _, tt := range bigTests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Parser{Inline: tt.inline}
			doc := p.Parse(tt.in)
			checkSpans(t, tt.in, doc)
			out := ToHTML(p.RenderDocument(doc))
			if tt.anyOut {
				return
			}
			if tt.out == "" {
				tt.out = tt.in
			}
			if out != tt.out {
				t.Fatalf("%s: ToHTML(%q):\nhave %q\nwant %q", tt.name, compress(tt.in), compress(out), compress(tt.out))
			}
		})
	}
}

func bench(b *testing.B, text string) {
	for i := 0; i < b.N; i++ {
		var p Parser
		_ = ToHTML(p.Render(text))
	}
	b.SetBytes(int64(len(text)))
}

func BenchmarkBrackets(b *testing.B) {
	bench(b, rep("[", 2000)+"a"+rep("]", 2000))
}

func BenchmarkEmoji(b *testing.B) {
	bench(b, rep("hi 😀 :smile: ", 200))
}

func BenchmarkMessage(b *testing.B) {
	bench(b, rep("**hello** <@123>, see [the docs](https://go.dev/doc) ||not a spoiler||\n", 50))
}
