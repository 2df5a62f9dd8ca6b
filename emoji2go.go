// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore

// Emoji2go writes the built-in emoji directory, emoji.go,
// from the shortcode list in emoji.json.
//
// The list is a JSON object mapping chat shortcode names, without colons,
// to the emoji they stand for. Skin tone variants are not listed:
// the directory derives them from the base emoji.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	outfile = flag.String("o", "", "write output to `file`")
	source  = flag.String("src", "emoji.json", "read shortcode list from `file`")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("emoji2go: ")
	flag.Parse()

	data, err := os.ReadFile(*source)
	if err != nil {
		log.Fatal(err)
	}
	list := make(map[string]string)
	if err := json.Unmarshal(data, &list); err != nil {
		log.Fatalf("%s: %v", *source, err)
	}

	var names []string
	for name := range list {
		names = append(names, name)
	}
	sort.Strings(names)

	bad := false
	var buf bytes.Buffer
	buf.WriteString(hdr)
	fmt.Fprintf(&buf, "var emoji = map[string]string{\n")
	n := 0
	for _, name := range names {
		glyph := list[name]
		switch {
		case name == "" || strings.ContainsAny(name, ": \t\n"):
			// Shortcodes end at a colon or white space.
			log.Printf("bad name: %q", name)
			bad = true
			continue
		case glyph == "" || !utf8.ValidString(glyph):
			log.Printf("bad emoji: :%s: => %q", name, glyph)
			bad = true
			continue
		}
		n = max(n, len(name))
		fmt.Fprintf(&buf, "\t%q: %s,\n", name, strconv.QuoteToASCII(glyph))
	}
	fmt.Fprintf(&buf, "}\n\n")

	fmt.Fprintf(&buf, "const maxEmojiLen = %d\n", n)

	if bad {
		os.Exit(1)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("reformatting output: %v", err)
	}

	if *outfile != "" {
		if err := os.WriteFile(*outfile, src, 0666); err != nil {
			log.Fatal(err)
		}
	} else {
		os.Stdout.Write(src)
	}
}

var hdr = `// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Code generated by emoji2go.go from emoji.json; DO NOT EDIT.

//go:generate go run emoji2go.go -o emoji.go

package markup

// emoji maps chat shortcode names to their UTF-8 emoji forms.
`
