// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"maunium.net/go/mautrix/util/variationselector"
)

// A Directory maps emoji shortcode names to emoji and back.
//
// Besides the names it is built from, a Directory knows the skin tone
// variants of every emoji: name::skin-tone-1 through name::skin-tone-5
// are the emoji followed by a Fitzpatrick modifier, U+1F3FB through U+1F3FF.
//
// A Directory must not be modified once it is in use.
type Directory struct {
	// ImageBase and ImageExt surround the code points of an emoji
	// in its image URL. If ImageBase is empty, emoji have no image URL.
	ImageBase string
	ImageExt  string

	byName  map[string]string
	byGlyph map[string]string
	byBare  map[string]string // keyed by glyph without variation selectors
	maxName int
}

// Twemoji image location used by DefaultDirectory.
const (
	TwemojiBase = "https://cdn.jsdelivr.net/gh/twitter/twemoji@14.0.2/assets/svg/"
	TwemojiExt  = ".svg"
)

// DefaultDirectory holds the built-in emoji names.
var DefaultDirectory = newDirectory(emoji, maxEmojiLen)

// NewDirectory returns a Directory for the given name to emoji mapping.
// Names must not contain colons or white space.
// When several names map to the same emoji, the alphabetically first
// name is used when turning the emoji back into a name.
func NewDirectory(names map[string]string) *Directory {
	n := 0
	for name := range names {
		n = max(n, len(name))
	}
	return newDirectory(names, n)
}

func newDirectory(names map[string]string, maxName int) *Directory {
	d := &Directory{
		ImageBase: TwemojiBase,
		ImageExt:  TwemojiExt,
		byName:    make(map[string]string, len(names)),
		byGlyph:   make(map[string]string, len(names)),
		byBare:    make(map[string]string, len(names)),
		maxName:   maxName,
	}
	list := make([]string, 0, len(names))
	for name := range names {
		list = append(list, name)
	}
	sort.Strings(list)
	for _, name := range list {
		glyph := names[name]
		d.byName[name] = glyph
		if _, ok := d.byGlyph[glyph]; !ok {
			d.byGlyph[glyph] = name
		}
		bare := variationselector.Remove(glyph)
		if _, ok := d.byBare[bare]; !ok {
			d.byBare[bare] = name
		}
	}
	return d
}

const (
	skinTone = "::skin-tone-"
	vs16     = "\ufe0f"
	zwj      = "\u200d"
)

// Lookup returns the emoji for the shortcode name, without colons.
func (d *Directory) Lookup(name string) (glyph string, ok bool) {
	base, tone, hasTone := strings.Cut(name, skinTone)
	if len(base) > d.maxName {
		return "", false
	}
	glyph, ok = d.byName[base]
	if !ok || !hasTone {
		return glyph, ok
	}
	if len(tone) != 1 || tone[0] < '1' || tone[0] > '5' {
		return "", false
	}
	return variationselector.Remove(glyph) + string(rune(0x1F3FB+int(tone[0]-'1'))), true
}

// Name returns the shortcode name, without colons, for the emoji glyph.
// The glyph may be written with or without the emoji variation selector.
func (d *Directory) Name(glyph string) (name string, ok bool) {
	if name, ok := d.byGlyph[glyph]; ok {
		return name, true
	}
	if strings.Contains(glyph, vs16) {
		if name, ok := d.byBare[variationselector.Remove(glyph)]; ok {
			return name, true
		}
	} else if utf8.RuneCountInString(glyph) > 1 {
		// Single characters like ↔ or © are only emoji
		// when written with a variation selector.
		if name, ok := d.byBare[glyph]; ok {
			return name, true
		}
	}

	r, w := utf8.DecodeLastRuneInString(glyph)
	if 0x1F3FB <= r && r <= 0x1F3FF && w < len(glyph) {
		if name, ok := d.Name(glyph[:len(glyph)-w]); ok && !strings.Contains(name, skinTone) {
			return fmt.Sprintf("%s%s%d", name, skinTone, r-0x1F3FB+1), true
		}
	}
	return "", false
}

// ImageURL returns the image URL for the emoji glyph.
// Code points are written in lower case hex, separated by dashes.
// Variation selectors are left out unless the glyph holds a zero width joiner.
func (d *Directory) ImageURL(glyph string) string {
	if d.ImageBase == "" {
		return ""
	}
	if !strings.Contains(glyph, zwj) {
		glyph = variationselector.Remove(glyph)
	}
	var b strings.Builder
	b.WriteString(d.ImageBase)
	for i, r := range glyph {
		if i > 0 {
			b.WriteByte('-')
		}
		fmt.Fprintf(&b, "%x", r)
	}
	b.WriteString(d.ImageExt)
	return b.String()
}

// A rewrite is the result of replacing literal emoji in src by shortcodes.
type rewrite struct {
	src   string
	dst   string
	edits []edit
}

// An edit records that src[srcStart:srcEnd] became dst[dstStart:dstEnd].
type edit struct {
	srcStart, srcEnd int
	dstStart, dstEnd int
}

// substitute rewrites every emoji grapheme cluster in s that d has
// a name for into its :name: form.
func (d *Directory) substitute(s string) rewrite {
	rw := rewrite{src: s, dst: s}
	if isASCII(s) {
		return rw
	}

	var b strings.Builder
	last := 0
	state := -1
	for off, rest := 0, s; rest != ""; {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if name, ok := d.Name(cluster); ok {
			b.WriteString(s[last:off])
			e := edit{srcStart: off, srcEnd: off + len(cluster), dstStart: b.Len()}
			b.WriteString(":" + name + ":")
			e.dstEnd = b.Len()
			rw.edits = append(rw.edits, e)
			last = e.srcEnd
		}
		off += len(cluster)
	}
	if len(rw.edits) > 0 {
		b.WriteString(s[last:])
		rw.dst = b.String()
	}
	return rw
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
