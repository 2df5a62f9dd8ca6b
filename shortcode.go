// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// An Emoji is a [Node] representing a :shortcode: or a literal emoji
// known to the parser's [Directory].
type Emoji struct {
	Shortcode string // name without colons, such as "smile" or "wave::skin-tone-2"
	Glyph     string // emoji text
	ImageURL  string // image for the emoji; may be empty
	Jumboable bool   // display large; set by [Jumbosize]
}

func (*Emoji) Node() {}

func (x *Emoji) printText(p *printer) { p.text(x.Glyph) }

func (x *Emoji) render(r *renderer) *html.Node {
	if x.ImageURL == "" {
		span := r.elem(atom.Span, attr("class", "emoji"))
		span.AppendChild(r.text(x.Glyph))
		return span
	}
	return r.elem(atom.Img,
		attr("class", emojiClass(x.Jumboable)),
		attr("src", x.ImageURL),
		attr("alt", x.Glyph),
		attr("title", x.Shortcode),
		attr("draggable", "false"),
	)
}

// A CustomEmoji is a [Node] representing a server emoji
// written <:name:id>, or <a:name:id> when animated.
type CustomEmoji struct {
	ID        string
	Name      string
	Animated  bool
	ImageURL  string
	Jumboable bool // display large; set by [Jumbosize]
}

func (*CustomEmoji) Node() {}

func (x *CustomEmoji) printText(p *printer) { p.text(":" + x.Name + ":") }

func (x *CustomEmoji) render(r *renderer) *html.Node {
	return r.elem(atom.Img,
		attr("class", emojiClass(x.Jumboable)),
		attr("src", x.ImageURL),
		attr("alt", ":"+x.Name+":"),
		attr("title", x.Name),
		attr("draggable", "false"),
	)
}

func emojiClass(jumbo bool) string {
	if jumbo {
		return "emoji jumbo"
	}
	return "emoji"
}

// matchEmoji matches :name: or :name::skin-tone-N:,
// where name is any run of characters other than white space and colons.
func matchEmoji(s string, _ State) (capture, bool) {
	if len(s) < 3 || s[0] != ':' {
		return capture{}, false
	}
	i := 1
	for i < len(s) && s[i] != ':' && !startsWithSpace(s[i:]) {
		i++
	}
	if i == 1 || i == len(s) || s[i] != ':' {
		return capture{}, false
	}
	if t := s[i:]; strings.HasPrefix(t, skinTone) && len(t) > len(skinTone)+1 &&
		isDigit(t[len(skinTone)]) && t[len(skinTone)+1] == ':' {
		i += len(skinTone) + 1
	}
	return capture{n: i + 1, sub: [3]string{s[:i+1], s[1:i]}}, true
}

// parseEmoji returns an [Emoji], or the shortcode as [Text]
// if the name is unknown.
func parseEmoji(p *parser, c capture, _ State) []item {
	glyph, ok := p.emoji.Lookup(c.sub[1])
	if !ok {
		return one(&Text{c.sub[0]}, c.n)
	}
	return one(&Emoji{
		Shortcode: c.sub[1],
		Glyph:     glyph,
		ImageURL:  p.emoji.ImageURL(glyph),
	}, c.n)
}

// matchCustomEmoji matches <:name:id> and <a:name:id>,
// where name is a run of word characters and id a run of digits.
func matchCustomEmoji(s string, _ State) (capture, bool) {
	if !strings.HasPrefix(s, "<") {
		return capture{}, false
	}
	i := 1
	if strings.HasPrefix(s[i:], "a:") {
		i++
	}
	if i >= len(s) || s[i] != ':' {
		return capture{}, false
	}
	i++
	name := i
	for i < len(s) && isWordByte(s[i]) {
		i++
	}
	if i == name || i >= len(s) || s[i] != ':' {
		return capture{}, false
	}
	nameEnd := i
	i++
	id := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == id || i >= len(s) || s[i] != '>' {
		return capture{}, false
	}
	return capture{n: i + 1, sub: [3]string{s[name:nameEnd], s[id:i], s[:2]}}, true
}

func parseCustomEmoji(_ *parser, c capture, _ State) []item {
	x := &CustomEmoji{ID: c.sub[1], Name: c.sub[0], Animated: c.sub[2] == "<a"}
	if x.Animated {
		x.ImageURL = discordgo.EndpointEmojiAnimated(x.ID)
	} else {
		x.ImageURL = discordgo.EndpointEmoji(x.ID)
	}
	return one(x, c.n)
}
