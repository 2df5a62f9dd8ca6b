// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// A MentionKind is the kind of a [Mention].
type MentionKind int

const (
	UserMention MentionKind = iota
	EveryoneMention
	HereMention
	RoleMention
	ChannelMention
)

var mentionNames = [...]string{
	UserMention:     "user",
	EveryoneMention: "everyone",
	HereMention:     "here",
	RoleMention:     "role",
	ChannelMention:  "channel",
}

func (k MentionKind) String() string {
	if int(k) < len(mentionNames) {
		return mentionNames[k]
	}
	return "MentionKind(?)"
}

// Sigil returns the character displayed before a mention of kind k.
func (k MentionKind) Sigil() string {
	if k == ChannelMention {
		return "#"
	}
	return "@"
}

// A Mention is a [Node] representing a mention of a user, role or channel,
// or an @everyone or @here broadcast.
// Identifiers are not resolved: the label of a user, role or channel
// mention is a fixed placeholder.
type Mention struct {
	Kind  MentionKind
	Label string
}

func (*Mention) Node() {}

func (x *Mention) printText(p *printer) { p.text(x.Kind.Sigil() + x.Label) }

func (x *Mention) render(r *renderer) *html.Node {
	span := r.elem(atom.Span, attr("class", "mention"))
	span.AppendChild(r.text(x.Kind.Sigil() + x.Label))
	return span
}

// Placeholder labels for unresolved mentions.
const (
	unknownUser    = "unknown user"
	unknownRole    = "unknown role"
	unknownChannel = "unknown channel"
)

// matchMention matches <@id>, <@!id>, @everyone and @here.
func matchMention(s string, _ State) (capture, bool) {
	for _, b := range []string{"@everyone", "@here"} {
		if strings.HasPrefix(s, b) {
			return capture{n: len(b), sub: [3]string{b[1:]}}, true
		}
	}
	i := 0
	switch {
	case strings.HasPrefix(s, "<@!"):
		i = 3
	case strings.HasPrefix(s, "<@"):
		i = 2
	default:
		return capture{}, false
	}
	if n, ok := matchID(s, i); ok {
		return capture{n: n}, true
	}
	return capture{}, false
}

func parseMention(_ *parser, c capture, _ State) []item {
	switch c.sub[0] {
	case "everyone":
		return one(&Mention{EveryoneMention, "everyone"}, c.n)
	case "here":
		return one(&Mention{HereMention, "here"}, c.n)
	}
	return one(&Mention{UserMention, unknownUser}, c.n)
}

// matchRoleMention matches <@&id>.
func matchRoleMention(s string, _ State) (capture, bool) {
	if !strings.HasPrefix(s, "<@&") {
		return capture{}, false
	}
	n, ok := matchID(s, 3)
	return capture{n: n}, ok
}

func parseRoleMention(_ *parser, c capture, _ State) []item {
	return one(&Mention{RoleMention, unknownRole}, c.n)
}

// matchChannelMention matches <#id>.
func matchChannelMention(s string, _ State) (capture, bool) {
	if !strings.HasPrefix(s, "<#") {
		return capture{}, false
	}
	n, ok := matchID(s, 2)
	return capture{n: n}, ok
}

func parseChannelMention(_ *parser, c capture, _ State) []item {
	return one(&Mention{ChannelMention, unknownChannel}, c.n)
}

// matchID matches a run of digits followed by > at s[i:]
// and returns the offset after the >.
func matchID(s string, i int) (int, bool) {
	j := i
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	if j == i || j >= len(s) || s[j] != '>' {
		return 0, false
	}
	return j + 1, true
}
