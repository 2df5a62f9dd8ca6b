// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name  string
		glyph string
		ok    bool
	}{
		{"smile", "😄", true},
		{"heart", "❤️", true},
		{"nope", "", false},
		{"thumbsup::skin-tone-2", "👍🏼", true},
		{"heart::skin-tone-1", "❤\U0001f3fb", true},
		{"thumbsup::skin-tone-6", "", false},
		{"thumbsup::skin-tone-", "", false},
		{"nope::skin-tone-1", "", false},
	}
	for _, tt := range tests {
		glyph, ok := DefaultDirectory.Lookup(tt.name)
		assert.Equal(t, tt.ok, ok, "Lookup(%q)", tt.name)
		assert.Equal(t, tt.glyph, glyph, "Lookup(%q)", tt.name)
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		glyph string
		name  string
		ok    bool
	}{
		{"😄", "smile", true},
		{"❤️", "heart", true},
		{"❤", "", false}, // text presentation
		{"👍🏼", "thumbsup::skin-tone-2", true},
		{"❤️\U0001f3fb", "heart::skin-tone-1", true},
		{"a", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		name, ok := DefaultDirectory.Name(tt.glyph)
		assert.Equal(t, tt.ok, ok, "Name(%q)", tt.glyph)
		assert.Equal(t, tt.name, name, "Name(%q)", tt.glyph)
	}
}

func TestImageURL(t *testing.T) {
	d := DefaultDirectory
	assert.Equal(t, TwemojiBase+"1f604.svg", d.ImageURL("😄"))
	assert.Equal(t, TwemojiBase+"2764.svg", d.ImageURL("❤️"))
	assert.Equal(t, TwemojiBase+"1f441-fe0f-200d-1f5e8-fe0f.svg",
		d.ImageURL("\U0001f441\ufe0f\u200d\U0001f5e8\ufe0f"))

	plain := NewDirectory(map[string]string{"x": "😄"})
	plain.ImageBase = ""
	assert.Equal(t, "", plain.ImageURL("😄"))
}

func TestNewDirectory(t *testing.T) {
	d := NewDirectory(map[string]string{"b": "😀", "a": "😀", "long_name": "😄"})
	name, ok := d.Name("😀")
	assert.True(t, ok)
	assert.Equal(t, "a", name)

	glyph, ok := d.Lookup("b")
	assert.True(t, ok)
	assert.Equal(t, "😀", glyph)

	_, ok = d.Lookup("smile")
	assert.False(t, ok)
	glyph, ok = d.Lookup("long_name")
	assert.True(t, ok)
	assert.Equal(t, "😄", glyph)

	var p Parser
	p.Emoji = d
	doc := p.Parse("😀 :smile:")
	assert.Equal(t, Nodes{
		&Emoji{Shortcode: "a", Glyph: "😀", ImageURL: TwemojiBase + "1f600.svg"},
		&Text{" :smile:"},
	}, doc.Nodes)
}

func TestSubstitute(t *testing.T) {
	rw := DefaultDirectory.substitute("plain text")
	assert.Equal(t, "plain text", rw.dst)
	assert.Empty(t, rw.edits)

	rw = DefaultDirectory.substitute("x😀y")
	assert.Equal(t, "x:grinning:y", rw.dst)
	assert.Equal(t, []edit{{srcStart: 1, srcEnd: 5, dstStart: 1, dstEnd: 11}}, rw.edits)

	rw = DefaultDirectory.substitute("é ❤️👍🏽")
	assert.Equal(t, "é :heart::thumbsup::skin-tone-3:", rw.dst)
	assert.Equal(t, []edit{
		{srcStart: 3, srcEnd: 9, dstStart: 3, dstEnd: 10},
		{srcStart: 9, srcEnd: 17, dstStart: 10, dstEnd: 33},
	}, rw.edits)
}

func TestEmojiTable(t *testing.T) {
	data, err := os.ReadFile("emoji.json")
	require.NoError(t, err)
	var list map[string]string
	require.NoError(t, json.Unmarshal(data, &list))
	assert.Equal(t, list, emoji, "emoji.go is stale; run go generate")

	n := 0
	for name := range list {
		n = max(n, len(name))
	}
	assert.Equal(t, n, maxEmojiLen)
}
