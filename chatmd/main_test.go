// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func needCommand(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not found: %v", name, err)
	}
}

// run runs chatmd with args, reading the message from a file holding msg.
func run(t *testing.T, msg string, args ...string) (string, error) {
	t.Helper()
	file := filepath.Join(t.TempDir(), "msg.txt")
	require.NoError(t, os.WriteFile(file, []byte(msg), 0666))

	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append(args, file))
	cmd.SetOutput(&buf)
	err := cmd.Execute()
	return buf.String(), err
}

func TestTextCommand(t *testing.T) {
	out, err := run(t, "**hi** <@1>", "text")
	require.NoError(t, err)
	assert.Equal(t, "hi @unknown user\n", out)
}

func TestHTMLCommand(t *testing.T) {
	out, err := run(t, "**hi** :smile:", "html", "--jumbo")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<strong>hi</strong> <img "), "%q", out)
	assert.NotContains(t, out, "jumbo")

	out, err = run(t, "`a` b", "html", "--inline")
	require.NoError(t, err)
	assert.Equal(t, "<code class=\"inline\">a</code> b\n", out)
}

func TestTreeCommand(t *testing.T) {
	out, err := run(t, "hi", "tree")
	require.NoError(t, err)
	assert.Contains(t, out, "Text")
	assert.Contains(t, out, `"hi"`)
}

func TestMissingFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"text", filepath.Join(t.TempDir(), "missing")})
	cmd.SetOutput(new(bytes.Buffer))
	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "(text) "), "%v", err)
}

func TestHighlightCommand(t *testing.T) {
	needCommand(t, "cat")
	out, err := run(t, "```go\nx := 1\n```", "html", "--highlight", "cat")
	require.NoError(t, err)
	assert.Equal(t, "x := 1\n", out)
}

func TestHighlightCommandFails(t *testing.T) {
	needCommand(t, "false")
	out, err := run(t, "```go\nx\n```", "html", "--highlight", "false")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "(html) false: "), "%v", err)
	assert.Contains(t, out, `<pre><code class="language-go">x</code></pre>`)
}

func TestHighlightLang(t *testing.T) {
	needCommand(t, "echo")
	h := &highlighter{words: []string{"echo", "lang={lang}"}, timeout: 10 * time.Second}
	n := h.RenderCode("python", "print(1)")
	require.NoError(t, h.err)
	assert.Equal(t, html.RawNode, n.Type)
	assert.Equal(t, "lang=python\n", n.Data)
}

func TestHighlightTimeout(t *testing.T) {
	needCommand(t, "sleep")
	h := &highlighter{words: []string{"sleep", "5"}, timeout: 50 * time.Millisecond}
	start := time.Now()
	n := h.RenderCode("go", "x")
	assert.Less(t, time.Since(start), 4*time.Second)
	require.Error(t, h.err)
	assert.True(t, strings.HasPrefix(h.err.Error(), "sleep: "), "%v", h.err)
	assert.Equal(t, html.ElementNode, n.Type)
	assert.Equal(t, "pre", n.Data)

	// Only the first failure is kept.
	first := h.err
	h.words = []string{"sleep", "6"}
	h.RenderCode("go", "y")
	assert.Equal(t, first, h.err)
}

func TestNewParser(t *testing.T) {
	p, hl, err := newParser(&options{inline: true, jumbo: true})
	require.NoError(t, err)
	assert.Nil(t, hl)
	assert.True(t, p.Inline)
	assert.True(t, p.Jumbo)
	assert.Nil(t, p.Code)

	p, hl, err = newParser(&options{highlight: `pygmentize -l '{lang}' -f "html"`, timeout: time.Second})
	require.NoError(t, err)
	assert.Equal(t, []string{"pygmentize", "-l", "{lang}", "-f", "html"}, hl.words)
	assert.Equal(t, time.Second, hl.timeout)
	assert.Equal(t, hl, p.Code)

	for _, bad := range []string{`'`, `"x`, " "} {
		_, _, err := newParser(&options{highlight: bad})
		assert.Error(t, err, "%q", bad)
	}
}
