// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

import (
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clock returns a fake time source that advances by step on every call.
func clock(step time.Duration) func() time.Time {
	t := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

func TestRenderTrace(t *testing.T) {
	var recs []*TraceRecord
	p := &Parser{
		Jumbo: true,
		Trace: TraceSinkFunc(func(rec *TraceRecord) { recs = append(recs, rec) }),
		now:   clock(time.Millisecond),
	}
	text := ":smile:   :wave:\n\nand a much longer tail"
	out := p.Render(text)
	require.Len(t, recs, 1)
	rec := recs[0]
	assert.Equal(t, time.Millisecond, rec.ParseTime)
	assert.Equal(t, time.Millisecond, rec.RenderTime)
	assert.Equal(t, 2*time.Millisecond, rec.Total())
	assert.Equal(t, text, rec.Content)
	assert.Equal(t, ":smile: :w…", rec.Preview)
	assert.False(t, rec.Inline)
	assert.Equal(t, p.Parse(text), rec.Doc)

	var plain Parser
	plain.Jumbo = true
	assert.Equal(t, ToHTML(plain.Render(text)), ToHTML(out))
}

func TestRenderTraceThreshold(t *testing.T) {
	n := 0
	p := &Parser{
		Trace:     TraceSinkFunc(func(*TraceRecord) { n++ }),
		Threshold: 5 * time.Millisecond,
		now:       clock(2 * time.Millisecond),
	}
	p.Render("fast enough")
	assert.Equal(t, 0, n)

	p.now = clock(3 * time.Millisecond)
	p.Render("too slow")
	assert.Equal(t, 1, n)

	// The default threshold is exclusive.
	p.Threshold = 0
	p.now = clock(DefaultThreshold / 2)
	p.Render("exactly at the threshold")
	assert.Equal(t, 1, n)
}

func TestEllipsize(t *testing.T) {
	tests := []struct{ in, out string }{
		{"", ""},
		{"short", "short"},
		{"a  \n\t b", "a b"},
		{"trailing   ", "trailing "},
		{"hello   world\n\nfoo", "hello worl…"},
		{"0123456789", "0123456789"},
		{"0123456789x", "0123456789…"},
		{"👍🏽👍🏽👍🏽👍🏽👍🏽👍🏽👍🏽👍🏽👍🏽👍🏽👍🏽", "👍🏽👍🏽👍🏽👍🏽👍🏽👍🏽👍🏽👍🏽👍🏽👍🏽…"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.out, ellipsize(tt.in, 10), "%q", tt.in)
	}
}

func TestFormatMillis(t *testing.T) {
	assert.Equal(t, "1,234.567", formatMillis(1234567*time.Microsecond))
	assert.Equal(t, "1.5", formatMillis(1500*time.Microsecond))
	assert.Equal(t, "0", formatMillis(0))
}

func TestTracerSink(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "markup")
	defer teardown()

	p := &Parser{
		Trace: TracerSink,
		now:   clock(time.Millisecond),
	}
	out := p.Render("**traced**\nsecond line")
	assert.Len(t, out, 3)
}
