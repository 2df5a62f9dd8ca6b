// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

import (
	"strings"
	"time"

	"github.com/npillmayer/schuko/tracing"
	"github.com/rivo/uniseg"
	"github.com/sanity-io/litter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultThreshold is the tracing threshold used when Parser.Threshold is zero.
const DefaultThreshold = time.Millisecond

// A TraceRecord describes one slow [Parser.Render] call.
type TraceRecord struct {
	Doc        *Document // parsed document, after the jumbo transform
	Preview    string    // content with white space collapsed, cut to 10 characters
	Content    string    // full content
	Inline     bool      // whether the inline rule set was used
	ParseTime  time.Duration
	RenderTime time.Duration
}

// Total returns the combined parse and render time.
func (r *TraceRecord) Total() time.Duration { return r.ParseTime + r.RenderTime }

// A TraceSink receives trace records.
// Trace is called synchronously from Render and must not modify the record's document.
type TraceSink interface {
	Trace(rec *TraceRecord)
}

// A TraceSinkFunc is a function implementing [TraceSink].
type TraceSinkFunc func(rec *TraceRecord)

func (f TraceSinkFunc) Trace(rec *TraceRecord) { f(rec) }

// Render parses text and renders the document.
// If p.Trace is set and parsing and rendering took longer than the
// tracing threshold together, Render reports the call to p.Trace.
// Tracing never changes the result.
func (p *Parser) Render(text string) []Element {
	if p.Trace == nil {
		return p.RenderDocument(p.Parse(text))
	}

	now := p.now
	if now == nil {
		now = time.Now
	}
	start := now()
	doc := p.Parse(text)
	parsed := now()
	out := p.RenderDocument(doc)
	done := now()

	rec := &TraceRecord{
		Doc:        doc,
		Preview:    ellipsize(text, 10),
		Content:    text,
		Inline:     p.Inline,
		ParseTime:  parsed.Sub(start),
		RenderTime: done.Sub(parsed),
	}
	threshold := p.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	if rec.Total() > threshold {
		p.Trace.Trace(rec)
	}
	return out
}

// ellipsize collapses runs of white space in s to single spaces
// and cuts the result to n grapheme clusters followed by an ellipsis.
func ellipsize(s string, n int) string {
	var b strings.Builder
	space := false
	for _, r := range s {
		if isSpace(r) {
			space = true
			continue
		}
		if space {
			b.WriteByte(' ')
			space = false
		}
		b.WriteRune(r)
	}
	if space {
		b.WriteByte(' ')
	}
	t := b.String()
	if uniseg.GraphemeClusterCount(t) <= n {
		return t
	}

	end := 0
	state := -1
	rest := t
	for i := 0; i < n; i++ {
		var c string
		c, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		end += len(c)
	}
	return t[:end] + "…"
}

// tracer traces with key 'markup'.
func tracer() tracing.Trace {
	return tracing.Select("markup")
}

// TracerSink is a [TraceSink] writing to the 'markup' trace.
// The summary is written at info level, the document and timings at debug level.
var TracerSink TraceSink = TraceSinkFunc(traceRecord)

var msPrinter = message.NewPrinter(language.AmericanEnglish)

// formatMillis formats d as milliseconds the way en-US locales do,
// with digit grouping and up to three fraction digits.
func formatMillis(d time.Duration) string {
	ms := float64(d) / float64(time.Millisecond)
	return msPrinter.Sprint(number.Decimal(ms, number.MaxFractionDigits(3)))
}

func traceRecord(rec *TraceRecord) {
	tracer().Infof("Parsed markup for %q in %sms", rec.Preview, formatMillis(rec.Total()))
	tracer().Debugf("AST: %s", litter.Sdump(rec.Doc.Nodes))
	if strings.Contains(rec.Content, "\n") {
		tracer().Debugf("Content:\n%s", rec.Content)
	} else {
		tracer().Debugf("Content: %s", rec.Content)
	}
	tracer().Debugf("Inline: %v", rec.Inline)
	tracer().Debugf("Parse time: %sms, output time: %sms", formatMillis(rec.ParseTime), formatMillis(rec.RenderTime))
}
