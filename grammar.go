// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

import (
	"fmt"
	"sort"

	"github.com/yuin/goldmark/util"
)

// A capture is the result of a successful rule match:
// the length of the matched prefix and the rule's submatches.
type capture struct {
	n   int
	sub [3]string
}

// A rule is one entry of a grammar.
//
// match reports whether the rule matches a non-empty prefix of s.
// parse turns the capture into nodes, with end offsets relative to the
// start of the match; the last end offset must be c.n.
// Rules with a quality function compete with the other rules of the same
// order: the match with the highest quality wins.
type rule struct {
	name    string
	order   int
	match   func(s string, st State) (capture, bool)
	quality func(c capture) float64
	parse   func(p *parser, c capture, st State) []item
}

// Rule priorities. Lower orders are tried first.
// Rules of equal order are tried in declaration order.
const (
	orderCodeBlock = iota
	orderParagraph
	orderEscape
	orderAutolink
	orderURL
	orderLink
	orderEmph
	orderDel
	orderInlineCode
	orderBreak
	orderText // plain text, and every rule without a priority of its own
)

type ruleKind int

const (
	ruleEscape ruleKind = iota
	ruleLink
	ruleAutolink
	ruleURL
	ruleStrong
	ruleEm
	ruleUnderline
	ruleDel
	ruleInlineCode
	ruleShrug
	ruleEmoji
	ruleCustomEmoji
	ruleMention
	ruleSpoiler
	ruleCodeBlock
	ruleParagraph
	ruleBreak
	ruleRoleMention
	ruleChannelMention
	ruleText
	numRules
)

// rules is the dispatch table, indexed by ruleKind.
var rules = [numRules]rule{
	ruleEscape:         {"escape", orderEscape, inlineScope(matchEscape), nil, parseEscape},
	ruleLink:           {"link", orderLink, inlineScope(matchLink), nil, parseLink},
	ruleAutolink:       {"autolink", orderAutolink, matchAutolink, nil, parseAutolink},
	ruleURL:            {"url", orderURL, inlineScope(matchURL), nil, parseAutolink},
	ruleStrong:         {"strong", orderEmph, inlineScope(matchStrong), qualityStrong, emphParser(Strong)},
	ruleEm:             {"em", orderEmph, inlineScope(matchEm), qualityEm, emphParser(Em)},
	ruleUnderline:      {"underline", orderEmph, inlineScope(matchUnderline), qualityUnderline, emphParser(Underline)},
	ruleDel:            {"strikethrough", orderDel, inlineScope(matchDel), nil, emphParser(Strikethrough)},
	ruleInlineCode:     {"inlineCode", orderInlineCode, inlineScope(matchInlineCode), nil, parseInlineCode},
	ruleShrug:          {"shrug", orderText, inlineScope(matchShrug), nil, parseEscape},
	ruleEmoji:          {"emoji", orderText, inlineScope(matchEmoji), nil, parseEmoji},
	ruleCustomEmoji:    {"customEmoji", orderText, inlineScope(matchCustomEmoji), nil, parseCustomEmoji},
	ruleMention:        {"mention", orderText, inlineScope(matchMention), nil, parseMention},
	ruleSpoiler:        {"spoiler", orderText, inlineScope(matchSpoiler), nil, parseSpoiler},
	ruleCodeBlock:      {"codeBlock", orderCodeBlock, matchCodeBlock, nil, parseCodeBlock},
	ruleParagraph:      {"paragraph", orderParagraph, blockScope(matchParagraph), nil, parseParagraph},
	ruleBreak:          {"br", orderBreak, matchBreak, nil, parseBreak},
	ruleRoleMention:    {"roleMention", orderText, inlineScope(matchRoleMention), nil, parseRoleMention},
	ruleChannelMention: {"channelMention", orderText, inlineScope(matchChannelMention), nil, parseChannelMention},
	ruleText:           {"text", orderText, matchText, nil, parseText},
}

// The two rule sets. The text rule must come last among its equals,
// so that the structural rules sharing its priority are tried first.
var (
	baseRules = []ruleKind{
		ruleEscape,
		ruleLink,
		ruleAutolink,
		ruleURL,
		ruleStrong,
		ruleEm,
		ruleUnderline,
		ruleInlineCode,
		ruleShrug,
		ruleEmoji,
		ruleCustomEmoji,
		ruleMention,
		ruleDel,
		ruleSpoiler,
	}

	inlineGrammar = newGrammar("inline", append(baseRules[:len(baseRules):len(baseRules)], ruleText)...)

	blockGrammar = newGrammar("block", append(baseRules[:len(baseRules):len(baseRules)],
		ruleCodeBlock,
		ruleParagraph,
		ruleBreak,
		ruleRoleMention,
		ruleChannelMention,
		ruleText,
	)...)
)

// A grammar is an ordered list of rules, built once and never modified.
type grammar struct {
	name  string
	rules []*rule
}

// newGrammar returns the grammar made of the given rules,
// sorted by order and then by position in kinds.
// It panics if the plain text rule is missing or is not the last rule:
// without it as the final catch-all, parsing could stop making progress.
func newGrammar(name string, kinds ...ruleKind) *grammar {
	list := make(util.PrioritizedSlice, 0, len(kinds))
	for _, k := range kinds {
		list = append(list, util.Prioritized(&rules[k], rules[k].order))
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Priority < list[j].Priority
	})

	g := &grammar{name: name}
	for _, v := range list {
		g.rules = append(g.rules, v.Value.(*rule))
	}
	if len(g.rules) == 0 || g.rules[len(g.rules)-1] != &rules[ruleText] {
		panic(fmt.Sprintf("markup: %s grammar must end with the plain text rule", name))
	}
	return g
}

// match returns the rule matching a prefix of s and its capture.
// The first matching rule in order wins, except that among rules of equal
// order with quality functions, the highest quality wins
// (ties go to the earlier rule).
func (g *grammar) match(s string, st State) (*rule, capture) {
	var (
		best *rule
		bc   capture
		bq   float64
	)
	for _, r := range g.rules {
		if best != nil && (r.order != best.order || r.quality == nil) {
			break
		}
		c, ok := r.match(s, st)
		if !ok {
			continue
		}
		var q float64
		if r.quality != nil {
			q = r.quality(c)
		}
		if best == nil || q > bq {
			best, bc, bq = r, c, q
		}
	}
	return best, bc
}

// inlineScope restricts m to inline scope.
func inlineScope(m func(string, State) (capture, bool)) func(string, State) (capture, bool) {
	return func(s string, st State) (capture, bool) {
		if !st.Inline {
			return capture{}, false
		}
		return m(s, st)
	}
}

// blockScope restricts m to block scope.
func blockScope(m func(string, State) (capture, bool)) func(string, State) (capture, bool) {
	return func(s string, st State) (capture, bool) {
		if st.Inline {
			return capture{}, false
		}
		return m(s, st)
	}
}
