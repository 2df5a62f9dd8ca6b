// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markup

import (
	"strings"
	"unicode/utf8"
)

// isDigit reports whether c is an ASCII digit.
func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isLetterDigit reports whether c is an ASCII letter or digit.
func isLetterDigit(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9'
}

// isWordByte reports whether c is an ASCII letter, digit, or underscore.
func isWordByte(c byte) bool {
	return isLetterDigit(c) || c == '_'
}

// isLangByte reports whether c may appear in a code block language tag.
func isLangByte(c byte) bool {
	return 'a' <= c && c <= 'z' || '0' <= c && c <= '9' || c == '-'
}

// isSpace reports whether r is white space in message markup:
// ASCII space and control spaces, no-break spaces,
// the Unicode space separators, line and paragraph separators,
// and the byte order mark.
// This is not the same as unicode.IsSpace.
// For example, U+0085 does not satisfy isSpace
// but does satisfy unicode.IsSpace.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r',
		0xA0, 0x1680, 0x2028, 0x2029, 0x202F, 0x205F, 0x3000, 0xFEFF:
		return true
	}
	return 0x2000 <= r && r <= 0x200A
}

// startsWithSpace reports whether s begins with white space.
func startsWithSpace(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return isSpace(r)
}

// isSymbol reports whether r may start markup and so ends a run of plain text.
// Symbols are the ASCII and Latin-1 characters that are neither
// letters, digits, nor white space. Everything from U+00C0 up,
// letters and emoji alike, is text.
func isSymbol(r rune) bool {
	switch {
	case r < utf8.RuneSelf:
		return !isLetterDigit(byte(r)) && !isSpace(r)
	case r < 0xC0:
		return !isSpace(r)
	}
	return false
}

// trimSpace trims white space, as defined by isSpace, from both ends of s.
func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

// unescapeURL removes the backslash from every escaped symbol in s.
func unescapeURL(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			r, _ := utf8.DecodeRuneInString(s[i+1:])
			if !(r < utf8.RuneSelf && isLetterDigit(byte(r))) && !isSpace(r) {
				i++
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
