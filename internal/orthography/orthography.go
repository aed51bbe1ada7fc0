// Copyright 2026 The Esperanto Segmenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orthography

import (
	"strings"
	"unicode"
)

var hatToX = map[rune]string{
	'ĉ': "cx",
	'ĝ': "gx",
	'ĥ': "hx",
	'ĵ': "jx",
	'ŝ': "sx",
	'ŭ': "ux",
}

// hatLetters is used to recognize a diacritic letter regardless of
// case; Normalize only ever sees lowercased input, but Restore walks
// the original (possibly mixed-case) source word.
var hatLetters = map[rune]struct{}{
	'ĉ': {}, 'ĝ': {}, 'ĥ': {}, 'ĵ': {}, 'ŝ': {}, 'ŭ': {},
}

// Normalize converts a lowercase Esperanto word from hat notation to
// x-notation. It is total: every rune that is not one of the six
// diacritic letters passes through unchanged. Applying Normalize twice
// is equivalent to applying it once, since x-notation contains none of
// the hat letters.
func Normalize(lower string) string {
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if x, ok := hatToX[r]; ok {
			b.WriteString(x)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsHatLetter reports whether r (expected lowercase) is one of the six
// diacritic letters.
func IsHatLetter(r rune) bool {
	_, ok := hatLetters[r]
	return ok
}

var xToHat = map[string]rune{
	"cx": 'ĉ', "gx": 'ĝ', "hx": 'ĥ', "jx": 'ĵ', "sx": 'ŝ', "ux": 'ŭ',
}

// ToHat converts a lowercase Esperanto word from x-notation back to hat
// notation; it is the inverse of Normalize. It exists to let callers
// and tests exercise the bijection (Normalize . ToHat is the identity
// on x-notation input, and ToHat . Normalize is the identity on
// fully hat-form input) even though the segmenter itself only ever
// calls Normalize.
func ToHat(lower string) string {
	var b strings.Builder
	b.Grow(len(lower))
	runes := []rune(lower)
	for i := 0; i < len(runes); i++ {
		if i+1 < len(runes) {
			if hat, ok := xToHat[string(runes[i:i+2])]; ok {
				b.WriteRune(hat)
				i++
				continue
			}
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

// Restore re-inserts the original orthography of word into an
// apostrophe-joined x-notation segmentation. It walks original letter
// by letter, copying each letter through unchanged (so the original
// casing and hat/x spelling choice of the caller's input is preserved)
// while tracking the matching position in xSegmentation to know where
// to re-insert the apostrophes the segmenter placed between morphemes.
//
// A hat letter occupies one rune of original but two runes of
// xSegmentation (since Normalize expanded it to a digraph), so the
// x-notation cursor advances by two positions when a hat letter is
// seen and by one otherwise.
func Restore(xSegmentation string, original string) string {
	solution := []rune(xSegmentation)

	var b strings.Builder
	b.Grow(len(xSegmentation) + strings.Count(xSegmentation, "'"))

	i := 0
	for _, ch := range original {
		b.WriteRune(ch)

		if IsHatLetter(unicode.ToLower(ch)) {
			i++
		}

		if len(solution)-1 > i && solution[i+1] == '\'' {
			b.WriteRune('\'')
			i++
		}

		i++
	}

	return b.String()
}
