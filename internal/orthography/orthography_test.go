// Copyright 2026 The Esperanto Segmenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package orthography

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"ŝajnas", "sxajnas"},
		{"ĉielo", "cxielo"},
		{"hundo", "hundo"},
		{"", ""},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Normalize(c.in))
	}
}

func TestNormalizeToHatRoundTrip(t *testing.T) {
	words := []string{"ŝajnas", "ĉielo", "hundo", "eĥo", "ĵaŭdo", "uŝoncxgx"}
	for _, w := range words {
		x := Normalize(w)
		assert.Equal(t, x, Normalize(ToHat(x)), "Normalize should be idempotent after ToHat round-trips x-notation")
	}
}

func TestToHatInverse(t *testing.T) {
	require.Equal(t, "ŝajnas", ToHat("sxajnas"))
	require.Equal(t, "ĉielo", ToHat("cxielo"))
	require.Equal(t, "hundo", ToHat("hundo"))
}

func TestRestorePreservesOrthographyAndInsertsApostrophes(t *testing.T) {
	got := Restore("hund'o", "hundo")
	require.Equal(t, "hund'o", got)
}

func TestRestorePreservesHatLetters(t *testing.T) {
	got := Restore("sxajn'as", "ŝajnas")
	require.Equal(t, "ŝajn'as", got)
}

func TestIsHatLetter(t *testing.T) {
	assert.True(t, IsHatLetter('ĉ'))
	assert.False(t, IsHatLetter('c'))
}
