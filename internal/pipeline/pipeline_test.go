// Copyright 2026 The Esperanto Segmenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieldk/esperanto-segmenter/internal/markov"
	"github.com/danieldk/esperanto-segmenter/internal/morpheme"
)

func buildTestDictionary() *morpheme.Dictionary {
	trie := morpheme.NewTrie()
	trie.Insert(morpheme.Noun, "kat")
	trie.Insert(morpheme.Noun, "hund")
	trie.Insert(morpheme.NounEnding, "o")
	trie.Insert(morpheme.MidEnding, "j")
	trie.Insert(morpheme.Adj, "san")
	trie.Insert(morpheme.AdjEnding, "a")
	trie.Insert(morpheme.NounPrefix, "mal")
	trie.Insert(morpheme.Article, "la")
	trie.Insert(morpheme.Verb, "sxajn")
	trie.Insert(morpheme.VerbEnding, "as")

	return &morpheme.Dictionary{
		Trie: trie,
		Populations: map[morpheme.MarkovTag]int{
			morpheme.Noun:       2,
			morpheme.NounEnding: 1,
			morpheme.MidEnding:  1,
			morpheme.Adj:        1,
			morpheme.AdjEnding:  1,
			morpheme.NounPrefix: 1,
			morpheme.Article:    1,
			morpheme.Verb:       1,
			morpheme.VerbEnding: 1,
		},
	}
}

func buildTestModel(t *testing.T, dict *morpheme.Dictionary, order int) *markov.Model {
	rows := []markov.CorpusRow{
		{Tags: []morpheme.MarkovTag{morpheme.Noun, morpheme.NounEnding}, Frequency: 10},
		{Tags: []morpheme.MarkovTag{morpheme.Noun, morpheme.NounEnding, morpheme.MidEnding}, Frequency: 8},
		{Tags: []morpheme.MarkovTag{morpheme.NounPrefix, morpheme.Adj, morpheme.AdjEnding}, Frequency: 6},
		{Tags: []morpheme.MarkovTag{morpheme.Article}, Frequency: 20},
		{Tags: []morpheme.MarkovTag{morpheme.Verb, morpheme.VerbEnding}, Frequency: 12},
	}
	model, err := markov.Train(rows, order, dict.Populations)
	require.NoError(t, err)
	return model
}

func TestSegmentEndToEnd(t *testing.T) {
	dict := buildTestDictionary()
	model := buildTestModel(t, dict, 1)
	p := New(dict.Trie, model, false)

	cases := map[string]string{
		"kato":    "kat'o",
		"hundoj":  "hund'o'j",
		"malsana": "mal'san'a",
		"la":      "la",
		"sxajnas": "sxajn'as",
	}
	for word, want := range cases {
		got, ok := p.Segment(word)
		require.True(t, ok, "expected a segmentation for %q", word)
		assert.Equal(t, want, got, "word %q", word)
	}
}

func TestSegmentNoLegalDecomposition(t *testing.T) {
	dict := buildTestDictionary()
	model := buildTestModel(t, dict, 1)
	p := New(dict.Trie, model, false)

	_, ok := p.Segment("xyzzyq")
	assert.False(t, ok)
}

func TestSegmentRestoresOriginalOrthography(t *testing.T) {
	dict := buildTestDictionary()
	model := buildTestModel(t, dict, 1)
	p := New(dict.Trie, model, false)

	got, ok := p.Segment("ŝajnas")
	require.True(t, ok)
	assert.Equal(t, "ŝajn'as", got)
}

func TestCandidatesIncludesEveryTagging(t *testing.T) {
	dict := buildTestDictionary()
	dict.Trie.Insert(morpheme.Verb, "kat")
	model := buildTestModel(t, dict, 1)
	p := New(dict.Trie, model, false)

	candidates := p.Candidates("kato")
	require.NotEmpty(t, candidates)

	var sawNoun, sawVerb bool
	for _, c := range candidates {
		if len(c.Tagging) > 0 {
			switch c.Tagging[0] {
			case morpheme.Noun:
				sawNoun = true
			case morpheme.Verb:
				sawVerb = true
			}
		}
	}
	assert.True(t, sawNoun)
	assert.True(t, sawVerb)
}

// TestSegmentPrefersHigherScoreOverShorterOrLongerDecomposition checks
// that Segment picks the candidate with the higher Markov score even
// when it has fewer morphemes than a competing decomposition. The
// single-morpheme analysis here reaches "katon" through one fewer
// transition than the two-morpheme "kat"+"on" split, so its product of
// transition probabilities is larger; maximal match must never
// override that score advantage.
func TestSegmentPrefersHigherScoreOverShorterOrLongerDecomposition(t *testing.T) {
	trie := morpheme.NewTrie()
	trie.Insert(morpheme.Noun, "katon")
	trie.Insert(morpheme.Noun, "kat")
	trie.Insert(morpheme.NounEnding, "on")

	populations := map[morpheme.MarkovTag]int{morpheme.Noun: 2, morpheme.NounEnding: 1}
	rows := []markov.CorpusRow{
		{Tags: []morpheme.MarkovTag{morpheme.Noun}, Frequency: 1},
		{Tags: []morpheme.MarkovTag{morpheme.Noun, morpheme.NounEnding}, Frequency: 1},
	}
	model, err := markov.Train(rows, 1, populations)
	require.NoError(t, err)

	p := New(trie, model, true)
	got, ok := p.Segment("katon")
	require.True(t, ok)
	assert.Equal(t, "katon", got, "the one-morpheme analysis has the higher score and must win outright")
}

// TestBetterMatchAppliesMaximalMatchOnlyWithinScoreTie exercises
// betterMatch directly: decomposition length must never outweigh
// Score or ZeroPenalty, and only decides a tie that survives both.
func TestBetterMatchAppliesMaximalMatchOnlyWithinScoreTie(t *testing.T) {
	higherScoreShort := Candidate{Decomposition: []string{"katon"}, Score: 0.5, ZeroPenalty: 0}
	lowerScoreLong := Candidate{Decomposition: []string{"kat", "on"}, Score: 0.1, ZeroPenalty: 0}
	assert.False(t, betterMatch(lowerScoreLong, higherScoreShort),
		"a longer decomposition must not beat a higher score")
	assert.True(t, betterMatch(higherScoreShort, lowerScoreLong))

	tiedScoreShort := Candidate{Decomposition: []string{"katon"}, Score: 0.2, ZeroPenalty: -1}
	tiedScoreLong := Candidate{Decomposition: []string{"kat", "on"}, Score: 0.2, ZeroPenalty: -1}
	assert.True(t, betterMatch(tiedScoreLong, tiedScoreShort),
		"once Score and ZeroPenalty are tied, the longer decomposition wins")
	assert.False(t, betterMatch(tiedScoreShort, tiedScoreLong))

	higherZeroPenaltyShort := Candidate{Decomposition: []string{"katon"}, Score: 0.2, ZeroPenalty: -1}
	lowerZeroPenaltyLong := Candidate{Decomposition: []string{"kat", "on"}, Score: 0.2, ZeroPenalty: -2}
	assert.False(t, betterMatch(lowerZeroPenaltyLong, higherZeroPenaltyShort),
		"a longer decomposition must not beat a higher ZeroPenalty when Score is tied")
}
