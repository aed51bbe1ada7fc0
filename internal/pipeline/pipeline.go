// Copyright 2026 The Esperanto Segmenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"sort"
	"strings"

	"github.com/danieldk/esperanto-segmenter/internal/markov"
	"github.com/danieldk/esperanto-segmenter/internal/morpheme"
	"github.com/danieldk/esperanto-segmenter/internal/orthography"
	"github.com/danieldk/esperanto-segmenter/internal/segment"
)

// Candidate is one fully-tagged, fully-scored decomposition of a word.
// A word may have many candidates sharing the same Decomposition
// (FindMorphemes produces one decomposition, but AllTaggings may
// assign it several legal tag sequences, each scored separately).
type Candidate struct {
	Decomposition []string
	Tagging       []morpheme.MarkovTag
	Score         float64
	ZeroPenalty   int
}

// Pipeline runs the full segmentation pipeline over a single trained
// dictionary and Markov model. It holds no mutable state past
// construction and is safe for concurrent use by multiple goroutines,
// per spec section 5.
type Pipeline struct {
	segmenter *segment.Segmenter
	model     *markov.Model
}

// New constructs a Pipeline from a trie (wrapped in a segment.Segmenter
// honoring ignoreRules) and a trained Markov model.
func New(trie *morpheme.Trie, model *markov.Model, ignoreRules bool) *Pipeline {
	return &Pipeline{
		segmenter: segment.New(trie, ignoreRules),
		model:     model,
	}
}

// Candidates normalizes word to x-notation, enumerates every legal
// decomposition, and returns one Candidate per (decomposition,
// tagging) pair, each scored by the Markov model. The result is
// unsorted; callers that want the diagnostic ranked listing described
// in spec section 3's Pipeline.Candidates SUPPLEMENT should sort it
// themselves, e.g. with SortCandidates.
func (p *Pipeline) Candidates(word string) []Candidate {
	normalized := orthography.Normalize(strings.ToLower(word))

	decompositions := p.segmenter.FindMorphemes(normalized)
	if len(decompositions) == 0 {
		return nil
	}

	var candidates []Candidate
	for _, decomposition := range decompositions {
		taggings, err := p.segmenter.Trie().AllTaggings(decomposition)
		if err != nil {
			// Every surface in decomposition came from the trie itself,
			// so a lookup failure here would indicate a bug in
			// FindMorphemes, not bad input; skip defensively rather
			// than panic.
			continue
		}

		for _, tagging := range taggings {
			score, zeroPenalty := p.model.Score(tagging)
			candidates = append(candidates, Candidate{
				Decomposition: decomposition,
				Tagging:       tagging,
				Score:         score,
				ZeroPenalty:   zeroPenalty,
			})
		}
	}

	return candidates
}

// SortCandidates orders candidates best-first: by descending Score,
// then by descending ZeroPenalty (fewer Markov misses) as a tiebreak.
func SortCandidates(candidates []Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].ZeroPenalty > candidates[j].ZeroPenalty
	})
}

// Segment returns the single best segmentation of word, joined with
// apostrophes and restored to the original orthography of word, per
// spec section 4.5. The second return value is false when word has no
// legal decomposition at all.
//
// The winner is chosen by (Score, ZeroPenalty) first: the candidate(s)
// reaching the highest Markov score win outright, with ZeroPenalty
// breaking ties between equal scores. Maximal match — the longest
// decomposition — is applied only to break ties that remain after
// that, never before it.
func (p *Pipeline) Segment(word string) (string, bool) {
	candidates := p.Candidates(word)
	if len(candidates) == 0 {
		return "", false
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if betterMatch(c, best) {
			best = c
		}
	}

	joined := strings.Join(best.Decomposition, "'")
	return orthography.Restore(joined, word), true
}

// betterMatch reports whether candidate c should replace the current
// best. (Score, ZeroPenalty) is compared first, as a tuple: a strictly
// higher Score wins regardless of decomposition length, and ZeroPenalty
// only matters when Score is tied. Decomposition length — the
// maximal-match rule — is consulted last, only among candidates tied
// on both Score and ZeroPenalty.
func betterMatch(c, best Candidate) bool {
	if c.Score != best.Score {
		return c.Score > best.Score
	}
	if c.ZeroPenalty != best.ZeroPenalty {
		return c.ZeroPenalty > best.ZeroPenalty
	}
	return len(c.Decomposition) > len(best.Decomposition)
}
