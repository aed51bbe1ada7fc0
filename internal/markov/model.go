// Copyright 2026 The Esperanto Segmenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markov

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/danieldk/esperanto-segmenter/internal/morpheme"
)

// alpha is the fixed smoothing constant from spec section 4.4.
const alpha = 1e-5

// maxOrder bounds the n-gram order; spec section 3 only ever asks for
// n in {1, 2, 3}.
const maxOrder = 3

// noTag marks an unused trailing slot of a context key for models
// trained at an order below maxOrder.
const noTag morpheme.MarkovTag = -1

// ctxKey is a fixed-width, comparable encoding of a Markov context — a
// tuple of up to maxOrder MarkovTags — so contexts can key a Go map
// directly instead of being stringified until the persistence
// boundary, per the design note in spec section 9.
type ctxKey [maxOrder]morpheme.MarkovTag

func newCtxKey(context []morpheme.MarkovTag) ctxKey {
	var k ctxKey
	for i := range k {
		k[i] = noTag
	}
	copy(k[:], context)
	return k
}

func (k ctxKey) tags(order int) []morpheme.MarkovTag {
	return append([]morpheme.MarkovTag(nil), k[:order]...)
}

// Model holds trained transition probabilities for a single fixed
// n-gram order. A Model is immutable after Train or Load returns it,
// and is safe to share across goroutines and Pipeline instances.
type Model struct {
	order       int
	transitions map[ctxKey]map[morpheme.MarkovTag]float64
}

// Order returns the n-gram order this model was trained at.
func (m *Model) Order() int {
	return m.order
}

// CorpusRow is a single parsed line of the training corpus: a tag
// sequence and the weight (frequency) it was observed with. Fields
// besides the tag sequence and frequency (word, annotation) are not
// needed for training and are discarded by ParseCorpus.
type CorpusRow struct {
	Tags      []morpheme.MarkovTag
	Frequency float64
}

// ParseCorpus reads the tab-separated training corpus described in
// spec section 6: word, annotation, apostrophe-joined tag sequence,
// frequency, with any further fields ignored. Tag names are
// lowercase-camel in the corpus file; ParseCorpus capitalizes them
// before looking them up, per spec section 4.4 step 1. An unrecognized
// tag name or a malformed row is a fatal construction error, returned
// here so the caller can report which row was at fault.
func ParseCorpus(r io.Reader) ([]CorpusRow, error) {
	var rows []CorpusRow

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 4 {
			return nil, fmt.Errorf("markov: corpus line %d: expected at least 4 tab-separated fields, got %d", lineNo, len(fields))
		}

		names := strings.Split(fields[2], "'")
		tags := make([]morpheme.MarkovTag, 0, len(names))
		for _, name := range names {
			tag, ok := morpheme.ParseMarkovTag(morpheme.CapitalizeFirst(name))
			if !ok {
				return nil, fmt.Errorf("markov: corpus line %d: unrecognized tag name %q", lineNo, name)
			}
			tags = append(tags, tag)
		}

		freq, err := strconv.ParseFloat(fields[3], 64)
		if err != nil {
			return nil, fmt.Errorf("markov: corpus line %d: malformed frequency %q: %w", lineNo, fields[3], err)
		}

		rows = append(rows, CorpusRow{Tags: tags, Frequency: freq})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("markov: reading corpus: %w", err)
	}

	return rows, nil
}

// Train builds a Model of the given order from rows, rescaling raw
// transition counts by per-tag population per spec section 4.4 step 5.
// populations is the per-MarkovTag morpheme count from the dictionary
// the trie was built from (morpheme.Dictionary.Populations); a tag
// absent from populations (Start and End) is treated as having
// population M, the total morpheme count.
func Train(rows []CorpusRow, order int, populations map[morpheme.MarkovTag]int) (*Model, error) {
	if order < 1 || order > maxOrder {
		return nil, fmt.Errorf("markov: unsupported n-gram order %d", order)
	}

	totalMorphemes := 0
	for _, n := range populations {
		totalMorphemes += n
	}

	counts := make(map[ctxKey]map[morpheme.MarkovTag]float64)

	for _, row := range rows {
		states := make([]morpheme.MarkovTag, 0, order+len(row.Tags)+1)
		for i := 0; i < order; i++ {
			states = append(states, morpheme.Start)
		}
		states = append(states, row.Tags...)
		states = append(states, morpheme.End)

		for i := 0; i <= len(row.Tags); i++ {
			context := newCtxKey(states[i : i+order])
			next := states[i+order]

			byNext, ok := counts[context]
			if !ok {
				byNext = make(map[morpheme.MarkovTag]float64)
				counts[context] = byNext
			}
			byNext[next] += row.Frequency
		}
	}

	transitions := make(map[ctxKey]map[morpheme.MarkovTag]float64, len(counts))
	for context, byNext := range counts {
		var total float64
		for _, c := range byNext {
			total += c
		}

		normalized := make(map[morpheme.MarkovTag]float64, len(byNext))
		for next, c := range byNext {
			population, ok := populations[next]
			n := float64(population)
			if !ok || population == 0 {
				n = float64(totalMorphemes)
			}

			normalized[next] = (c / total) * (float64(totalMorphemes) / n) * alpha
		}
		transitions[context] = normalized
	}

	return &Model{order: order, transitions: transitions}, nil
}

// Score evaluates a candidate tag sequence per spec section 4.4: it
// prepends order Start tags, appends one End, walks every transition,
// multiplying the running score by each transition's probability and
// decrementing zeroPenalty for every context/next-tag pair missing
// from the table (without stopping the walk). Larger (score,
// zeroPenalty) pairs, compared lexicographically, are better
// candidates.
func (m *Model) Score(tags []morpheme.MarkovTag) (score float64, zeroPenalty int) {
	window := make([]morpheme.MarkovTag, m.order)
	for i := range window {
		window[i] = morpheme.Start
	}

	score = 1.0

	step := func(next morpheme.MarkovTag) {
		key := newCtxKey(window)
		if byNext, ok := m.transitions[key]; ok {
			if p, ok := byNext[next]; ok {
				score *= p
			} else {
				score = 0
				zeroPenalty--
			}
		} else {
			score = 0
			zeroPenalty--
		}

		if m.order > 0 {
			copy(window, window[1:])
			window[m.order-1] = next
		}
	}

	for _, tag := range tags {
		step(tag)
	}
	step(morpheme.End)

	return score, zeroPenalty
}
