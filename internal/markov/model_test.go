// Copyright 2026 The Esperanto Segmenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markov

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieldk/esperanto-segmenter/internal/morpheme"
)

func testPopulations() map[morpheme.MarkovTag]int {
	return map[morpheme.MarkovTag]int{
		morpheme.Noun:       2,
		morpheme.NounEnding: 1,
		morpheme.Adj:        1,
		morpheme.AdjEnding:  1,
	}
}

func TestParseCorpus(t *testing.T) {
	corpus := "kato\t?\tnoun'nounEnding\t5\n" +
		"sana\t?\tadj'adjEnding\t3\n"

	rows, err := ParseCorpus(strings.NewReader(corpus))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []morpheme.MarkovTag{morpheme.Noun, morpheme.NounEnding}, rows[0].Tags)
	assert.Equal(t, 5.0, rows[0].Frequency)
}

func TestParseCorpusSkipsBlankLines(t *testing.T) {
	corpus := "kato\t?\tnoun'nounEnding\t5\n\n\n"
	rows, err := ParseCorpus(strings.NewReader(corpus))
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestParseCorpusUnrecognizedTag(t *testing.T) {
	_, err := ParseCorpus(strings.NewReader("kato\t?\tnotATag\t1\n"))
	assert.Error(t, err)
}

func TestParseCorpusMalformedFrequency(t *testing.T) {
	_, err := ParseCorpus(strings.NewReader("kato\t?\tnoun\tnotANumber\n"))
	assert.Error(t, err)
}

func TestTrainUnsupportedOrder(t *testing.T) {
	_, err := Train(nil, 0, testPopulations())
	assert.Error(t, err)
	_, err = Train(nil, maxOrder+1, testPopulations())
	assert.Error(t, err)
}

func TestTrainAndScoreKnownSequence(t *testing.T) {
	rows := []CorpusRow{
		{Tags: []morpheme.MarkovTag{morpheme.Noun, morpheme.NounEnding}, Frequency: 10},
	}
	model, err := Train(rows, 1, testPopulations())
	require.NoError(t, err)

	score, zeroPenalty := model.Score([]morpheme.MarkovTag{morpheme.Noun, morpheme.NounEnding})
	assert.Greater(t, score, 0.0)
	assert.Equal(t, 0, zeroPenalty)
}

func TestScoreUnseenTransitionIsZeroedWithPenalty(t *testing.T) {
	rows := []CorpusRow{
		{Tags: []morpheme.MarkovTag{morpheme.Noun, morpheme.NounEnding}, Frequency: 10},
	}
	model, err := Train(rows, 1, testPopulations())
	require.NoError(t, err)

	score, zeroPenalty := model.Score([]morpheme.MarkovTag{morpheme.Adj, morpheme.AdjEnding})
	assert.Equal(t, 0.0, score)
	assert.Less(t, zeroPenalty, 0)
}

func TestScoreNeverStopsEarly(t *testing.T) {
	rows := []CorpusRow{
		{Tags: []morpheme.MarkovTag{morpheme.Noun, morpheme.NounEnding}, Frequency: 10},
	}
	model, err := Train(rows, 1, testPopulations())
	require.NoError(t, err)

	_, zeroPenalty := model.Score([]morpheme.MarkovTag{morpheme.Adj, morpheme.Adj, morpheme.Adj})
	assert.LessOrEqual(t, zeroPenalty, -3, "every missed transition, including after the first, must still be counted")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	rows := []CorpusRow{
		{Tags: []morpheme.MarkovTag{morpheme.Noun, morpheme.NounEnding}, Frequency: 10},
		{Tags: []morpheme.MarkovTag{morpheme.Adj, morpheme.AdjEnding}, Frequency: 4},
	}
	model, err := Train(rows, 2, testPopulations())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, model.Save(&buf))

	loaded, err := Load(&buf, 2)
	require.NoError(t, err)

	wantScore, wantPenalty := model.Score([]morpheme.MarkovTag{morpheme.Noun, morpheme.NounEnding})
	gotScore, gotPenalty := loaded.Score([]morpheme.MarkovTag{morpheme.Noun, morpheme.NounEnding})
	assert.InDelta(t, wantScore, gotScore, 1e-12)
	assert.Equal(t, wantPenalty, gotPenalty)
}

func TestEncodeDecodeContext(t *testing.T) {
	unigram := []morpheme.MarkovTag{morpheme.Noun}
	assert.Equal(t, "Noun", encodeContext(unigram))

	bigram := []morpheme.MarkovTag{morpheme.Start, morpheme.Noun}
	encoded := encodeContext(bigram)
	assert.Equal(t, "('Start', 'Noun')", encoded)

	decoded, err := decodeContext(encoded)
	require.NoError(t, err)
	assert.Equal(t, bigram, decoded)
}
