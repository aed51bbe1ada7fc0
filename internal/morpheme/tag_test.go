// Copyright 2026 The Esperanto Segmenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package morpheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkovTagStringRoundTrip(t *testing.T) {
	for tag := MarkovTag(0); tag < numMarkovTags; tag++ {
		name := tag.String()
		parsed, ok := ParseMarkovTag(name)
		require.True(t, ok, "expected %q to parse back", name)
		assert.Equal(t, tag, parsed)
	}
}

func TestParseMarkovTagUnknown(t *testing.T) {
	_, ok := ParseMarkovTag("NotATag")
	assert.False(t, ok)
}

func TestCapitalizeFirst(t *testing.T) {
	assert.Equal(t, "NounEnding", CapitalizeFirst("nounEnding"))
	assert.Equal(t, "O", CapitalizeFirst("o"))
	assert.Equal(t, "", CapitalizeFirst(""))
}

func TestRuleClassOfProjection(t *testing.T) {
	cases := []struct {
		tag  MarkovTag
		want RuleClass
	}{
		{Start, RuleClassNone},
		{End, RuleClassNone},
		{AdjEnding, RuleWordEnd},
		{AdvEnding, RuleWordEnd},
		{NounEnding, RuleWordEnd},
		{VerbEnding, RuleWordEnd},
		{MidEnding, RuleWordEnd},
		{O, RuleWordEnd},
		{TablePronounEnding, RuleTablePronounEnding},
		{Pronoun, RulePronoun},
		{Article, RuleArticle},
		{Adj, RuleNormal},
		{Noun, RuleNormal},
		{Verb, RuleNormal},
		{NounHumanPrefix, RuleNormal},
		{Adverb, RuleStandalone},
		{Conjunction, RuleStandalone},
		{Expression, RuleStandalone},
		{Number, RuleStandalone},
		{Preposition, RuleStandalone},
		{Table, RuleTable},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, RuleClassOf(c.tag), "tag %s", c.tag)
	}
}

func TestIsValidEnding(t *testing.T) {
	assert.False(t, RuleClassNone.IsValidEnding())
	assert.False(t, RuleNormal.IsValidEnding())
	assert.True(t, RuleWordEnd.IsValidEnding())
	assert.True(t, RuleStandalone.IsValidEnding())
	assert.True(t, RuleArticle.IsValidEnding())
	assert.True(t, RuleTable.IsValidEnding())
	assert.True(t, RulePronoun.IsValidEnding())
	assert.True(t, RuleTablePronounEnding.IsValidEnding())
}
