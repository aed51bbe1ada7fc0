// Copyright 2026 The Esperanto Segmenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package morpheme

import "fmt"

// MarkovTag is a fine-grained morpheme type, used as the state alphabet
// of the n-gram Markov scorer. Start and End are pseudo-tags that
// bracket a tag sequence during training and scoring; no morpheme is
// ever stored under them.
type MarkovTag int

const (
	Start MarkovTag = iota
	End
	AdjEnding
	Adj
	AdjSuffix
	AdvEnding
	Adverb
	Adv
	Article
	Conjunction
	Expression
	MidEnding
	NounEnding
	NounHumanPrefix
	NounHuman
	NounHumanSuffix
	NounPrefix
	Noun
	NounSuffix
	Number
	NumberSuffix
	O
	Preposition
	PrepPrefix
	Pronoun
	TablePronounEnding
	Table
	TenseSuffix
	VerbEnding
	VerbPrefix
	Verb
	VerbSuffix

	numMarkovTags
)

var markovTagNames = [numMarkovTags]string{
	Start:              "Start",
	End:                "End",
	AdjEnding:          "AdjEnding",
	Adj:                "Adj",
	AdjSuffix:          "AdjSuffix",
	AdvEnding:          "AdvEnding",
	Adverb:             "Adverb",
	Adv:                "Adv",
	Article:            "Article",
	Conjunction:        "Conjunction",
	Expression:         "Expression",
	MidEnding:          "MidEnding",
	NounEnding:         "NounEnding",
	NounHumanPrefix:    "NounHumanPrefix",
	NounHuman:          "NounHuman",
	NounHumanSuffix:    "NounHumanSuffix",
	NounPrefix:         "NounPrefix",
	Noun:               "Noun",
	NounSuffix:         "NounSuffix",
	Number:             "Number",
	NumberSuffix:       "NumberSuffix",
	O:                  "O",
	Preposition:        "Preposition",
	PrepPrefix:         "PrepPrefix",
	Pronoun:            "Pronoun",
	TablePronounEnding: "TablePronounEnding",
	Table:              "Table",
	TenseSuffix:        "TenseSuffix",
	VerbEnding:         "VerbEnding",
	VerbPrefix:         "VerbPrefix",
	Verb:               "Verb",
	VerbSuffix:         "VerbSuffix",
}

var markovTagByName map[string]MarkovTag

func init() {
	markovTagByName = make(map[string]MarkovTag, len(markovTagNames))
	for tag, name := range markovTagNames {
		markovTagByName[name] = MarkovTag(tag)
	}
}

// String returns the capitalized tag name used in persisted models,
// e.g. "NounEnding". Corpus files spell the same name with a lowercase
// first letter ("nounEnding").
func (t MarkovTag) String() string {
	if t < 0 || int(t) >= len(markovTagNames) {
		return fmt.Sprintf("MarkovTag(%d)", int(t))
	}
	return markovTagNames[t]
}

// ParseMarkovTag looks up a MarkovTag by its capitalized name. Corpus
// files use lowercase-camel names (e.g. "nounEnding"); callers
// capitalize the first letter before calling this function.
func ParseMarkovTag(name string) (MarkovTag, bool) {
	tag, ok := markovTagByName[name]
	return tag, ok
}

// CapitalizeFirst upper-cases the first rune of a lowercase-camel tag
// name, turning a corpus-file spelling ("nounEnding") into the spelling
// ParseMarkovTag expects ("NounEnding").
func CapitalizeFirst(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] = r[0] - 'a' + 'A'
	}
	return string(r)
}

// RuleClass is the coarse morpheme classification the segmenter's
// grammar reasons about. RuleClassNone is the zero value and stands
// for "no previous morpheme" (word-initial position) as well as for
// the Start/End pseudo-tags, which project to no rule class at all.
type RuleClass int

const (
	RuleClassNone RuleClass = iota
	RuleStandalone
	RulePronoun
	RuleNormal
	RuleWordEnd
	RuleTable
	RuleArticle
	RuleTablePronounEnding
)

func (r RuleClass) String() string {
	switch r {
	case RuleClassNone:
		return "None"
	case RuleStandalone:
		return "Standalone"
	case RulePronoun:
		return "Pronoun"
	case RuleNormal:
		return "Normal"
	case RuleWordEnd:
		return "WordEnd"
	case RuleTable:
		return "Table"
	case RuleArticle:
		return "Article"
	case RuleTablePronounEnding:
		return "TablePronounEnding"
	default:
		return fmt.Sprintf("RuleClass(%d)", int(r))
	}
}

// RuleClassOf is the fixed projection from MarkovTag to RuleClass
// described in the glossary. Start and End map to RuleClassNone, the
// same zero value used for "no previous morpheme".
func RuleClassOf(t MarkovTag) RuleClass {
	switch t {
	case AdjEnding, AdvEnding, NounEnding, VerbEnding, MidEnding, O:
		return RuleWordEnd
	case TablePronounEnding:
		return RuleTablePronounEnding
	case Pronoun:
		return RulePronoun
	case Article:
		return RuleArticle
	case Adj, Adv, NounHuman, Noun, Verb,
		AdjSuffix, NounHumanSuffix, NounSuffix, NumberSuffix, TenseSuffix, VerbSuffix,
		NounHumanPrefix, NounPrefix, PrepPrefix, VerbPrefix:
		return RuleNormal
	case Adverb, Conjunction, Expression, Number, Preposition:
		return RuleStandalone
	case Table:
		return RuleTable
	default: // Start, End
		return RuleClassNone
	}
}

// IsValidEnding reports whether a RuleClass may legally terminate a
// word. Every RuleClass except Normal and the zero value (no morpheme
// at all) qualifies.
func (r RuleClass) IsValidEnding() bool {
	return r != RuleClassNone && r != RuleNormal
}
