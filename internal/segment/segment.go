// Copyright 2026 The Esperanto Segmenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package segment

import (
	"strings"

	"github.com/danieldk/esperanto-segmenter/internal/morpheme"
)

// Segmenter enumerates legal decompositions of an x-notation word
// against a morpheme.Trie. The IgnoreRules override, once set at
// construction, is never mutated afterward — per spec section 9 it is
// carried as a field here rather than as global mutable state.
type Segmenter struct {
	trie        *morpheme.Trie
	ignoreRules bool
}

// New constructs a Segmenter over trie. When ignoreRules is true, all
// grammar checks in FindMorphemes are bypassed: any morpheme may follow
// any other, and any RuleClass may terminate a word.
func New(trie *morpheme.Trie, ignoreRules bool) *Segmenter {
	return &Segmenter{trie: trie, ignoreRules: ignoreRules}
}

// IgnoreRules reports whether this segmenter's grammar checks are
// disabled.
func (s *Segmenter) IgnoreRules() bool {
	return s.ignoreRules
}

// Trie returns the morpheme trie this segmenter searches.
func (s *Segmenter) Trie() *morpheme.Trie {
	return s.trie
}

// FindMorphemes returns every ordered list of surfaces whose
// concatenation equals word and which satisfies the rule grammar (or
// all decompositions, if rules are disabled). Order is unspecified;
// duplicates never occur.
func (s *Segmenter) FindMorphemes(word string) [][]string {
	runes := []rune(word)
	if len(runes) == 0 {
		return nil
	}

	var results [][]string
	seen := make(map[string]struct{})

	s.search(runes, 0, 0, s.trie.Root(), morpheme.RuleClassNone, nil, &results, seen)

	return results
}

// search walks the trie depth-first. startIdx..nextIdx is the span of
// the morpheme currently under construction; node is the trie node
// reached after consuming that span; prev is the RuleClass of the
// morpheme accepted immediately before the one under construction (the
// zero value, RuleClassNone, at the very start of the word).
func (s *Segmenter) search(
	word []rune,
	startIdx, nextIdx int,
	node *morpheme.Node,
	prev morpheme.RuleClass,
	committed []string,
	results *[][]string,
	seen map[string]struct{},
) {
	if nextIdx == len(word) {
		for _, class := range node.RuleClasses() {
			if !s.agreesWithPrevious(class, prev) {
				continue
			}
			if s.isValidEnding(class) {
				s.record(append(committed, string(word[startIdx:nextIdx])), results, seen)
				return
			}
		}
		return
	}

	// Commit: if the current span is a known morpheme, accept one of
	// its agreeing RuleClasses and restart the search from the trie
	// root. Each agreeing class is tried independently, since it
	// constrains what may legally follow.
	for _, class := range node.RuleClasses() {
		if !s.agreesWithPrevious(class, prev) {
			continue
		}

		next := make([]string, len(committed)+1)
		copy(next, committed)
		next[len(committed)] = string(word[startIdx:nextIdx])

		s.search(word, nextIdx, nextIdx, s.trie.Root(), class, next, results, seen)
	}

	// Extend: continue building the current morpheme with the next
	// letter, if the trie has a path for it.
	if child, ok := node.Child(word[nextIdx]); ok {
		s.search(word, startIdx, nextIdx+1, child, prev, committed, results, seen)
	}
}

func (s *Segmenter) agreesWithPrevious(candidate, prev morpheme.RuleClass) bool {
	if s.ignoreRules {
		return true
	}

	switch candidate {
	case morpheme.RuleTablePronounEnding:
		return prev == morpheme.RuleTable || prev == morpheme.RulePronoun
	case morpheme.RuleArticle:
		return prev == morpheme.RuleClassNone
	default:
		return prev != morpheme.RuleArticle
	}
}

func (s *Segmenter) isValidEnding(class morpheme.RuleClass) bool {
	if s.ignoreRules {
		return true
	}
	return class.IsValidEnding()
}

func (s *Segmenter) record(decomposition []string, results *[][]string, seen map[string]struct{}) {
	key := strings.Join(decomposition, "\x1f")
	if _, dup := seen[key]; dup {
		return
	}
	seen[key] = struct{}{}
	*results = append(*results, decomposition)
}
