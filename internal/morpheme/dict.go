// Copyright 2026 The Esperanto Segmenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package morpheme

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// dictionaryFiles maps the exact, case-sensitive base names mandated
// for a morpheme directory to the MarkovTag they populate.
var dictionaryFiles = map[string]MarkovTag{
	"adjEnding":          AdjEnding,
	"adj":                Adj,
	"adjSuffix":          AdjSuffix,
	"advEnding":          AdvEnding,
	"adverb":             Adverb,
	"adv":                Adv,
	"article":            Article,
	"conjunction":        Conjunction,
	"expression":         Expression,
	"midEnding":          MidEnding,
	"nounEnding":         NounEnding,
	"nounHumanPrefix":    NounHumanPrefix,
	"nounHuman":          NounHuman,
	"nounHumanSuffix":    NounHumanSuffix,
	"nounPrefix":         NounPrefix,
	"noun":               Noun,
	"nounSuffix":         NounSuffix,
	"number":             Number,
	"numberSuffix":       NumberSuffix,
	"o":                  O,
	"preposition":        Preposition,
	"prepPrefix":         PrepPrefix,
	"pronoun":            Pronoun,
	"tablePronounEnding": TablePronounEnding,
	"table":              Table,
	"tenseSuffix":        TenseSuffix,
	"verbEnding":         VerbEnding,
	"verbPrefix":         VerbPrefix,
	"verb":               Verb,
	"verbSuffix":         VerbSuffix,
}

// Dictionary is the result of loading a morpheme directory: a trie of
// every known surface form and a per-tag population table. The
// population table is what MarkovModel training uses to rescale raw
// transition counts (spec §4.4): M is the sum of Populations, N_k is
// Populations[k].
type Dictionary struct {
	Trie        *Trie
	Populations map[MarkovTag]int

	// Duplicates counts, per MarkovTag, how many lines in that tag's
	// file repeated (case-insensitively) a surface already seen
	// earlier in the same file. Populations counts distinct surfaces,
	// not lines, so a repeated line does not inflate a tag's weight in
	// the n_k rescaling term.
	Duplicates map[MarkovTag]int
}

// LoadDictionary builds a Dictionary from a directory containing one
// file per MarkovTag, named per dictionaryFiles. A missing file is a
// fatal construction error, surfaced here as a plain error so that
// library callers can decide how to report it; the cmd/ binaries wrap
// this in common.ExitIfError.
func LoadDictionary(dir string) (*Dictionary, error) {
	trie := NewTrie()
	populations := make(map[MarkovTag]int, len(dictionaryFiles))
	duplicates := make(map[MarkovTag]int, len(dictionaryFiles))

	for base, tag := range dictionaryFiles {
		path := filepath.Join(dir, base)

		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("morpheme: cannot open morpheme file %q: %w", path, err)
		}

		count, dups, err := loadMorphemeFile(trie, tag, f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("morpheme: %q: %w", path, err)
		}

		populations[tag] = count
		duplicates[tag] = dups
	}

	return &Dictionary{Trie: trie, Populations: populations, Duplicates: duplicates}, nil
}

// loadMorphemeFile inserts every non-blank line of f into trie under
// tag, case-insensitively, returning the number of distinct surfaces
// inserted and the number of lines that repeated a surface already
// seen earlier in the same file.
func loadMorphemeFile(trie *Trie, tag MarkovTag, f *os.File) (count, duplicates int, err error) {
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		surface := strings.ToLower(line)
		if _, ok := seen[surface]; ok {
			duplicates++
			continue
		}
		seen[surface] = struct{}{}

		trie.Insert(tag, surface)
		count++
	}
	if err := scanner.Err(); err != nil {
		return count, duplicates, err
	}
	return count, duplicates, nil
}

// TotalMorphemes sums the per-tag populations, the M term of spec
// §4.4's normalization formula.
func (d *Dictionary) TotalMorphemes() int {
	total := 0
	for _, n := range d.Populations {
		total += n
	}
	return total
}
