// Copyright 2026 The Esperanto Segmenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package segmenter provides morphological segmentation of Esperanto
// words.
//
// Esperanto is a highly agglutinative language: most words are built by
// concatenating a root with a small number of prefixes, suffixes and
// grammatical endings. Given a surface word, this package enumerates
// every legal decomposition into morphemes under a small rule grammar,
// then ranks the candidates with an n-gram Markov model trained on a
// tagged corpus, returning the highest-scoring decomposition.
//
// The pipeline composes four pieces, leaves first: an orthography
// normalizer (internal/orthography), a letter-indexed trie of known
// morphemes (internal/morpheme), a rule-constrained search over that
// trie (internal/segment) and a Markov scorer (internal/markov). See
// internal/pipeline for the glue.
package segmenter
