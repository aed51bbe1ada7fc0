// Copyright 2026 The Esperanto Segmenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pipeline wires the orthography, morpheme, segment and markov
// packages together into the end-to-end word-segmentation pipeline
// described in spec section 4.5: normalize, enumerate candidate
// decompositions, tag and score each one, and pick the winner by
// Markov score, with maximal match breaking ties.
package pipeline
