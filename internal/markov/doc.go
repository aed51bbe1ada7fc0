// Copyright 2026 The Esperanto Segmenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package markov trains and evaluates the n-gram Markov model that
// disambiguates between the candidate tag sequences the segmenter
// produces. It plays the role the teacher package's "model" and
// "trigrams" packages play together: Model holds trained transition
// probabilities (like model.Model's frequency tables) and Score is the
// pure scoring function (like trigrams.TrigramModel.TrigramProb) — but
// the probability estimate itself follows spec section 4.4's per-tag
// population rescaling, not the teacher's linear-interpolation
// smoothing, since that smoothing is specific to back-off across
// independently-estimated unigram/bigram/trigram orders and this model
// trains and scores a single fixed order.
package markov
