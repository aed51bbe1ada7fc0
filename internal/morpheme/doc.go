// Copyright 2026 The Esperanto Segmenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package morpheme provides the morpheme tag taxonomy and the
// letter-indexed trie that maps surface forms to their tags.
//
// Morphemes carry two levels of classification: a fine-grained
// MarkovTag (used by the n-gram scorer in package markov) and a coarse
// RuleClass that the segmenter's grammar reasons about. The mapping
// between the two is a fixed projection (RuleClassOf), never a class
// hierarchy.
package morpheme
