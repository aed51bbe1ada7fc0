// Copyright 2026 The Esperanto Segmenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package segment implements the rule-based search that enumerates
// every legal morpheme decomposition of an x-notation word, given a
// morpheme.Trie. It applies the small co-occurrence grammar described
// in spec section 4.3 unless the segmenter was built with rules
// disabled.
package segment
