// Copyright 2026 The Esperanto Segmenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package orthography converts between Esperanto "hat notation"
// (ĉ, ĝ, ĥ, ĵ, ŝ, ŭ) and the ASCII "x-notation" digraphs the
// segmenter's trie is built from (cx, gx, hx, jx, sx, ux), and restores
// the original presentation of a segmented word by walking the source
// word and the x-notation result in parallel.
package orthography
