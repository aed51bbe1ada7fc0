// Copyright 2026 The Esperanto Segmenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markov

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/danieldk/esperanto-segmenter/internal/morpheme"
)

// encodeContext renders a context as the key format described in
// spec section 6: a bare tag name for a unigram context, or a
// parenthesized, single-quoted, comma-joined tuple matching the
// original implementation's repr(tuple) shape for longer contexts, so
// a model trained here can be hand-translated back to the source
// format.
func encodeContext(tags []morpheme.MarkovTag) string {
	if len(tags) == 1 {
		return tags[0].String()
	}

	quoted := make([]string, len(tags))
	for i, t := range tags {
		quoted[i] = "'" + t.String() + "'"
	}
	return "(" + strings.Join(quoted, ", ") + ")"
}

// decodeContext is the inverse of encodeContext.
func decodeContext(key string) ([]morpheme.MarkovTag, error) {
	if !strings.HasPrefix(key, "(") {
		tag, ok := morpheme.ParseMarkovTag(key)
		if !ok {
			return nil, fmt.Errorf("markov: unrecognized context tag %q", key)
		}
		return []morpheme.MarkovTag{tag}, nil
	}

	inner := strings.TrimSuffix(strings.TrimPrefix(key, "("), ")")
	parts := strings.Split(inner, ", ")
	tags := make([]morpheme.MarkovTag, 0, len(parts))
	for _, p := range parts {
		name := strings.Trim(p, "'")
		tag, ok := morpheme.ParseMarkovTag(name)
		if !ok {
			return nil, fmt.Errorf("markov: unrecognized context tag %q in key %q", name, key)
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// Save writes the model's transition table as JSON, per spec section 6.
func (m *Model) Save(w io.Writer) error {
	encoded := make(map[string]map[string]float64, len(m.transitions))
	for ctx, byNext := range m.transitions {
		tags := ctx.tags(m.order)
		byNextNames := make(map[string]float64, len(byNext))
		for next, p := range byNext {
			byNextNames[next.String()] = p
		}
		encoded[encodeContext(tags)] = byNextNames
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(encoded); err != nil {
		return fmt.Errorf("markov: encoding model: %w", err)
	}
	return nil
}

// Load reads a transition table previously written by Save. order must
// match the order the model was trained at; Load has no way to infer
// it from the JSON alone since a unigram context and a one-element
// slice of a longer context serialize identically.
func Load(r io.Reader, order int) (*Model, error) {
	if order < 1 || order > maxOrder {
		return nil, fmt.Errorf("markov: unsupported n-gram order %d", order)
	}

	var encoded map[string]map[string]float64
	if err := json.NewDecoder(r).Decode(&encoded); err != nil {
		return nil, fmt.Errorf("markov: decoding model: %w", err)
	}

	transitions := make(map[ctxKey]map[morpheme.MarkovTag]float64, len(encoded))
	for ctxStr, byNextNames := range encoded {
		tags, err := decodeContext(ctxStr)
		if err != nil {
			return nil, err
		}
		if len(tags) != order {
			return nil, fmt.Errorf("markov: context %q has %d tags, expected %d for order %d", ctxStr, len(tags), order, order)
		}

		byNext := make(map[morpheme.MarkovTag]float64, len(byNextNames))
		for nextName, p := range byNextNames {
			next, ok := morpheme.ParseMarkovTag(nextName)
			if !ok {
				return nil, fmt.Errorf("markov: unrecognized next tag %q", nextName)
			}
			byNext[next] = p
		}

		transitions[newCtxKey(tags)] = byNext
	}

	return &Model{order: order, transitions: transitions}, nil
}
