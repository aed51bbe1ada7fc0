// Copyright 2026 The Esperanto Segmenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"github.com/rs/zerolog"

	"github.com/danieldk/esperanto-segmenter/internal/morpheme"
)

// LogDictionarySummary emits a debug-level line per populated MarkovTag
// and an info-level total, once a morpheme dictionary has loaded. It
// exists here, rather than in internal/morpheme, because that package
// never logs: construction results are returned as plain Go values and
// it is up to the CLI layer to decide how loudly to report them.
func LogDictionarySummary(logger zerolog.Logger, dict *morpheme.Dictionary) {
	for tag, count := range dict.Populations {
		event := logger.Debug().Str("tag", tag.String()).Int("count", count)
		if dups := dict.Duplicates[tag]; dups > 0 {
			event = event.Int("duplicates", dups)
		}
		event.Msg("loaded morpheme file")
	}
	logger.Info().Int("total", dict.TotalMorphemes()).Msg("morpheme dictionary loaded")
}
