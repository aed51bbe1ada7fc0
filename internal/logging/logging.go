// Copyright 2026 The Esperanto Segmenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging configures the process-wide structured logger shared
// by the esperanto-* binaries. Library packages (morpheme, orthography,
// segment, markov, pipeline) never import this package or log directly;
// only cmd/ entry points do, per spec section 7's library/CLI error
// split.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Configure installs a console-formatted zerolog writer at the given
// level (a zerolog level name such as "debug", "info", "warn", or
// "error"; a name zerolog.ParseLevel rejects falls back to "info") as
// the global logger, and returns it for callers that
// prefer an explicit logger value over the global one.
func Configure(level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(parsed).
		With().
		Timestamp().
		Logger()

	log.Logger = logger
	return logger
}
