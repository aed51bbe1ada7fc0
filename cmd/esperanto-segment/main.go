// Copyright 2026 The Esperanto Segmenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/danieldk/esperanto-segmenter/cmd/common"
	"github.com/danieldk/esperanto-segmenter/internal/logging"
	"github.com/danieldk/esperanto-segmenter/internal/markov"
	"github.com/danieldk/esperanto-segmenter/internal/morpheme"
	"github.com/danieldk/esperanto-segmenter/internal/pipeline"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] config [input] [output]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	if flag.NArg() == 0 || flag.NArg() > 3 {
		flag.Usage()
		os.Exit(1)
	}

	config := common.MustParseConfig(flag.Arg(0))
	logger := logging.Configure(config.LogLevel)

	logger.Info().Str("dir", config.DictDir).Msg("loading morpheme dictionary")
	dict, err := morpheme.LoadDictionary(config.DictDir)
	common.ExitIfError("cannot load morpheme dictionary", err)
	common.LogDictionarySummary(logger, dict)

	modelFile, err := os.Open(config.ModelFile)
	common.ExitIfError("cannot open model file", err)
	defer modelFile.Close()

	model, err := markov.Load(bufio.NewReader(modelFile), config.NGramOrder)
	common.ExitIfError("cannot load model", err)

	p := pipeline.New(dict.Trie, model, config.IgnoreRules)

	inputFile := common.FileOrStdin(flag.Args(), 1)
	defer inputFile.Close()

	outputFile := common.FileOrStdout(flag.Args(), 2)
	defer outputFile.Close()

	bufOut := bufio.NewWriter(outputFile)
	defer bufOut.Flush()

	scanner := bufio.NewScanner(inputFile)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}

		segmentation, ok := p.Segment(word)
		if !ok {
			logger.Warn().Str("word", word).Msg("no legal decomposition")
			continue
		}

		fmt.Fprintln(bufOut, segmentation)
	}
	common.ExitIfError("error reading input", scanner.Err())
}
