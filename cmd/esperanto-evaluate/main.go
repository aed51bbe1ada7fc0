// Copyright 2026 The Esperanto Segmenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// esperanto-evaluate reproduces the diagnostic candidate listing of the
// original implementation's evaluate_word.py: for each input word it
// prints every candidate decomposition, tagging and score, ranked
// best-first, rather than only the single winning segmentation
// esperanto-segment prints.
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

		candidates := p.Candidates(word)
		if len(candidates) == 0 {
			fmt.Fprintf(bufOut, "%s\tno legal decomposition\n", word)
			continue
		}

		pipeline.SortCandidates(candidates)
		for _, c := range candidates {
			tags := make([]string, len(c.Tagging))
			for i, t := range c.Tagging {
				tags[i] = t.String()
			}
			fmt.Fprintf(bufOut, "%s\t%s\t%s\t%g\t%d\n",
				word,
				strings.Join(c.Decomposition, "'"),
				strings.Join(tags, "'"),
				c.Score,
				c.ZeroPenalty)
		}
	}
	common.ExitIfError("error reading input", scanner.Err())
}
