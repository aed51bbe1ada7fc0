// Copyright 2026 The Esperanto Segmenter Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/danieldk/esperanto-segmenter/cmd/common"
	"github.com/danieldk/esperanto-segmenter/internal/logging"
	"github.com/danieldk/esperanto-segmenter/internal/markov"
	"github.com/danieldk/esperanto-segmenter/internal/morpheme"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s config\n\n", os.Args[0])
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	config := common.MustParseConfig(flag.Arg(0))
	logger := logging.Configure(config.LogLevel)

	logger.Info().Str("dir", config.DictDir).Msg("loading morpheme dictionary")
	dict, err := morpheme.LoadDictionary(config.DictDir)
	common.ExitIfError("cannot load morpheme dictionary", err)
	common.LogDictionarySummary(logger, dict)

	corpusFile, err := os.Open(config.CorpusFile)
	common.ExitIfError("cannot open training corpus", err)
	defer corpusFile.Close()

	logger.Info().Str("file", config.CorpusFile).Msg("parsing training corpus")
	rows, err := markov.ParseCorpus(bufio.NewReader(corpusFile))
	common.ExitIfError("cannot parse training corpus", err)

	logger.Info().Int("order", config.NGramOrder).Int("rows", len(rows)).Msg("training model")
	model, err := markov.Train(rows, config.NGramOrder, dict.Populations)
	common.ExitIfError("cannot train model", err)

	out, err := os.Create(config.ModelFile)
	common.ExitIfError("cannot open model file for writing", err)
	defer out.Close()

	bufOut := bufio.NewWriter(out)
	defer bufOut.Flush()

	err = model.Save(bufOut)
	common.ExitIfError("cannot write model", err)

	logger.Info().Str("file", config.ModelFile).Msg("model written")
}
