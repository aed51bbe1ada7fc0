// Copyright 2016 Daniël de Kok. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config stores the configuration shared by the esperanto-* binaries.
// Not every binary uses every field: esperanto-train ignores ModelFile
// as an input and only ever writes it; esperanto-segment and
// esperanto-evaluate ignore CorpusFile entirely.
type Config struct {
	DictDir     string `toml:"dict_dir"`
	CorpusFile  string `toml:"corpus_file"`
	ModelFile   string `toml:"model_file"`
	NGramOrder  int    `toml:"ngram_order"`
	IgnoreRules bool   `toml:"ignore_rules"`
	LogLevel    string `toml:"log_level"`
}

func defaultConfig() *Config {
	return &Config{
		DictDir:     "dict",
		CorpusFile:  "corpus.tsv",
		ModelFile:   "model.json",
		NGramOrder:  3,
		IgnoreRules: false,
		LogLevel:    "info",
	}
}

// MustParseConfig opens and parses filename, exiting the process on
// any failure. Relative paths inside the config file are resolved
// against the config file's own directory, not the process's working
// directory.
func MustParseConfig(filename string) *Config {
	f, err := os.Open(filename)
	ExitIfError("cannot open configuration file", err)
	defer f.Close()

	config, err := ParseConfig(f)
	ExitIfError("cannot parse configuration file", err)

	config.DictDir = relToConfig(filename, config.DictDir)
	config.CorpusFile = relToConfig(filename, config.CorpusFile)
	config.ModelFile = relToConfig(filename, config.ModelFile)

	return config
}

// ParseConfig decodes a Config from TOML read from reader, starting
// from defaultConfig so an incomplete file still produces a usable
// configuration.
func ParseConfig(reader io.Reader) (*Config, error) {
	config := defaultConfig()
	if _, err := toml.DecodeReader(reader, config); err != nil {
		return config, err
	}
	return config, nil
}

// relToConfig returns the path of a file relative to the directory of
// the configuration file, unless the path is already absolute.
func relToConfig(configPath, filePath string) string {
	if len(filePath) == 0 {
		return filePath
	}
	if filepath.IsAbs(filePath) {
		return filePath
	}
	return filepath.Join(filepath.Dir(configPath), filePath)
}
