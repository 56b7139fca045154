// Copyright (c) 2026 The Blakecoin Community developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/blakecoin-community/blakecoind/corelog"
)

// Config is the optional yaml configuration of the miner.
type Config struct {
	Log corelog.Config `yaml:"log"`
}

// parseConfig reads the yaml file at path.  An empty path returns defaults.
func parseConfig(path string) (Config, error) {
	cfg := Config{Log: corelog.Config{}.Default()}
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "unable to read configuration")
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrap(err, "unable to decode configuration")
	}
	return cfg, nil
}
