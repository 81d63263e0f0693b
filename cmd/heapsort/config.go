// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"cloudeng.io/binheap/internal/values"
	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/cmdutil/flags"
)

const (
	defaultOrder = "min"
	defaultType  = "int"
	defaultTopN  = 10
)

type CommonFlags struct {
	cmdutil.LoggingFlags
	Order   string `subcmd:"order,,'ordering: min or max, defaults to min'"`
	Type    string `subcmd:"type,,'value type: int, float or string, defaults to int'"`
	Trace   bool   `subcmd:"trace,false,'log every heap step at debug level, requires --log-level=3'"`
	Summary bool   `subcmd:"summary,false,print the number of values read and written"`
	Config  string `subcmd:"config,,yaml file containing default settings"`
}

type sortFlags struct {
	CommonFlags
}

type topFlags struct {
	CommonFlags
	N int `subcmd:"n,0,'number of values to print, defaults to 10'"`
}

// Config represents the contents of the file named by --config. Its
// values are used for any flags that are not set on the command line.
type Config struct {
	Order string `yaml:"order" cmd:"ordering: min or max"`
	Type  string `yaml:"type" cmd:"value type: int, float or string"`
	TopN  int    `yaml:"top_n" cmd:"number of values printed by the top command"`
}

type settings struct {
	max     bool
	kind    values.Kind
	topN    int
	trace   bool
	summary bool
}

func loadConfig(file string) (Config, error) {
	var cfg Config
	if len(file) == 0 {
		return cfg, nil
	}
	err := cmdyaml.ParseConfigFile(context.Background(), file, &cfg)
	return cfg, err
}

func (cf CommonFlags) settings(topN int) (settings, error) {
	cfg, err := loadConfig(cf.Config)
	if err != nil {
		return settings{}, err
	}
	order := firstSet(cf.Order, cfg.Order, defaultOrder)
	typ := firstSet(cf.Type, cfg.Type, defaultType)
	topN = firstSet(topN, cfg.TopN, defaultTopN)
	if err := flags.OneOf(order).Validate("min", "max"); err != nil {
		return settings{}, err
	}
	kind, err := values.ParseKind(typ)
	if err != nil {
		return settings{}, err
	}
	return settings{
		max:     order == "max",
		kind:    kind,
		topN:    topN,
		trace:   cf.Trace,
		summary: cf.Summary,
	}, nil
}

// firstSet returns the first of flag, config and builtin that is not the
// zero value.
func firstSet[T comparable](flag, config, builtin T) T {
	var zero T
	if flag != zero {
		return flag
	}
	if config != zero {
		return config
	}
	return builtin
}
