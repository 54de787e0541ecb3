package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// suiteConfig is the TOML description of a benchmark suite:
//
//	checksum = "blake3"
//
//	[[scenario]]
//	name = "bc7-gradient"
//	format = "bc7"
//	width = 64
//	height = 64
//	pattern = "gradient"
//	three_subsets = true
//	min_psnr = 40.0
//
//	[[scenario]]
//	format = "bc6h"
//	image = "testdata/sky.png"
type suiteConfig struct {
	Checksum string     `toml:"checksum"`
	Scenario []scenario `toml:"scenario"`
}

func parseSuite(data string) (*suiteConfig, error) {
	cfg := &suiteConfig{Checksum: "fnv"}
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "parse suite")
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.Errorf("parse suite: unknown keys: %s", strings.Join(keys, ", "))
	}
	if _, err := newChecksum(cfg.Checksum); err != nil {
		return nil, errors.Wrap(err, "parse suite")
	}
	if len(cfg.Scenario) == 0 {
		return nil, errors.New("parse suite: no scenarios")
	}
	for i := range cfg.Scenario {
		sc := &cfg.Scenario[i]
		if sc.Name == "" {
			sc.Name = fmt.Sprintf("scenario-%d", i+1)
		}
		if sc.Pattern == "" {
			sc.Pattern = "gradient"
		}
		if sc.Iters == 0 {
			sc.Iters = 1
		}
		if _, err := sc.validate(); err != nil {
			return nil, errors.Wrapf(err, "scenario %s", sc.Name)
		}
	}
	return cfg, nil
}

func suiteCmd(args []string) error {
	fs := flag.NewFlagSet("suite", flag.ExitOnError)
	var configPath string
	fs.StringVar(&configPath, "config", "", "suite description (.toml)")
	_ = fs.Parse(args)

	if configPath == "" {
		return usagef("missing -config")
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Wrapf(err, "read %s", configPath)
	}
	cfg, err := parseSuite(string(data))
	if err != nil {
		return errors.Wrap(err, configPath)
	}

	var failed []string
	for _, sc := range cfg.Scenario {
		res, err := runScenario(sc, cfg.Checksum)
		if err != nil {
			return err
		}
		out.result(res.String())
		if sc.MinPSNR > 0 && res.psnr < sc.MinPSNR {
			out.warn(fmt.Errorf("scenario %s: psnr %.2f below %.2f", sc.Name, res.psnr, sc.MinPSNR))
			failed = append(failed, sc.Name)
		}
	}
	if len(failed) != 0 {
		return errors.Errorf("%d scenario(s) below their PSNR floor: %s", len(failed), strings.Join(failed, ", "))
	}
	return nil
}
