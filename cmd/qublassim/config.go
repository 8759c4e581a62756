// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/pikapuma/QuBLAS/policy"
)

// Config collects every flag qublassim accepts, mirrored into a struct so it
// can also be loaded wholesale from a JSON file (xtaci-kcptun's
// client/config.go Config/parseJSONConfig pattern) — any field set in the
// file overrides the one set on the command line.
type Config struct {
	Op       string `json:"op"`
	Rows     int    `json:"rows"`
	Cols     int    `json:"cols"`
	IntBits  int    `json:"intbits"`
	FracBits int    `json:"fracbits"`
	Signed   bool   `json:"signed"`
	Round    string `json:"round"`
	Overflow string `json:"overflow"`
	Seed     string `json:"seed"`
	Log      string `json:"log"`
}

// parseJSONConfig loads a JSON config file over config, following
// client/config.go's own parseJSONConfig: open, decode, return any error
// wrapped with github.com/pkg/errors to say which step failed.
func parseJSONConfig(config *Config, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "qublassim: opening config file")
	}
	defer file.Close()
	return errors.Wrap(json.NewDecoder(file).Decode(config), "qublassim: decoding config file")
}

// format builds the policy.Format this run's Config describes.
func (c Config) format() (policy.Format, error) {
	rnd, err := parseRoundMode(c.Round)
	if err != nil {
		return policy.Format{}, err
	}
	ovf, err := parseOverflowMode(c.Overflow)
	if err != nil {
		return policy.Format{}, err
	}
	f := policy.Format{IntBits: c.IntBits, FracBits: c.FracBits, Signed: c.Signed, Rnd: rnd, Ovf: ovf}
	return f, nil
}

func parseRoundMode(s string) (policy.RoundMode, error) {
	switch strings.ToUpper(s) {
	case "POS_INF", "":
		return policy.RndPosInf, nil
	case "NEG_INF":
		return policy.RndNegInf, nil
	case "ZERO":
		return policy.RndZero, nil
	case "INF":
		return policy.RndInf, nil
	case "CONV":
		return policy.RndConv, nil
	case "TCPL":
		return policy.RndTcpl, nil
	case "SMGN":
		return policy.RndSmgn, nil
	default:
		return 0, errors.Errorf("qublassim: unknown round mode %q", s)
	}
}

func parseOverflowMode(s string) (policy.OverflowMode, error) {
	switch strings.ToUpper(s) {
	case "SAT_TCPL", "":
		return policy.OvfSatTcpl, nil
	case "SAT_ZERO":
		return policy.OvfSatZero, nil
	case "SAT_SMGN":
		return policy.OvfSatSmgn, nil
	case "WRP_TCPL":
		return policy.OvfWrpTcpl, nil
	default:
		return 0, errors.Errorf("qublassim: unknown overflow mode %q", s)
	}
}
