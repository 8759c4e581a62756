// Copyright ©2026 The QuBLAS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command qublassim is a small demo/debug entry point: it builds a pair of
// fixed-point tensors in the requested Format, fills them from a seeded RNG,
// runs one named kernel, and prints the result. It exists to give a human
// something runnable while exercising a kernel interactively, the same role
// xtaci-kcptun's client/main.go plays for that repo's transport stack
// (urfave/cli flag surface, pkg/errors-wrapped config loading, log for
// diagnostics).
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/pikapuma/QuBLAS/policy"
	"github.com/pikapuma/QuBLAS/qblas"
	"github.com/pikapuma/QuBLAS/qfx"
	"github.com/pikapuma/QuBLAS/qio"
	"github.com/pikapuma/QuBLAS/qlapack"
	"github.com/pikapuma/QuBLAS/qtensor"
)

// VERSION is injected by buildflags, following client/main.go's convention.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	myApp := cli.NewApp()
	myApp.Name = "qublassim"
	myApp.Usage = "run one QuBLAS kernel over seeded random fixed-point operands"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.StringFlag{Name: "op", Value: "gemul", Usage: "gemul, gramul, gemv, or potrf"},
		cli.IntFlag{Name: "rows", Value: 4, Usage: "operand row count"},
		cli.IntFlag{Name: "cols", Value: 4, Usage: "operand column count"},
		cli.IntFlag{Name: "intbits", Value: 8, Usage: "Format integer bits"},
		cli.IntFlag{Name: "fracbits", Value: 16, Usage: "Format fractional bits"},
		cli.BoolFlag{Name: "signed", Usage: "Format is signed"},
		cli.StringFlag{Name: "round", Value: "TCPL", Usage: "POS_INF, NEG_INF, ZERO, INF, CONV, TCPL, SMGN"},
		cli.StringFlag{Name: "overflow", Value: "SAT_TCPL", Usage: "SAT_TCPL, SAT_ZERO, SAT_SMGN, WRP_TCPL"},
		cli.StringFlag{Name: "seed", Value: "qublassim", Usage: "RNG seed"},
		cli.StringFlag{Name: "c", Usage: "config from json file, overrides the flags above"},
		cli.StringFlag{Name: "log", Usage: "redirect log output to this file"},
	}

	myApp.Action = func(c *cli.Context) error {
		config := Config{
			Op: c.String("op"), Rows: c.Int("rows"), Cols: c.Int("cols"),
			IntBits: c.Int("intbits"), FracBits: c.Int("fracbits"), Signed: c.Bool("signed"),
			Round: c.String("round"), Overflow: c.String("overflow"),
			Seed: c.String("seed"), Log: c.String("log"),
		}
		if path := c.String("c"); path != "" {
			if err := parseJSONConfig(&config, path); err != nil {
				return err
			}
		}

		if config.Log != "" {
			f, err := os.OpenFile(config.Log, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
			if err != nil {
				return errors.Wrap(err, "qublassim: opening log file")
			}
			defer f.Close()
			log.SetOutput(f)
		}

		f, err := config.format()
		if err != nil {
			return err
		}

		log.Println("op:", config.Op)
		log.Println("format:", f.IntBits, f.FracBits, f.Signed, f.Rnd, f.Ovf)
		log.Println("shape:", config.Rows, "x", config.Cols)

		rng := qio.NewRNG([]byte(config.Seed))
		bundle := policy.New(policy.IntBits(f.IntBits), policy.FracBits(f.FracBits), policy.Signed(f.Signed), policy.Rnd(f.Rnd), policy.Ovf(f.Ovf))

		var result *qtensor.Tensor
		switch config.Op {
		case "gemul":
			A := qtensor.NewTensor(f, config.Rows, config.Cols)
			B := qtensor.NewTensor(f, config.Cols, config.Rows)
			qio.UniformFill(A, rng)
			qio.UniformFill(B, rng)
			result = new(qtensor.Tensor)
			qblas.Qgemul(result, A, B, false, false, bundle, bundle)
		case "gramul":
			A := qtensor.NewTensor(f, config.Rows, config.Cols)
			qio.UniformFill(A, rng)
			result = new(qtensor.Tensor)
			qblas.Qgramul(result, A, false, bundle, bundle, bundle, bundle)
		case "gemv":
			A := qtensor.NewTensor(f, config.Rows, config.Cols)
			x := qtensor.NewTensor(f, config.Cols)
			qio.UniformFill(A, rng)
			qio.UniformFill(x, rng)
			y := qtensor.NewTensor(f, config.Rows)
			one := qfx.FromFloat64(1, f)
			zero := qfx.FromFloat64(0, f)
			qblas.Qgemv(y, A, x, false, bundle, bundle, one, zero)
			result = y
		case "potrf":
			A := qtensor.NewTensor(f, config.Rows, config.Rows)
			qio.UniformFill(A, rng)
			spd := new(qtensor.Tensor)
			qblas.Qgramul(spd, A, false, bundle, bundle, bundle, bundle)
			if !qlapack.Qpotrf(spd, bundle) {
				return errors.New("qublassim: sampled operand was not positive definite")
			}
			result = spd
		default:
			return errors.Errorf("qublassim: unknown op %q", config.Op)
		}

		fmt.Println(qio.Formatted{T: result}.String())
		return nil
	}

	if err := myApp.Run(os.Args); err != nil {
		log.Printf("%+v\n", err)
		os.Exit(1)
	}
}
