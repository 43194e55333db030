// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

// Skim is a small Scheme-like Lisp: a lexer, reader, evaluator and a
// handful of primitives and special forms, wrapped in an interactive
// line-edited REPL or a batch file runner.
//
// It is a pedagogical project, not a production Scheme: no tail calls,
// no continuations, no numeric tower beyond float64, and a primitive
// table small enough to read in one sitting.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jarns/skim/internal/buildinfo"
	"github.com/jarns/skim/internal/lisp"
	"github.com/jarns/skim/internal/repl"
	"github.com/jarns/skim/internal/runner"
)

func main() {
	app := &cli.Command{
		Name:      "skim",
		Version:   buildinfo.Version,
		Usage:     "a small Scheme-like Lisp interpreter",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "prompt",
				Value: "skim> ",
				Usage: "interactive prompt",
			},
			&cli.IntFlag{
				Name:  "depth",
				Value: 1e5,
				Usage: "maximum call depth; 0 means no limit",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Action: run,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	logger, err := newLogger(cmd.Bool("verbose"))
	if err != nil {
		return fmt.Errorf("starting logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	env := lisp.NewRootEnv()
	env.Configure(int(cmd.Int("depth")))

	if path := cmd.Args().First(); path != "" {
		code := runner.Run(env, path, os.Stdout, logger)
		os.Exit(code)
	}

	session, err := repl.New(env, cmd.String("prompt"), logger)
	if err != nil {
		return err
	}
	defer session.Close()
	session.Run()
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.OutputPaths = []string{"stderr"}
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	config.Level = zap.NewAtomicLevelAt(level)
	return config.Build()
}
