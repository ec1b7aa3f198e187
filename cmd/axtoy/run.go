package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rjkroege/axtoy/coord"
	"github.com/rjkroege/axtoy/driver"
	"github.com/rjkroege/axtoy/internal/traverse"
	"github.com/rjkroege/axtoy/querylog"
)

const ctrlD = 0x04

// run builds the surface and advances it once per trigger read from in
// until in is exhausted or a quit is read. Keyed input triggers on every
// byte; otherwise every line is a trigger.
func run(cfg config, in io.Reader, out io.Writer, bell driver.Beeper, logger *slog.Logger, keyed bool) error {
	grid := cfg.cell
	if cfg.backend == "delegating" {
		grid = coord.Grid{CellWidth: float64(cfg.fontwidth), CellHeight: float64(cfg.fontheight)}
	}
	engine := traverse.New(traverse.WithGrid(grid), traverse.WithLogger(logger))
	qlog := querylog.New(out, querylog.WithLogger(logger))
	s, err := newSurface(cfg, qlog, engine, logger)
	if err != nil {
		return err
	}
	logger.Info("surface ready", slog.String("backend", cfg.backend), slog.Bool("keyed", keyed))

	engine.Poll(s)
	d := driver.New(s, bell)
	r := bufio.NewReader(in)
	for {
		quit, err := nextTrigger(r, keyed)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		if !d.Advance() {
			logger.Debug("no stages left")
		}
	}
}

func nextTrigger(r *bufio.Reader, keyed bool) (quit bool, err error) {
	if keyed {
		b, err := r.ReadByte()
		switch {
		case err == io.EOF:
			return true, nil
		case err != nil:
			return false, fmt.Errorf("reading key: %w", err)
		}
		return b == 'q' || b == ctrlD, nil
	}

	line, err := r.ReadString('\n')
	switch {
	case err == io.EOF && line == "":
		return true, nil
	case err != nil && err != io.EOF:
		return false, fmt.Errorf("reading line: %w", err)
	}
	return strings.TrimSpace(line) == "q", nil
}
