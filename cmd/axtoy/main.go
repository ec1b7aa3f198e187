// Axtoy appends a short shell transcript to an accessible text surface,
// one stage per key press, and prints every query a traversal engine
// makes against the surface in response.
package main

import (
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/rjkroege/axtoy/access"
	"github.com/rjkroege/axtoy/coord"
	"github.com/rjkroege/axtoy/draw"
	"github.com/rjkroege/axtoy/internal/tty"
	"github.com/rjkroege/axtoy/querylog"
	"github.com/rjkroege/axtoy/rich"
)

var backendflag = flag.String("backend", "computed", "Surface backend (computed or delegating)")
var cellflag = flag.String("cell", "10x10", "Character cell of the computed backend (WidthxHeight)")
var fontwidthflag = flag.Int("fontwidth", 10, "Cell width of the delegating backend's font")
var fontheightflag = flag.Int("fontheight", 10, "Line height of the delegating backend's font")
var wrapflag = flag.Int("wrap", 0, "Wrap width of the delegating backend in pixels (0 disables)")
var heightflag = flag.Int("height", 0, "View height of the delegating backend in pixels (0 shows every line)")
var loglevelflag = flag.String("loglevel", "warn", "Diagnostic log level (debug, info, warn, error)")

type config struct {
	backend    string
	cell       coord.Grid
	fontwidth  int
	fontheight int
	wrap       int
	height     int
	maxtab     int
}

func main() {
	flag.Parse()

	level, err := parseLevel(*loglevelflag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "axtoy: %v\n", err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cell, err := parseCell(*cellflag)
	if err != nil {
		logger.Error("bad -cell", slog.Any("err", err))
		os.Exit(2)
	}
	cfg := config{
		backend:    *backendflag,
		cell:       cell,
		fontwidth:  *fontwidthflag,
		fontheight: *fontheightflag,
		wrap:       *wrapflag,
		height:     *heightflag,
		maxtab:     8,
	}
	if p := os.Getenv("tabstop"); p != "" {
		mt, err := strconv.Atoi(p)
		if err != nil || mt <= 0 {
			logger.Warn("ignoring bad tabstop", slog.String("tabstop", p))
		} else {
			cfg.maxtab = mt
		}
	}

	keyed := tty.IsTerminal(os.Stdin)
	var st *tty.State
	if keyed {
		st, err = tty.Cbreak(os.Stdin)
		if err != nil {
			logger.Error("can't set up terminal", slog.Any("err", err))
			os.Exit(1)
		}

		csignal := make(chan os.Signal, 1)
		signal.Notify(csignal, hangupSignals...)
		go func() {
			sig := <-csignal
			st.Restore()
			logger.Info("exiting", slog.String("signal", sig.String()))
			os.Exit(1)
		}()
		fmt.Fprintln(os.Stderr, "press a key to append the next stage, q to quit")
	} else {
		fmt.Fprintln(os.Stderr, "enter a line to append the next stage, q to quit")
	}

	err = run(cfg, os.Stdin, os.Stdout, tty.Bell{W: os.Stderr}, logger, keyed)
	if st != nil {
		st.Restore()
	}
	if err != nil {
		logger.Error("axtoy failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log level: %s", s)
}

// parseCell parses a WidthxHeight cell size.
func parseCell(s string) (coord.Grid, error) {
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return coord.Grid{}, fmt.Errorf("cell %q is not WidthxHeight", s)
	}
	w, err := strconv.ParseFloat(ws, 64)
	if err != nil {
		return coord.Grid{}, fmt.Errorf("cell width: %w", err)
	}
	h, err := strconv.ParseFloat(hs, 64)
	if err != nil {
		return coord.Grid{}, fmt.Errorf("cell height: %w", err)
	}
	if w <= 0 || h <= 0 {
		return coord.Grid{}, fmt.Errorf("cell %q must be positive", s)
	}
	return coord.Grid{CellWidth: w, CellHeight: h}, nil
}

// newSurface builds the surface named by cfg.backend. Its query log
// writes to qlog and its notifications go to n.
func newSurface(cfg config, qlog *querylog.Log, n access.Notifier, logger *slog.Logger) (access.Surface, error) {
	opts := []access.Option{
		access.WithLog(qlog),
		access.WithNotifier(n),
		access.WithLogger(logger),
		access.WithGrid(cfg.cell),
	}
	switch cfg.backend {
	case "computed":
		return access.NewComputed(opts...), nil
	case "delegating":
		view := rich.NewTextView(
			rich.WithFont(draw.NewMonospace(cfg.fontwidth, cfg.fontheight)),
			rich.WithRect(image.Rect(0, 0, cfg.wrap, cfg.height)),
			rich.WithMaxtab(cfg.maxtab),
			rich.WithLabel("shell"),
			rich.WithFocus(true),
		)
		return access.NewDelegating(view, opts...), nil
	}
	return nil, fmt.Errorf("unknown backend %q", cfg.backend)
}
