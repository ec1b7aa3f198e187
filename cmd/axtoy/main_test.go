package main

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rjkroege/axtoy/coord"
)

type bell struct{ rung int }

func (b *bell) Beep() { b.rung++ }

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func testConfig(backend string) config {
	return config{
		backend:    backend,
		cell:       coord.DefaultGrid,
		fontwidth:  10,
		fontheight: 10,
		maxtab:     8,
	}
}

func TestRunLines(t *testing.T) {
	for _, backend := range []string{"computed", "delegating"} {
		t.Run(backend, func(t *testing.T) {
			var out bytes.Buffer
			var b bell
			err := run(testConfig(backend), strings.NewReader("\n\n\n\n\nq\n\n"), &out, &b, discard, false)
			if err != nil {
				t.Fatalf("run failed: %v", err)
			}
			if b.rung != 1 {
				t.Errorf("bell rang %d times; want 1", b.rung)
			}
			if got, want := strings.Count(out.String(), "** Append text"), 4; got != want {
				t.Errorf("saw %d appends; want %d", got, want)
			}
			if !strings.Contains(out.String(), "** Append text “> ”. New value is:\n“> Date\nMonday December 1\n> ”\n") {
				t.Errorf("final append missing from output:\n%s", out.String())
			}
		})
	}
}

func TestRunKeys(t *testing.T) {
	for _, tc := range []struct {
		name    string
		in      string
		appends int
		rung    int
	}{
		{"eof", "abcdef", 4, 2},
		{"quit", "abqcd", 2, 0},
		{"ctrl-d", "a\x04bc", 1, 0},
		{"empty", "", 0, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			var b bell
			if err := run(testConfig("computed"), strings.NewReader(tc.in), &out, &b, discard, true); err != nil {
				t.Fatalf("run failed: %v", err)
			}
			if got := strings.Count(out.String(), "** Append text"); got != tc.appends {
				t.Errorf("saw %d appends; want %d", got, tc.appends)
			}
			if b.rung != tc.rung {
				t.Errorf("bell rang %d times; want %d", b.rung, tc.rung)
			}
		})
	}
}

func TestRunUnknownBackend(t *testing.T) {
	err := run(testConfig("native"), strings.NewReader(""), io.Discard, &bell{}, discard, false)
	if err == nil {
		t.Errorf("run with an unknown backend succeeded")
	}
}

func TestParseCell(t *testing.T) {
	for _, tc := range []struct {
		s       string
		want    coord.Grid
		wantErr bool
	}{
		{"10x10", coord.Grid{CellWidth: 10, CellHeight: 10}, false},
		{"7.5x12", coord.Grid{CellWidth: 7.5, CellHeight: 12}, false},
		{"10", coord.Grid{}, true},
		{"ax10", coord.Grid{}, true},
		{"10x0", coord.Grid{}, true},
	} {
		got, err := parseCell(tc.s)
		if (err != nil) != tc.wantErr {
			t.Errorf("parseCell(%q) error = %v; wantErr %v", tc.s, err, tc.wantErr)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("parseCell(%q) mismatch (-want +got):\n%s", tc.s, diff)
		}
	}
}

func TestParseLevel(t *testing.T) {
	for s, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"":      slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := parseLevel(s)
		if err != nil || got != want {
			t.Errorf("parseLevel(%q) = %v, %v; want %v", s, got, err, want)
		}
	}
	if _, err := parseLevel("loud"); err == nil {
		t.Errorf("parseLevel(loud) succeeded")
	}
}
