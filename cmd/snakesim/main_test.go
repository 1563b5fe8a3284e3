package main

import (
	"bytes"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/errorcodezero/mastodon-plays-snake/config"
	"github.com/errorcodezero/mastodon-plays-snake/game"
	"github.com/errorcodezero/mastodon-plays-snake/store"
)

func TestRun_WritesTraceAndBackup(t *testing.T) {
	trace := filepath.Join(t.TempDir(), "ticks.parquet")
	cfg := config.Config{Seed: 9, Ticks: 50, HighScore: 2, TraceOut: trace}

	var out bytes.Buffer
	if err := run(cfg, &out, slog.New(slog.DiscardHandler)); err != nil {
		t.Fatalf("run: %v", err)
	}
	t.Logf("\n%s", out.String())

	if !strings.Contains(out.String(), "Score: ") || !strings.Contains(out.String(), "Ticks: 50") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}

	rows, err := store.ReadTicksParquet(trace)
	if err != nil {
		t.Fatalf("ReadTicksParquet: %v", err)
	}
	if len(rows) != 50 {
		t.Fatalf("rows=%d want 50", len(rows))
	}
	if !strings.Contains(out.String(), "Backup: "+rows[len(rows)-1].Backup) {
		t.Fatalf("printed backup does not match the last archived row")
	}
}

func TestRun_Restore(t *testing.T) {
	cfg := config.Config{Seed: 3, Ticks: 0, Restore: "u,2,3,1,1,1,2"}
	var out bytes.Buffer
	if err := run(cfg, &out, slog.New(slog.DiscardHandler)); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Backup: u,2,3,1,1,1,2") || !strings.Contains(out.String(), "Score: 1") {
		t.Fatalf("unexpected output:\n%s", out.String())
	}
}

func TestRun_BadRestore(t *testing.T) {
	cfg := config.Config{Seed: 3, Restore: "u,9,9"}
	err := run(cfg, &bytes.Buffer{}, slog.New(slog.DiscardHandler))
	if !errors.Is(err, game.ErrMalformedBackup) {
		t.Fatalf("err=%v want ErrMalformedBackup", err)
	}
}
