package cmd

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"

	colorize "github.com/fatih/color"

	"github.com/arcanaland/belote/internal/game"
	"github.com/arcanaland/belote/internal/player"
	"github.com/arcanaland/belote/internal/seat"
)

func botGame(t *testing.T, seed uint64) *game.Game {
	t.Helper()
	opts := game.DefaultOptions()
	for _, s := range seat.All() {
		opts.Players[s].Kind = player.AI
	}
	opts.Rand = rand.New(rand.NewPCG(seed, seed))
	g, err := game.New(opts)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	return g
}

func TestHostStopsAfterRounds(t *testing.T) {
	colorize.NoColor = true
	g := botGame(t, 21)
	var out bytes.Buffer
	h := &host{g: g, view: newRenderer(&out, g), rounds: 2, delay: game.DefaultPostPlayDelay}

	if err := h.run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if h.played != 2 || g.State() != game.MatchEnded {
		t.Fatalf("played %d rounds, state %s", h.played, g.State())
	}
	text := out.String()
	if strings.Count(text, "wins with") != 16 {
		t.Fatalf("expected 16 resolved tricks in output:\n%s", text)
	}
	if !strings.Contains(text, "Round 2 over") || strings.Contains(text, "Round 3 ·") {
		t.Fatalf("output should stop after the second round:\n%s", text)
	}
}

func TestHostStopsAtTarget(t *testing.T) {
	colorize.NoColor = true
	g := botGame(t, 22)
	var out bytes.Buffer
	h := &host{g: g, view: newRenderer(&out, g), target: 200, delay: game.DefaultPostPlayDelay}

	if err := h.run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	l := g.Ledger()
	if max(l.Total(seat.Team1), l.Total(seat.Team2)) < 200 {
		t.Fatalf("match ended below target: %d / %d", l.Total(seat.Team1), l.Total(seat.Team2))
	}
}

func TestRenderCardPlayed(t *testing.T) {
	colorize.NoColor = true
	g := botGame(t, 23)
	if err := g.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	var out bytes.Buffer
	r := newRenderer(&out, g)
	for _, e := range g.Drain() {
		r.Render(e)
	}
	text := out.String()
	for _, want := range []string{"Round 1 · dealer South", "Trump:", "West   plays"} {
		if !strings.Contains(text, want) {
			t.Errorf("missing %q in:\n%s", want, text)
		}
	}
}
