package cmd

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arcanaland/belote/internal/card"
	"github.com/arcanaland/belote/internal/config"
	"github.com/arcanaland/belote/internal/event"
	"github.com/arcanaland/belote/internal/game"
	"github.com/arcanaland/belote/internal/player"
	"github.com/arcanaland/belote/internal/seat"
)

// tickInterval is the host frame used with --realtime.
const tickInterval = 50 * time.Millisecond

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a belote match",
	Long: `Play runs a match until the round count or the score target is reached.

Without --interactive all four seats are bots. With --interactive the seats
come from your config file (South is human by default) and you pick your
cards from a list of legal moves.

Examples:
  belote play --rounds 3 --seed 42
  belote play --interactive --realtime
  belote play --rules ./quick.toml --target 500`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rounds, _ := cmd.Flags().GetInt("rounds")
		target, _ := cmd.Flags().GetInt("target")
		seed, _ := cmd.Flags().GetUint64("seed")
		rulesFlag, _ := cmd.Flags().GetString("rules")
		interactive, _ := cmd.Flags().GetBool("interactive")
		realtime, _ := cmd.Flags().GetBool("realtime")

		if rounds <= 0 && target <= 0 {
			return errors.New("either --rounds or --target must be positive")
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		var ruleArgs []string
		if rulesFlag != "" {
			ruleArgs = []string{rulesFlag}
		}
		r, err := loadRules(ruleArgs)
		if err != nil {
			return err
		}

		opts := game.DefaultOptions()
		if err := r.Apply(&opts); err != nil {
			return err
		}
		if interactive {
			if opts.Players, err = cfg.Seats(); err != nil {
				return fmt.Errorf("config players: %w", err)
			}
		} else {
			for _, s := range seat.All() {
				opts.Players[s].Kind = player.AI
			}
		}

		if seed == 0 {
			seed = cfg.Seed
		}
		if seed == 0 {
			seed = rand.Uint64()
		}
		opts.Rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		opts.Logger = newLogger()

		g, err := game.New(opts)
		if err != nil {
			return err
		}
		opts.Logger.Info("match created", "match", g.ID(), "seed", seed, "rules", r.Name)

		h := &host{
			g:        g,
			view:     newRenderer(os.Stdout, g),
			rounds:   rounds,
			target:   target,
			realtime: realtime,
			delay:    opts.PostPlayDelay,
		}
		if err := h.run(); err != nil {
			return err
		}
		return RenderScoreTable(g, h.played)
	},
}

func init() {
	RootCmd.AddCommand(playCmd)

	playCmd.Flags().IntP("rounds", "n", 0, "Stop after this many rounds (0 for no limit)")
	playCmd.Flags().Int("target", 1000, "Stop once a team reaches this score (0 for no target)")
	playCmd.Flags().Uint64("seed", 0, "Seed for shuffling and bots (0 uses the config seed or a random one)")
	playCmd.Flags().StringP("rules", "r", "", "Specify rules from your rules library or a path to a rules file")
	playCmd.Flags().BoolP("interactive", "i", false, "Seat humans from the config file and prompt for their cards")
	playCmd.Flags().Bool("realtime", false, "Honor the post-play delay in wall-clock time")
}

// host drives a game: it ticks the state machine, drains its events and
// decides when the match is over.
type host struct {
	g        *game.Game
	view     *renderer
	rounds   int
	target   int
	realtime bool
	delay    time.Duration
	played   int
	done     bool
}

func (h *host) run() error {
	if err := h.g.Start(); err != nil {
		return err
	}
	for {
		if h.drain() {
			h.g.End()
			return nil
		}

		if h.g.Pending() {
			if err := h.step(); err != nil {
				return err
			}
			continue
		}

		p, ok := h.g.Current()
		if !ok || !p.Allowed() || p.Kind != player.Human {
			return fmt.Errorf("%w: nobody can act in state %s", game.ErrState, h.g.State())
		}
		if err := h.prompt(p); err != nil {
			return err
		}
	}
}

// drain renders queued events and reports whether the match is over.
// Once the deciding round is scored, events from the next deal are dropped.
func (h *host) drain() bool {
	for _, e := range h.g.Drain() {
		if rb, ok := e.(event.RoundBoundary); ok && rb.Starting && h.done {
			return true
		}
		h.view.Render(e)
		if _, ok := e.(event.RoundScored); ok {
			h.played++
			h.done = h.finished()
		}
	}
	return h.done
}

func (h *host) finished() bool {
	if h.rounds > 0 && h.played >= h.rounds {
		return true
	}
	if h.target > 0 {
		l := h.g.Ledger()
		return l.Total(seat.Team1) >= h.target || l.Total(seat.Team2) >= h.target
	}
	return false
}

// step advances the post-play delay by one frame.
func (h *host) step() error {
	if !h.realtime {
		return h.g.Tick(h.delay)
	}
	time.Sleep(tickInterval)
	return h.g.Tick(tickInterval)
}

// prompt asks a human for a card and feeds the choice through the same
// selection path as a drag and drop.
func (h *host) prompt(p *player.Player) error {
	h.view.HUD(p)

	legal := p.Legal()
	options := make([]string, 0, legal.Size())
	byOption := make(map[string]*card.Card, legal.Size())
	for c := range legal.All() {
		label := fmt.Sprintf("%s  %s", c, c.Name())
		options = append(options, label)
		byOption[label] = c
	}

	choice, err := pterm.DefaultInteractiveSelect.
		WithDefaultText(fmt.Sprintf("%s, pick a card", p.Name)).
		WithOptions(options).
		Show()
	if err != nil {
		return err
	}
	c, ok := byOption[choice]
	if !ok {
		return fmt.Errorf("%w: no card for %q", game.ErrIllegalPlay, choice)
	}

	decider, _ := p.HumanDecider()
	if err := h.g.Select(event.CardSelectionChanged{Card: c, IsSelected: true}); err != nil {
		return err
	}
	return h.g.Select(decider.Release(c))
}
