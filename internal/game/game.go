// Package game sequences a belote match: dealing, turns, trick resolution
// and scoring. It is driven by an external tick and reports what happened
// through an event queue drained by the host.
package game

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/arcanaland/belote/internal/card"
	"github.com/arcanaland/belote/internal/deck"
	"github.com/arcanaland/belote/internal/event"
	"github.com/arcanaland/belote/internal/player"
	"github.com/arcanaland/belote/internal/score"
	"github.com/arcanaland/belote/internal/seat"
	"github.com/arcanaland/belote/internal/trick"
)

var (
	ErrConfiguration = errors.New("configuration error")
	ErrIllegalPlay   = errors.New("illegal play")
	ErrNoLegalMoves  = errors.New("no legal moves")
	ErrPlayPending   = errors.New("previous play not resolved yet")
	ErrState         = errors.New("invalid game state")
)

// State is the phase of the round state machine.
type State int

const (
	Idle State = iota
	Dealing
	TurnActive
	TurnResolving
	RoundScoring
	MatchEnded
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dealing:
		return "dealing"
	case TurnActive:
		return "turn active"
	case TurnResolving:
		return "turn resolving"
	case RoundScoring:
		return "round scoring"
	case MatchEnded:
		return "match ended"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// DefaultDeal is the classic 3-2-3 dealing plan.
var DefaultDeal = []int{3, 2, 3}

// DefaultPostPlayDelay lets the view settle after each card.
const DefaultPostPlayDelay = time.Second

// PlayerSpec describes who sits at a seat.
type PlayerSpec struct {
	Name     string
	Kind     player.Kind
	HandArea player.HandArea // Human seats only; nil treats every release as a drop
}

// Options configures a match.
type Options struct {
	Players        [seat.Count]PlayerSpec // Indexed by seat
	Deal           []int                  // Cards per block, dealt to every seat; nil means DefaultDeal
	Scoring        card.Scoring
	LastTrickBonus int
	PostPlayDelay  time.Duration
	Cut            bool // Cut the stock before every deal but the first
	Rand           deck.Random
	Bidder         Bidder
	Logger         *slog.Logger
}

// DefaultOptions returns the classic rules with South human and three bots.
func DefaultOptions() Options {
	opts := Options{
		Deal:           DefaultDeal,
		Scoring:        card.DefaultScoring(),
		LastTrickBonus: score.DefaultLastTrickBonus,
		PostPlayDelay:  DefaultPostPlayDelay,
		Cut:            true,
	}
	for _, s := range seat.All() {
		opts.Players[s] = PlayerSpec{Name: s.String(), Kind: player.AI}
	}
	opts.Players[seat.South].Kind = player.Human
	return opts
}

// Game is the round and turn state machine of one match.
type Game struct {
	id     string
	opts   Options
	log    *slog.Logger
	rnd    deck.Random
	bidder Bidder

	registry   *deck.Registry
	stock      *deck.Deck
	players    [seat.Count]*player.Player
	handOwners map[deck.OwnerID]seat.Seat
	current    *trick.Trick
	archive    [2][]*trick.Trick
	lastTrick  *trick.Trick
	ledger     *score.Ledger
	events     event.Queue

	state      State
	round      int
	trump      card.Suit
	dealer     seat.Seat
	first      seat.Seat
	bidderSeat seat.Seat
	turn       seat.Seat
	hasTurn    bool
	tricksDone int

	pending   bool
	remaining time.Duration
}

// New builds a match: a full 32-card stock, four players and an empty
// ledger. Nothing is dealt until Start.
func New(opts Options) (*Game, error) {
	if opts.Scoring == nil {
		opts.Scoring = card.DefaultScoring()
	}
	if err := opts.Scoring.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if opts.Deal == nil {
		opts.Deal = DefaultDeal
	}
	if len(opts.Deal) == 0 {
		return nil, fmt.Errorf("%w: deal plan has no blocks", ErrConfiguration)
	}
	for _, n := range opts.Deal {
		if n <= 0 {
			return nil, fmt.Errorf("%w: deal blocks must be positive, got %v", ErrConfiguration, opts.Deal)
		}
	}
	if opts.PostPlayDelay < 0 {
		return nil, fmt.Errorf("%w: negative post-play delay %s", ErrConfiguration, opts.PostPlayDelay)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Bidder == nil {
		opts.Bidder = RandomBidder{Rand: opts.Rand}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	g := &Game{
		id:         uuid.NewString(),
		opts:       opts,
		rnd:        opts.Rand,
		bidder:     opts.Bidder,
		registry:   deck.NewRegistry(),
		handOwners: make(map[deck.OwnerID]seat.Seat),
		ledger:     score.NewLedger(opts.LastTrickBonus),
		round:      -1,
	}
	g.log = opts.Logger.With("match", g.id)
	g.stock = deck.New("stock", g.registry)
	g.stock.Fill(opts.Scoring)
	g.current = trick.New("trick", g.registry)

	for _, s := range seat.All() {
		spec := opts.Players[s]
		name := spec.Name
		if name == "" {
			name = s.String()
		}
		owner := deck.OwnerID("hand." + s.String())
		g.handOwners[owner] = s
		g.players[s] = player.New(name, s, spec.Kind, deck.New(owner, g.registry), g.rnd)
		if h, ok := g.players[s].HumanDecider(); ok {
			h.Area = spec.HandArea
		}
	}
	return g, nil
}

// ID returns the match identifier used in logs.
func (g *Game) ID() string { return g.id }

// State returns the current phase.
func (g *Game) State() State { return g.state }

// Round returns the round index, -1 before the first deal.
func (g *Game) Round() int { return g.round }

// Trump returns the trump of the current round.
func (g *Game) Trump() card.Suit { return g.trump }

// Dealer returns the dealer of the current round.
func (g *Game) Dealer() seat.Seat { return g.dealer }

// FirstPlayer returns the seat left of the dealer, who opens the round.
func (g *Game) FirstPlayer() seat.Seat { return g.first }

// Bidder returns the seat that took the trump this round.
func (g *Game) Bidder() seat.Seat { return g.bidderSeat }

// Current returns the player holding the turn, if any.
func (g *Game) Current() (*player.Player, bool) {
	if !g.hasTurn {
		return nil, false
	}
	return g.players[g.turn], true
}

// Player returns the player at a seat.
func (g *Game) Player(s seat.Seat) *player.Player { return g.players[s] }

// Players returns the players in seat order.
func (g *Game) Players() []*player.Player { return g.players[:] }

// Trick returns the active trick.
func (g *Game) Trick() *trick.Trick { return g.current }

// Archive returns the tricks won by a team this round.
func (g *Game) Archive(team seat.Team) []*trick.Trick { return g.archive[team] }

// LastTrick returns the most recently resolved trick of the round.
func (g *Game) LastTrick() (*trick.Trick, bool) { return g.lastTrick, g.lastTrick != nil }

// Ledger returns the score ledger.
func (g *Game) Ledger() *score.Ledger { return g.ledger }

// Stock returns the undealt cards.
func (g *Game) Stock() *deck.Deck { return g.stock }

// Registry returns the ownership index of the match.
func (g *Game) Registry() *deck.Registry { return g.registry }

// Pending reports whether a played card waits for the post-play delay.
func (g *Game) Pending() bool { return g.pending }

// Drain returns and clears the queued notifications.
func (g *Game) Drain() []event.Event { return g.events.Drain() }

// CardCount counts the cards across stock, hands, active trick and
// archived tricks. It is 32 at every observation point.
func (g *Game) CardCount() int {
	n := g.stock.Size() + g.current.Size()
	for _, p := range g.players {
		n += p.Hand.Size()
	}
	for _, tricks := range g.archive {
		for _, t := range tricks {
			n += t.Size()
		}
	}
	return n
}

// End moves the match to its terminal state. The win condition is decided
// by the host.
func (g *Game) End() {
	if g.state == MatchEnded {
		return
	}
	if g.hasTurn {
		g.players[g.turn].StopTurn()
		g.hasTurn = false
	}
	g.pending = false
	g.state = MatchEnded
	g.log.Info("match ended",
		"team1", g.ledger.Total(seat.Team1),
		"team2", g.ledger.Total(seat.Team2))
}
