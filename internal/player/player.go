package player

import (
	"fmt"
	"strings"

	"github.com/arcanaland/belote/internal/card"
	"github.com/arcanaland/belote/internal/deck"
	"github.com/arcanaland/belote/internal/seat"
)

// Kind selects how a player makes decisions.
type Kind int

const (
	AI Kind = iota
	Human
)

func (k Kind) String() string {
	switch k {
	case AI:
		return "ai"
	case Human:
		return "human"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses "ai" or "human".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ai", "bot", "":
		return AI, nil
	case "human":
		return Human, nil
	}
	return AI, fmt.Errorf("unknown player kind: %s", s)
}

// Table is what the game offers to a deciding player.
type Table interface {
	Play(p *Player, c *card.Card) error
}

// Decider is the decision point of a player kind.
type Decider interface {
	OnTurnStart(p *Player, t Table) error
	OnTurnStop(p *Player)
}

// Player is a seat at the table with its hand and turn state.
type Player struct {
	Name string
	Seat seat.Seat
	Kind Kind
	Hand *deck.Deck

	allowed bool
	legal   *deck.Deck
	decider Decider
}

// New creates a player and the decider variant for its kind.
func New(name string, s seat.Seat, kind Kind, hand *deck.Deck, rnd deck.Random) *Player {
	p := &Player{Name: name, Seat: s, Kind: kind, Hand: hand}
	switch kind {
	case Human:
		p.decider = &HumanDecider{}
	default:
		p.decider = &RandomBot{Rand: rnd}
	}
	return p
}

// Team returns the team of the player's seat.
func (p *Player) Team() seat.Team {
	return p.Seat.Team()
}

// Allowed reports whether the player currently holds turn permission.
func (p *Player) Allowed() bool {
	return p.allowed
}

// Legal returns the cached legal cards, nil outside the player's turn.
func (p *Player) Legal() *deck.Deck {
	return p.legal
}

// CanPlay reports whether the card may be played now.
func (p *Player) CanPlay(c *card.Card) bool {
	if !p.allowed || !p.Hand.Contains(c) {
		return false
	}
	return p.legal != nil && p.legal.Contains(c)
}

// Grant gives turn permission with the precomputed legal set.
func (p *Player) Grant(legal *deck.Deck) {
	p.allowed = true
	p.legal = legal
}

// Revoke removes turn permission but keeps the legal set until the turn
// moves on.
func (p *Player) Revoke() {
	p.allowed = false
}

// StartTurn hands the decision to the player's variant.
func (p *Player) StartTurn(t Table) error {
	return p.decider.OnTurnStart(p, t)
}

// StopTurn revokes permission, notifies the variant and clears the legal set.
func (p *Player) StopTurn() {
	p.allowed = false
	p.decider.OnTurnStop(p)
	p.legal = nil
}

// HumanDecider returns the human variant, if this player is one.
func (p *Player) HumanDecider() (*HumanDecider, bool) {
	h, ok := p.decider.(*HumanDecider)
	return h, ok
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Seat)
}
