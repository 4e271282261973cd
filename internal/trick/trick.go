package trick

import (
	"errors"
	"fmt"

	"github.com/arcanaland/belote/internal/card"
	"github.com/arcanaland/belote/internal/deck"
	"github.com/arcanaland/belote/internal/seat"
)

var (
	ErrEmptyTrick  = errors.New("empty trick")
	ErrUnknownSeat = errors.New("no seat recorded for card")
)

// Result is the outcome of a resolved trick.
type Result struct {
	Card   *card.Card // Best card
	Seat   seat.Seat  // Seat that played it
	Points int        // Sum of the card values under trump
}

// Trick represents one card played by each player in turn.
type Trick struct {
	cards    *deck.Deck
	playedBy map[string]seat.Seat

	resolved bool
	winner   seat.Seat
	points   int
}

// New creates an empty trick whose cards are tracked under owner.
func New(owner deck.OwnerID, registry *deck.Registry) *Trick {
	return &Trick{
		cards:    deck.New(owner, registry),
		playedBy: make(map[string]seat.Seat),
	}
}

// Cards returns the deck of played cards in playing order.
func (t *Trick) Cards() *deck.Deck {
	return t.cards
}

// Size returns the number of played cards.
func (t *Trick) Size() int {
	return t.cards.Size()
}

// Empty reports whether no card was played yet.
func (t *Trick) Empty() bool {
	return t.cards.Empty()
}

// Play moves a card from a hand into the trick on behalf of a seat.
func (t *Trick) Play(c *card.Card, from *deck.Deck, s seat.Seat) error {
	if err := from.MoveCard(c, t.cards); err != nil {
		return err
	}
	t.playedBy[c.ID] = s
	return nil
}

// SeatOf returns the seat that played the card.
func (t *Trick) SeatOf(c *card.Card) (seat.Seat, bool) {
	s, ok := t.playedBy[c.ID]
	return s, ok
}

// RequestedSuit returns the suit of the first card, NoSuit when empty.
func (t *Trick) RequestedSuit() card.Suit {
	if first := t.cards.Front(); first != nil {
		return first.Suit
	}
	return card.NoSuit
}

// Best folds the played cards left to right and returns the current best.
func (t *Trick) Best(trump card.Suit) (*card.Card, error) {
	if t.cards.Empty() {
		return nil, ErrEmptyTrick
	}
	best := t.cards.At(0)
	for i := 1; i < t.cards.Size(); i++ {
		best = card.Best(t.cards.At(i), best, trump)
	}
	return best, nil
}

// Points returns the sum of the played cards' values under trump.
func (t *Trick) Points(trump card.Suit) int {
	points := 0
	for c := range t.cards.All() {
		points += c.Value(trump)
	}
	return points
}

// Resolve computes the winner and value of the trick without changing it.
func (t *Trick) Resolve(trump card.Suit) (Result, error) {
	best, err := t.Best(trump)
	if err != nil {
		return Result{}, err
	}
	s, ok := t.SeatOf(best)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownSeat, best.ID)
	}
	return Result{Card: best, Seat: s, Points: t.Points(trump)}, nil
}

// Finalize resolves the trick and caches winner and points.
func (t *Trick) Finalize(trump card.Suit) (Result, error) {
	res, err := t.Resolve(trump)
	if err != nil {
		return res, err
	}
	t.resolved = true
	t.winner = res.Seat
	t.points = res.Points
	return res, nil
}

// Resolved reports whether Finalize ran since the last reset.
func (t *Trick) Resolved() bool {
	return t.resolved
}

// Winner returns the cached winning seat.
func (t *Trick) Winner() seat.Seat {
	return t.winner
}

// Score returns the cached point total.
func (t *Trick) Score() int {
	return t.points
}

// MoveTo transfers cards and cached result into dst and resets t.
func (t *Trick) MoveTo(dst *Trick) {
	for c := range t.cards.All() {
		dst.playedBy[c.ID] = t.playedBy[c.ID]
	}
	t.cards.MoveAllTo(dst.cards)
	dst.resolved, dst.winner, dst.points = t.resolved, t.winner, t.points
	t.reset()
}

// Recycle returns the cards to the stock and resets t.
func (t *Trick) Recycle(stock *deck.Deck) {
	t.cards.MoveAllTo(stock)
	t.reset()
}

func (t *Trick) reset() {
	clear(t.playedBy)
	t.resolved = false
	t.winner = 0
	t.points = 0
}
