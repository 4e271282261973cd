// Package event defines the notifications exchanged between the game and
// the host, and the queue the host drains once per tick.
package event

import (
	"github.com/arcanaland/belote/internal/card"
	"github.com/arcanaland/belote/internal/score"
	"github.com/arcanaland/belote/internal/seat"
)

// Event is any notification carried by a Queue.
type Event interface {
	Kind() string
}

// RoundBoundary is emitted when a round starts and when it ends.
type RoundBoundary struct {
	Round    int
	Starting bool
}

// TrumpChosen is emitted once the trump of a round is known or changed.
type TrumpChosen struct {
	Trump  card.Suit
	Bidder seat.Seat
}

// TurnChanged is emitted every time turn permission moves.
type TurnChanged struct {
	Current     seat.Seat
	Previous    seat.Seat
	HasPrevious bool
}

// CardPlayed is emitted right after a card lands in the active trick.
type CardPlayed struct {
	Card *card.Card
	Seat seat.Seat
}

// TrickResolved is emitted when a full trick has a winner.
type TrickResolved struct {
	Card   *card.Card
	Winner seat.Seat
	Points int
}

// RoundScored carries the ledger result of a finished round.
type RoundScored struct {
	Round  int
	Result score.RoundResult
}

// CardSelectionChanged comes from an interactive view when a card is
// picked up or released.
type CardSelectionChanged struct {
	Card                    *card.Card
	IsSelected              bool
	ReleasedOutsideHandArea bool
}

func (RoundBoundary) Kind() string        { return "round_boundary" }
func (TrumpChosen) Kind() string          { return "trump_chosen" }
func (TurnChanged) Kind() string          { return "turn_changed" }
func (CardPlayed) Kind() string           { return "card_played" }
func (TrickResolved) Kind() string        { return "trick_resolved" }
func (RoundScored) Kind() string          { return "round_scored" }
func (CardSelectionChanged) Kind() string { return "card_selection_changed" }

// Queue is a FIFO of events.
type Queue struct {
	events []Event
}

// Push appends an event.
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Drain returns the queued events in order and empties the queue.
func (q *Queue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	return len(q.events)
}
