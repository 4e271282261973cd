package game

import (
	"github.com/arcanaland/belote/internal/card"
	"github.com/arcanaland/belote/internal/deck"
	"github.com/arcanaland/belote/internal/seat"
)

// Bidder decides the trump of a round once the cards are dealt, and which
// seat took it. The bidder's team is the reference team when scoring.
type Bidder interface {
	Bid(g *Game) (card.Suit, seat.Seat)
}

// RandomBidder stands in for a bidding phase: a uniformly random suit,
// taken by the first player of the round.
type RandomBidder struct {
	Rand deck.Random
}

func (b RandomBidder) Bid(g *Game) (card.Suit, seat.Seat) {
	suits := card.Suits()
	return suits[b.Rand.IntN(len(suits))], g.FirstPlayer()
}

// FixedBidder always names the same trump, taken by the first player.
type FixedBidder struct {
	Trump card.Suit
}

func (b FixedBidder) Bid(g *Game) (card.Suit, seat.Seat) {
	return b.Trump, g.FirstPlayer()
}
