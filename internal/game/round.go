package game

import (
	"fmt"

	"github.com/arcanaland/belote/internal/card"
	"github.com/arcanaland/belote/internal/deck"
	"github.com/arcanaland/belote/internal/event"
	"github.com/arcanaland/belote/internal/seat"
)

// minCut is the fewest cards taken from either end of the stock on a cut.
const minCut = 3

// Start shuffles the stock and opens the first round.
func (g *Game) Start() error {
	if g.state != Idle {
		return fmt.Errorf("%w: start in state %s", ErrState, g.state)
	}
	g.stock.Shuffle(g.rnd)
	return g.startRound()
}

// dealSize returns how many cards one seat receives per round.
func (g *Game) dealSize() int {
	n := 0
	for _, block := range g.opts.Deal {
		n += block
	}
	return n
}

func (g *Game) startRound() error {
	g.state = Dealing
	need := g.dealSize() * seat.Count
	if need > g.stock.Size() {
		err := fmt.Errorf("%w: deal plan %v needs %d cards, stock holds %d: %w",
			ErrConfiguration, g.opts.Deal, need, g.stock.Size(), deck.ErrInsufficientCards)
		g.log.Error("cannot deal", "error", err)
		return err
	}

	g.round++
	if g.round == 0 {
		g.dealer = seat.South
	} else {
		g.dealer = g.dealer.Next()
		if g.opts.Cut && g.stock.Size() >= 2*minCut {
			if err := g.stock.Cut(minCut + g.rnd.IntN(g.stock.Size()-2*minCut+1)); err != nil {
				return err
			}
		}
	}
	g.first = g.dealer.Next()
	g.tricksDone = 0

	for _, block := range g.opts.Deal {
		s := g.first
		for range seat.Count {
			if err := g.stock.DealTo(block, g.players[s].Hand); err != nil {
				return fmt.Errorf("%w: %w", ErrConfiguration, err)
			}
			s = s.Next()
		}
	}
	g.sortHands(card.NoSuit)

	trump, bidder := g.bidder.Bid(g)
	if trump == card.NoSuit {
		err := fmt.Errorf("%w: bidder named no trump suit", ErrConfiguration)
		g.log.Error("bid rejected", "error", err, "bidder", bidder.String())
		return err
	}
	g.trump = trump
	g.bidderSeat = bidder
	g.sortHands(trump)

	g.log.Info("round started",
		"round", g.round,
		"dealer", g.dealer.String(),
		"trump", trump.String(),
		"bidder", bidder.String())
	g.events.Push(event.RoundBoundary{Round: g.round, Starting: true})
	g.events.Push(event.TrumpChosen{Trump: trump, Bidder: bidder})

	return g.openTurn(g.first)
}

func (g *Game) sortHands(trump card.Suit) {
	for _, p := range g.players {
		p.Hand.SortBy(deck.BySuitAndValue(trump))
	}
}

// SetTrump replaces the trump of the current round. It is the hook for a
// real bidding phase and is refused once a trick has been resolved.
func (g *Game) SetTrump(trump card.Suit, bidder seat.Seat) error {
	switch g.state {
	case Idle, MatchEnded, RoundScoring:
		return fmt.Errorf("%w: set trump in state %s", ErrState, g.state)
	}
	if g.tricksDone > 0 {
		return fmt.Errorf("%w: trump is fixed once a trick is resolved", ErrState)
	}
	if trump == card.NoSuit {
		return fmt.Errorf("%w: trump must be a suit", ErrConfiguration)
	}
	g.trump = trump
	g.bidderSeat = bidder
	g.sortHands(trump)
	g.events.Push(event.TrumpChosen{Trump: trump, Bidder: bidder})
	g.log.Debug("trump changed", "trump", trump.String(), "bidder", bidder.String())

	if p, ok := g.Current(); ok && p.Allowed() {
		return g.grant(p)
	}
	return nil
}

// endRound scores the round and returns every archived card to the stock.
func (g *Game) endRound() {
	g.state = RoundScoring
	res := g.ledger.FinalizeRound(g.bidderSeat.Team())
	for _, team := range seat.Teams() {
		for _, t := range g.archive[team] {
			t.Recycle(g.stock)
		}
		g.archive[team] = nil
	}
	g.lastTrick = nil

	g.log.Info("round scored",
		"round", g.round,
		"winner", res.Winner.String(),
		"team1", res.Round[seat.Team1],
		"team2", res.Round[seat.Team2],
		"bonus_team", res.BonusTeam.String(),
		"total1", g.ledger.Total(seat.Team1),
		"total2", g.ledger.Total(seat.Team2))
	g.events.Push(event.RoundScored{Round: g.round, Result: res})
	g.events.Push(event.RoundBoundary{Round: g.round, Starting: false})
}
