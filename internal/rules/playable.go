// Package rules computes which cards of a hand may be played on a turn.
package rules

import (
	"fmt"

	"github.com/arcanaland/belote/internal/card"
	"github.com/arcanaland/belote/internal/deck"
	"github.com/arcanaland/belote/internal/seat"
	"github.com/arcanaland/belote/internal/trick"
)

// Playable returns the cards of hand that team's player may play into t.
//
// The branches are evaluated in order and the first one that yields cards
// decides; they are not independent filters:
//   - leading a trick: any card;
//   - holding the requested suit: follow it, and when the requested suit is
//     trump, overtrump the current best if possible;
//   - partner currently winning: any card;
//   - opponent winning with a trump: overtrump if possible, else any trump;
//   - opponent winning without trump: any trump;
//   - otherwise any card.
//
// Discarding under trump while an opponent's trump wins is not offered
// when a trump is held.
//
// The returned deck is an untracked view holding the hand's own cards. A
// best card with no recorded seat fails with trick.ErrUnknownSeat.
func Playable(hand *deck.Deck, t *trick.Trick, trump card.Suit, team seat.Team) (*deck.Deck, error) {
	legal := deck.New("", nil)
	if hand.Empty() {
		return legal, nil
	}

	best, err := t.Best(trump)
	if err != nil {
		for c := range hand.All() {
			legal.Add(c)
		}
		return legal, nil
	}
	bestSeat, ok := t.SeatOf(best)
	if !ok {
		return nil, fmt.Errorf("%w: %s", trick.ErrUnknownSeat, best.ID)
	}
	requested := t.RequestedSuit()

	var follow, trumps, over []*card.Card
	for c := range hand.All() {
		if c.Suit == requested {
			follow = append(follow, c)
		}
		if c.Suit == trump {
			trumps = append(trumps, c)
			if best.Suit == trump && card.Beats(c, best, trump) {
				over = append(over, c)
			}
		}
	}

	var pick []*card.Card
	switch {
	case len(follow) > 0 && requested == trump:
		pick = follow
		if len(over) > 0 {
			pick = over
		}
	case len(follow) > 0:
		pick = follow
	case bestSeat.Team() == team:
		pick = hand.Cards()
	case best.Suit == trump:
		pick = trumps
		if len(over) > 0 {
			pick = over
		}
	default:
		pick = trumps
	}
	if len(pick) == 0 {
		pick = hand.Cards()
	}

	for _, c := range pick {
		legal.Add(c)
	}
	return legal, nil
}
