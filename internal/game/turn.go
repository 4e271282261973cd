package game

import (
	"fmt"
	"time"

	"github.com/arcanaland/belote/internal/card"
	"github.com/arcanaland/belote/internal/deck"
	"github.com/arcanaland/belote/internal/event"
	"github.com/arcanaland/belote/internal/player"
	"github.com/arcanaland/belote/internal/rules"
	"github.com/arcanaland/belote/internal/seat"
	"github.com/arcanaland/belote/internal/trick"
)

// openTurn moves turn permission to s and lets its player decide.
func (g *Game) openTurn(s seat.Seat) error {
	prev, hadPrev := g.turn, g.hasTurn
	if hadPrev {
		g.players[prev].StopTurn()
	}
	g.turn, g.hasTurn = s, true
	g.state = TurnActive

	p := g.players[s]
	if err := g.grant(p); err != nil {
		return err
	}
	g.events.Push(event.TurnChanged{Current: s, Previous: prev, HasPrevious: hadPrev})
	return p.StartTurn(g)
}

// grant computes and caches the legal set of p and gives it the turn.
func (g *Game) grant(p *player.Player) error {
	legal, err := rules.Playable(p.Hand, g.current, g.trump, p.Team())
	if err != nil {
		g.log.Error("legal moves unavailable", "error", err)
		return err
	}
	if legal.Empty() {
		err := fmt.Errorf("%w: %s holds %d cards", ErrNoLegalMoves, p, p.Hand.Size())
		g.log.Error("turn cannot be played", "error", err)
		return err
	}
	p.Grant(legal)
	return nil
}

// Play moves a card from p's hand into the active trick. It fails with
// ErrIllegalPlay, leaving everything untouched, unless p holds the turn and
// the card is in its legal set.
func (g *Game) Play(p *player.Player, c *card.Card) error {
	if g.pending {
		return ErrPlayPending
	}
	if g.state != TurnActive || !g.hasTurn || g.players[g.turn] != p {
		return fmt.Errorf("%w: not %s's turn", ErrIllegalPlay, p.Name)
	}
	if !p.CanPlay(c) {
		return fmt.Errorf("%w: %s cannot play %s", ErrIllegalPlay, p.Name, c)
	}
	if err := g.current.Play(c, p.Hand, p.Seat); err != nil {
		return err
	}
	p.Revoke()
	g.events.Push(event.CardPlayed{Card: c, Seat: p.Seat})
	g.log.Debug("card played", "seat", p.Seat.String(), "card", c.ID)

	g.pending = true
	g.remaining = g.opts.PostPlayDelay
	g.state = TurnResolving
	return nil
}

// Select routes a selection change from the view to the human player
// holding the card.
func (g *Game) Select(evt event.CardSelectionChanged) error {
	owner, ok := g.registry.OwnerOf(evt.Card)
	if !ok {
		return fmt.Errorf("%w: %s", deck.ErrCardNotFound, evt.Card.ID)
	}
	s, ok := g.handOwners[owner]
	if !ok {
		return fmt.Errorf("%w: %s is not in a hand", ErrIllegalPlay, evt.Card)
	}
	p := g.players[s]
	h, ok := p.HumanDecider()
	if !ok {
		return fmt.Errorf("%w: %s is not a human seat", ErrIllegalPlay, s)
	}
	return h.OnSelection(p, evt, g)
}

// Tick advances the post-play delay by dt and, once it runs out, resolves
// the turn. Errors returned here are invariant violations.
func (g *Game) Tick(dt time.Duration) error {
	if !g.pending {
		return nil
	}
	g.remaining -= dt
	if g.remaining > 0 {
		return nil
	}
	g.pending = false
	return g.afterPlay()
}

func (g *Game) afterPlay() error {
	if g.current.Size() < seat.Count {
		return g.openTurn(g.turn.Next())
	}

	res, err := g.current.Finalize(g.trump)
	if err != nil {
		return err
	}
	team := res.Seat.Team()
	g.ledger.RecordTrick(team, res.Points)

	owner := deck.OwnerID(fmt.Sprintf("fold.%s.%d", team, len(g.archive[team])))
	archived := trick.New(owner, g.registry)
	g.current.MoveTo(archived)
	g.archive[team] = append(g.archive[team], archived)
	g.lastTrick = archived
	g.tricksDone++

	g.events.Push(event.TrickResolved{Card: res.Card, Winner: res.Seat, Points: res.Points})
	g.log.Debug("trick resolved",
		"winner", res.Seat.String(),
		"card", res.Card.ID,
		"points", res.Points)

	if g.players[res.Seat].Hand.Empty() {
		g.endRound()
		return g.startRound()
	}
	return g.openTurn(res.Seat)
}
