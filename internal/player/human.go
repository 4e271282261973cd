package player

import (
	"github.com/arcanaland/belote/internal/card"
	"github.com/arcanaland/belote/internal/event"
)

// HandArea reports whether a card still rests inside the hand's area on
// screen. It is supplied by the view layer.
type HandArea func(c *card.Card) bool

// HumanDecider waits for selection events coming from the view. Releasing a
// card outside the hand area is a play attempt.
type HumanDecider struct {
	Area     HandArea
	selected *card.Card
}

func (h *HumanDecider) OnTurnStart(p *Player, t Table) error {
	return nil
}

func (h *HumanDecider) OnTurnStop(p *Player) {
	h.selected = nil
}

// Selected returns the card currently picked up, if any.
func (h *HumanDecider) Selected() *card.Card {
	return h.selected
}

// OnSelection handles a selection change for one of p's cards.
func (h *HumanDecider) OnSelection(p *Player, evt event.CardSelectionChanged, t Table) error {
	if evt.IsSelected {
		h.selected = evt.Card
		return nil
	}
	h.selected = nil
	if !evt.ReleasedOutsideHandArea {
		return nil
	}
	return t.Play(p, evt.Card)
}

// Release builds the release event for a card, asking the hand area where
// the card was dropped. Without a hand area every release is a play.
func (h *HumanDecider) Release(c *card.Card) event.CardSelectionChanged {
	outside := h.Area == nil || !h.Area(c)
	return event.CardSelectionChanged{Card: c, IsSelected: false, ReleasedOutsideHandArea: outside}
}
