package player

import "github.com/arcanaland/belote/internal/deck"

// RandomBot plays a uniformly random legal card as soon as its turn starts.
type RandomBot struct {
	Rand deck.Random
}

func (b *RandomBot) OnTurnStart(p *Player, t Table) error {
	legal := p.Legal()
	if legal == nil || legal.Empty() {
		return nil
	}
	return t.Play(p, legal.At(b.Rand.IntN(legal.Size())))
}

func (b *RandomBot) OnTurnStop(p *Player) {}
