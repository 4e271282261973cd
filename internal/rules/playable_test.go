package rules

import (
	"errors"
	"math/rand/v2"
	"slices"
	"sort"
	"testing"

	"github.com/arcanaland/belote/internal/card"
	"github.com/arcanaland/belote/internal/deck"
	"github.com/arcanaland/belote/internal/seat"
	"github.com/arcanaland/belote/internal/trick"
)

type situation struct {
	hand  *deck.Deck
	trick *trick.Trick
}

// setup deals the hand cards to the acting seat and plays the trick cards
// in order, starting from the seat that is three plays before the actor.
func setup(t *testing.T, actor seat.Seat, hand []string, played []string) situation {
	t.Helper()
	reg := deck.NewRegistry()
	stock := deck.New("stock", reg)
	stock.Fill(card.DefaultScoring())

	h := deck.New("hand", reg)
	for _, id := range hand {
		c, err := stock.Get(id)
		if err != nil {
			t.Fatalf("get %s: %v", id, err)
		}
		if err := stock.MoveCard(c, h); err != nil {
			t.Fatalf("move %s: %v", id, err)
		}
	}

	tr := trick.New("trick", reg)
	s := actor
	for range played {
		s = (s + seat.Count - 1) % seat.Count
	}
	for _, id := range played {
		c, err := stock.Get(id)
		if err != nil {
			t.Fatalf("get %s: %v", id, err)
		}
		if err := tr.Play(c, stock, s); err != nil {
			t.Fatalf("play %s: %v", id, err)
		}
		s = s.Next()
	}
	return situation{hand: h, trick: tr}
}

func playable(t *testing.T, hand *deck.Deck, tr *trick.Trick, trump card.Suit, team seat.Team) *deck.Deck {
	t.Helper()
	legal, err := Playable(hand, tr, trump, team)
	if err != nil {
		t.Fatalf("playable: %v", err)
	}
	return legal
}

func legalIDs(d *deck.Deck) []string {
	out := []string{}
	for c := range d.All() {
		out = append(out, c.ID)
	}
	sort.Strings(out)
	return out
}

func TestPlayable(t *testing.T) {
	cases := []struct {
		name   string
		actor  seat.Seat
		hand   []string
		played []string
		trump  card.Suit
		want   []string
	}{
		{
			name:   "leading a trick allows every card",
			actor:  seat.South,
			hand:   []string{"hearts.ace", "clubs.seven", "spades.jack"},
			played: nil,
			trump:  card.Clubs,
			want:   []string{"clubs.seven", "hearts.ace", "spades.jack"},
		},
		{
			name:   "must follow the requested suit, trump not forced",
			actor:  seat.West,
			hand:   []string{"hearts.seven", "hearts.king", "clubs.jack", "spades.ace"},
			played: []string{"hearts.ace"},
			trump:  card.Clubs,
			want:   []string{"hearts.king", "hearts.seven"},
		},
		{
			name:   "following in trump must overtrump when able",
			actor:  seat.West,
			hand:   []string{"clubs.seven", "clubs.jack", "clubs.ace", "hearts.ace"},
			played: []string{"clubs.nine"},
			trump:  card.Clubs,
			want:   []string{"clubs.jack"},
		},
		{
			name:   "following in trump without a higher trump plays any trump",
			actor:  seat.West,
			hand:   []string{"clubs.seven", "clubs.ace", "hearts.ace"},
			played: []string{"clubs.jack"},
			trump:  card.Clubs,
			want:   []string{"clubs.ace", "clubs.seven"},
		},
		{
			name:   "void in the requested suit against a plain card must trump",
			actor:  seat.North,
			hand:   []string{"clubs.eight", "hearts.ace", "spades.seven"},
			played: []string{"diamonds.ten", "diamonds.ace"},
			trump:  card.Clubs,
			want:   []string{"clubs.eight"},
		},
		{
			name:   "opponent trumped and no higher trump held, any trump",
			actor:  seat.North,
			hand:   []string{"clubs.eight", "hearts.ace", "spades.seven"},
			played: []string{"diamonds.ten", "clubs.queen"},
			trump:  card.Clubs,
			want:   []string{"clubs.eight"},
		},
		{
			name:   "opponent trumped, must overtrump when able",
			actor:  seat.North,
			hand:   []string{"clubs.eight", "clubs.nine", "clubs.jack", "hearts.ace"},
			played: []string{"diamonds.ten", "clubs.ace"},
			trump:  card.Clubs,
			want:   []string{"clubs.jack", "clubs.nine"},
		},
		{
			name:   "partner winning gives free play",
			actor:  seat.North,
			hand:   []string{"clubs.eight", "hearts.ace", "spades.seven"},
			played: []string{"diamonds.ace", "diamonds.seven"},
			trump:  card.Clubs,
			want:   []string{"clubs.eight", "hearts.ace", "spades.seven"},
		},
		{
			name:   "partner winning with trump still free play",
			actor:  seat.East,
			hand:   []string{"clubs.eight", "hearts.ace"},
			played: []string{"diamonds.ace", "clubs.jack", "diamonds.seven"},
			trump:  card.Clubs,
			want:   []string{"clubs.eight", "hearts.ace"},
		},
		{
			name:   "no requested suit and no trump is free play",
			actor:  seat.West,
			hand:   []string{"hearts.ace", "spades.seven"},
			played: []string{"diamonds.ace"},
			trump:  card.Clubs,
			want:   []string{"hearts.ace", "spades.seven"},
		},
		{
			name:   "holding the suit beats the partner exception",
			actor:  seat.North,
			hand:   []string{"diamonds.seven", "hearts.ace"},
			played: []string{"diamonds.ace", "diamonds.eight"},
			trump:  card.Clubs,
			want:   []string{"diamonds.seven"},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := setup(t, c.actor, c.hand, c.played)
			got := legalIDs(playable(t, s.hand, s.trick, c.trump, c.actor.Team()))
			want := slices.Clone(c.want)
			sort.Strings(want)
			if !slices.Equal(got, want) {
				t.Fatalf("got %v, want %v", got, want)
			}
		})
	}
}

func TestPlayableReturnsHandCards(t *testing.T) {
	s := setup(t, seat.West, []string{"hearts.seven", "clubs.jack"}, []string{"hearts.ace"})
	legal := playable(t, s.hand, s.trick, card.Clubs, seat.Team2)
	for c := range legal.All() {
		if !s.hand.Contains(c) {
			t.Fatalf("%s is not the hand's own instance", c.ID)
		}
	}
	if legal.Owner() != "" {
		t.Fatalf("legal view should be unowned")
	}
}

// Random hands and tricks: every legal card is in hand, and holding the
// requested suit off trump restricts the result to that suit.
func TestPlayableSoundness(t *testing.T) {
	rnd := rand.New(rand.NewPCG(42, 1))
	for i := 0; i < 500; i++ {
		reg := deck.NewRegistry()
		stock := deck.New("stock", reg)
		stock.Fill(card.DefaultScoring())
		stock.Shuffle(rnd)

		hand := deck.New("hand", reg)
		if err := stock.DealTo(1+rnd.IntN(8), hand); err != nil {
			t.Fatalf("deal: %v", err)
		}
		tr := trick.New("trick", reg)
		n := rnd.IntN(4)
		actor := seat.Seat(rnd.IntN(seat.Count))
		s := (actor + seat.Count - seat.Seat(n)) % seat.Count
		for j := 0; j < n; j++ {
			if err := tr.Play(stock.Front(), stock, s); err != nil {
				t.Fatalf("play: %v", err)
			}
			s = s.Next()
		}
		trump := card.Suits()[rnd.IntN(4)]

		legal := playable(t, hand, tr, trump, actor.Team())
		if legal.Empty() {
			t.Fatalf("empty legal set for non-empty hand %s", hand)
		}
		requested := tr.RequestedSuit()
		holdsSuit := false
		for c := range hand.All() {
			if c.Suit == requested {
				holdsSuit = true
			}
		}
		for c := range legal.All() {
			if !hand.Contains(c) {
				t.Fatalf("legal card %s not in hand", c.ID)
			}
			if holdsSuit && requested != trump && c.Suit != requested {
				t.Fatalf("%s returned while holding requested suit %s (hand %s, trick %s)",
					c.ID, requested, hand, tr.Cards())
			}
		}
	}
}

// Opponent winning with trump and a higher trump in hand: only overtrumps.
func TestMustOvertrump(t *testing.T) {
	rnd := rand.New(rand.NewPCG(9, 9))
	for i := 0; i < 300; i++ {
		reg := deck.NewRegistry()
		stock := deck.New("stock", reg)
		stock.Fill(card.DefaultScoring())
		stock.Shuffle(rnd)
		trump := card.Suits()[rnd.IntN(4)]

		tr := trick.New("trick", reg)
		if err := tr.Play(stock.Front(), stock, seat.East); err != nil {
			t.Fatalf("play: %v", err)
		}
		hand := deck.New("hand", reg)
		if err := stock.DealTo(8, hand); err != nil {
			t.Fatalf("deal: %v", err)
		}
		best, _ := tr.Best(trump)
		if best.Suit != trump {
			continue
		}
		higher := false
		for c := range hand.All() {
			if c.Suit == trump && card.Beats(c, best, trump) {
				higher = true
			}
		}
		if !higher {
			continue
		}
		legal := playable(t, hand, tr, trump, seat.South.Team())
		for c := range legal.All() {
			if c.Suit != trump || !card.Beats(c, best, trump) {
				t.Fatalf("%s does not overtrump %s", c.ID, best.ID)
			}
		}
	}
}

func TestPlayableRejectsCardWithoutSeat(t *testing.T) {
	s := setup(t, seat.West, []string{"hearts.seven", "clubs.jack"}, nil)
	stock := deck.New("stock", nil)
	stock.Fill(card.DefaultScoring())
	ace, _ := stock.Get("spades.ace")
	if err := stock.MoveCard(ace, s.trick.Cards()); err != nil {
		t.Fatalf("move: %v", err)
	}

	if _, err := Playable(s.hand, s.trick, card.Clubs, seat.Team2); !errors.Is(err, trick.ErrUnknownSeat) {
		t.Fatalf("expected ErrUnknownSeat, got %v", err)
	}
	if _, err := s.trick.Resolve(card.Clubs); !errors.Is(err, trick.ErrUnknownSeat) {
		t.Fatalf("resolve: expected ErrUnknownSeat, got %v", err)
	}
}
