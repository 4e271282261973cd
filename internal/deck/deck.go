package deck

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/arcanaland/belote/internal/card"
)

var (
	ErrInsufficientCards = errors.New("insufficient cards")
	ErrCardNotFound      = errors.New("card not found")
	ErrNegativeCount     = errors.New("negative card count")
)

// Random is the source of uniform random integers used for shuffling and
// cutting. *rand.Rand from math/rand/v2 satisfies it.
type Random interface {
	IntN(n int) int
}

// OwnerID names the collection currently holding a card, e.g. "stock",
// "hand.south" or "trick".
type OwnerID string

// Registry is the ownership index shared by every deck of a match. It maps
// a card ID to the owner of the collection holding it.
type Registry struct {
	owners map[string]OwnerID
}

// NewRegistry creates an empty ownership index.
func NewRegistry() *Registry {
	return &Registry{owners: make(map[string]OwnerID)}
}

// OwnerOf returns the owner of the collection that holds the card.
func (r *Registry) OwnerOf(c *card.Card) (OwnerID, bool) {
	owner, ok := r.owners[c.ID]
	return owner, ok
}

// Count returns the number of tracked cards.
func (r *Registry) Count() int {
	return len(r.owners)
}

// Deck represents an ordered collection of cards. Insertion order is
// meaningful: the first card of a trick is the first card played.
type Deck struct {
	owner    OwnerID
	registry *Registry
	cards    []*card.Card
}

// New creates an empty deck. A nil registry gives an untracked deck, used
// for views such as the set of legal cards.
func New(owner OwnerID, registry *Registry) *Deck {
	return &Deck{owner: owner, registry: registry}
}

// Owner returns the owner ID of the deck.
func (d *Deck) Owner() OwnerID {
	return d.owner
}

// Fill adds one card of every suit and rank, in enumeration order, with
// points taken from the scoring table.
func (d *Deck) Fill(scoring card.Scoring) {
	for _, s := range card.Suits() {
		for _, r := range card.Ranks() {
			d.Add(card.New(s, r, scoring))
		}
	}
}

// Add appends a card. Cards must only be added once per match; moving a
// card between decks goes through MoveCard, DealTo or MoveAllTo.
func (d *Deck) Add(c *card.Card) {
	d.cards = append(d.cards, c)
	d.track(c)
}

func (d *Deck) track(c *card.Card) {
	if d.registry != nil {
		d.registry.owners[c.ID] = d.owner
	}
}

// Size returns the number of cards held.
func (d *Deck) Size() int {
	return len(d.cards)
}

// Empty reports whether the deck holds no card.
func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

// At returns the card at position i.
func (d *Deck) At(i int) *card.Card {
	return d.cards[i]
}

// Front returns the first card, or nil when the deck is empty.
func (d *Deck) Front() *card.Card {
	if len(d.cards) == 0 {
		return nil
	}
	return d.cards[0]
}

// Cards returns a copy of the cards in order.
func (d *Deck) Cards() []*card.Card {
	return slices.Clone(d.cards)
}

// All iterates over the cards in insertion order. The sequence can be
// ranged over any number of times.
func (d *Deck) All() iter.Seq[*card.Card] {
	return func(yield func(*card.Card) bool) {
		for _, c := range d.cards {
			if !yield(c) {
				return
			}
		}
	}
}

// IndexOf returns the position of the card, or -1.
func (d *Deck) IndexOf(c *card.Card) int {
	return slices.Index(d.cards, c)
}

// Contains reports whether the card instance is held by the deck.
func (d *Deck) Contains(c *card.Card) bool {
	return d.IndexOf(c) >= 0
}

// Get gets a card by its canonical ID
func (d *Deck) Get(id string) (*card.Card, error) {
	for _, c := range d.cards {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrCardNotFound, id)
}

// Shuffle applies a uniform random permutation (Fisher-Yates).
func (d *Deck) Shuffle(rnd Random) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rnd.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Cut moves the first n cards under the rest of the deck.
func (d *Deck) Cut(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: cut at %d", ErrNegativeCount, n)
	}
	if n > len(d.cards) {
		return fmt.Errorf("%w: cannot cut %d of %d cards", ErrInsufficientCards, n, len(d.cards))
	}
	d.cards = slices.Concat(d.cards[n:], d.cards[:n])
	return nil
}

// DealTo moves the next count cards, keeping their order, to the end of dst.
func (d *Deck) DealTo(count int, dst *Deck) error {
	if count < 0 {
		return fmt.Errorf("%w: deal %d", ErrNegativeCount, count)
	}
	if count > len(d.cards) {
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientCards, count, len(d.cards))
	}
	moved := slices.Clone(d.cards[:count])
	d.cards = slices.Delete(d.cards, 0, count)
	for _, c := range moved {
		dst.cards = append(dst.cards, c)
		dst.track(c)
	}
	return nil
}

// MoveCard removes the card from this deck and appends it to dst.
func (d *Deck) MoveCard(c *card.Card, dst *Deck) error {
	i := d.IndexOf(c)
	if i < 0 {
		return fmt.Errorf("%w: %s not in %s", ErrCardNotFound, c.ID, d.owner)
	}
	d.cards = slices.Delete(d.cards, i, i+1)
	dst.cards = append(dst.cards, c)
	dst.track(c)
	return nil
}

// MoveAllTo moves every card, in order, to the end of dst.
func (d *Deck) MoveAllTo(dst *Deck) {
	for _, c := range d.cards {
		dst.cards = append(dst.cards, c)
		dst.track(c)
	}
	d.cards = nil
}

// Clear drops every card from an untracked view. Tracked decks must move
// their cards instead.
func (d *Deck) Clear() {
	d.cards = nil
}

// SortBy sorts the deck with a stable sort.
func (d *Deck) SortBy(cmp func(a, b *card.Card) int) {
	slices.SortStableFunc(d.cards, cmp)
}

// BySuitAndValue orders cards for hand display: trump suit first when one
// is known, then suit enumeration order; inside a suit by descending value
// under trump, then by descending rank.
func BySuitAndValue(trump card.Suit) func(a, b *card.Card) int {
	return func(a, b *card.Card) int {
		if a.Suit != b.Suit {
			if trump != card.NoSuit {
				if a.Suit == trump {
					return -1
				}
				if b.Suit == trump {
					return 1
				}
			}
			return int(a.Suit) - int(b.Suit)
		}
		va, vb := a.Value(trump), b.Value(trump)
		if va != vb {
			return vb - va
		}
		return int(b.Rank) - int(a.Rank)
	}
}

func (d *Deck) String() string {
	parts := make([]string, 0, len(d.cards))
	for _, c := range d.cards {
		parts = append(parts, c.String())
	}
	return fmt.Sprintf("%s[%s]", d.owner, strings.Join(parts, " "))
}
