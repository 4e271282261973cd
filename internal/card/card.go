package card

import (
	"fmt"
	"strings"
)

// Suit represents a card suit. The zero value means no suit, which is also
// used as "no trump known yet".
type Suit int

const (
	NoSuit Suit = iota
	Clubs
	Diamonds
	Hearts
	Spades
)

// Suits returns the four suits in enumeration order.
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

// Rank represents a card rank, declared in ascending order.
type Rank int

const (
	Seven Rank = iota
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks returns the eight ranks of the 32-card pack in ascending order.
func Ranks() []Rank {
	return []Rank{Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
}

var suitNames = map[Suit]string{
	NoSuit:   "none",
	Clubs:    "clubs",
	Diamonds: "diamonds",
	Hearts:   "hearts",
	Spades:   "spades",
}

var suitSymbols = map[Suit]string{
	NoSuit:   "-",
	Clubs:    "♣",
	Diamonds: "♦",
	Hearts:   "♥",
	Spades:   "♠",
}

var rankNames = map[Rank]string{
	Seven: "seven",
	Eight: "eight",
	Nine:  "nine",
	Ten:   "ten",
	Jack:  "jack",
	Queen: "queen",
	King:  "king",
	Ace:   "ace",
}

var rankShort = map[Rank]string{
	Seven: "7",
	Eight: "8",
	Nine:  "9",
	Ten:   "10",
	Jack:  "J",
	Queen: "Q",
	King:  "K",
	Ace:   "A",
}

func (s Suit) String() string {
	if name, ok := suitNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Suit(%d)", int(s))
}

// Symbol returns the unicode pip of the suit.
func (s Suit) Symbol() string {
	if sym, ok := suitSymbols[s]; ok {
		return sym
	}
	return "?"
}

// Red reports whether the suit is printed in red.
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return fmt.Sprintf("Rank(%d)", int(r))
}

// Short returns the index label printed in the card corner.
func (r Rank) Short() string {
	if short, ok := rankShort[r]; ok {
		return short
	}
	return "?"
}

// ParseSuit parses a suit name such as "hearts".
func ParseSuit(name string) (Suit, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range suitNames {
		if s != NoSuit && n == name {
			return s, nil
		}
	}
	return NoSuit, fmt.Errorf("unknown suit: %s", name)
}

// ParseRank parses a rank name such as "jack".
func ParseRank(name string) (Rank, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for r, n := range rankNames {
		if n == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown rank: %s", name)
}

// Card represents a belote card
type Card struct {
	ID          string // Canonical ID (e.g., hearts.jack)
	Suit        Suit
	Rank        Rank
	Points      int // Points when the suit is not trump
	TrumpPoints int // Points when the suit is trump
}

// New creates a card and assigns its points from the scoring table.
func New(suit Suit, rank Rank, scoring Scoring) *Card {
	p := scoring[rank]
	return &Card{
		ID:          MakeID(suit, rank),
		Suit:        suit,
		Rank:        rank,
		Points:      p.Normal,
		TrumpPoints: p.Trump,
	}
}

// MakeID builds the canonical ID of a card.
func MakeID(suit Suit, rank Rank) string {
	return suit.String() + "." + rank.String()
}

// ParseID splits a canonical card ID into its suit and rank.
func ParseID(id string) (Suit, Rank, error) {
	parts := strings.Split(id, ".")
	if len(parts) != 2 {
		return NoSuit, 0, fmt.Errorf("invalid card ID format: %s", id)
	}
	suit, err := ParseSuit(parts[0])
	if err != nil {
		return NoSuit, 0, err
	}
	rank, err := ParseRank(parts[1])
	if err != nil {
		return NoSuit, 0, err
	}
	return suit, rank, nil
}

// Value returns the points of the card under the given trump. NoSuit means
// no trump context.
func (c *Card) Value(trump Suit) int {
	if trump != NoSuit && c.Suit == trump {
		return c.TrumpPoints
	}
	return c.Points
}

// Name returns the long display name, e.g. "Jack of Hearts".
func (c *Card) Name() string {
	return title(c.Rank.String()) + " of " + title(c.Suit.String())
}

func (c *Card) String() string {
	return c.Rank.Short() + c.Suit.Symbol()
}

// Beats reports whether a beats b under trump.
//
// Only meaningful when both cards share a suit or one of them is trump.
// Within a suit the higher value wins and equal values fall back to rank,
// since points are not monotonic with rank. Across suits the trump card
// wins; when neither is trump a never beats b.
func Beats(a, b *Card, trump Suit) bool {
	if a.Suit == b.Suit {
		va, vb := a.Value(trump), b.Value(trump)
		if va != vb {
			return va > vb
		}
		return a.Rank > b.Rank
	}
	return trump != NoSuit && a.Suit == trump
}

// Best returns the stronger of a candidate and the current best card.
func Best(candidate, best *Card, trump Suit) *Card {
	if Beats(candidate, best, trump) {
		return candidate
	}
	return best
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
