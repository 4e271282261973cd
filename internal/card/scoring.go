package card

import "fmt"

// Points holds the value of a rank outside and inside the trump suit.
type Points struct {
	Normal int
	Trump  int
}

// Scoring maps every rank to its points.
type Scoring map[Rank]Points

// DefaultScoring returns the classic belote table.
func DefaultScoring() Scoring {
	return Scoring{
		Seven: {Normal: 0, Trump: 0},
		Eight: {Normal: 0, Trump: 0},
		Nine:  {Normal: 0, Trump: 14},
		Ten:   {Normal: 10, Trump: 10},
		Jack:  {Normal: 2, Trump: 20},
		Queen: {Normal: 3, Trump: 3},
		King:  {Normal: 4, Trump: 4},
		Ace:   {Normal: 11, Trump: 11},
	}
}

// Validate checks that every rank has an entry.
func (s Scoring) Validate() error {
	for _, r := range Ranks() {
		if _, ok := s[r]; !ok {
			return fmt.Errorf("scoring has no entry for rank %s", r)
		}
	}
	return nil
}

// Total returns the points held by a full 32-card pack under trump.
func (s Scoring) Total(trump Suit) int {
	total := 0
	for _, suit := range Suits() {
		for _, r := range Ranks() {
			if trump != NoSuit && suit == trump {
				total += s[r].Trump
			} else {
				total += s[r].Normal
			}
		}
	}
	return total
}
