package score

import (
	"testing"

	"github.com/arcanaland/belote/internal/seat"
)

type trickPoints struct {
	team   seat.Team
	points int
}

func TestFinalizeRound(t *testing.T) {
	cases := []struct {
		name      string
		tricks    []trickPoints
		reference seat.Team
		winner    seat.Team
		totals    [2]int
	}{
		{
			name: "higher round total wins and last trick gets the bonus",
			tricks: []trickPoints{
				{seat.Team1, 40}, {seat.Team2, 30}, {seat.Team1, 50}, {seat.Team2, 32},
			},
			reference: seat.Team1,
			winner:    seat.Team1,
			totals:    [2]int{90, 10},
		},
		{
			name: "other team wins against the reference",
			tricks: []trickPoints{
				{seat.Team1, 20}, {seat.Team2, 132},
			},
			reference: seat.Team1,
			winner:    seat.Team2,
			totals:    [2]int{0, 142},
		},
		{
			name: "tie goes to the reference team",
			tricks: []trickPoints{
				{seat.Team2, 76}, {seat.Team1, 76},
			},
			reference: seat.Team2,
			winner:    seat.Team2,
			totals:    [2]int{10, 76},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := NewLedger(DefaultLastTrickBonus)
			sum := 0
			for _, tr := range c.tricks {
				l.RecordTrick(tr.team, tr.points)
				sum += tr.points
			}
			res := l.FinalizeRound(c.reference)
			if res.Winner != c.winner {
				t.Fatalf("winner: got %s, want %s", res.Winner, c.winner)
			}
			if res.Round[0]+res.Round[1] != sum {
				t.Fatalf("round accumulators %v do not add up to %d", res.Round, sum)
			}
			if l.Round(seat.Team1) != 0 || l.Round(seat.Team2) != 0 {
				t.Fatalf("round accumulators not reset")
			}
			if got := [2]int{l.Total(seat.Team1), l.Total(seat.Team2)}; got != c.totals {
				t.Fatalf("totals: got %v, want %v", got, c.totals)
			}
			last := c.tricks[len(c.tricks)-1].team
			if res.BonusTeam != last || res.Bonus != DefaultLastTrickBonus {
				t.Fatalf("bonus went to %s (%d), want %s", res.BonusTeam, res.Bonus, last)
			}
		})
	}
}

func TestFinalizeWithoutTricks(t *testing.T) {
	l := NewLedger(10)
	res := l.FinalizeRound(seat.Team1)
	if res.Bonus != 0 || l.Total(seat.Team1) != 0 || l.Total(seat.Team2) != 0 {
		t.Fatalf("empty round changed totals: %+v", res)
	}
	if _, ok := l.LastTrick(); ok {
		t.Fatalf("no last trick expected")
	}
}

func TestTotalsAccumulateAcrossRounds(t *testing.T) {
	l := NewLedger(10)
	l.RecordTrick(seat.Team2, 100)
	l.FinalizeRound(seat.Team1)
	l.RecordTrick(seat.Team2, 60)
	l.RecordTrick(seat.Team1, 92)
	l.FinalizeRound(seat.Team1)
	if l.Total(seat.Team1) != 102 || l.Total(seat.Team2) != 110 {
		t.Fatalf("totals: %d / %d", l.Total(seat.Team1), l.Total(seat.Team2))
	}
	if l.Leader() != seat.Team2 {
		t.Fatalf("leader: %s", l.Leader())
	}
}
