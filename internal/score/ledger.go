package score

import "github.com/arcanaland/belote/internal/seat"

// DefaultLastTrickBonus is the "dix de der" awarded for the final trick.
const DefaultLastTrickBonus = 10

// RoundResult summarizes a finalized round.
type RoundResult struct {
	Winner    seat.Team
	Round     [2]int // Round accumulators before the reset
	BonusTeam seat.Team
	Bonus     int // 0 when no trick was recorded
}

// Ledger keeps match totals and the per-round accumulators of both teams.
type Ledger struct {
	bonus   int
	total   [2]int
	round   [2]int
	last    seat.Team
	hasLast bool
}

// NewLedger creates a ledger with the given last-trick bonus.
func NewLedger(lastTrickBonus int) *Ledger {
	return &Ledger{bonus: lastTrickBonus}
}

// RecordTrick adds trick points to the team's round accumulator. The team
// becomes the last trick winner of the round.
func (l *Ledger) RecordTrick(team seat.Team, points int) {
	l.round[team] += points
	l.last = team
	l.hasLast = true
}

// FinalizeRound adds the round winner's accumulator and the last-trick
// bonus to the match totals, then resets the round.
//
// The winner is the team with strictly more round points; a tie goes to
// the reference team.
func (l *Ledger) FinalizeRound(reference seat.Team) RoundResult {
	res := RoundResult{Winner: reference, Round: l.round}
	if l.round[reference.Other()] > l.round[reference] {
		res.Winner = reference.Other()
	}
	l.total[res.Winner] += l.round[res.Winner]

	if l.hasLast {
		res.BonusTeam = l.last
		res.Bonus = l.bonus
		l.total[l.last] += l.bonus
	}

	l.round = [2]int{}
	l.hasLast = false
	return res
}

// Total returns the match total of a team.
func (l *Ledger) Total(team seat.Team) int {
	return l.total[team]
}

// Round returns the current round accumulator of a team.
func (l *Ledger) Round(team seat.Team) int {
	return l.round[team]
}

// LastTrick returns the team that won the latest trick of the round.
func (l *Ledger) LastTrick() (seat.Team, bool) {
	return l.last, l.hasLast
}

// Leader returns the team with the higher match total, Team1 on a tie.
func (l *Ledger) Leader() seat.Team {
	if l.total[seat.Team2] > l.total[seat.Team1] {
		return seat.Team2
	}
	return seat.Team1
}
