package seat

import (
	"fmt"
	"strings"
)

// Seat is a position around the table, declared clockwise.
type Seat int

const (
	South Seat = iota
	West
	North
	East
)

// Count is the number of seats at a belote table.
const Count = 4

// Team identifies one side of the 2-way partition of seats.
type Team int

const (
	Team1 Team = iota // South and North
	Team2             // West and East
)

// All returns the seats in clockwise order starting at South.
func All() []Seat {
	return []Seat{South, West, North, East}
}

// Teams returns both teams.
func Teams() []Team {
	return []Team{Team1, Team2}
}

// Next returns the seat to the left, one step clockwise.
func (s Seat) Next() Seat {
	return (s + 1) % Count
}

// Team returns the team the seat plays for.
func (s Seat) Team() Team {
	return Team(int(s) % 2)
}

// Partner returns the seat across the table.
func (s Seat) Partner() Seat {
	return (s + 2) % Count
}

func (s Seat) String() string {
	switch s {
	case South:
		return "South"
	case West:
		return "West"
	case North:
		return "North"
	case East:
		return "East"
	default:
		return fmt.Sprintf("Seat(%d)", int(s))
	}
}

// Parse parses a seat name, case-insensitively.
func Parse(name string) (Seat, error) {
	for _, s := range All() {
		if strings.EqualFold(s.String(), strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown seat: %s", name)
}

// Other returns the opposing team.
func (t Team) Other() Team {
	if t == Team1 {
		return Team2
	}
	return Team1
}

func (t Team) String() string {
	switch t {
	case Team1:
		return "Team1"
	case Team2:
		return "Team2"
	default:
		return fmt.Sprintf("Team(%d)", int(t))
	}
}
