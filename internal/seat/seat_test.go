package seat

import "testing"

func TestRotation(t *testing.T) {
	s := South
	for i := 0; i < Count; i++ {
		s = s.Next()
	}
	if s != South {
		t.Fatalf("four steps clockwise should come back to South, got %s", s)
	}
	if South.Next() != West || East.Next() != South {
		t.Fatalf("unexpected clockwise order")
	}
}

func TestTeams(t *testing.T) {
	cases := map[Seat]Team{South: Team1, North: Team1, West: Team2, East: Team2}
	for s, want := range cases {
		if got := s.Team(); got != want {
			t.Errorf("%s.Team() = %s, want %s", s, got, want)
		}
		if s.Partner().Team() != s.Team() {
			t.Errorf("%s partner %s is on another team", s, s.Partner())
		}
	}
	if Team1.Other() != Team2 || Team2.Other() != Team1 {
		t.Fatalf("Other is not an involution")
	}
}

func TestParse(t *testing.T) {
	s, err := Parse("north")
	if err != nil || s != North {
		t.Fatalf("Parse(north) = %s, %v", s, err)
	}
	if _, err := Parse("center"); err == nil {
		t.Fatalf("expected error for unknown seat")
	}
}
