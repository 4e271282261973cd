package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/pterm/pterm"
	"golang.org/x/term"

	"github.com/arcanaland/belote/internal/card"
	"github.com/arcanaland/belote/internal/deck"
	"github.com/arcanaland/belote/internal/event"
	"github.com/arcanaland/belote/internal/game"
	"github.com/arcanaland/belote/internal/player"
	"github.com/arcanaland/belote/internal/score"
	"github.com/arcanaland/belote/internal/seat"
)

var teamColors = [2]*colorize.Color{
	seat.Team1: colorize.New(colorize.FgCyan, colorize.Bold),
	seat.Team2: colorize.New(colorize.FgMagenta, colorize.Bold),
}

var (
	redSuit   = colorize.New(colorize.FgHiRed)
	blackSuit = colorize.New(colorize.FgHiWhite)
	dim       = colorize.New(colorize.FgHiBlack)
)

// renderer prints game events as they are drained.
type renderer struct {
	w     io.Writer
	g     *game.Game
	width int
}

func newRenderer(w io.Writer, g *game.Game) *renderer {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}
	return &renderer{w: w, g: g, width: min(width, 72)}
}

func formatCard(c *card.Card) string {
	if c.Suit.Red() {
		return redSuit.Sprint(c.String())
	}
	return blackSuit.Sprint(c.String())
}

func formatCards(d *deck.Deck) string {
	var parts []string
	for c := range d.All() {
		parts = append(parts, formatCard(c))
	}
	return strings.Join(parts, " ")
}

func teamName(t seat.Team) string {
	var members []string
	for _, s := range seat.All() {
		if s.Team() == t {
			members = append(members, s.String())
		}
	}
	return strings.Join(members, "/")
}

func (r *renderer) seatName(s seat.Seat) string {
	p := r.g.Player(s)
	return teamColors[s.Team()].Sprintf("%-6s", p.Name)
}

func (r *renderer) rule() string {
	return dim.Sprint(strings.Repeat("─", r.width))
}

// Render prints one event.
func (r *renderer) Render(e event.Event) {
	switch ev := e.(type) {
	case event.RoundBoundary:
		if ev.Starting {
			fmt.Fprintln(r.w, r.rule())
			fmt.Fprintf(r.w, "Round %d · dealer %s\n", ev.Round+1, r.seatName(r.g.Dealer()))
		} else {
			fmt.Fprintf(r.w, "Round %d over\n", ev.Round+1)
		}
	case event.TrumpChosen:
		fmt.Fprintf(r.w, "Trump: %s %s, taken by %s\n",
			suitLabel(ev.Trump), ev.Trump, r.seatName(ev.Bidder))
	case event.CardPlayed:
		fmt.Fprintf(r.w, "  %s plays %s\n", r.seatName(ev.Seat), formatCard(ev.Card))
	case event.TrickResolved:
		fmt.Fprintf(r.w, "  %s %s wins with %s (+%d)\n",
			dim.Sprint("→"), r.seatName(ev.Winner), formatCard(ev.Card), ev.Points)
	case event.RoundScored:
		r.renderRoundScore(ev.Result)
	case event.TurnChanged:
		// The card played line is enough for bots.
	}
}

func (r *renderer) renderRoundScore(res score.RoundResult) {
	for _, t := range seat.Teams() {
		line := fmt.Sprintf("  %s %3d", teamColors[t].Sprintf("%-12s", teamName(t)), res.Round[t])
		if res.Bonus > 0 && res.BonusTeam == t {
			line += dim.Sprintf("  last trick +%d", res.Bonus)
		}
		fmt.Fprintln(r.w, line)
	}
	fmt.Fprintf(r.w, "  Round to %s · match %d / %d\n",
		teamColors[res.Winner].Sprint(teamName(res.Winner)),
		r.g.Ledger().Total(seat.Team1), r.g.Ledger().Total(seat.Team2))
}

// HUD prints the table state for a human about to play.
func (r *renderer) HUD(p *player.Player) {
	fmt.Fprintln(r.w, r.rule())
	fmt.Fprintf(r.w, "Trump %s · dealer %s · bidder %s\n",
		suitLabel(r.g.Trump()), r.seatName(r.g.Dealer()), r.seatName(r.g.Bidder()))
	fmt.Fprintf(r.w, "Score %s %d · %s %d\n",
		teamColors[seat.Team1].Sprint(teamName(seat.Team1)), r.g.Ledger().Total(seat.Team1),
		teamColors[seat.Team2].Sprint(teamName(seat.Team2)), r.g.Ledger().Total(seat.Team2))
	if last, ok := r.g.LastTrick(); ok {
		fmt.Fprintf(r.w, "Last trick %s to %s\n", formatCards(last.Cards()), r.seatName(last.Winner()))
	}
	if t := r.g.Trick(); !t.Empty() {
		fmt.Fprintf(r.w, "On the table %s\n", formatCards(t.Cards()))
	}
	fmt.Fprintf(r.w, "Your hand %s\n", formatCards(p.Hand))
}

// RenderScoreTable prints the final match score.
func RenderScoreTable(g *game.Game, rounds int) error {
	l := g.Ledger()
	data := pterm.TableData{{"Team", "Seats", "Points"}}
	for _, t := range seat.Teams() {
		data = append(data, []string{t.String(), teamName(t), strconv.Itoa(l.Total(t))})
	}
	pterm.DefaultSection.Printf("Match over after %d rounds", rounds)
	if err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Render(); err != nil {
		return err
	}
	leader := l.Leader()
	if l.Total(seat.Team1) == l.Total(seat.Team2) {
		pterm.Info.Println("The match is a draw.")
		return nil
	}
	pterm.Success.Printfln("%s (%s) win the match.", leader, teamName(leader))
	return nil
}
