package cmd

import (
	"fmt"
	"image/color" // This is the standard library color package
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/arcanaland/belote/internal/card"

	colorize "github.com/fatih/color" // Rename this import to avoid the conflict
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display information about a specific card",
	Long: `Show displays a card with its points under the chosen rules and a small
truecolor face. Use canonical card IDs like 'hearts.jack' or 'spades.seven'.

You can specify rules using the --rules flag, which will look for the rules
in your rules library (XDG_DATA_HOME/belote/rules) or as a relative path.
If no rules are specified, the default rules from your config will be used.

Examples:
  belote show hearts.jack
  belote show --rules classic clubs.nine
  belote show --trump spades spades.nine`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rulesFlag, _ := cmd.Flags().GetString("rules")
		trumpFlag, _ := cmd.Flags().GetString("trump")

		var ruleArgs []string
		if rulesFlag != "" {
			ruleArgs = []string{rulesFlag}
		}
		r, err := loadRules(ruleArgs)
		if err != nil {
			return err
		}
		scoring, err := r.Scoring()
		if err != nil {
			return fmt.Errorf("error loading scoring: %w", err)
		}

		suit, rank, err := card.ParseID(args[0])
		if err != nil {
			return fmt.Errorf("error getting card: %w", err)
		}
		trump := card.NoSuit
		if trumpFlag != "" {
			if trump, err = card.ParseSuit(trumpFlag); err != nil {
				return err
			}
		}

		c := card.New(suit, rank, scoring)
		displayCard(c, trump, cardArt(c, trump), r.Name)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("rules", "r", "", "Specify rules from your rules library or a path to a rules file")
	showCmd.Flags().StringP("trump", "t", "", "Show the card under this trump suit")
}

var (
	paperColor = colorful.Color{R: 0.99, G: 0.96, B: 0.89}
	redInk     = colorful.Color{R: 0.75, G: 0.16, B: 0.17}
	blackInk   = colorful.Color{R: 0.13, G: 0.14, B: 0.18}
	trumpGold  = colorful.Color{R: 0.85, G: 0.65, B: 0.13}
)

const (
	artWidth  = 14
	artHeight = 10 // Pixel rows, two per terminal line
)

// inkFor returns the print color of a suit
func inkFor(s card.Suit) colorful.Color {
	if s.Red() {
		return redInk
	}
	return blackInk
}

// cardArt draws a small card face as half-block ANSI art. The pip area
// is shaded from paper to ink by the card's strength; trump cards get a
// gold frame.
func cardArt(c *card.Card, trump card.Suit) string {
	ink := inkFor(c.Suit)
	frame := ink.BlendLab(paperColor, 0.5)
	if trump != card.NoSuit && c.Suit == trump {
		frame = trumpGold
	}
	strength := float64(int(c.Rank)-int(card.Seven)+1) / float64(len(card.Ranks()))

	pixels := make([][]colorful.Color, artHeight)
	for y := range pixels {
		pixels[y] = make([]colorful.Color, artWidth)
		for x := range pixels[y] {
			switch {
			case x == 0 || y == 0 || x == artWidth-1 || y == artHeight-1:
				pixels[y][x] = frame
			case x >= 3 && x < artWidth-3 && y >= 2 && y < artHeight-2:
				depth := float64(y-2) / float64(artHeight-5)
				pixels[y][x] = paperColor.BlendHcl(ink, strength*(0.4+0.6*depth)).Clamped()
			default:
				pixels[y][x] = paperColor
			}
		}
	}

	var buffer strings.Builder
	for y := 0; y < artHeight; y += 2 {
		for x := 0; x < artWidth; x++ {
			fg := colorfulToColor(pixels[y][x])
			bg := colorfulToColor(pixels[y+1][x])
			buffer.WriteString(ansiColorString('▀', fg, bg))
		}
		buffer.WriteString("\n")
	}
	return strings.TrimSuffix(buffer.String(), "\n")
}

func colorfulToColor(c colorful.Color) color.Color {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func ansiColorString(char rune, fg, bg color.Color) string {
	r1, g1, b1, _ := fg.RGBA()
	r2, g2, b2, _ := bg.RGBA()

	r1, g1, b1 = r1>>8, g1>>8, b1>>8
	r2, g2, b2 = r2>>8, g2>>8, b2>>8

	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
		r1, g1, b1, r2, g2, b2, char)
}

// suitLabel prints a suit symbol in its ink color
func suitLabel(s card.Suit) string {
	if s.Red() {
		return colorize.New(colorize.FgHiRed, colorize.Bold).Sprint(s.Symbol())
	}
	return colorize.New(colorize.FgHiWhite, colorize.Bold).Sprint(s.Symbol())
}

func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

func describe(c *card.Card, trump card.Suit) string {
	switch {
	case trump == card.NoSuit:
		return fmt.Sprintf("Worth %d points in a plain suit and %d points when %s are trump.",
			c.Points, c.TrumpPoints, c.Suit)
	case c.Suit == trump:
		return fmt.Sprintf("Trump card worth %d points. It beats every card of the other suits.",
			c.TrumpPoints)
	default:
		return fmt.Sprintf("Plain card worth %d points while %s are trump. Any %s beats it.",
			c.Points, trump, trump.Symbol())
	}
}

func displayCard(c *card.Card, trump card.Suit, art, rulesName string) {
	artLines := strings.Split(art, "\n")
	maxArtWidth := 0
	for _, line := range artLines {
		visibleWidth := len([]rune(stripAnsi(line)))
		if visibleWidth > maxArtWidth {
			maxArtWidth = visibleWidth
		}
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80 // Default if we can't get terminal width
	}

	var infoLines []string
	infoLines = append(infoLines, colorize.CyanString("Card:  ")+colorize.HiWhiteString("%s", c.Name()))
	infoLines = append(infoLines, colorize.CyanString("Rules: ")+colorize.HiWhiteString("%s", rulesName))
	infoLines = append(infoLines, colorize.CyanString("ID:    ")+colorize.HiWhiteString("%s", c.ID))
	infoLines = append(infoLines, colorize.CyanString("Suit:  ")+
		colorize.HiWhiteString("%s · ", c.Suit)+suitLabel(c.Suit))
	infoLines = append(infoLines, colorize.CyanString("Rank:  ")+
		colorize.HiWhiteString("%s · %s", c.Rank, c.Rank.Short()))
	infoLines = append(infoLines, colorize.CyanString("Value: ")+
		colorize.HiWhiteString("%d plain / %d trump", c.Points, c.TrumpPoints))

	spacing := 4
	infoStartCol := maxArtWidth + spacing

	infoWidth := width - infoStartCol - 2
	if infoWidth < 20 {
		infoWidth = 20
	}

	infoLines = append(infoLines, "")
	infoLines = append(infoLines, wrapText(describe(c, trump), infoWidth)...)

	fmt.Println()

	maxLines := max(len(artLines), len(infoLines))
	for i := 0; i < maxLines; i++ {
		fmt.Print("  ")
		if i < len(artLines) {
			fmt.Print(artLines[i])
			visibleWidth := len([]rune(stripAnsi(artLines[i])))
			fmt.Print(strings.Repeat(" ", infoStartCol-visibleWidth))
		} else {
			fmt.Print(strings.Repeat(" ", infoStartCol))
		}

		if i < len(infoLines) {
			fmt.Print(infoLines[i])
		}

		fmt.Println()
	}

	fmt.Println()
}

func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
