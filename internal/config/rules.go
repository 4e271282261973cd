package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/belote/internal/card"
	"github.com/arcanaland/belote/internal/game"
	"github.com/arcanaland/belote/internal/score"
)

// SchemaVersion is the rules file format understood by this build.
const SchemaVersion = "1.0"

// ClassicRulesName names the built-in rules.
const ClassicRulesName = "classic"

// ScoringTables maps rank names to points, with and without trump.
type ScoringTables struct {
	Normal map[string]int `toml:"normal"`
	Trump  map[string]int `toml:"trump"`
}

// Rules represents a rules file from the rules library
type Rules struct {
	Name           string        `toml:"name"`
	Version        string        `toml:"version"`
	SchemaVersion  string        `toml:"schema_version"`
	Deal           []int         `toml:"deal"`
	LastTrickBonus int           `toml:"last_trick_bonus"`
	PostPlayDelay  float64       `toml:"post_play_delay"` // Seconds
	Cut            bool          `toml:"cut"`
	Tables         ScoringTables `toml:"scoring"`
}

// ClassicRules returns the classic belote rules.
func ClassicRules() *Rules {
	r := &Rules{
		Name:           ClassicRulesName,
		Version:        "1.0.0",
		SchemaVersion:  SchemaVersion,
		Deal:           slices.Clone(game.DefaultDeal),
		LastTrickBonus: score.DefaultLastTrickBonus,
		PostPlayDelay:  game.DefaultPostPlayDelay.Seconds(),
		Cut:            true,
	}
	r.Tables = tablesFrom(card.DefaultScoring())
	return r
}

func tablesFrom(s card.Scoring) ScoringTables {
	t := ScoringTables{Normal: map[string]int{}, Trump: map[string]int{}}
	for rank, p := range s {
		t.Normal[rank.String()] = p.Normal
		t.Trump[rank.String()] = p.Trump
	}
	return t
}

// LoadRules reads a rules file. Keys missing from the file take their
// classic value.
func LoadRules(path string) (*Rules, error) {
	var r Rules
	md, err := toml.DecodeFile(path, &r)
	if err != nil {
		return nil, fmt.Errorf("error parsing rules file: %w", err)
	}

	classic := ClassicRules()
	if !md.IsDefined("deal") {
		r.Deal = classic.Deal
	}
	if !md.IsDefined("last_trick_bonus") {
		r.LastTrickBonus = classic.LastTrickBonus
	}
	if !md.IsDefined("post_play_delay") {
		r.PostPlayDelay = classic.PostPlayDelay
	}
	if !md.IsDefined("cut") {
		r.Cut = classic.Cut
	}
	if !md.IsDefined("scoring", "normal") {
		r.Tables.Normal = classic.Tables.Normal
	}
	if !md.IsDefined("scoring", "trump") {
		r.Tables.Trump = classic.Tables.Trump
	}
	if r.Name == "" {
		r.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return &r, nil
}

// WriteRules encodes r to path, creating parent directories.
func WriteRules(path string, r *Rules) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating rules directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating rules file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(r); err != nil {
		return fmt.Errorf("error encoding rules: %w", err)
	}
	return nil
}

// Scoring converts the rank tables into a card scoring table.
func (r *Rules) Scoring() (card.Scoring, error) {
	s := card.Scoring{}
	for name, pts := range r.Tables.Normal {
		rank, err := card.ParseRank(name)
		if err != nil {
			return nil, fmt.Errorf("scoring.normal: %w", err)
		}
		p := s[rank]
		p.Normal = pts
		s[rank] = p
	}
	for name, pts := range r.Tables.Trump {
		rank, err := card.ParseRank(name)
		if err != nil {
			return nil, fmt.Errorf("scoring.trump: %w", err)
		}
		p := s[rank]
		p.Trump = pts
		s[rank] = p
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Delay returns the post-play delay as a duration.
func (r *Rules) Delay() time.Duration {
	return time.Duration(r.PostPlayDelay * float64(time.Second))
}

// Apply copies the rules into match options.
func (r *Rules) Apply(opts *game.Options) error {
	scoring, err := r.Scoring()
	if err != nil {
		return fmt.Errorf("rules %s: %w", r.Name, err)
	}
	opts.Scoring = scoring
	opts.Deal = slices.Clone(r.Deal)
	opts.LastTrickBonus = r.LastTrickBonus
	opts.PostPlayDelay = r.Delay()
	opts.Cut = r.Cut
	return nil
}

// GetRulesPath returns the path to a rules file, either in the rules
// library or a relative path
func GetRulesPath(name string) (string, error) {
	libraryPath := GetRulesLibraryPath()
	for _, candidate := range []string{
		filepath.Join(libraryPath, name),
		filepath.Join(libraryPath, name+".toml"),
	} {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	return "", fmt.Errorf("rules not found: %s", name)
}

// ResolveRules loads the named rules, falling back to the built-in classic
// rules when name is "classic" and no such file exists in the library.
func ResolveRules(name string) (*Rules, error) {
	path, err := GetRulesPath(name)
	if err != nil {
		if name == ClassicRulesName {
			return ClassicRules(), nil
		}
		return nil, err
	}
	return LoadRules(path)
}
