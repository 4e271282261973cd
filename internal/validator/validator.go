package validator

import (
	"fmt"
	"os"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/belote/internal/card"
	"github.com/arcanaland/belote/internal/config"
	"github.com/arcanaland/belote/internal/seat"
)

// packSize is the number of cards in a belote pack.
const packSize = 32

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	RulesPath string
	Results   ValidationResults

	rules config.Rules
	meta  toml.MetaData
}

func NewValidator(rulesPath string) *Validator {
	return &Validator{
		RulesPath: rulesPath,
		Results:   ValidationResults{},
	}
}

// Validate checks a rules file. The returned error reports a file that
// cannot be read or parsed at all; rule problems go to the results.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.validateRulesToml(); err != nil {
		return v.Results, err
	}

	v.validateUnknownKeys()
	v.validateDeal()
	v.validateScoring()
	v.validateTiming()

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

func (v *Validator) validateRulesToml() error {
	if _, err := os.Stat(v.RulesPath); os.IsNotExist(err) {
		return fmt.Errorf("rules file not found: %s", v.RulesPath)
	}

	md, err := toml.DecodeFile(v.RulesPath, &v.rules)
	if err != nil {
		return fmt.Errorf("error parsing rules file: %w", err)
	}
	v.meta = md

	if v.rules.Name == "" {
		v.errorf("name is required")
	}
	if v.rules.Version == "" {
		v.errorf("version is required")
	}
	if v.rules.SchemaVersion == "" {
		v.errorf("schema_version is required")
	} else if v.rules.SchemaVersion != config.SchemaVersion {
		v.errorf("unsupported schema_version: %s (supported: %s)", v.rules.SchemaVersion, config.SchemaVersion)
	}
	return nil
}

// validateUnknownKeys reports keys that do not map to any rules field,
// including rank names in the scoring tables.
func (v *Validator) validateUnknownKeys() {
	for _, key := range v.meta.Undecoded() {
		v.errorf("unknown key: %s", key)
	}
}

// validateDeal checks the dealing plan against the 32-card pack
func (v *Validator) validateDeal() {
	if !v.meta.IsDefined("deal") {
		v.warnf("deal not set, the classic 3-2-3 plan is used")
		return
	}
	if len(v.rules.Deal) == 0 {
		v.errorf("deal must list at least one block")
		return
	}

	perSeat := 0
	for i, block := range v.rules.Deal {
		if block <= 0 {
			v.errorf("deal[%d] must be positive, got %d", i, block)
			return
		}
		perSeat += block
	}

	need := perSeat * seat.Count
	switch {
	case need > packSize:
		v.errorf("deal %v needs %d cards, the pack holds %d", v.rules.Deal, need, packSize)
	case need < packSize:
		v.warnf("deal %v leaves %d cards in the stock", v.rules.Deal, packSize-need)
	}
}

// validateScoring checks both scoring tables
func (v *Validator) validateScoring() {
	tables := []struct {
		key    string
		points map[string]int
	}{
		{"normal", v.rules.Tables.Normal},
		{"trump", v.rules.Tables.Trump},
	}

	for _, table := range tables {
		if !v.meta.IsDefined("scoring", table.key) {
			v.warnf("scoring.%s not set, classic points are used", table.key)
			continue
		}

		names := make([]string, 0, len(table.points))
		for name := range table.points {
			names = append(names, name)
		}
		sort.Strings(names)

		seen := map[card.Rank]bool{}
		for _, name := range names {
			rank, err := card.ParseRank(name)
			if err != nil {
				v.errorf("scoring.%s: unknown rank %q", table.key, name)
				continue
			}
			seen[rank] = true
			if table.points[name] < 0 {
				v.errorf("scoring.%s.%s must not be negative, got %d", table.key, name, table.points[name])
			}
		}

		for _, rank := range card.Ranks() {
			if !seen[rank] {
				v.errorf("scoring.%s is missing rank %s", table.key, rank)
			}
		}
	}
}

// validateTiming checks the delay and the last trick bonus
func (v *Validator) validateTiming() {
	if v.rules.PostPlayDelay < 0 {
		v.errorf("post_play_delay must not be negative, got %g", v.rules.PostPlayDelay)
	} else if v.rules.PostPlayDelay > 10 {
		v.warnf("post_play_delay of %gs is unusually long", v.rules.PostPlayDelay)
	}

	if !v.meta.IsDefined("last_trick_bonus") {
		return
	}
	if v.rules.LastTrickBonus < 0 {
		v.errorf("last_trick_bonus must not be negative, got %d", v.rules.LastTrickBonus)
	} else if v.rules.LastTrickBonus != 10 {
		v.warnf("last_trick_bonus is %d, classic belote uses 10", v.rules.LastTrickBonus)
	}
}
