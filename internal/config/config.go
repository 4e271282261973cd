package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/belote/internal/game"
	"github.com/arcanaland/belote/internal/player"
	"github.com/arcanaland/belote/internal/seat"
)

const appName = "belote"

// PlayerConfig describes the occupant of one seat
type PlayerConfig struct {
	Seat string `toml:"seat"`
	Name string `toml:"name"`
	Kind string `toml:"kind"`
}

// Config represents the application configuration
type Config struct {
	DefaultRules string         `toml:"default_rules"`
	Seed         uint64         `toml:"seed,omitempty"`
	Players      []PlayerConfig `toml:"players"`
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetRulesLibraryPath returns the path to the rules library
func GetRulesLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), appName, "rules")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), appName, "config.toml")
}

// DefaultConfig is the configuration written on first use: South is human,
// the other seats are bots.
func DefaultConfig() *Config {
	cfg := &Config{DefaultRules: ClassicRulesName}
	for _, s := range seat.All() {
		kind := player.AI
		if s == seat.South {
			kind = player.Human
		}
		cfg.Players = append(cfg.Players, PlayerConfig{
			Seat: strings.ToLower(s.String()),
			Name: s.String(),
			Kind: kind.String(),
		})
	}
	return cfg
}

// LoadConfig loads the config file
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(GetConfigFilePath())
}

// LoadConfigFrom loads a config file, creating it with defaults when it
// does not exist yet.
func LoadConfigFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	var config Config
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	return &config, nil
}

func createDefaultConfig(configPath string) (*Config, error) {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %w", err)
	}

	config := DefaultConfig()
	if err := writeConfig(configPath, config); err != nil {
		return nil, err
	}
	return config, nil
}

func writeConfig(configPath string, config *Config) error {
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}

// GetDefaultRules returns the default rules name from config
func GetDefaultRules() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}
	if config.DefaultRules == "" {
		return ClassicRulesName, nil
	}
	return config.DefaultRules, nil
}

// SetDefaultRules sets the default rules in the config
func SetDefaultRules(name string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}
	config.DefaultRules = name
	return writeConfig(GetConfigFilePath(), config)
}

// Seats turns the player list into per-seat specs. Seats that are not
// listed keep a bot named after the seat; entries without a seat fill the
// seats in order.
func (c *Config) Seats() ([seat.Count]game.PlayerSpec, error) {
	var specs [seat.Count]game.PlayerSpec
	taken := [seat.Count]bool{}
	for _, s := range seat.All() {
		specs[s] = game.PlayerSpec{Name: s.String(), Kind: player.AI}
	}

	next := 0
	for i, pc := range c.Players {
		kind, err := player.ParseKind(pc.Kind)
		if err != nil {
			return specs, fmt.Errorf("players[%d]: %w", i, err)
		}

		var s seat.Seat
		if pc.Seat != "" {
			s, err = seat.Parse(pc.Seat)
			if err != nil {
				return specs, fmt.Errorf("players[%d]: %w", i, err)
			}
		} else {
			for next < seat.Count && taken[next] {
				next++
			}
			if next == seat.Count {
				return specs, fmt.Errorf("players[%d]: no free seat left", i)
			}
			s = seat.Seat(next)
		}
		if taken[s] {
			return specs, fmt.Errorf("players[%d]: seat %s listed twice", i, s)
		}
		taken[s] = true

		name := pc.Name
		if name == "" {
			name = s.String()
		}
		specs[s] = game.PlayerSpec{Name: name, Kind: kind}
	}
	return specs, nil
}
