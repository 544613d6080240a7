package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// SportPreset describes how a draw splits players for one sport.
type SportPreset struct {
	Name               string `yaml:"name" json:"name"`
	PlayersPerTeam     int    `yaml:"players_per_team" json:"players_per_team"`
	ExcludeGoalkeepers bool   `yaml:"exclude_goalkeepers" json:"exclude_goalkeepers"`
}

type presetFile struct {
	Sports []SportPreset `yaml:"sports"`
}

// Presets is keyed by lower-cased sport name.
type Presets map[string]SportPreset

func DefaultPresets() Presets {
	return Presets{
		"football":   {Name: "football", PlayersPerTeam: 11},
		"futsal":     {Name: "futsal", PlayersPerTeam: 5},
		"basketball": {Name: "basketball", PlayersPerTeam: 5},
		"volleyball": {Name: "volleyball", PlayersPerTeam: 6},
	}
}

func (p Presets) Lookup(sport string) (SportPreset, bool) {
	preset, ok := p[strings.ToLower(strings.TrimSpace(sport))]
	return preset, ok
}

// ParsePresets decodes a YAML preset document on top of the defaults.
func ParsePresets(data []byte) (Presets, error) {
	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse sport presets: %w", err)
	}

	presets := DefaultPresets()
	for i, s := range file.Sports {
		name := strings.ToLower(strings.TrimSpace(s.Name))
		if name == "" {
			return nil, fmt.Errorf("sport preset #%d has no name", i+1)
		}
		if s.PlayersPerTeam <= 0 {
			return nil, fmt.Errorf("sport preset %q: players_per_team must be positive", s.Name)
		}
		s.Name = name
		presets[name] = s
	}
	return presets, nil
}

// LoadPresets reads path, or returns the defaults when path is empty.
func LoadPresets(path string) (Presets, error) {
	if path == "" {
		return DefaultPresets(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sport presets %s: %w", path, err)
	}
	return ParsePresets(data)
}
