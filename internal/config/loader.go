package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func LoadGameMaster(path string) (*GameMaster, error) {
	var gm GameMaster
	if err := loadYAML(path, &gm); err != nil {
		return nil, err
	}
	return &gm, nil
}

func LoadScenario(path string) (*Scenario, error) {
	var sc Scenario
	if err := loadYAML(path, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

func LoadRoster(path string) (*Roster, error) {
	var r Roster
	if err := loadYAML(path, &r); err != nil {
		return nil, err
	}
	if len(r.Shields) == 0 {
		r.Shields = []int{0, 1, 2}
	}
	return &r, nil
}

// LoadAll reads gamemaster.yaml, scenario.yaml and roster.yaml from dir.
// A missing roster is not an error.
func LoadAll(dir string) (*GameMaster, *Scenario, *Roster, error) {
	gm, err := LoadGameMaster(filepath.Join(dir, "gamemaster.yaml"))
	if err != nil {
		return nil, nil, nil, err
	}
	sc, err := LoadScenario(filepath.Join(dir, "scenario.yaml"))
	if err != nil {
		return nil, nil, nil, err
	}
	roster, err := LoadRoster(filepath.Join(dir, "roster.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return gm, sc, nil, nil
		}
		return nil, nil, nil, err
	}
	return gm, sc, roster, nil
}
