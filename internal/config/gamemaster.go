package config

import "pvpsim/internal/cp"

type GameMaster struct {
	Species []SpeciesDef `yaml:"species"`
	Moves   []MoveDef    `yaml:"moves"`
}

type SpeciesDef struct {
	ID           string   `yaml:"id"`
	Name         string   `yaml:"name"`
	Dex          int      `yaml:"dex"`
	Base         cp.Stats `yaml:"base"`
	Types        []string `yaml:"types"`
	BasicMoves   []string `yaml:"basic_moves"`
	SpecialMoves []string `yaml:"special_moves"`
}

// MoveDef covers both move kinds; a move with Turns > 0 is a basic move.
type MoveDef struct {
	ID     string   `yaml:"id"`
	Name   string   `yaml:"name"`
	Type   string   `yaml:"type"`
	Power  float64  `yaml:"power"`
	Energy int      `yaml:"energy"` // gain for basic moves, cost for special moves
	Turns  int      `yaml:"turns"`
	Buffs  *BuffDef `yaml:"buffs"`
}

type BuffDef struct {
	Target string  `yaml:"target"` // self | opponent
	Atk    int     `yaml:"atk"`
	Def    int     `yaml:"def"`
	Chance float64 `yaml:"chance"`
}
