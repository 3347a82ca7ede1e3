package config

import "pvpsim/internal/cp"

type CombatantDef struct {
	Species   string   `yaml:"species" json:"species"`
	Level     float64  `yaml:"level" json:"level"`
	IVs       cp.IVs   `yaml:"ivs" json:"ivs"`
	CPCap     int      `yaml:"cp_cap" json:"cp_cap"` // when set, level and IVs come from the optimizer
	Corrupted bool     `yaml:"corrupted" json:"corrupted"`
	Basic     string   `yaml:"basic" json:"basic"`
	Specials  []string `yaml:"specials" json:"specials"`
	Shields   *int     `yaml:"shields" json:"shields"`
	Energy    int      `yaml:"energy" json:"energy"`
	AI        AIDef    `yaml:"ai" json:"ai"`
}

type AIDef struct {
	BaitShields    string `yaml:"bait_shields" json:"bait_shields"` // off | on | always
	OptimizeTiming bool   `yaml:"optimize_timing" json:"optimize_timing"`
	FarmEnergy     bool   `yaml:"farm_energy" json:"farm_energy"`
}

type SettingsDef struct {
	BuffMode       string `yaml:"buff_mode" json:"buff_mode"` // deterministic | random | always
	Seed           int64  `yaml:"seed" json:"seed"`
	Mode           string `yaml:"mode" json:"mode"` // simulate | adversarial
	SearchLimit    int    `yaml:"search_limit" json:"search_limit"`
	RandomTieBreak bool   `yaml:"random_tiebreak" json:"random_tiebreak"`
	Policy         string `yaml:"policy" json:"policy"` // optimal | random
}

type Scenario struct {
	Settings   SettingsDef     `yaml:"settings" json:"settings"`
	Combatants [2]CombatantDef `yaml:"combatants" json:"combatants"`
}

type Roster struct {
	Settings SettingsDef    `yaml:"settings"`
	Shields  []int          `yaml:"shields"` // shield scenarios, applied to both sides
	Entrants []CombatantDef `yaml:"entrants"`
}
