package combat

import (
	"math"

	"pvpsim/internal/cp"
)

type Species struct {
	ID           string
	Name         string
	Dex          int
	Base         cp.Stats
	Types        []string
	BasicMoves   []string
	SpecialMoves []string
}

func (s *Species) HasType(t string) bool {
	for _, x := range s.Types {
		if x == t {
			return true
		}
	}
	return false
}

func (s *Species) Learns(id string) bool {
	for _, m := range s.BasicMoves {
		if m == id {
			return true
		}
	}
	for _, m := range s.SpecialMoves {
		if m == id {
			return true
		}
	}
	return false
}

// SpeciesRule overrides damage bookkeeping for species whose ability swaps
// forms mid-battle.
type SpeciesRule struct {
	// BasicDamage, when > 0, replaces every basic-move damage roll.
	BasicDamage int
	// SpecialFormID names the species record whose attack stat special moves use.
	SpecialFormID string
	// SpecialsSelfDebuffing makes the AI treat every special as self-debuffing.
	SpecialsSelfDebuffing bool
}

var speciesRules = map[string]SpeciesRule{
	"aegislash_shield": {
		BasicDamage:           1,
		SpecialFormID:         "aegislash_blade",
		SpecialsSelfDebuffing: true,
	},
}

func RuleFor(speciesID string) SpeciesRule {
	return speciesRules[speciesID]
}

// FormLevel is the level the blade form battles at for a shield-form build,
// which depends on the league's CP cap. Other caps keep the level.
func FormLevel(level float64, cpCap int) float64 {
	switch cpCap {
	case 1500:
		level = math.Ceil(level*0.5) + 1
	case 2500:
		level = math.Ceil(level * 0.75)
	}
	return math.Min(math.Max(level, cp.MinLevel), cp.MaxLevel)
}
