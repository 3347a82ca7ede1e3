package combat

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"pvpsim/internal/cp"
)

func species(id string, atk, def, hp float64, types ...string) *Species {
	return &Species{ID: id, Name: id, Base: cp.Stats{Atk: atk, Def: def, HP: hp}, Types: types}
}

func basicMove(id string, power float64, gain, turns int) *Move {
	return &Move{ID: id, Type: "normal", Power: power, Kind: KindBasic, EnergyGain: gain, Turns: turns}
}

func specialMove(id string, power float64, cost int) *Move {
	return &Move{ID: id, Type: "normal", Power: power, Kind: KindSpecial, EnergyCost: cost}
}

// mirror builds a level 40 combatant whose attack equals its defense, so
// normal-type moves against another mirror deal floor(0.65*power)+1.
func mirror(id string, hp float64, basic *Move, specials ...*Move) *Combatant {
	return NewCombatant(species(id, 100, 100, hp, "water"), 40, cp.IVs{}, basic, specials...)
}

func observedEnv(t *testing.T) (*Env, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return &Env{Log: zap.New(core)}, logs
}

func lastReason(logs *observer.ObservedLogs) string {
	entries := logs.FilterMessage("decision").All()
	if len(entries) == 0 {
		return ""
	}
	return entries[len(entries)-1].ContextMap()["reason"].(string)
}
