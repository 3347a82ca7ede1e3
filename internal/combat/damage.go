package combat

import "math"

const (
	BonusMultiplier = 1.3
	STABMultiplier  = 1.2
	ShieldedDamage  = 1
)

var stageMultipliers = [2*MaxStage + 1]float64{0.5, 0.5714, 0.6667, 0.8, 1.0, 1.25, 1.5, 1.75, 2.0}

func StageMultiplier(stage int) float64 {
	return stageMultipliers[clampInt(stage, -MaxStage, MaxStage)+MaxStage]
}

// Damage uses the current stat stages of both sides.
func Damage(att, def *Combatant, m *Move) int {
	return DamageWith(att, def, m, 1, true)
}

func DamageWith(att, def *Combatant, m *Move, charge float64, useStages bool) int {
	atkStage, defStage := 0, 0
	if useStages {
		atkStage, defStage = att.Stages[0], def.Stages[1]
	}
	return damageAt(att, def, m, charge, atkStage, defStage)
}

func damageAt(att, def *Combatant, m *Move, charge float64, atkStage, defStage int) int {
	if m.Kind == KindBasic && att.rule.BasicDamage > 0 {
		return att.rule.BasicDamage
	}
	atk := att.attackFor(m) * StageMultiplier(atkStage)
	dfn := def.stats.Def * StageMultiplier(defStage)
	if atk <= 0 || dfn <= 0 {
		return 1
	}
	stab := 1.0
	if att.Species.HasType(m.Type) {
		stab = STABMultiplier
	}
	if m.Kind != KindSpecial {
		charge = 1
	}
	eff := Effectiveness(m.Type, def.Species.Types)
	d := int(math.Floor(0.5*m.Power*atk/dfn*stab*eff*charge*BonusMultiplier)) + 1
	if d < 1 {
		return 1
	}
	return d
}

// DuelRating scores a battle from A's side: 500 for an even trade, 1000 for
// a clean win. Zero totals count as a zero ratio.
func DuelRating(totalA, totalB, leftA, leftB int) int {
	var ra, rb float64
	if totalA > 0 {
		ra = float64(leftA) / float64(totalA)
	}
	if totalB > 0 {
		rb = float64(leftB) / float64(totalB)
	}
	return clampInt(int(math.Floor(500*(ra+1-rb))), 0, 1000)
}
