package combat

// ShieldPrediction is the defender's expected reaction to a special, with
// the option weights used when the choice is randomized.
type ShieldPrediction struct {
	Shield         bool
	ShieldWeight   int
	NoShieldWeight int
}

// WouldShield predicts whether def shields m thrown by att at the current
// state. Always-bait simulations assume every special is shielded.
func WouldShield(env *Env, att, def *Combatant, m *Move) ShieldPrediction {
	p := ShieldPrediction{ShieldWeight: 1, NoShieldWeight: NoShieldWeight}
	if att.AI.Bait == BaitAlways && env.mode() == ModeSimulate {
		p.Shield = true
		return p
	}
	if def.HP <= 0 || def.Shields <= 0 {
		return p
	}
	dmg := Damage(att, def, m)
	hp := float64(def.HP)

	fastDmg := 0
	fastDPT := 0.0
	if att.Basic != nil {
		fastDmg = Damage(att, def, att.Basic)
		if att.Basic.Turns > 0 {
			fastDPT = float64(fastDmg) / float64(att.Basic.Turns)
		}
		if gain := att.Basic.EnergyGain; gain > 0 {
			leftover := max(att.Energy-m.EnergyCost, 0)
			fastAttacks := ceilDiv(m.EnergyCost-leftover, gain) + 1
			cycle := (fastAttacks*fastDmg + 1) * def.Shields
			if def.HP-dmg <= cycle {
				p.Shield = true
				p.ShieldWeight = CycleShieldWeight
			}
		}
	}
	if float64(dmg) >= hp/ShieldDamageRatio && fastDPT > ShieldFastDPT {
		p.Shield = true
		p.ShieldWeight = ShieldWeight
	}
	if float64(dmg) >= hp/HeavyDamageRatio && fastDPT > HeavyFastDPT {
		p.ShieldWeight = HeavyShieldWeight
	}
	if m.SelfAttackDebuffing() && float64(dmg)/hp > DebuffShieldRatio {
		p.Shield = true
		p.ShieldWeight = ShieldWeight
	}
	return p
}
