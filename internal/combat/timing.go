package combat

// targetCooldownMS is how far into the opponent's basic move self waits
// before throwing a special.
func targetCooldownMS(self, opp *Combatant) int {
	target := TimingLeadMS
	sc, oc := self.CycleMS(), opp.CycleMS()
	switch {
	case sc >= 4*TickMS:
		target = 2 * TickMS
	case sc >= 3*TickMS && oc == 5*TickMS:
		target = 2 * TickMS
	case sc == 2*TickMS && oc == 4*TickMS:
		target = 2 * TickMS
	}
	return target
}

// timingLocked reports cycle pairings where waiting cannot gain a tick.
func timingLocked(self, opp *Combatant) bool {
	sc, oc := self.CycleMS(), opp.CycleMS()
	if sc == oc || oc == 0 {
		return true
	}
	return sc > oc && sc%oc == 0 && self.Basic.Turns >= 4
}

// holdForTiming delays a ready special by one basic move so it lands right
// after the opponent's basic move, denying it a free hit.
func (d *decider) holdForTiming(ttl int) bool {
	self, opp := d.self, d.opp
	if !self.AI.OptimizeTiming || opp.Basic == nil {
		return false
	}
	if timingLocked(self, opp) {
		return false
	}
	target := targetCooldownMS(self, opp)
	oppLeft := opp.Cooldown * TickMS
	if oppLeft != 0 && oppLeft <= target {
		return false
	}

	if self.HP <= d.oppBasic {
		return false
	}
	window := (self.CycleMS() + TickMS) / opp.CycleMS()
	if self.HP <= d.oppBasic*window {
		return false
	}

	if self.Energy+self.Basic.EnergyGain > MaxEnergy {
		return false
	}

	planned := self.Basic.Turns
	if c := self.Specials[0].EnergyCost; c > 0 {
		planned += self.Energy / c
	}
	if self.stats.Atk < opp.stats.Atk {
		planned++
	}
	if planned > ttl {
		return false
	}
	if len(d.lethalSlots()) > 0 {
		return false
	}
	oppWindow := self.CycleMS() / opp.CycleMS()
	for _, m := range opp.Specials {
		gain := opp.Basic.EnergyGain
		if opp.Energy < m.EnergyCost && gain <= 0 {
			continue
		}
		need := ceilDiv(m.EnergyCost-opp.Energy, gain)
		turns := need*opp.Basic.Turns + 1
		total := Damage(opp, self, m) + d.oppBasic*oppWindow
		if self.Shields > 0 {
			total = ShieldedDamage + d.oppBasic*oppWindow
		}
		if turns <= self.Basic.Turns && total >= self.HP {
			return false
		}
	}
	return true
}
