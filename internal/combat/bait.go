package combat

import "go.uber.org/zap"

// bait swaps the planned high-DPE special for a cheaper one when the
// opponent is expected to let the big move through unshielded, so the
// cheap move draws the shield first.
func (d *decider) bait(chosen int) int {
	self, opp := d.self, d.opp
	if opp.Shields == 0 || self.AI.Bait == BaitOff || len(self.Specials) < 2 {
		return chosen
	}
	nuke := self.Specials[chosen]
	lo := -1
	for _, s := range d.ready {
		m := self.Specials[s]
		if s == chosen || m.EnergyCost >= nuke.EnergyCost {
			continue
		}
		if lo < 0 || m.EnergyCost < self.Specials[lo].EnergyCost {
			lo = s
		}
	}
	if lo < 0 {
		return chosen
	}
	cheap := self.Specials[lo]
	if cheap.DPE() <= 0 || nuke.DPE() <= cheap.DPE() {
		return chosen
	}
	ratio := nuke.DPE() / cheap.DPE()
	if ratio <= BaitDPERatio {
		return chosen
	}
	if WouldShield(d.env, self, opp, nuke).Shield && !(self.AI.Bait == BaitAlways && d.env.mode() == ModeSimulate) {
		return chosen
	}
	after := self.Energy - cheap.EnergyCost
	if need := nuke.EnergyCost - after; need > 0 && ceilDiv(need, self.Basic.EnergyGain) > BaitMaxBasics {
		return chosen
	}
	d.log.Debug("baiting shield",
		zap.Int("actor", self.Index),
		zap.String("bait", cheap.ID),
		zap.String("saved", nuke.ID),
		zap.Float64("dpe_ratio", ratio),
	)
	return lo
}
