package combat

// refine adjusts the searched opening move with the selection rules applied
// after the knockout search.
func (d *decider) refine(chosen int) int {
	self, opp := d.self, d.opp
	specials := self.Specials

	// Shields are down and nothing is being baited: hit as hard as possible.
	if opp.Shields == 0 && self.AI.Bait == BaitOff && self.CanAfford(chosen) {
		for _, s := range d.ready {
			if d.dmg[s] > d.dmg[chosen] {
				chosen = s
			}
		}
	}

	if opp.Shields > 0 {
		for _, s := range d.ready {
			alt := specials[s]
			if alt.EnergyCost < specials[chosen].EnergyCost && alt.DPE() >= specials[chosen].DPE() {
				chosen = s
			}
		}
	}

	if opp.Shields == 0 && d.highHP(self) && d.highHP(opp) &&
		self.selfDebuffing(specials[chosen]) && d.dmg[chosen] < opp.HP {
		for _, s := range d.ready {
			if !self.selfDebuffing(specials[s]) {
				chosen = s
				break
			}
		}
	}

	for s, alt := range specials {
		if s != chosen && alt.EnergyCost == specials[chosen].EnergyCost && alt.DPE() > specials[chosen].DPE() {
			chosen = s
		}
	}

	if self.selfDebuffing(specials[chosen]) {
		cur := specials[chosen]
		for s, alt := range specials {
			if s == chosen || self.selfDebuffing(alt) {
				continue
			}
			if abs(alt.EnergyCost-cur.EnergyCost) <= SimilarEnergy && alt.DPE() >= cur.DPE()*ComparableDPE {
				chosen = s
				break
			}
		}
	}
	return chosen
}

func (d *decider) highHP(c *Combatant) bool {
	return c.MaxHP() > 0 && float64(c.HP) >= HighHPRatio*float64(c.MaxHP())
}
