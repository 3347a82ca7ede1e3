package combat

import "math"

const noThreat = math.MaxInt32

type threatState struct {
	hp      int
	energy  int
	tick    int
	shields int
}

// turnsToLive estimates how many ticks self survives if it keeps using its
// basic move while the opponent pushes for a knockout.
func (d *decider) turnsToLive() int {
	self, opp := d.self, d.opp
	if opp.Basic == nil {
		return noThreat
	}
	winsCMP := self.stats.Atk >= opp.stats.Atk
	limit := self.Basic.Turns
	if !winsCMP {
		limit++
	}
	cheapest := cheapestSpecial(opp)

	ttl := noThreat
	stack := []threatState{{hp: self.HP, energy: opp.Energy, tick: opp.Cooldown, shields: self.Shields}}
	for steps := 0; len(stack) > 0 && steps < 4*DefaultSearchLimit; steps++ {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.hp > d.oppBasic && cur.tick > limit {
			continue
		}
		if cur.shields > 0 {
			if cheapest != nil && cur.energy >= cheapest.EnergyCost {
				stack = append(stack, threatState{
					hp: cur.hp - ShieldedDamage, energy: cur.energy - cheapest.EnergyCost,
					tick: cur.tick + 1, shields: cur.shields - 1,
				})
			}
		} else {
			for _, m := range opp.Specials {
				if cur.energy < m.EnergyCost {
					continue
				}
				dmg := Damage(opp, self, m)
				if dmg >= cur.hp {
					ttl = min(ttl, cur.tick)
					if self.stats.Atk > opp.stats.Atk && self.CycleMS() > 0 && opp.CycleMS()%self.CycleMS() == 0 {
						ttl++
					}
					break
				}
				stack = append(stack, threatState{
					hp: cur.hp - dmg, energy: cur.energy - m.EnergyCost,
					tick: cur.tick + 1, shields: cur.shields,
				})
			}
		}
		if cur.hp-d.oppBasic <= 0 {
			ttl = min(ttl, cur.tick+opp.Basic.Turns)
			break
		}
		stack = append(stack, threatState{
			hp: cur.hp - d.oppBasic, energy: cur.energy + opp.Basic.EnergyGain,
			tick: cur.tick + opp.Basic.Turns, shields: cur.shields,
		})
	}

	if ttl != noThreat && self.HP <= 2*d.oppBasic && opp.CycleMS() == TickMS {
		ttl--
	}
	if self.HP <= d.oppBasic && opp.Cooldown > 0 && opp.CycleMS() > TickMS {
		ttl = opp.Cooldown
		if opp.HP > d.basicDmg {
			ttl--
		}
	}
	if ttl != noThreat && self.HP <= d.oppBasic && opp.Cooldown == 0 &&
		opp.CycleMS() <= self.CycleMS()+TickMS && opp.HP > d.basicDmg {
		ttl--
	}
	return ttl
}

// lastGasp throws the hardest-hitting ready special when self would faint
// before its next basic move completes.
func (d *decider) lastGasp(ttl int) (int, bool) {
	if ttl == noThreat {
		return -1, false
	}
	winsCMP := d.self.stats.Atk >= d.opp.stats.Atk
	window := ttl * TickMS
	cycle := d.self.CycleMS()
	if !(window < cycle || (window == cycle && (!winsCMP || d.self.HP <= d.oppBasic))) {
		return -1, false
	}
	best, bestDmg := -1, -1
	for i := len(d.self.Specials) - 1; i >= 0; i-- {
		if !d.self.CanAfford(i) {
			continue
		}
		dmg := d.dmg[i]
		if dmg > bestDmg {
			best, bestDmg = i, dmg
		}
		if d.self.Energy >= 2*d.self.Specials[i].EnergyCost && d.self.stats.Atk > d.opp.stats.Atk && 2*dmg > bestDmg {
			best, bestDmg = i, 2*dmg
		}
	}
	return best, best >= 0
}

func cheapestSpecial(c *Combatant) *Move {
	var out *Move
	for _, m := range c.Specials {
		if out == nil || m.EnergyCost < out.EnergyCost {
			out = m
		}
	}
	return out
}
