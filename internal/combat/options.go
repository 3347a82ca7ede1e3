package combat

import (
	"math"
	"math/rand"

	"go.uber.org/zap"
)

// WeightedOption is one candidate in a weighted draw. Slot is -1 for the
// basic move.
type WeightedOption struct {
	Label  string
	Weight float64
	Slot   int
	Move   *Move
}

// ChooseOption draws an option with probability proportional to its weight.
// When every weight is zero the first option wins. A nil rng picks the
// heaviest option.
func ChooseOption(rng *rand.Rand, opts []WeightedOption) WeightedOption {
	if len(opts) == 0 {
		return WeightedOption{Slot: -1}
	}
	total := 0.0
	for _, o := range opts {
		if o.Weight > 0 {
			total += o.Weight
		}
	}
	if total <= 0 {
		return opts[0]
	}
	if rng == nil {
		best := opts[0]
		for _, o := range opts[1:] {
			if o.Weight > best.Weight {
				best = o
			}
		}
		return best
	}
	r := rng.Float64() * total
	for _, o := range opts {
		if o.Weight <= 0 {
			continue
		}
		if r < o.Weight {
			return o
		}
		r -= o.Weight
	}
	return opts[len(opts)-1]
}

// DecideRandom is the randomized policy: a weighted draw between the basic
// move and every affordable special, leaning toward knockouts and toward
// spending a full energy bar.
func DecideRandom(env *Env, self, opp *Combatant) *Action {
	if env == nil {
		env = &Env{}
	}
	if self.Basic == nil || len(self.Specials) == 0 {
		return nil
	}
	basicWeight := float64(RandomBasicWeight)
	knockout := false

	bestCost, bestRate := 0, -1.0
	for _, m := range self.Specials {
		if m.EnergyCost <= 0 {
			continue
		}
		if rate := float64(Damage(self, opp, m)) / float64(m.EnergyCost); rate > bestRate {
			bestCost, bestRate = m.EnergyCost, rate
		}
	}
	firstDmg := Damage(self, opp, self.Specials[0])

	type candidate struct {
		slot   int
		dmg    int
		weight float64
	}
	var cands []candidate
	for i, m := range self.Specials {
		if self.Energy < m.EnergyCost {
			continue
		}
		dmg := Damage(self, opp, m)
		w := math.Round(float64(self.Energy) / RandomEnergyDivisor)
		if self.Energy < bestCost {
			w = math.Round(float64(self.Energy) / RandomWeakDivisor)
		}
		if knockout {
			w = 0
		}
		if dmg >= opp.HP && opp.Shields == 0 {
			basicWeight = 0
			knockout = true
		}
		if i > 0 && dmg < firstDmg && m.EnergyCost >= self.Specials[0].EnergyCost && !m.SelfBuffing() {
			w = 0
		}
		if self.Energy == MaxEnergy {
			w *= 2
		}
		cands = append(cands, candidate{slot: i, dmg: dmg, weight: w})
	}

	if len(cands) == 2 && opp.Shields > 0 && cands[0].dmg >= opp.HP && cands[1].dmg >= opp.HP {
		m0, m1 := self.Specials[cands[0].slot], self.Specials[cands[1].slot]
		d0, d1 := self.selfDebuffing(m0), self.selfDebuffing(m1)
		switch {
		case d0 && !d1 && m1.EnergyCost <= m0.EnergyCost:
			cands[0].weight = 0
		case d1 && !d0 && m0.EnergyCost <= m1.EnergyCost:
			cands[1].weight = 0
		}
	}

	opts := make([]WeightedOption, 0, len(cands)+1)
	for _, c := range cands {
		m := self.Specials[c.slot]
		opts = append(opts, WeightedOption{Label: m.ID, Weight: c.weight, Slot: c.slot, Move: m})
	}
	opts = append(opts, WeightedOption{Label: self.Basic.ID, Weight: basicWeight, Slot: -1, Move: self.Basic})

	pick := ChooseOption(env.Rng, opts)
	env.logger().Debug("random decision",
		zap.Int("actor", self.Index),
		zap.Int("tick", env.Tick),
		zap.String("move", pick.Label),
		zap.Float64("weight", pick.Weight),
	)
	if pick.Slot < 0 {
		return nil
	}
	return &Action{Actor: self.Index, Kind: KindSpecial, Slot: pick.Slot, Tick: env.Tick}
}
