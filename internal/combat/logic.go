package combat

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// decider carries the per-call view of one decision: damage tables against
// the current opponent and the slots self can afford right now.
type decider struct {
	env  *Env
	self *Combatant
	opp  *Combatant
	log  *zap.Logger

	dmg      []int
	basicDmg int
	oppBasic int
	ready    []int
}

func newDecider(env *Env, self, opp *Combatant) *decider {
	d := &decider{env: env, self: self, opp: opp, log: env.logger()}
	d.dmg = make([]int, len(self.Specials))
	for i, m := range self.Specials {
		d.dmg[i] = Damage(self, opp, m)
		if self.Energy >= m.EnergyCost {
			d.ready = append(d.ready, i)
		}
	}
	d.basicDmg = Damage(self, opp, self.Basic)
	if opp.Basic != nil {
		d.oppBasic = Damage(opp, self, opp.Basic)
	}
	return d
}

// Decide picks self's action for the current tick: a special move, or nil
// for the basic move.
func Decide(env *Env, self, opp *Combatant) *Action {
	if env == nil {
		env = &Env{}
	}
	if self.Basic == nil || len(self.Specials) == 0 {
		return nil
	}
	d := newDecider(env, self, opp)
	slot, reason := d.choose()
	d.note(slot, reason)
	if slot < 0 {
		return nil
	}
	return &Action{Actor: self.Index, Kind: KindSpecial, Slot: slot, Tick: env.Tick}
}

func (d *decider) choose() (int, string) {
	if d.self.AI.FarmEnergy {
		return -1, "farming energy"
	}
	if len(d.ready) == 0 {
		return -1, "no special affordable"
	}
	ttl := d.turnsToLive()
	if slot, ok := d.lastGasp(ttl); ok {
		return slot, "fainting before next basic move"
	}
	if pool := d.lethalSlots(); len(pool) > 0 {
		return d.tieBreak(pool), "lethal"
	}
	if slot, done := d.stackEnergy(); done {
		return slot, "stacking energy for self-debuffing move"
	}
	if slot, done := d.deferToThreat(); done {
		return slot, "opponent has lethal move ready"
	}
	slot, ok := d.search()
	if !ok {
		return -1, "no knockout line found"
	}
	slot = d.refine(slot)
	slot = d.bait(slot)
	if !d.self.CanAfford(slot) {
		return -1, "building energy for " + d.self.Specials[slot].ID
	}
	if d.holdForTiming(ttl) {
		return -1, "optimizing move timing"
	}
	return d.tieBreak(d.tiedWith(slot)), "planned"
}

func (d *decider) note(slot int, reason string) {
	ce := d.log.Check(zapcore.DebugLevel, "decision")
	if ce == nil {
		return
	}
	move := d.self.Basic.ID
	if slot >= 0 {
		move = d.self.Specials[slot].ID
	}
	ce.Write(
		zap.Int("actor", d.self.Index),
		zap.Int("tick", d.env.Tick),
		zap.String("move", move),
		zap.Int("energy", d.self.Energy),
		zap.String("reason", reason),
	)
}

func (d *decider) lethalSlots() []int {
	if d.opp.Shields > 0 {
		return nil
	}
	var out []int
	for _, s := range d.ready {
		if d.dmg[s] >= d.opp.HP {
			out = append(out, s)
		}
	}
	return out
}

// strongestReady is the affordable special with the most raw damage,
// lowest slot on ties.
func (d *decider) strongestReady() int {
	best := -1
	for _, s := range d.ready {
		if best < 0 || d.dmg[s] > d.dmg[best] {
			best = s
		}
	}
	return best
}

// selfBuffingNear finds an affordable self-buffing special within
// SimilarEnergy of slot's cost.
func (d *decider) selfBuffingNear(slot int) int {
	cost := d.self.Specials[slot].EnergyCost
	for _, s := range d.ready {
		m := d.self.Specials[s]
		if s != slot && m.SelfBuffing() && abs(m.EnergyCost-cost) <= SimilarEnergy {
			return s
		}
	}
	return -1
}

// stackEnergy holds a self-debuffing special until energy reaches the
// largest multiple of its cost, so repeated uses go out back to back.
func (d *decider) stackEnergy() (int, bool) {
	s := d.strongestReady()
	m := d.self.Specials[s]
	if !d.self.selfDebuffing(m) || m.EnergyCost <= 0 {
		return 0, false
	}
	target := MaxEnergy / m.EnergyCost * m.EnergyCost
	if d.self.Energy >= target {
		return 0, false
	}
	if d.opp.Shields == 0 && d.dmg[s] >= d.opp.HP {
		return 0, false
	}
	survives := d.self.HP > 2*d.oppBasic || d.opp.CycleMS()-d.self.CycleMS() > TimingLeadMS
	if !survives {
		return 0, false
	}
	if alt := d.selfBuffingNear(s); alt >= 0 {
		return alt, true
	}
	return -1, true
}

func (d *decider) deferToThreat() (int, bool) {
	s := d.strongestReady()
	if !d.self.selfDebuffing(d.self.Specials[s]) || d.self.Shields > 0 {
		return 0, false
	}
	threat := false
	for _, m := range d.opp.Specials {
		if d.opp.Energy >= m.EnergyCost && Damage(d.opp, d.self, m) >= d.self.HP {
			threat = true
			break
		}
	}
	if !threat {
		return 0, false
	}
	if alt := d.selfBuffingNear(s); alt >= 0 {
		return alt, true
	}
	return -1, true
}

// tiedWith lists slot plus every affordable special with the same cost and
// DPE.
func (d *decider) tiedWith(slot int) []int {
	m := d.self.Specials[slot]
	pool := []int{slot}
	for _, s := range d.ready {
		o := d.self.Specials[s]
		if s != slot && o.EnergyCost == m.EnergyCost && o.DPE() == m.DPE() {
			pool = append(pool, s)
		}
	}
	return pool
}

func (d *decider) tieBreak(pool []int) int {
	if len(pool) == 1 {
		return pool[0]
	}
	opts := make([]WeightedOption, 0, len(pool))
	for _, s := range pool {
		opts = append(opts, d.option(s))
	}
	if d.env.RandomTieBreak && d.env.Rng != nil {
		return ChooseOption(d.env.Rng, opts).Slot
	}
	best := opts[0]
	for _, o := range opts[1:] {
		if o.Weight > best.Weight || (o.Weight == best.Weight && o.Move.EnergyCost < best.Move.EnergyCost) {
			best = o
		}
	}
	return best.Slot
}

func (d *decider) option(slot int) WeightedOption {
	m := d.self.Specials[slot]
	w := float64(OptionBaseWeight)
	if d.opp.Shields == 0 && d.dmg[slot] >= d.opp.HP {
		w *= LethalWeightMul
	}
	if m.EnergyCost <= CheapMoveCost {
		w *= CheapWeightMul
	}
	if d.self.selfDebuffing(m) {
		w *= SelfDebuffWeightMul
	}
	return WeightedOption{Label: m.ID, Weight: w, Slot: slot, Move: m}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
