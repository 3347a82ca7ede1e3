package combat

import (
	"fmt"
	"math"

	"pvpsim/internal/cp"
)

type BaitMode int

const (
	BaitOff BaitMode = iota
	BaitOn
	BaitAlways
)

func ParseBaitMode(s string) (BaitMode, error) {
	switch s {
	case "", "off", "false":
		return BaitOff, nil
	case "on", "true":
		return BaitOn, nil
	case "always":
		return BaitAlways, nil
	}
	return BaitOff, fmt.Errorf("unknown bait mode %q", s)
}

type AIConfig struct {
	Bait           BaitMode
	OptimizeTiming bool
	FarmEnergy     bool
}

// Combatant holds a build (species, level, IVs, moves) plus mutable battle
// state. Reset restores the battle state from the build.
type Combatant struct {
	Species   *Species
	Level     float64
	IVs       cp.IVs
	Corrupted bool
	Basic     *Move
	Specials  []*Move
	AI        AIConfig

	// SpecialForm, when set, is the base stat line special moves attack
	// with, at FormLevel.
	SpecialForm *cp.Stats
	FormLevel   float64

	StartShields int
	StartEnergy  int

	Index    int
	HP       int
	Energy   int
	Shields  int
	Stages   [2]int // attack, defense
	Cooldown int    // ticks left on the current basic move

	meters    [MaxSpecials]float64
	stats     cp.Battle
	formStats cp.Battle
	rule      SpeciesRule
}

func NewCombatant(sp *Species, level float64, iv cp.IVs, basic *Move, specials ...*Move) *Combatant {
	c := &Combatant{
		Species:      sp,
		Level:        level,
		IVs:          iv,
		Basic:        basic,
		Specials:     specials,
		StartShields: DefaultShields,
	}
	c.Reset()
	return c
}

func (c *Combatant) Reset() {
	c.rule = RuleFor(c.Species.ID)
	c.stats = cp.Compute(c.Species.Base, c.IVs, c.Level, c.Corrupted)
	c.formStats = c.stats
	if c.SpecialForm != nil {
		level := c.FormLevel
		if level == 0 {
			level = c.Level
		}
		c.formStats = cp.Compute(*c.SpecialForm, c.IVs, level, c.Corrupted)
	}
	c.HP = c.stats.HP
	c.Energy = clampInt(c.StartEnergy, 0, MaxEnergy)
	c.Shields = clampInt(c.StartShields, 0, DefaultShields)
	c.Stages = [2]int{}
	c.Cooldown = 0
	for i := range c.meters {
		c.meters[i] = 0
		if i < len(c.Specials) && c.Specials[i].Buff != nil && c.Specials[i].Buff.Chance != 0.5 {
			c.meters[i] = c.Specials[i].Buff.Chance
		}
	}
}

func (c *Combatant) Stats() cp.Battle { return c.stats }
func (c *Combatant) MaxHP() int       { return c.stats.HP }
func (c *Combatant) Alive() bool      { return c.HP > 0 }

func (c *Combatant) Name() string {
	if c.Species.Name != "" {
		return c.Species.Name
	}
	return c.Species.ID
}

// CycleMS is the duration of one basic move.
func (c *Combatant) CycleMS() int {
	if c.Basic == nil {
		return TickMS
	}
	return c.Basic.CooldownMS()
}

func (c *Combatant) attackFor(m *Move) float64 {
	if m.Kind == KindSpecial {
		return c.formStats.Atk
	}
	return c.stats.Atk
}

// EffectiveAtk is the staged attack stat, used to order simultaneous specials.
func (c *Combatant) EffectiveAtk() float64 { return c.stats.Atk * StageMultiplier(c.Stages[0]) }

func (c *Combatant) CanAfford(slot int) bool {
	return slot >= 0 && slot < len(c.Specials) && c.Energy >= c.Specials[slot].EnergyCost
}

func (c *Combatant) selfDebuffing(m *Move) bool {
	return m.SelfDebuffing() || (m.Kind == KindSpecial && c.rule.SpecialsSelfDebuffing)
}

func (c *Combatant) gainEnergy(n int) {
	c.Energy = clampInt(c.Energy+n, 0, MaxEnergy)
}

// spendEnergy does not clamp; callers check CanAfford first.
func (c *Combatant) spendEnergy(n int) {
	c.Energy -= n
}

func (c *Combatant) takeDamage(n int) {
	c.HP -= n
	if c.HP < 0 {
		c.HP = 0
	}
}

func (c *Combatant) consumeShield() bool {
	if c.Shields <= 0 {
		return false
	}
	c.Shields--
	return true
}

func (c *Combatant) shiftStages(d [2]int) {
	for i := range c.Stages {
		c.Stages[i] = clampInt(c.Stages[i]+d[i], -MaxStage, MaxStage)
	}
}

// advanceMeter adds chance to the slot's meter and reports whether it
// crossed a whole number.
func (c *Combatant) advanceMeter(slot int, chance float64) bool {
	before := c.meters[slot]
	c.meters[slot] += chance
	return math.Floor(c.meters[slot]) > math.Floor(before)
}

// Clone copies the build and battle state. Moves are shared.
func (c *Combatant) Clone() *Combatant {
	n := *c
	n.Specials = append([]*Move(nil), c.Specials...)
	return &n
}
