package combat

import "math"

type MoveKind int

const (
	KindBasic MoveKind = iota
	KindSpecial
)

func (k MoveKind) String() string {
	if k == KindSpecial {
		return "special"
	}
	return "basic"
}

type BuffTarget int

const (
	BuffSelf BuffTarget = iota
	BuffOpponent
)

// Buff is a stat-stage side effect: Stages holds the attack and defense deltas.
type Buff struct {
	Target BuffTarget
	Stages [2]int
	Chance float64
}

// Move is an immutable definition shared by every battle that uses it.
type Move struct {
	ID    string
	Name  string
	Type  string
	Power float64
	Kind  MoveKind

	EnergyGain int
	Turns      int

	EnergyCost int
	Buff       *Buff
}

func (m *Move) CooldownMS() int { return m.Turns * TickMS }

// DPE is power per point of energy; zero-cost moves report 0.
func (m *Move) DPE() float64 {
	if m.EnergyCost <= 0 {
		return 0
	}
	return m.Power / float64(m.EnergyCost)
}

func (m *Move) HasBuff() bool {
	return m.Buff != nil && (m.Buff.Stages[0] != 0 || m.Buff.Stages[1] != 0)
}

func (m *Move) SelfDebuffing() bool {
	return m.Buff != nil && m.Buff.Target == BuffSelf && (m.Buff.Stages[0] < 0 || m.Buff.Stages[1] < 0)
}

func (m *Move) SelfBuffing() bool {
	return m.Buff != nil && m.Buff.Target == BuffSelf && (m.Buff.Stages[0] > 0 || m.Buff.Stages[1] > 0)
}

func (m *Move) SelfAttackDebuffing() bool {
	return m.Buff != nil && m.Buff.Target == BuffSelf && m.Buff.Stages[0] < 0
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	if b <= 0 {
		return math.MaxInt32
	}
	return (a + b - 1) / b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
