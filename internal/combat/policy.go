package combat

// Battle clock and resource limits.
const (
	TickMS         = 500
	TimeLimitMS    = 240000
	MaxEnergy      = 100
	DefaultShields = 2
	MaxSpecials    = 2
	MaxStage       = 4
	Draw           = -1
)

// Decision policy tuning.
const (
	ShieldDamageRatio   = 1.4  // shield when damage >= hp/1.4 ...
	ShieldFastDPT       = 1.5  // ... and the attacker's basic DPT exceeds this
	HeavyDamageRatio    = 2    // damage >= hp/2 with
	HeavyFastDPT        = 2    // basic DPT above this raises the shield weight
	DebuffShieldRatio   = 0.55 // self-attack-debuffing moves are shielded above this hp share
	TimingLeadMS        = 500
	BaitDPERatio        = 1.5
	BaitMaxBasics       = 5
	SimilarEnergy       = 10
	ComparableDPE       = 0.9
	HighHPRatio         = 0.5
	DefaultSearchLimit  = 500
	CheapMoveCost       = 35
	OptionBaseWeight    = 10
	LethalWeightMul     = 4
	CheapWeightMul      = 1.5
	SelfDebuffWeightMul = 0.5
	NoShieldWeight      = 2
	CycleShieldWeight   = 2
	ShieldWeight        = 4
	HeavyShieldWeight   = 12
	RandomBasicWeight   = 10
	RandomEnergyDivisor = 4
	RandomWeakDivisor   = 50
)
