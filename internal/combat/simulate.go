package combat

import (
	"encoding/json"
	"math/rand"
	"sort"

	"go.uber.org/zap"

	"pvpsim/internal/util"
)

// DecideFunc is the signature shared by the optimal and randomized policies.
type DecideFunc func(env *Env, self, opp *Combatant) *Action

// Battle drives two combatants through the fixed-tick loop.
type Battle struct {
	combatants [2]*Combatant
	settings   Settings
	log        *zap.Logger
	rng        *rand.Rand
	policy     DecideFunc

	env    Env
	events []Event
	record bool
}

type Option func(*Battle)

func WithSettings(s Settings) Option { return func(b *Battle) { b.settings = s } }
func WithLogger(l *zap.Logger) Option {
	return func(b *Battle) {
		if l != nil {
			b.log = l
		}
	}
}

// WithRand overrides the source otherwise seeded from Settings.Seed.
func WithRand(r *rand.Rand) Option { return func(b *Battle) { b.rng = r } }

func NewBattle(a, b *Combatant, opts ...Option) *Battle {
	bt := &Battle{
		combatants: [2]*Combatant{a, b},
		settings:   DefaultSettings(),
		log:        nopLogger,
	}
	for _, o := range opts {
		o(bt)
	}
	if bt.rng == nil {
		bt.rng = util.NewRand(bt.settings.Seed)
	}
	bt.policy = Decide
	if bt.settings.Policy == PolicyRandom {
		bt.policy = DecideRandom
	}
	return bt
}

func (b *Battle) Combatant(i int) *Combatant { return b.combatants[i&1] }

// Simulate resets both combatants and runs the battle to a faint or the time
// limit. With record set, the result carries the event timeline.
func (b *Battle) Simulate(record bool) (Result, error) {
	a, d := b.combatants[0], b.combatants[1]
	if a == nil || d == nil {
		return Result{}, ErrUnassigned
	}
	for i, c := range b.combatants {
		c.Index = i
		c.Reset()
	}
	b.record = record
	b.events = nil
	b.env = Env{
		Mode:           b.settings.Mode,
		Rng:            b.rng,
		Log:            b.log,
		SearchLimit:    b.settings.SearchLimit,
		RandomTieBreak: b.settings.RandomTieBreak,
	}

	for b.env.Time < TimeLimitMS {
		b.step()
		if !a.Alive() || !d.Alive() {
			break
		}
		b.env.Time += TickMS
		b.env.Tick++
	}

	res := Result{
		HPA:           a.HP,
		HPB:           d.HP,
		RatingA:       DuelRating(a.MaxHP(), d.MaxHP(), a.HP, d.HP),
		RatingB:       DuelRating(d.MaxHP(), a.MaxHP(), d.HP, a.HP),
		Ticks:         b.env.Tick,
		TimeRemaining: float64(TimeLimitMS-b.env.Time) / 1000,
	}
	switch {
	case a.Alive() && !d.Alive():
		res.Winner = 0
	case d.Alive() && !a.Alive():
		res.Winner = 1
	case res.RatingA > res.RatingB:
		res.Winner = 0
	case res.RatingB > res.RatingA:
		res.Winner = 1
	default:
		res.Winner = Draw
	}
	if record {
		res.Timeline = b.events
	}
	b.log.Debug("battle finished",
		zap.String("a", a.Name()),
		zap.String("b", d.Name()),
		zap.Int("winner", res.Winner),
		zap.Int("ticks", res.Ticks),
		zap.Int("rating_a", res.RatingA),
	)
	return res, nil
}

// step decides for every combatant off cooldown against the same snapshot,
// resolves specials by attack priority and basic moves after them, and only
// then counts down the cooldowns of combatants that were waiting.
func (b *Battle) step() {
	var acts []Action
	var waiting []*Combatant
	for i, c := range b.combatants {
		if c.Cooldown > 0 {
			waiting = append(waiting, c)
			continue
		}
		act := b.policy(&b.env, c, b.combatants[1-i])
		if act == nil || !c.CanAfford(act.Slot) {
			act = &Action{Actor: i, Kind: KindBasic, Slot: -1, Tick: b.env.Tick}
		}
		acts = append(acts, *act)
	}
	sort.SliceStable(acts, func(i, j int) bool {
		x, y := acts[i], acts[j]
		if x.Kind != y.Kind {
			return x.Kind == KindSpecial
		}
		if x.Kind == KindSpecial {
			return b.combatants[x.Actor].EffectiveAtk() > b.combatants[y.Actor].EffectiveAtk()
		}
		return false
	})
	for _, act := range acts {
		if act.Kind == KindSpecial {
			if !b.combatants[act.Actor].Alive() {
				continue
			}
			b.special(act.Actor, act.Slot)
			continue
		}
		b.basic(act.Actor)
	}
	for _, c := range waiting {
		c.Cooldown--
	}
}

func (b *Battle) basic(i int) {
	att, def := b.combatants[i], b.combatants[1-i]
	m := att.Basic
	dmg := Damage(att, def, m)
	def.takeDamage(dmg)
	att.gainEnergy(m.EnergyGain)
	att.Cooldown = max(m.Turns-1, 0)
	b.emit(Event{Actor: i, Action: KindBasic.String(), Move: m.ID, Damage: dmg, Energy: m.EnergyGain})
}

func (b *Battle) special(i, slot int) {
	att, def := b.combatants[i], b.combatants[1-i]
	m := att.Specials[slot]
	att.spendEnergy(m.EnergyCost)
	shielded := def.consumeShield()
	dmg := ShieldedDamage
	if !shielded {
		dmg = Damage(att, def, m)
	}
	def.takeDamage(dmg)
	buffed := b.rollBuff(att, slot)
	if buffed {
		if m.Buff.Target == BuffSelf {
			att.shiftStages(m.Buff.Stages)
		} else {
			def.shiftStages(m.Buff.Stages)
		}
	}
	att.Cooldown = 0
	b.emit(Event{Actor: i, Action: KindSpecial.String(), Move: m.ID, Damage: dmg, Energy: -m.EnergyCost, Shielded: shielded, Buffed: buffed})
}

// rollBuff decides whether a special's stat change applies. Deterministic
// mode fires each time the slot's meter crosses a whole number.
func (b *Battle) rollBuff(c *Combatant, slot int) bool {
	m := c.Specials[slot]
	if !m.HasBuff() {
		return false
	}
	p := m.Buff.Chance
	switch {
	case p >= 1:
		return true
	case p <= 0:
		return false
	}
	switch b.settings.BuffMode {
	case BuffAlways:
		return true
	case BuffRandom:
		return b.rng.Float64() < p
	default:
		return c.advanceMeter(slot, p)
	}
}

func (b *Battle) emit(ev Event) {
	if !b.record {
		return
	}
	ev.Tick = b.env.Tick
	ev.Time = b.env.Time
	ev.HP = [2]int{b.combatants[0].HP, b.combatants[1].HP}
	b.events = append(b.events, ev)
}

func MarshalPretty(v any) []byte {
	out, _ := json.MarshalIndent(v, "", "  ")
	return out
}
