package combat

import (
	"fmt"

	"pvpsim/internal/config"
	"pvpsim/internal/cp"
)

// DefaultLevel is used when a combatant gives neither a level nor a CP cap.
const DefaultLevel = 40.0

// Dex indexes the species and move records of a game master.
type Dex struct {
	moves   map[string]*Move
	species map[string]*Species
}

func NewDex(gm *config.GameMaster) (*Dex, error) {
	d := &Dex{
		moves:   map[string]*Move{},
		species: map[string]*Species{},
	}
	if gm == nil {
		return d, nil
	}
	for _, md := range gm.Moves {
		m, err := moveFromDef(md)
		if err != nil {
			return nil, err
		}
		d.moves[m.ID] = m
	}
	for _, sd := range gm.Species {
		for _, t := range sd.Types {
			if t != "none" && !KnownType(t) {
				return nil, fmt.Errorf("species %s: unknown type %q", sd.ID, t)
			}
		}
		for _, id := range append(append([]string{}, sd.BasicMoves...), sd.SpecialMoves...) {
			if _, ok := d.moves[id]; !ok {
				return nil, fmt.Errorf("species %s: %w: %s", sd.ID, ErrUnknownMove, id)
			}
		}
		d.species[sd.ID] = &Species{
			ID:           sd.ID,
			Name:         sd.Name,
			Dex:          sd.Dex,
			Base:         sd.Base,
			Types:        sd.Types,
			BasicMoves:   sd.BasicMoves,
			SpecialMoves: sd.SpecialMoves,
		}
	}
	return d, nil
}

func moveFromDef(md config.MoveDef) (*Move, error) {
	if md.ID == "" {
		return nil, fmt.Errorf("%w: missing id", ErrBadMove)
	}
	if md.Power < 0 || md.Energy < 0 || md.Turns < 0 {
		return nil, fmt.Errorf("%w: %s has negative values", ErrBadMove, md.ID)
	}
	if !KnownType(md.Type) {
		return nil, fmt.Errorf("%w: %s has unknown type %q", ErrBadMove, md.ID, md.Type)
	}
	m := &Move{ID: md.ID, Name: md.Name, Type: md.Type, Power: md.Power}
	if m.Name == "" {
		m.Name = md.ID
	}
	if md.Turns > 0 {
		m.Kind = KindBasic
		m.EnergyGain = md.Energy
		m.Turns = md.Turns
	} else {
		m.Kind = KindSpecial
		m.EnergyCost = md.Energy
	}
	if b := md.Buffs; b != nil && (b.Atk != 0 || b.Def != 0) {
		if b.Chance < 0 || b.Chance > 1 {
			return nil, fmt.Errorf("%w: %s buff chance %.2f", ErrBadMove, md.ID, b.Chance)
		}
		target := BuffSelf
		switch b.Target {
		case "", "self":
		case "opponent":
			target = BuffOpponent
		default:
			return nil, fmt.Errorf("%w: %s buff target %q", ErrBadMove, md.ID, b.Target)
		}
		m.Buff = &Buff{Target: target, Stages: [2]int{b.Atk, b.Def}, Chance: b.Chance}
	}
	return m, nil
}

func (d *Dex) Move(id string) (*Move, error) {
	m, ok := d.moves[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMove, id)
	}
	return m, nil
}

func (d *Dex) Species(id string) (*Species, error) {
	s, ok := d.species[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSpecies, id)
	}
	return s, nil
}

func (d *Dex) SpeciesIDs() []string {
	out := make([]string, 0, len(d.species))
	for id := range d.species {
		out = append(out, id)
	}
	return out
}

// Build turns a combatant definition into a ready-to-battle Combatant.
// Missing moves default to the first entries of the species movepool.
func (d *Dex) Build(def config.CombatantDef) (*Combatant, error) {
	sp, err := d.Species(def.Species)
	if err != nil {
		return nil, err
	}
	if err := def.IVs.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", sp.ID, err)
	}
	level, ivs := def.Level, def.IVs
	switch {
	case def.CPCap > 0:
		best := cp.BestSpread(sp.Base, def.CPCap, def.Level)
		level, ivs = best.Level, best.IVs
	case level == 0:
		level = DefaultLevel
	case !cp.ValidLevel(level):
		return nil, fmt.Errorf("%s: level %.1f out of range", sp.ID, level)
	}

	basicID := def.Basic
	if basicID == "" {
		if len(sp.BasicMoves) == 0 {
			return nil, fmt.Errorf("%s: %w", sp.ID, ErrNoBasicMove)
		}
		basicID = sp.BasicMoves[0]
	}
	basic, err := d.legalMove(sp, basicID, KindBasic)
	if err != nil {
		return nil, err
	}

	specialIDs := def.Specials
	if len(specialIDs) == 0 && len(sp.SpecialMoves) > 0 {
		specialIDs = sp.SpecialMoves[:1]
	}
	if len(specialIDs) > MaxSpecials {
		return nil, fmt.Errorf("%s: at most %d special moves, got %d", sp.ID, MaxSpecials, len(specialIDs))
	}
	specials := make([]*Move, 0, len(specialIDs))
	for _, id := range specialIDs {
		m, err := d.legalMove(sp, id, KindSpecial)
		if err != nil {
			return nil, err
		}
		specials = append(specials, m)
	}

	bait, err := ParseBaitMode(def.AI.BaitShields)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sp.ID, err)
	}
	shields := DefaultShields
	if def.Shields != nil {
		shields = *def.Shields
	}
	if shields < 0 || shields > DefaultShields {
		return nil, fmt.Errorf("%s: shields %d out of range 0-%d", sp.ID, shields, DefaultShields)
	}
	if def.Energy < 0 || def.Energy > MaxEnergy {
		return nil, fmt.Errorf("%s: energy %d out of range 0-%d", sp.ID, def.Energy, MaxEnergy)
	}

	var form *cp.Stats
	formLevel := level
	if id := RuleFor(sp.ID).SpecialFormID; id != "" {
		if alt, ok := d.species[id]; ok {
			base := alt.Base
			form = &base
			formLevel = FormLevel(level, def.CPCap)
		}
	}

	c := &Combatant{
		Species:      sp,
		Level:        level,
		IVs:          ivs,
		Corrupted:    def.Corrupted,
		Basic:        basic,
		Specials:     specials,
		AI:           AIConfig{Bait: bait, OptimizeTiming: def.AI.OptimizeTiming, FarmEnergy: def.AI.FarmEnergy},
		StartShields: shields,
		StartEnergy:  def.Energy,
		SpecialForm:  form,
		FormLevel:    formLevel,
	}
	c.Reset()
	return c, nil
}

func (d *Dex) legalMove(sp *Species, id string, kind MoveKind) (*Move, error) {
	m, err := d.Move(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sp.ID, err)
	}
	if m.Kind != kind || !sp.Learns(id) {
		return nil, fmt.Errorf("%s: %w: %s (%s)", sp.ID, ErrIllegalMove, id, kind)
	}
	return m, nil
}
