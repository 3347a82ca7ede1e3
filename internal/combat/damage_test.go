package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pvpsim/internal/cp"
)

func TestDamageKnownScenario(t *testing.T) {
	bubble := &Move{ID: "bubble", Type: "water", Power: 8, Kind: KindBasic, EnergyGain: 11, Turns: 3}
	att := NewCombatant(species("azumarill", 112.2, 152.3, 225, "water", "fairy"), 40, cp.IVs{Atk: 0, Def: 15, HP: 15}, bubble)
	def := NewCombatant(species("target", 170, 130, 200, "fire"), 40, cp.IVs{}, basicMove("tackle", 3, 3, 1))

	assert.Equal(t, 1500, bubble.CooldownMS())
	for i := 0; i < 3; i++ {
		assert.Equal(t, 9, Damage(att, def, bubble))
	}
	assert.Equal(t, 189, att.MaxHP())
}

func TestDamageNeverBelowOne(t *testing.T) {
	weak := specialMove("splash", 0, 35)
	att := NewCombatant(species("small", 10, 10, 100, "water"), 1, cp.IVs{}, basicMove("nothing", 0, 1, 1), weak)
	def := NewCombatant(species("wall", 500, 500, 500, "steel"), 50, cp.IVs{Def: 15}, basicMove("tackle", 3, 3, 1))

	assert.Equal(t, 1, Damage(att, def, weak))
	assert.Equal(t, 1, Damage(att, def, att.Basic))

	def.Stages = [2]int{0, 4}
	assert.Equal(t, 1, Damage(att, def, weak))
}

func TestDamageZeroStatsFallBack(t *testing.T) {
	m := specialMove("hit", 100, 50)
	att := NewCombatant(species("a", 100, 100, 100, "water"), 0, cp.IVs{}, basicMove("b", 3, 3, 1), m)
	def := NewCombatant(species("d", 100, 100, 100, "water"), 0, cp.IVs{}, basicMove("b", 3, 3, 1))
	assert.Equal(t, 0, def.MaxHP())
	assert.Equal(t, 1, Damage(att, def, m))
}

func TestDamageStabAndStages(t *testing.T) {
	hit := &Move{ID: "surf", Type: "water", Power: 100, Kind: KindSpecial, EnergyCost: 50}
	att := mirror("a", 200, basicMove("b", 3, 3, 1), hit)
	def := mirror("d", 200, basicMove("b", 3, 3, 1))

	// water vs water resists and water STAB applies: 0.5*100*1.2*0.625*1.3
	assert.Equal(t, 49, Damage(att, def, hit))

	att.Stages[0] = 2
	assert.Greater(t, Damage(att, def, hit), 49)
	assert.Equal(t, 49, DamageWith(att, def, hit, 1, false))
	assert.Less(t, DamageWith(att, def, hit, 0.25, false), 49)
}

func TestStageMultiplierClamps(t *testing.T) {
	assert.Equal(t, 0.5, StageMultiplier(-4))
	assert.Equal(t, 0.5, StageMultiplier(-9))
	assert.Equal(t, 1.0, StageMultiplier(0))
	assert.Equal(t, 2.0, StageMultiplier(4))
	assert.Equal(t, 2.0, StageMultiplier(7))
}

func TestEffectiveness(t *testing.T) {
	cases := []struct {
		move string
		def  []string
		want float64
	}{
		{"water", []string{"fire"}, 1.6},
		{"electric", []string{"ground"}, 0.390625},
		{"fire", []string{"water", "rock"}, 0.390625},
		{"ground", []string{"fire", "rock"}, 2.56},
		{"normal", []string{"water"}, 1.0},
		{"fairy", []string{"dragon", "none"}, 1.6},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, Effectiveness(c.move, c.def), 1e-9, c.move)
	}
}

func TestDuelRating(t *testing.T) {
	assert.Equal(t, 500, DuelRating(100, 100, 100, 100))
	assert.Equal(t, 1000, DuelRating(100, 100, 100, 0))
	assert.Equal(t, 0, DuelRating(100, 100, 0, 100))
	assert.Equal(t, 500, DuelRating(0, 0, 0, 0))

	for _, hp := range [][2]int{{37, 80}, {1, 199}, {150, 3}, {0, 0}, {120, 120}} {
		a := DuelRating(150, 200, hp[0], hp[1])
		b := DuelRating(200, 150, hp[1], hp[0])
		assert.InDelta(t, 1000, a+b, 1, "hp %v", hp)
		assert.GreaterOrEqual(t, a, 0)
		assert.LessOrEqual(t, a, 1000)
	}
}

func TestSpeciesRuleForcesBasicDamage(t *testing.T) {
	slash := specialMove("gyro_ball", 80, 60)
	shield := NewCombatant(species("aegislash_shield", 97, 272, 155, "steel", "ghost"), 40, cp.IVs{},
		basicMove("air_slash", 14, 8, 3), slash)
	shield.SpecialForm = &cp.Stats{Atk: 272, Def: 97, HP: 155}
	shield.Reset()
	plain := NewCombatant(species("aegislash_twin", 97, 272, 155, "steel", "ghost"), 40, cp.IVs{},
		basicMove("air_slash", 14, 8, 3), slash)
	def := mirror("d", 200, basicMove("b", 3, 3, 1))

	assert.Equal(t, 1, Damage(shield, def, shield.Basic))
	assert.Greater(t, Damage(plain, def, plain.Basic), 1)
	require.Greater(t, Damage(shield, def, slash), Damage(plain, def, slash))
	assert.True(t, shield.selfDebuffing(slash))
	assert.False(t, plain.selfDebuffing(slash))
}
