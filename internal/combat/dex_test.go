package combat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pvpsim/internal/config"
	"pvpsim/internal/cp"
)

func testGameMaster() *config.GameMaster {
	return &config.GameMaster{
		Moves: []config.MoveDef{
			{ID: "counter", Type: "fighting", Power: 8, Energy: 7, Turns: 2},
			{ID: "cross_chop", Type: "fighting", Power: 50, Energy: 35},
			{ID: "close_combat", Type: "fighting", Power: 100, Energy: 45,
				Buffs: &config.BuffDef{Target: "self", Def: -2, Chance: 1}},
			{ID: "bubble", Type: "water", Power: 8, Energy: 11, Turns: 3},
		},
		Species: []config.SpeciesDef{
			{ID: "machamp", Name: "Machamp", Dex: 68, Base: cp.Stats{Atk: 234, Def: 159, HP: 207},
				Types: []string{"fighting"}, BasicMoves: []string{"counter"},
				SpecialMoves: []string{"cross_chop", "close_combat"}},
		},
	}
}

func TestNewDexIndexesMoves(t *testing.T) {
	dex, err := NewDex(testGameMaster())
	require.NoError(t, err)

	m, err := dex.Move("counter")
	require.NoError(t, err)
	assert.Equal(t, KindBasic, m.Kind)
	assert.Equal(t, 7, m.EnergyGain)
	assert.Equal(t, 1000, m.CooldownMS())

	cc, err := dex.Move("close_combat")
	require.NoError(t, err)
	assert.Equal(t, KindSpecial, cc.Kind)
	assert.Equal(t, 45, cc.EnergyCost)
	assert.True(t, cc.SelfDebuffing())
	assert.False(t, cc.SelfAttackDebuffing())

	_, err = dex.Move("hyper_beam")
	assert.ErrorIs(t, err, ErrUnknownMove)
	_, err = dex.Species("mew")
	assert.ErrorIs(t, err, ErrUnknownSpecies)
	assert.Equal(t, []string{"machamp"}, dex.SpeciesIDs())
}

func TestNewDexRejectsBadData(t *testing.T) {
	gm := testGameMaster()
	gm.Species[0].SpecialMoves = append(gm.Species[0].SpecialMoves, "dynamic_punch")
	_, err := NewDex(gm)
	assert.ErrorIs(t, err, ErrUnknownMove)

	gm = testGameMaster()
	gm.Moves[2].Buffs.Chance = 1.5
	_, err = NewDex(gm)
	assert.ErrorIs(t, err, ErrBadMove)

	gm = testGameMaster()
	gm.Moves[0].Type = "sound"
	_, err = NewDex(gm)
	assert.ErrorIs(t, err, ErrBadMove)

	gm = testGameMaster()
	gm.Species[0].Types = []string{"fighting", "cosmic"}
	_, err = NewDex(gm)
	assert.ErrorContains(t, err, "cosmic")
}

func TestBuildDefaults(t *testing.T) {
	dex, err := NewDex(testGameMaster())
	require.NoError(t, err)

	c, err := dex.Build(config.CombatantDef{Species: "machamp"})
	require.NoError(t, err)
	assert.Equal(t, DefaultLevel, c.Level)
	assert.Equal(t, "counter", c.Basic.ID)
	require.Len(t, c.Specials, 1)
	assert.Equal(t, "cross_chop", c.Specials[0].ID)
	assert.Equal(t, DefaultShields, c.Shields)
	assert.Equal(t, c.MaxHP(), c.HP)
	assert.Equal(t, BaitOff, c.AI.Bait)
}

func TestBuildFullDefinition(t *testing.T) {
	dex, err := NewDex(testGameMaster())
	require.NoError(t, err)
	one := 1
	c, err := dex.Build(config.CombatantDef{
		Species:   "machamp",
		CPCap:     1500,
		Corrupted: true,
		Basic:     "counter",
		Specials:  []string{"cross_chop", "close_combat"},
		Shields:   &one,
		Energy:    20,
		AI:        config.AIDef{BaitShields: "always", OptimizeTiming: true},
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, cp.CP(c.Species.Base, c.IVs, c.Level, false), 1500)
	assert.Len(t, c.Specials, 2)
	assert.Equal(t, 1, c.Shields)
	assert.Equal(t, 20, c.Energy)
	assert.Equal(t, BaitAlways, c.AI.Bait)
	assert.True(t, c.AI.OptimizeTiming)
	assert.InDelta(t, cp.Compute(c.Species.Base, c.IVs, c.Level, false).Atk*cp.CorruptedAtkMul, c.Stats().Atk, 1e-9)
}

func TestBuildErrors(t *testing.T) {
	dex, err := NewDex(testGameMaster())
	require.NoError(t, err)
	three := 3

	cases := []struct {
		name string
		def  config.CombatantDef
		want error
	}{
		{"unknown species", config.CombatantDef{Species: "mew"}, ErrUnknownSpecies},
		{"unknown move", config.CombatantDef{Species: "machamp", Basic: "karate_chop"}, ErrUnknownMove},
		{"not in movepool", config.CombatantDef{Species: "machamp", Basic: "bubble"}, ErrIllegalMove},
		{"special as basic", config.CombatantDef{Species: "machamp", Basic: "cross_chop"}, ErrIllegalMove},
	}
	for _, c := range cases {
		_, err := dex.Build(c.def)
		assert.ErrorIs(t, err, c.want, c.name)
	}

	_, err = dex.Build(config.CombatantDef{Species: "machamp", Shields: &three})
	assert.Error(t, err)
	_, err = dex.Build(config.CombatantDef{Species: "machamp", Level: 51})
	assert.Error(t, err)
	_, err = dex.Build(config.CombatantDef{Species: "machamp", IVs: cp.IVs{Atk: 16}})
	assert.Error(t, err)
	_, err = dex.Build(config.CombatantDef{Species: "machamp", AI: config.AIDef{BaitShields: "sometimes"}})
	assert.Error(t, err)
}

func TestSettingsFrom(t *testing.T) {
	s, err := SettingsFrom(config.SettingsDef{BuffMode: "random", Mode: "adversarial", Policy: "random", Seed: 9})
	require.NoError(t, err)
	assert.Equal(t, BuffRandom, s.BuffMode)
	assert.Equal(t, ModeAdversarial, s.Mode)
	assert.Equal(t, PolicyRandom, s.Policy)
	assert.Equal(t, DefaultSearchLimit, s.SearchLimit)
	assert.Equal(t, int64(9), s.Seed)

	_, err = SettingsFrom(config.SettingsDef{BuffMode: "never"})
	assert.Error(t, err)
}

func formGameMaster() *config.GameMaster {
	gm := testGameMaster()
	gm.Moves = append(gm.Moves,
		config.MoveDef{ID: "psycho_cut", Type: "psychic", Power: 3, Energy: 9, Turns: 2},
		config.MoveDef{ID: "gyro_ball", Type: "steel", Power: 80, Energy: 60},
	)
	shield := config.SpeciesDef{ID: "aegislash_shield", Base: cp.Stats{Atk: 97, Def: 272, HP: 155},
		Types: []string{"steel", "ghost"}, BasicMoves: []string{"psycho_cut"}, SpecialMoves: []string{"gyro_ball"}}
	blade := shield
	blade.ID = "aegislash_blade"
	blade.Base = cp.Stats{Atk: 250, Def: 97, HP: 155}
	gm.Species = append(gm.Species, shield, blade)
	return gm
}

func TestBuildResolvesSpecialForm(t *testing.T) {
	dex, err := NewDex(formGameMaster())
	require.NoError(t, err)

	c, err := dex.Build(config.CombatantDef{Species: "aegislash_shield", Level: 30})
	require.NoError(t, err)
	require.NotNil(t, c.SpecialForm)
	assert.Equal(t, 250.0, c.SpecialForm.Atk, "form stats come from the blade record")
	assert.Equal(t, 30.0, c.FormLevel)
	assert.InDelta(t, 250*cp.Scale(30), c.attackFor(c.Specials[0]), 1e-9)
	assert.InDelta(t, 97*cp.Scale(30), c.attackFor(c.Basic), 1e-9)

	great, err := dex.Build(config.CombatantDef{Species: "aegislash_shield", CPCap: 1500})
	require.NoError(t, err)
	assert.Equal(t, math.Ceil(great.Level*0.5)+1, great.FormLevel)

	ultra, err := dex.Build(config.CombatantDef{Species: "aegislash_shield", CPCap: 2500})
	require.NoError(t, err)
	assert.Equal(t, math.Ceil(ultra.Level*0.75), ultra.FormLevel)

	gm := formGameMaster()
	gm.Species = gm.Species[:len(gm.Species)-1]
	dex, err = NewDex(gm)
	require.NoError(t, err)
	c, err = dex.Build(config.CombatantDef{Species: "aegislash_shield", Level: 30})
	require.NoError(t, err)
	assert.Nil(t, c.SpecialForm, "missing form record keeps the shield stats")
	assert.Equal(t, c.Stats().Atk, c.attackFor(c.Specials[0]))
}

func TestFormLevel(t *testing.T) {
	assert.Equal(t, 12.0, FormLevel(20.5, 1500))
	assert.Equal(t, 16.0, FormLevel(21, 2500))
	assert.Equal(t, 33.5, FormLevel(33.5, 0))
	assert.Equal(t, cp.MaxLevel, FormLevel(80, 2500))
}
