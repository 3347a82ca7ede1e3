package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAllAssets(t *testing.T) {
	gm, sc, roster, err := LoadAll(filepath.Join("..", "..", "assets"))
	require.NoError(t, err)

	assert.NotEmpty(t, gm.Species)
	assert.NotEmpty(t, gm.Moves)
	var closeCombat *MoveDef
	for i := range gm.Moves {
		if gm.Moves[i].ID == "close_combat" {
			closeCombat = &gm.Moves[i]
		}
	}
	require.NotNil(t, closeCombat)
	require.NotNil(t, closeCombat.Buffs)
	assert.Equal(t, "self", closeCombat.Buffs.Target)
	assert.Equal(t, -2, closeCombat.Buffs.Def)

	assert.Equal(t, "azumarill", sc.Combatants[0].Species)
	assert.Equal(t, "on", sc.Combatants[0].AI.BaitShields)
	assert.Equal(t, int64(12345), sc.Settings.Seed)

	require.NotNil(t, roster)
	assert.Equal(t, []int{0, 1, 2}, roster.Shields)
	assert.NotEmpty(t, roster.Entrants)
}

func TestLoadAllWithoutRoster(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	write("gamemaster.yaml", "moves:\n  - {id: tackle, type: normal, power: 3, energy: 3, turns: 1}\n")
	write("scenario.yaml", `
combatants:
  - {species: a, shields: 0}
  - {species: b, level: 25.5, ivs: {atk: 1, def: 2, hp: 3}}
`)

	gm, sc, roster, err := LoadAll(dir)
	require.NoError(t, err)
	assert.Nil(t, roster)
	assert.Len(t, gm.Moves, 1)
	require.NotNil(t, sc.Combatants[0].Shields)
	assert.Equal(t, 0, *sc.Combatants[0].Shields)
	assert.Nil(t, sc.Combatants[1].Shields)
	assert.Equal(t, 25.5, sc.Combatants[1].Level)
	assert.Equal(t, 3, sc.Combatants[1].IVs.HP)
}

func TestLoadErrors(t *testing.T) {
	_, err := LoadGameMaster(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, os.IsNotExist(err))

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("moves: [\n"), 0o644))
	_, err = LoadGameMaster(path)
	assert.ErrorContains(t, err, "parse")
}

func TestLoadRosterDefaultsShields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entrants:\n  - {species: a}\n"), 0o644))
	r, err := LoadRoster(path)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, r.Shields)
}
