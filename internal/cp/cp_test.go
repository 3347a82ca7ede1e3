package cp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaleTable(t *testing.T) {
	levels := Levels()
	require.Len(t, levels, 99)
	assert.Equal(t, 1.0, levels[0])
	assert.Equal(t, 50.0, levels[98])

	cases := []struct {
		level float64
		want  float64
	}{
		{1, 0.0939999967813491},
		{1.5, 0.135137430784308},
		{20, 0.597400009632110},
		{40, 0.790300011634826},
		{40.5, 0.792803950958807},
		{50, 0.840300023555755},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Scale(c.level), "level %v", c.level)
	}
	for i, lvl := range levels {
		assert.Equal(t, scaleTable[i], Scale(lvl))
	}
}

func TestScaleOutOfRange(t *testing.T) {
	assert.Zero(t, Scale(0.5))
	assert.Zero(t, Scale(50.5))
	assert.False(t, ValidLevel(51))
	assert.True(t, ValidLevel(27.5))
}

func TestCP(t *testing.T) {
	base := Stats{Atk: 112, Def: 152, HP: 225}
	assert.Equal(t, 1400, CP(base, IVs{Atk: 0, Def: 15, HP: 15}, 40, false))
	assert.Equal(t, MinCP, CP(Stats{Atk: 1, Def: 1, HP: 1}, IVs{}, 1, false))
	assert.Greater(t, CP(base, IVs{}, 40, true), CP(base, IVs{}, 40, false))
}

func TestComputeCorrupted(t *testing.T) {
	base := Stats{Atk: 200, Def: 150, HP: 180}
	plain := Compute(base, IVs{}, 30, false)
	dark := Compute(base, IVs{}, 30, true)
	assert.InDelta(t, plain.Atk*CorruptedAtkMul, dark.Atk, 1e-9)
	assert.InDelta(t, plain.Def*CorruptedDefMul, dark.Def, 1e-9)
	assert.Equal(t, plain.HP, dark.HP)
}

func TestOptimizeIVs(t *testing.T) {
	base := Stats{Atk: 112, Def: 152, HP: 225}
	spreads := OptimizeIVs(base, 1500, 50)
	require.Len(t, spreads, 16*16*16)
	for i, s := range spreads {
		assert.LessOrEqual(t, s.CP, 1500)
		if i > 0 {
			assert.GreaterOrEqual(t, spreads[i-1].Product, s.Product)
		}
	}
	assert.Equal(t, spreads[0], BestSpread(base, 1500, 50))
}

func TestIVValidate(t *testing.T) {
	require.NoError(t, IVs{Atk: 15, Def: 0, HP: 7}.Validate())
	require.Error(t, IVs{Atk: 16}.Validate())
	require.Error(t, IVs{HP: -1}.Validate())
}
