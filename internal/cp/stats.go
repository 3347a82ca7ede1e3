package cp

import (
	"fmt"
	"math"
	"sort"
)

const (
	CorruptedAtkMul = 1.2
	CorruptedDefMul = 0.833333
	MaxIV           = 15
	MinCP           = 10
)

type Stats struct {
	Atk float64 `yaml:"atk" json:"atk"`
	Def float64 `yaml:"def" json:"def"`
	HP  float64 `yaml:"hp" json:"hp"`
}

type IVs struct {
	Atk int `yaml:"atk" json:"atk"`
	Def int `yaml:"def" json:"def"`
	HP  int `yaml:"hp" json:"hp"`
}

func (iv IVs) Validate() error {
	for _, v := range [3]int{iv.Atk, iv.Def, iv.HP} {
		if v < 0 || v > MaxIV {
			return fmt.Errorf("iv %d out of range 0-%d", v, MaxIV)
		}
	}
	return nil
}

// Battle is the level-scaled stat line used in combat. HP is floored.
type Battle struct {
	Atk float64
	Def float64
	HP  int
}

func Compute(base Stats, iv IVs, level float64, corrupted bool) Battle {
	m := Scale(level)
	atkMul, defMul := 1.0, 1.0
	if corrupted {
		atkMul, defMul = CorruptedAtkMul, CorruptedDefMul
	}
	return Battle{
		Atk: (base.Atk + float64(iv.Atk)) * m * atkMul,
		Def: (base.Def + float64(iv.Def)) * m * defMul,
		HP:  int(math.Floor((base.HP + float64(iv.HP)) * m)),
	}
}

// CP is floor(atk * sqrt(def) * sqrt(hp) * m^2 / 10), never below MinCP.
func CP(base Stats, iv IVs, level float64, corrupted bool) int {
	m := Scale(level)
	atk := base.Atk + float64(iv.Atk)
	def := base.Def + float64(iv.Def)
	hp := base.HP + float64(iv.HP)
	if corrupted {
		atk *= CorruptedAtkMul
		def *= CorruptedDefMul
	}
	v := int(math.Floor(atk * math.Sqrt(def) * math.Sqrt(hp) * m * m / 10))
	if v < MinCP {
		return MinCP
	}
	return v
}

type Spread struct {
	IVs     IVs     `json:"ivs"`
	Level   float64 `json:"level"`
	CP      int     `json:"cp"`
	Product float64 `json:"product"`
}

// OptimizeIVs walks all 16^3 spreads, takes the highest level under cpCap
// (and levelCap) for each, and returns them by stat product, best first.
func OptimizeIVs(base Stats, cpCap int, levelCap float64) []Spread {
	if levelCap <= 0 || levelCap > MaxLevel {
		levelCap = MaxLevel
	}
	out := make([]Spread, 0, 16*16*16)
	for a := 0; a <= MaxIV; a++ {
		for d := 0; d <= MaxIV; d++ {
			for h := 0; h <= MaxIV; h++ {
				iv := IVs{Atk: a, Def: d, HP: h}
				best := Spread{IVs: iv, Level: MinLevel, CP: CP(base, iv, MinLevel, false)}
				for lvl := MinLevel; lvl <= levelCap; lvl += LevelStep {
					c := CP(base, iv, lvl, false)
					if cpCap > 0 && c > cpCap {
						break
					}
					best.Level, best.CP = lvl, c
				}
				st := Compute(base, iv, best.Level, false)
				best.Product = st.Atk * st.Def * float64(st.HP)
				out = append(out, best)
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Product > out[j].Product })
	return out
}

func BestSpread(base Stats, cpCap int, levelCap float64) Spread {
	return OptimizeIVs(base, cpCap, levelCap)[0]
}
