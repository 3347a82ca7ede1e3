package combat

const (
	SuperEffective   = 1.6
	Neutral          = 1.0
	NotVeryEffective = 0.625
	Immune           = 0.390625
)

// typeChart maps attacking type -> defending type -> multiplier. Missing
// entries are neutral.
var typeChart = map[string]map[string]float64{
	"normal": {"rock": NotVeryEffective, "ghost": Immune, "steel": NotVeryEffective},
	"fighting": {"normal": SuperEffective, "flying": NotVeryEffective, "poison": NotVeryEffective, "rock": SuperEffective,
		"bug": NotVeryEffective, "ghost": Immune, "steel": SuperEffective, "psychic": NotVeryEffective,
		"ice": SuperEffective, "dark": SuperEffective, "fairy": NotVeryEffective},
	"flying": {"fighting": SuperEffective, "rock": NotVeryEffective, "bug": SuperEffective, "steel": NotVeryEffective,
		"grass": SuperEffective, "electric": NotVeryEffective},
	"poison": {"poison": NotVeryEffective, "ground": NotVeryEffective, "rock": NotVeryEffective, "ghost": NotVeryEffective,
		"steel": Immune, "grass": SuperEffective, "fairy": SuperEffective},
	"ground": {"flying": Immune, "poison": SuperEffective, "rock": SuperEffective, "bug": NotVeryEffective,
		"steel": SuperEffective, "fire": SuperEffective, "grass": NotVeryEffective, "electric": SuperEffective},
	"rock": {"fighting": NotVeryEffective, "flying": SuperEffective, "ground": NotVeryEffective, "bug": SuperEffective,
		"steel": NotVeryEffective, "fire": SuperEffective, "ice": SuperEffective},
	"bug": {"fighting": NotVeryEffective, "flying": NotVeryEffective, "poison": NotVeryEffective, "ghost": NotVeryEffective,
		"steel": NotVeryEffective, "fire": NotVeryEffective, "grass": SuperEffective, "psychic": SuperEffective,
		"dark": SuperEffective, "fairy": NotVeryEffective},
	"ghost": {"normal": Immune, "ghost": SuperEffective, "psychic": SuperEffective, "dark": NotVeryEffective},
	"steel": {"rock": SuperEffective, "steel": NotVeryEffective, "fire": NotVeryEffective, "water": NotVeryEffective,
		"electric": NotVeryEffective, "ice": SuperEffective, "fairy": SuperEffective},
	"fire": {"rock": NotVeryEffective, "bug": SuperEffective, "steel": SuperEffective, "fire": NotVeryEffective,
		"water": NotVeryEffective, "grass": SuperEffective, "ice": SuperEffective, "dragon": NotVeryEffective},
	"water": {"ground": SuperEffective, "rock": SuperEffective, "fire": SuperEffective, "water": NotVeryEffective,
		"grass": NotVeryEffective, "dragon": NotVeryEffective},
	"grass": {"flying": NotVeryEffective, "poison": NotVeryEffective, "ground": SuperEffective, "rock": SuperEffective,
		"bug": NotVeryEffective, "steel": NotVeryEffective, "fire": NotVeryEffective, "water": SuperEffective,
		"grass": NotVeryEffective, "dragon": NotVeryEffective},
	"electric": {"flying": SuperEffective, "ground": Immune, "water": SuperEffective, "grass": NotVeryEffective,
		"electric": NotVeryEffective, "dragon": NotVeryEffective},
	"psychic": {"fighting": SuperEffective, "poison": SuperEffective, "steel": NotVeryEffective, "psychic": NotVeryEffective,
		"dark": Immune},
	"ice": {"flying": SuperEffective, "ground": SuperEffective, "steel": NotVeryEffective, "fire": NotVeryEffective,
		"water": NotVeryEffective, "grass": SuperEffective, "ice": NotVeryEffective, "dragon": SuperEffective},
	"dragon": {"steel": NotVeryEffective, "dragon": SuperEffective, "fairy": Immune},
	"dark": {"fighting": NotVeryEffective, "ghost": SuperEffective, "psychic": SuperEffective, "dark": NotVeryEffective,
		"fairy": NotVeryEffective},
	"fairy": {"fighting": SuperEffective, "poison": NotVeryEffective, "steel": NotVeryEffective, "fire": NotVeryEffective,
		"dragon": SuperEffective, "dark": SuperEffective},
}

// Effectiveness multiplies the chart entry for each defending type.
func Effectiveness(moveType string, defTypes []string) float64 {
	mul := Neutral
	row := typeChart[moveType]
	for _, t := range defTypes {
		if t == "" || t == "none" {
			continue
		}
		if v, ok := row[t]; ok {
			mul *= v
		}
	}
	return mul
}

func KnownType(t string) bool {
	_, ok := typeChart[t]
	return ok
}
