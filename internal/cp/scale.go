package cp

const (
	MinLevel  = 1.0
	MaxLevel  = 50.0
	LevelStep = 0.5
)

// scaleTable holds the combat-power multiplier for levels 1.0 through 50.0 in
// half-level steps, indexed by (level-1)*2.
var scaleTable = [...]float64{
	0.0939999967813491, 0.135137430784308, 0.166397869586944, 0.192650914456886,
	0.215732470154762, 0.236572655026622, 0.255720049142837, 0.273530381100769,
	0.290249884128570, 0.306057381335773, 0.321087598800659, 0.335445032295077,
	0.349212676286697, 0.362457748778790, 0.375235587358474, 0.387592411085168,
	0.399567276239395, 0.411193549517250, 0.422500014305114, 0.432926413410414,
	0.443107545375824, 0.453059953871985, 0.462798386812210, 0.472336077786704,
	0.481684952974319, 0.490855810259008, 0.499858438968658, 0.508701756943992,
	0.517393946647644, 0.525942508771329, 0.534354329109191, 0.542635762230353,
	0.550792694091796, 0.558830599438087, 0.566754519939422, 0.574569148039264,
	0.582278907299041, 0.589887911977272, 0.597400009632110, 0.604823657502073,
	0.612157285213470, 0.619404110566050, 0.626567125320434, 0.633649181622743,
	0.640652954578399, 0.647580963301656, 0.654435634613037, 0.661219263506722,
	0.667934000492096, 0.674581899290818, 0.681164920330047, 0.687684905887771,
	0.694143652915954, 0.700542893277978, 0.706884205341339, 0.713169102333341,
	0.719399094581604, 0.725575616972598, 0.731700003147125, 0.734741011137376,
	0.737769484519958, 0.740785574597326, 0.743789434432983, 0.746781208702482,
	0.749761044979095, 0.752729105305821, 0.755685508251190, 0.758630366519684,
	0.761563837528228, 0.764486065255226, 0.767397165298461, 0.770297273971590,
	0.773186504840850, 0.776064945942412, 0.778932750225067, 0.781790064808426,
	0.784636974334716, 0.787473583646825, 0.790300011634826, 0.792803950958807,
	0.795300006866455, 0.797803921486970, 0.800300002098083, 0.802803892322847,
	0.805299997329711, 0.807803863460723, 0.810299992561340, 0.812803834895026,
	0.815299987792968, 0.817803806620319, 0.820299983024597, 0.822803778631297,
	0.825299978256225, 0.827803750922782, 0.830299973487854, 0.832803753381377,
	0.835300028324127, 0.837803755931569, 0.840300023555755,
}

// Scale returns the multiplier for level, or 0 when level is outside the table.
func Scale(level float64) float64 {
	idx := int((level - 1) * 2)
	if idx < 0 || idx >= len(scaleTable) {
		return 0
	}
	return scaleTable[idx]
}

// Levels lists every valid level in ascending order.
func Levels() []float64 {
	out := make([]float64, len(scaleTable))
	for i := range out {
		out[i] = MinLevel + float64(i)*LevelStep
	}
	return out
}

func ValidLevel(level float64) bool {
	return level >= MinLevel && level <= MaxLevel && Scale(level) > 0
}
