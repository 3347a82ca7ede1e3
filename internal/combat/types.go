package combat

// Event is one resolved action in the battle timeline.
type Event struct {
	Tick     int    `json:"tick"`
	Time     int    `json:"time"`
	Actor    int    `json:"actor"`
	Action   string `json:"action"`
	Move     string `json:"move"`
	Damage   int    `json:"damage"`
	Energy   int    `json:"energy"`
	Shielded bool   `json:"shielded"`
	Buffed   bool   `json:"buffed,omitempty"`
	HP       [2]int `json:"hp"`
}

type Result struct {
	Winner        int     `json:"winner"`
	HPA           int     `json:"hp_a"`
	HPB           int     `json:"hp_b"`
	RatingA       int     `json:"rating_a"`
	RatingB       int     `json:"rating_b"`
	Ticks         int     `json:"ticks"`
	TimeRemaining float64 `json:"time_remaining"`
	Timeline      []Event `json:"timeline,omitempty"`
}
