package domain

// LevelDefinition is one row of the static level table, ordered by ascending
// XPRequired. The terminal row has XPToNext == 0 and acts as a ceiling.
type LevelDefinition struct {
	Level      int    `json:"level"`
	Title      string `json:"title"`
	XPRequired int    `json:"xp_required"`
	XPToNext   int    `json:"xp_to_next"`
}

// LevelInfo is the derived view of a profile's cumulative XP.
type LevelInfo struct {
	Level    int     `json:"level"`
	Title    string  `json:"title"`
	XPToNext int     `json:"xp_to_next"`
	Progress float64 `json:"progress"`
	IsMax    bool    `json:"is_max"`
}

// Badge is a static achievement definition. Unlock predicates live in the
// progression package alongside the catalog.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category"`
	Rarity      string `json:"rarity"`
	XPReward    int    `json:"xp_reward"`
	CoinsReward int    `json:"coins_reward"`
}
