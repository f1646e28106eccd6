package models

// Preferences is the 1:1 per-user settings row. A row with these defaults is
// created for every user at registration time.
type Preferences struct {
	UserID                   int64   `json:"user_id"`
	DefaultVolume            float64 `json:"default_volume"`
	DefaultVolumeUnit        string  `json:"default_volume_unit"`
	DefaultConcentrationUnit string  `json:"default_concentration_unit"`
	RecentChemicals          string  `json:"recent_chemicals,omitempty"`
	FavoriteRecipes          string  `json:"favorite_recipes,omitempty"`
	Theme                    string  `json:"theme"`
	ScientificNotation       bool    `json:"scientific_notation"`
	DecimalPlaces            int     `json:"decimal_places"`
}
