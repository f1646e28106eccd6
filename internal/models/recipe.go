package models

// Recipe is a saved buffer recipe. Components and Tags hold serialised lists
// produced by the front-end; the backend stores them opaquely.
type Recipe struct {
	ID           string   `json:"id"`
	UserID       int64    `json:"user_id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Category     string   `json:"category"`
	Components   string   `json:"components"`
	TotalVolume  float64  `json:"total_volume"`
	VolumeUnit   string   `json:"volume_unit"`
	PH           *float64 `json:"ph,omitempty"`
	Instructions string   `json:"instructions,omitempty"`
	Notes        string   `json:"notes,omitempty"`
	Tags         string   `json:"tags,omitempty"`
	CreatedAt    string   `json:"created_at"`
	ModifiedAt   string   `json:"modified_at"`
}
