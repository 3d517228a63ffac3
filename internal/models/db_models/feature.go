package db_models

import "github.com/lib/pq"

// Feature is a landing-page feature card.
type Feature struct {
	BaseModel
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Icon        string         `json:"icon,omitempty"`
	Points      pq.StringArray `gorm:"type:text[]" json:"points,omitempty"`
}
