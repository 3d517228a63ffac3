package db_models

import "gorm.io/datatypes"

// Review stores the report payload as-is; no relation to User or Class is
// enforced.
type Review struct {
	BaseModel
	Name        string         `json:"name,omitempty"`
	Rating      float64        `json:"rating,omitempty"`
	Description string         `json:"description,omitempty"`
	Report      datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"report,omitempty"`
}
