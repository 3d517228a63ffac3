package db_models

import "gorm.io/datatypes"

// Payment doubles as an enrollment record. The document is stored verbatim as
// supplied by the caller after the gateway confirms the charge client-side;
// there is no server-side verification against a captured charge and no
// referential check against Class or User.
type Payment struct {
	BaseModel
	Email   string  `gorm:"index" json:"email"`
	Price   float64 `json:"price"`
	ClassID string  `json:"classId,omitempty"`
	Title   string  `json:"title,omitempty"`

	// Assignment may hold a scalar or a list depending on the writer;
	// it is normalized to a list only when enrollments are read back.
	Assignment datatypes.JSON `gorm:"type:jsonb" json:"assignment,omitempty"`
}
