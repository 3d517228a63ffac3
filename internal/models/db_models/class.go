package db_models

import "gorm.io/datatypes"

type ClassStatus string

const (
	ClassPending  ClassStatus = "pending"
	ClassAccepted ClassStatus = "accepted"
	ClassRejected ClassStatus = "rejected"
)

// ClassAssignment is one entry of the append-only Assignments list.
type ClassAssignment struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline,omitempty"`
}

type Class struct {
	BaseModel
	Email          string      `gorm:"index" json:"email"`
	Title          string      `json:"title"`
	Price          float64     `json:"price"`
	Description    string      `json:"description"`
	Image          string      `json:"image,omitempty"`
	Category       string      `json:"category,omitempty"`
	Status         ClassStatus `gorm:"index" json:"status"`
	TotalEnrolment int64       `json:"totalEnrolment"`

	// Assignments is append-only; entries are never edited or removed.
	Assignments datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"assignments"`
}
