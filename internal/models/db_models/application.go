package db_models

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Application is a teach-on-LearnHive job application. Status transitions are
// unconditional overwrites, matching the source system: any state can be
// forced to any other.
type Application struct {
	BaseModel
	UserEmail  string            `gorm:"index" json:"userEmail"`
	Name       string            `json:"name"`
	Title      string            `json:"title"`
	Experience string            `json:"experience"`
	Category   string            `json:"category"`
	Status     ApplicationStatus `gorm:"index" json:"status"`
}
