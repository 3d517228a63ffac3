package db_models

// AssignmentSubmission is append-only; CreatedAt is the server timestamp.
type AssignmentSubmission struct {
	BaseModel
	CourseID   string `gorm:"index" json:"courseId"`
	UserEmail  string `gorm:"index" json:"userEmail"`
	Submission string `json:"submission"`
	Submit     bool   `json:"submit"`
}
