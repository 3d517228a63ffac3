package request_models

type CreateSubmissionRequest struct {
	CourseID   string `json:"courseId"`
	UserEmail  string `json:"userEmail"`
	Submission string `json:"submission"`
	Submit     bool   `json:"submit"`
}

// UpdateSubmissionRequest sets only the fields present in the body.
type UpdateSubmissionRequest struct {
	Submission *string `json:"submission"`
	Submit     *bool   `json:"submit"`
}
