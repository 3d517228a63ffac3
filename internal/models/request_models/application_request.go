package request_models

type CreateApplicationRequest struct {
	UserEmail  string `json:"userEmail" binding:"required,email"`
	Name       string `json:"name"`
	Title      string `json:"title"`
	Experience string `json:"experience"`
	Category   string `json:"category"`
}
