package request_models

type CreateClassRequest struct {
	Email       string  `json:"email" binding:"required,email"`
	Title       string  `json:"title" binding:"required"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

// UpdateClassRequest overwrites the editable fields verbatim, the way the
// source system's PATCH sets title, price and description in one update doc.
type UpdateClassRequest struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// AddAssignmentRequest appends one entry to a class's assignment list.
type AddAssignmentRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
}
