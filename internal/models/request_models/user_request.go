package request_models

type CreateUserRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
	Photo string `json:"photo"`
}

// TokenRequest is the principal the client asks to have signed. The caller is
// trusted to have authenticated the identity already.
type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
