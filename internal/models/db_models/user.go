package db_models

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

type User struct {
	BaseModel
	Email string `gorm:"uniqueIndex" json:"email"`
	Name  string `json:"name"`
	Role  Role   `gorm:"index" json:"role,omitempty"`
	Phone string `json:"phone,omitempty"`
	Photo string `json:"photo,omitempty"`
}
