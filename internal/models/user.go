package models

import "gorm.io/gorm"

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a user profile. Profiles are created lazily on first
// sign-in when none exists; the default role is "user".
type User struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email       string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	DisplayName string `json:"displayName,omitempty" validate:"omitempty,max=100"`
	Password    string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	Role        string `json:"role" gorm:"type:varchar(16);default:user"`
	gorm.Model  `json:"-"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
