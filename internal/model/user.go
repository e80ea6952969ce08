package model

import "time"

// Roles a user record can carry. A user without a grant has an empty role.
const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
)

// User represents a signed-in user. Created on first sign-in if absent;
// the role changes only through explicit grant operations.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Photo     string    `json:"photo,omitempty" gorm:"size:512"`
	Role      string    `json:"role,omitempty" gorm:"size:50"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
