package models

import (
	"time"
)

type Role string

const (
	AdminRole Role = "ADMIN"
	UserRole  Role = "USER"
)

// User represents an account in the database. The site only manages the
// seeded administrator; donors never get accounts.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserName  string    `json:"username"`
	Email     string    `json:"email" gorm:"uniqueIndex" binding:"required,email"`
	Password  string    `json:"-"`
	Role      Role      `json:"role" gorm:"type:varchar(20);default:'USER'"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserLogin model for the login request
type UserLogin struct {
	Email    string `json:"email" binding:"required,email" example:"admin@nyumbaninala.org"`
	Password string `json:"password" binding:"required" example:"secret"`
}
