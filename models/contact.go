package models

import (
	"time"
)

// Contact represents a contact request in the database
// @Description Full model of a contact request
// @Scheme Contact
type Contact struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string     `json:"name" binding:"required"`
	Email       string     `json:"email" binding:"required,email"`
	Subject     string     `json:"subject" binding:"required"`
	Message     string     `json:"message" gorm:"type:text" binding:"required"`
	SubmittedAt time.Time  `json:"submittedAt" gorm:"column:submitted_at;default:CURRENT_TIMESTAMP"`
	CreatedAt   time.Time  `json:"createdAt" swaggerignore:"true"`
	UpdatedAt   time.Time  `json:"updatedAt" swaggerignore:"true"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty" swaggerignore:"true" gorm:"index"`
}

func (Contact) TableName() string {
	return "contacts"
}

// ContactCreate model to submit a contact request
// @Description model to submit a contact request
type ContactCreate struct {
	Name    string `json:"name" binding:"required" example:"Jane Doe"`
	Email   string `json:"email" binding:"required,email" example:"jane.doe@example.com"`
	Subject string `json:"subject" binding:"required" example:"Volunteering"`
	Message string `json:"message" binding:"required" example:"I would like to help with the next school project."`
}
