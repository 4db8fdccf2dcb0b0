package models

import (
	"time"
)

// Project is a project listing shown on the public site. ProjectImage
// stores the Cloudinary public id; the delivery URL is resolved when the
// listing is served.
type Project struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title        string     `json:"title" binding:"required"`
	Summary      string     `json:"summary" gorm:"type:text" binding:"required"`
	Year         string     `json:"year"`
	Address      string     `json:"address"`
	Sponsors     string     `json:"sponsors"`
	Goals        []string   `json:"goals" gorm:"serializer:json"`
	Requirements []string   `json:"requirements" gorm:"serializer:json"`
	ProjectImage string     `json:"projectImage"`
	CreatedAt    time.Time  `json:"createdAt" swaggerignore:"true"`
	UpdatedAt    time.Time  `json:"updatedAt" swaggerignore:"true"`
	DeletedAt    *time.Time `json:"deletedAt,omitempty" swaggerignore:"true" gorm:"index"`
}

func (Project) TableName() string {
	return "projects"
}
