package models

import (
	"time"
)

type PartnershipType string

const (
	PartnerSponsor   PartnershipType = "sponsor"
	PartnerNgo       PartnershipType = "ngo"
	PartnerCorporate PartnershipType = "corporate"
	PartnerMedia     PartnershipType = "media"
)

type PartnerStatus string

const (
	PartnerPending  PartnerStatus = "pending"
	PartnerApproved PartnerStatus = "approved"
	PartnerRejected PartnerStatus = "rejected"
)

// Partner represents a partnership application in the database
// @Description Full model of a partner application
type Partner struct {
	ID               string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	FullName         string          `json:"fullName" binding:"required"`
	OrganizationName string          `json:"organizationName"`
	Email            string          `json:"email" binding:"required,email"`
	Phone            string          `json:"phone" binding:"required"`
	Country          string          `json:"country" binding:"required"`
	Website          string          `json:"website"`
	PartnershipType  PartnershipType `json:"partnershipType" gorm:"type:varchar(20)" binding:"required"`
	Proposal         string          `json:"proposal" gorm:"type:text" binding:"required"`
	DocumentUrl      string          `json:"documentUrl"`
	Status           PartnerStatus   `json:"status" gorm:"type:varchar(20);default:'pending'"`
	AdminNotes       string          `json:"adminNotes"`
	ReviewedAt       *time.Time      `json:"reviewedAt"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

func (Partner) TableName() string {
	return "partners"
}

// PartnerCreate model to submit a partnership application
// @Description model to submit a partnership application
type PartnerCreate struct {
	FullName         string          `json:"fullName" binding:"required" example:"John Mollel"`
	OrganizationName string          `json:"organizationName" example:"Acme Foundation"`
	Email            string          `json:"email" binding:"required,email" example:"john@acme.org"`
	Phone            string          `json:"phone" binding:"required" example:"+255712345678"`
	Country          string          `json:"country" binding:"required" example:"Tanzania"`
	Website          string          `json:"website" example:"https://acme.org"`
	PartnershipType  PartnershipType `json:"partnershipType" binding:"required" example:"sponsor"`
	Proposal         string          `json:"proposal" binding:"required" example:"We would like to sponsor the water project."`
}
