package partners

import (
	"net/http"
	"time"

	"github.com/castrol-web/nyumbaninala-backend/db"
	"github.com/castrol-web/nyumbaninala-backend/models"
	"github.com/castrol-web/nyumbaninala-backend/utils"
	mailsmodels "github.com/castrol-web/nyumbaninala-backend/utils/mailsmodels"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreatePartner submits a partnership application
// @Summary Apply for a partnership
// @Description Submit a partnership application with the provided information
// @Tags partners
// @Accept json
// @Produce json
// @Param partner body models.PartnerCreate true "Partner information"
// @Success 201 {object} map[string]interface{} "message: Application submitted successfully, id: partner ID"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /partners [post]
func CreatePartner(c *gin.Context) {
	var partnerInput models.PartnerCreate

	if err := c.ShouldBindJSON(&partnerInput); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if !utils.ValidateEmail(partnerInput.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
		return
	}

	switch partnerInput.PartnershipType {
	case models.PartnerSponsor, models.PartnerNgo, models.PartnerCorporate, models.PartnerMedia:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid partnership type"})
		return
	}

	partner := models.Partner{
		FullName:         partnerInput.FullName,
		OrganizationName: partnerInput.OrganizationName,
		Email:            partnerInput.Email,
		Phone:            partnerInput.Phone,
		Country:          partnerInput.Country,
		Website:          partnerInput.Website,
		PartnershipType:  partnerInput.PartnershipType,
		Proposal:         partnerInput.Proposal,
		Status:           models.PartnerPending,
	}

	if err := db.DB.Create(&partner).Error; err != nil {
		utils.LogError(err, "Error saving the partner application")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Application submitted successfully",
		"id":      partner.ID,
	})
}

// GetAllPartners lists partnership applications (admin)
// @Summary List partner applications
// @Description Return all partnership applications
// @Tags partners
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Partner
// @Failure 500 {object} map[string]string "error: Error fetching partners"
// @Router /partners [get]
func GetAllPartners(c *gin.Context) {
	var partners []models.Partner
	if err := db.DB.Order("created_at DESC").Find(&partners).Error; err != nil {
		utils.LogError(err, "Error fetching partner applications")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching partners"})
		return
	}

	c.JSON(http.StatusOK, partners)
}

// ApprovePartner approves a partnership application (admin)
// @Summary Approve a partner application
// @Description Mark a partnership application as approved
// @Tags partners
// @Produce json
// @Param id path string true "ID of the partner application"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Partner approved successfully"
// @Failure 400 {object} map[string]string "error: Invalid partner ID"
// @Failure 404 {object} map[string]string "error: Partner not found"
// @Router /partners/{id}/approve [put]
func ApprovePartner(c *gin.Context) {
	reviewPartner(c, models.PartnerApproved, "Partner approved successfully")
}

// RejectPartner rejects a partnership application (admin)
// @Summary Reject a partner application
// @Description Mark a partnership application as rejected, with an optional note
// @Tags partners
// @Accept json
// @Produce json
// @Param id path string true "ID of the partner application"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Partner rejected"
// @Failure 400 {object} map[string]string "error: Invalid partner ID"
// @Failure 404 {object} map[string]string "error: Partner not found"
// @Router /partners/{id}/reject [put]
func RejectPartner(c *gin.Context) {
	reviewPartner(c, models.PartnerRejected, "Partner rejected")
}

func reviewPartner(c *gin.Context, status models.PartnerStatus, message string) {
	userID, _ := c.Get("user_id")
	partnerId := c.Param("id")

	if _, err := uuid.Parse(partnerId); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid partner ID"})
		return
	}

	var body struct {
		Note string `json:"note"`
	}
	// the approve route sends no body
	c.ShouldBindJSON(&body)

	var partner models.Partner
	if err := db.DB.First(&partner, "id = ?", partnerId).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Partner not found"})
		return
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status":      status,
		"reviewed_at": now,
	}
	if body.Note != "" {
		updates["admin_notes"] = body.Note
	}

	if err := db.DB.Model(&partner).Updates(updates).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error updating the partner application")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating the partner application"})
		return
	}

	go mailsmodels.PartnerStatusUpdate(mailsmodels.PartnerStatusData{
		FullName: partner.FullName,
		Email:    partner.Email,
		Status:   string(status),
		Note:     body.Note,
	})

	utils.LogSuccessWithUser(userID, message)
	c.JSON(http.StatusOK, gin.H{"message": message})
}
