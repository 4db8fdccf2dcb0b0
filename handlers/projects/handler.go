package projects

import (
	"net/http"

	"github.com/castrol-web/nyumbaninala-backend/db"
	"github.com/castrol-web/nyumbaninala-backend/models"
	"github.com/castrol-web/nyumbaninala-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetAllProjects lists the projects shown on the public site
// @Summary List projects
// @Description Return all project listings with their image delivery URLs
// @Tags projects
// @Produce json
// @Success 200 {array} models.Project
// @Failure 404 {object} map[string]string "message: No projects found"
// @Failure 500 {object} map[string]string "error: Error fetching projects"
// @Router /projects [get]
func GetAllProjects(c *gin.Context) {
	var projects []models.Project
	if err := db.DB.Order("created_at DESC").Find(&projects).Error; err != nil {
		utils.LogError(err, "Error fetching projects")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching projects"})
		return
	}

	if len(projects) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Oops! No projects found"})
		return
	}

	// replace the stored public id with a delivery URL
	for i := range projects {
		if projects[i].ProjectImage != "" {
			projects[i].ProjectImage = utils.ImageURL(projects[i].ProjectImage)
		}
	}

	c.JSON(http.StatusOK, projects)
}

// CreateProject adds a project listing (admin)
// @Summary Create a project
// @Description Create a project listing with its image (multipart form)
// @Tags projects
// @Accept mpfd
// @Produce json
// @Param title formData string true "Project title"
// @Param summary formData string true "Project summary"
// @Param projectImage formData file true "Project image"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "message: Project created successfully, id: project ID"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 500 {object} map[string]string "error: Internal server error"
// @Router /projects [post]
func CreateProject(c *gin.Context) {
	userID, _ := c.Get("user_id")

	title := c.PostForm("title")
	summary := c.PostForm("summary")
	if title == "" || summary == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A project should have at least a title and a summary"})
		return
	}

	file, err := c.FormFile("projectImage")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Project image is required"})
		return
	}

	publicID, _, err := utils.UploadProjectImage(file)
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error uploading the project image")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading the project image"})
		return
	}

	project := models.Project{
		Title:        title,
		Summary:      summary,
		Year:         c.PostForm("year"),
		Address:      c.PostForm("address"),
		Sponsors:     c.PostForm("sponsors"),
		Goals:        c.PostFormArray("goals"),
		Requirements: c.PostFormArray("requirements"),
		ProjectImage: publicID,
	}

	if err := db.DB.Create(&project).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating the project")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating the project"})
		return
	}

	utils.LogSuccessWithUser(userID, "Project created successfully")
	c.JSON(http.StatusCreated, gin.H{
		"message": "Project created successfully",
		"id":      project.ID,
	})
}

// UpdateProject edits a project listing (admin)
// @Summary Update a project
// @Description Update a project listing, optionally replacing its image (multipart form)
// @Tags projects
// @Accept mpfd
// @Produce json
// @Param id path string true "ID of the project"
// @Param title formData string true "Project title"
// @Param summary formData string true "Project summary"
// @Param projectImage formData file false "Replacement project image"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Project updated successfully"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 404 {object} map[string]string "error: Project not found"
// @Failure 500 {object} map[string]string "error: Error updating the project"
// @Router /projects/{id} [put]
func UpdateProject(c *gin.Context) {
	userID, _ := c.Get("user_id")
	projectId := c.Param("id")

	if _, err := uuid.Parse(projectId); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	var project models.Project
	if err := db.DB.First(&project, "id = ?", projectId).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	title := c.PostForm("title")
	summary := c.PostForm("summary")
	if title == "" || summary == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A project should have at least a title and a summary"})
		return
	}

	oldImage := ""
	if file, err := c.FormFile("projectImage"); err == nil {
		publicID, _, err := utils.UploadProjectImage(file)
		if err != nil {
			utils.LogErrorWithUser(userID, err, "Error uploading the replacement project image")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading the project image"})
			return
		}
		oldImage = project.ProjectImage
		project.ProjectImage = publicID
	}

	project.Title = title
	project.Summary = summary
	if year := c.PostForm("year"); year != "" {
		project.Year = year
	}
	if address := c.PostForm("address"); address != "" {
		project.Address = address
	}
	if sponsors := c.PostForm("sponsors"); sponsors != "" {
		project.Sponsors = sponsors
	}
	if goals := c.PostFormArray("goals"); len(goals) > 0 {
		project.Goals = goals
	}
	if requirements := c.PostFormArray("requirements"); len(requirements) > 0 {
		project.Requirements = requirements
	}

	if err := db.DB.Save(&project).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error updating the project")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating the project"})
		return
	}

	// the replaced image is only removed once the row points at the new one
	if oldImage != "" {
		if err := utils.DeleteProjectImage(oldImage); err != nil {
			utils.LogErrorWithUser(userID, err, "Error deleting the replaced project image")
		}
	}

	utils.LogSuccessWithUser(userID, "Project updated successfully")
	c.JSON(http.StatusOK, gin.H{"message": "Project updated successfully"})
}

// DeleteProject removes a project listing (admin)
// @Summary Delete a project
// @Description Delete a project listing and its stored image
// @Tags projects
// @Produce json
// @Param id path string true "ID of the project"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Project deleted successfully"
// @Failure 400 {object} map[string]string "error: Invalid project ID"
// @Failure 404 {object} map[string]string "error: Project not found"
// @Failure 500 {object} map[string]string "error: Error deleting the project"
// @Router /projects/{id} [delete]
func DeleteProject(c *gin.Context) {
	userID, _ := c.Get("user_id")
	projectId := c.Param("id")

	if _, err := uuid.Parse(projectId); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	var project models.Project
	if err := db.DB.First(&project, "id = ?", projectId).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	if err := db.DB.Delete(&project).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error deleting the project")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting the project"})
		return
	}

	if project.ProjectImage != "" {
		if err := utils.DeleteProjectImage(project.ProjectImage); err != nil {
			utils.LogErrorWithUser(userID, err, "Error deleting the project image")
		}
	}

	utils.LogSuccessWithUser(userID, "Project deleted successfully")
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
