package routes

import (
	"github.com/castrol-web/nyumbaninala-backend/handlers/projects"
	"github.com/castrol-web/nyumbaninala-backend/middleware"

	"github.com/gin-gonic/gin"
)

func ProjectsRoutes(r *gin.Engine) {
	r.GET("/projects", projects.GetAllProjects)

	adminRoutes := r.Group("/projects")
	adminRoutes.Use(middleware.AdminAuth())
	{
		adminRoutes.POST("", projects.CreateProject)
		adminRoutes.PUT("/:id", projects.UpdateProject)
		adminRoutes.DELETE("/:id", projects.DeleteProject)
	}
}
