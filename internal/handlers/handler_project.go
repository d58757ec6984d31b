package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/craftline/craftline_backend/internal/apperrors"
	portssvc "github.com/craftline/craftline_backend/internal/core/ports/services"
	"github.com/craftline/craftline_backend/internal/dto"
	"github.com/craftline/craftline_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// projectHandler handles HTTP requests related to projects, including the
// soft-delete, restore and purge cascades.
type projectHandler struct {
	projectService portssvc.ProjectSvcFacade
}

// newProjectHandler creates a new projectHandler.
func newProjectHandler(ps portssvc.ProjectSvcFacade) *projectHandler {
	return &projectHandler{
		projectService: ps,
	}
}

// registerProjectRoutes registers all project-related routes.
func registerProjectRoutes(rg *gin.RouterGroup, projectService portssvc.ProjectSvcFacade) {
	h := newProjectHandler(projectService)

	projects := rg.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.GET("", h.listProjects)
		projects.GET("/:id", h.getProject)
		projects.PUT("/:id", h.updateProject)
		projects.DELETE("/:id", h.deleteProject)
		projects.POST("/:id/restore", h.restoreProject)
	}

	// Purging a trashed project removes its rows for good.
	rg.DELETE("/trash/projects/:id", h.purgeProject)
}

// createProject godoc
// @Summary Create a new project
// @Description Creates a project; when a quotation is linked it must be Approved and is flipped to Converted
// @Tags projects
// @Accept  json
// @Produce  json
// @Param   project body dto.CreateProjectRequest true "Project details"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create project"
// @Router /projects [post]
func (h *projectHandler) createProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create project request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	createdProject, err := h.projectService.CreateProject(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Project creation rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Linked quotation not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Quotation not found"})
			return
		}
		logger.Error("Failed to create project in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	logger.Info("Project created successfully", slog.String("project_id", createdProject.ProjectID))
	c.JSON(http.StatusCreated, dto.ToProjectResponse(*createdProject))
}

// getProject godoc
// @Summary Get a project by ID
// @Description Retrieves a single project, including soft-deleted ones
// @Tags projects
// @Produce  json
// @Param   id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to retrieve project"
// @Router /projects/{id} [get]
func (h *projectHandler) getProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	project, err := h.projectService.GetProjectByID(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Project not found", slog.String("project_id", projectID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			logger.Error("Failed to get project from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(*project))
}

// listProjects godoc
// @Summary List projects
// @Description Lists non-deleted projects, newest first, with keyset pagination
// @Tags projects
// @Produce  json
// @Param   limit query int false "Page size" default(50)
// @Param   pageToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListProjectsResponse
// @Failure 400 {object} map[string]string "Invalid pagination token"
// @Failure 500 {object} map[string]string "Failed to list projects"
// @Router /projects [get]
func (h *projectHandler) listProjects(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		limit = parsed
	}
	pageToken := c.Query("pageToken")

	projects, nextToken, err := h.projectService.ListProjects(c.Request.Context(), limit, pageToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid pagination token", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination token"})
			return
		}
		logger.Error("Failed to list projects from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list projects"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListProjectsResponse(projects, nextToken))
}

// updateProject godoc
// @Summary Update a project
// @Description Applies a sparse patch; absent fields are left untouched
// @Tags projects
// @Accept  json
// @Produce  json
// @Param   id path string true "Project ID"
// @Param   project body dto.UpdateProjectRequest true "Fields to update"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to update project"
// @Router /projects/{id} [put]
func (h *projectHandler) updateProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")
	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update project request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updatedProject, err := h.projectService.UpdateProject(c.Request.Context(), projectID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Project not found for update", slog.String("project_id", projectID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			logger.Error("Failed to update project in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectResponse(*updatedProject))
}

// deleteProject godoc
// @Summary Soft-delete a project
// @Description Soft-deletes the project and cascades over its dependent records in one transaction
// @Tags projects
// @Produce  json
// @Param   id path string true "Project ID"
// @Success 200 {object} dto.DeleteProjectResponse
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to delete project"
// @Router /projects/{id} [delete]
func (h *projectHandler) deleteProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	var deletedBy *string
	if actorID, ok := middleware.GetUserIDFromContext(c); ok {
		deletedBy = &actorID
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), projectID, deletedBy); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Project not found for deletion", slog.String("project_id", projectID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			logger.Error("Failed to delete project in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project", "details": err.Error()})
		}
		return
	}

	logger.Info("Project soft-deleted", slog.String("project_id", projectID))
	c.JSON(http.StatusOK, dto.DeleteProjectResponse{Success: true, ID: projectID})
}

// restoreProject godoc
// @Summary Restore a soft-deleted project
// @Description Un-deletes the project and every dependent record currently marked deleted
// @Tags projects
// @Produce  json
// @Param   id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 404 {object} map[string]string "Project not found"
// @Failure 500 {object} map[string]string "Failed to restore project"
// @Router /projects/{id}/restore [post]
func (h *projectHandler) restoreProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	restored, err := h.projectService.RestoreProject(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Project not found for restore", slog.String("project_id", projectID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			logger.Error("Failed to restore project in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to restore project", "details": err.Error()})
		}
		return
	}

	logger.Info("Project restored", slog.String("project_id", projectID))
	c.JSON(http.StatusOK, dto.ToProjectResponse(*restored))
}

// purgeProject godoc
// @Summary Permanently purge a project
// @Description Physically deletes the project and all its dependent records
// @Tags trash
// @Produce  json
// @Param   id path string true "Project ID"
// @Success 200 {object} dto.PurgeProjectResponse
// @Failure 500 {object} map[string]string "Failed to purge project"
// @Router /trash/projects/{id} [delete]
func (h *projectHandler) purgeProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	if err := h.projectService.PurgeProject(c.Request.Context(), projectID); err != nil {
		logger.Error("Failed to purge project in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to purge project"})
		return
	}

	logger.Info("Project purged", slog.String("project_id", projectID))
	c.JSON(http.StatusOK, dto.PurgeProjectResponse{Success: true})
}
