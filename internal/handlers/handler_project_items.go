package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/craftline/craftline_backend/internal/core/ports/services"
	"github.com/craftline/craftline_backend/internal/dto"
	"github.com/craftline/craftline_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// projectItemHandler handles HTTP requests for materials, tasks and work
// entries recorded against projects.
type projectItemHandler struct {
	itemService portssvc.ProjectItemSvcFacade
}

func newProjectItemHandler(is portssvc.ProjectItemSvcFacade) *projectItemHandler {
	return &projectItemHandler{
		itemService: is,
	}
}

// registerProjectItemRoutes registers material, task and work entry routes.
func registerProjectItemRoutes(rg *gin.RouterGroup, itemService portssvc.ProjectItemSvcFacade) {
	h := newProjectItemHandler(itemService)

	rg.POST("/materials", h.createMaterial)
	rg.GET("/projects/:id/materials", h.listMaterials)

	rg.POST("/tasks", h.createTask)
	rg.GET("/projects/:id/tasks", h.listTasks)

	rg.POST("/work-entries", h.createWorkEntry)
	rg.GET("/projects/:id/work-entries", h.listWorkEntries)
}

// createMaterial godoc
// @Summary Add a material line to a project
// @Tags materials
// @Accept  json
// @Produce  json
// @Param   material body dto.CreateMaterialRequest true "Material details"
// @Success 201 {object} dto.MaterialResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create material"
// @Router /materials [post]
func (h *projectItemHandler) createMaterial(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateMaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create material request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.itemService.CreateMaterial(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create material in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create material"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToMaterialResponse(*created))
}

// listMaterials godoc
// @Summary List a project's materials
// @Tags materials
// @Produce  json
// @Param   id path string true "Project ID"
// @Success 200 {array} dto.MaterialResponse
// @Failure 500 {object} map[string]string "Failed to list materials"
// @Router /projects/{id}/materials [get]
func (h *projectItemHandler) listMaterials(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	materials, err := h.itemService.ListMaterialsByProject(c.Request.Context(), projectID)
	if err != nil {
		logger.Error("Failed to list materials from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list materials"})
		return
	}

	resp := make([]dto.MaterialResponse, 0, len(materials))
	for _, m := range materials {
		resp = append(resp, dto.ToMaterialResponse(m))
	}
	c.JSON(http.StatusOK, resp)
}

// createTask godoc
// @Summary Add a task to a project
// @Tags tasks
// @Accept  json
// @Produce  json
// @Param   task body dto.CreateTaskRequest true "Task details"
// @Success 201 {object} dto.TaskResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create task"
// @Router /tasks [post]
func (h *projectItemHandler) createTask(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create task request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.itemService.CreateTask(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create task in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskResponse(*created))
}

// listTasks godoc
// @Summary List a project's tasks
// @Tags tasks
// @Produce  json
// @Param   id path string true "Project ID"
// @Success 200 {array} dto.TaskResponse
// @Failure 500 {object} map[string]string "Failed to list tasks"
// @Router /projects/{id}/tasks [get]
func (h *projectItemHandler) listTasks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	tasks, err := h.itemService.ListTasksByProject(c.Request.Context(), projectID)
	if err != nil {
		logger.Error("Failed to list tasks from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tasks"})
		return
	}

	resp := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, dto.ToTaskResponse(t))
	}
	c.JSON(http.StatusOK, resp)
}

// createWorkEntry godoc
// @Summary Record labor against a project
// @Description Records a team member's work; its amount counts toward the expense side of the financial summary
// @Tags work-entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateWorkEntryRequest true "Work entry details"
// @Success 201 {object} dto.WorkEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create work entry"
// @Router /work-entries [post]
func (h *projectItemHandler) createWorkEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateWorkEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create work entry request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	created, err := h.itemService.CreateWorkEntry(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create work entry in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create work entry"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToWorkEntryResponse(*created))
}

// listWorkEntries godoc
// @Summary List a project's work entries
// @Tags work-entries
// @Produce  json
// @Param   id path string true "Project ID"
// @Success 200 {array} dto.WorkEntryResponse
// @Failure 500 {object} map[string]string "Failed to list work entries"
// @Router /projects/{id}/work-entries [get]
func (h *projectItemHandler) listWorkEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("id")

	entries, err := h.itemService.ListWorkEntriesByProject(c.Request.Context(), projectID)
	if err != nil {
		logger.Error("Failed to list work entries from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list work entries"})
		return
	}

	resp := make([]dto.WorkEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.ToWorkEntryResponse(e))
	}
	c.JSON(http.StatusOK, resp)
}
