package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/craftline/craftline_backend/internal/core/ports/services"
	"github.com/craftline/craftline_backend/internal/dto"
	"github.com/craftline/craftline_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// trashHandler serves the trash listings and the audit ledger. The destructive
// trash routes live on the project and team member handlers.
type trashHandler struct {
	trashService portssvc.TrashSvcFacade
}

func newTrashHandler(ts portssvc.TrashSvcFacade) *trashHandler {
	return &trashHandler{
		trashService: ts,
	}
}

// registerTrashRoutes registers the read-only trash routes.
func registerTrashRoutes(rg *gin.RouterGroup, trashService portssvc.TrashSvcFacade) {
	h := newTrashHandler(trashService)

	trash := rg.Group("/trash")
	{
		trash.GET("/team-members", h.listTeamMemberTrash)
		trash.GET("/logs", h.listTrashLogs)
	}
}

// listTeamMemberTrash godoc
// @Summary List trashed team members
// @Description Retrieves all team member trash snapshots, newest first
// @Tags trash
// @Produce  json
// @Success 200 {array} dto.TrashSnapshotResponse
// @Failure 500 {object} map[string]string "Failed to list trash"
// @Router /trash/team-members [get]
func (h *trashHandler) listTeamMemberTrash(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	snapshots, err := h.trashService.ListTeamMemberTrash(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list team member trash from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list trash"})
		return
	}

	resp := make([]dto.TrashSnapshotResponse, 0, len(snapshots))
	for _, s := range snapshots {
		resp = append(resp, dto.ToTrashSnapshotResponse(s))
	}
	c.JSON(http.StatusOK, resp)
}

// listTrashLogs godoc
// @Summary List trash audit log entries
// @Description Retrieves up to 200 of the most recent trash actions, newest first
// @Tags trash
// @Produce  json
// @Success 200 {array} dto.TrashLogResponse
// @Failure 500 {object} map[string]string "Failed to list trash logs"
// @Router /trash/logs [get]
func (h *trashHandler) listTrashLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	logs, err := h.trashService.ListTrashLogs(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list trash logs from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list trash logs"})
		return
	}

	resp := make([]dto.TrashLogResponse, 0, len(logs))
	for _, l := range logs {
		resp = append(resp, dto.ToTrashLogResponse(l))
	}
	c.JSON(http.StatusOK, resp)
}
