package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/craftline/craftline_backend/internal/apperrors"
	portssvc "github.com/craftline/craftline_backend/internal/core/ports/services"
	"github.com/craftline/craftline_backend/internal/dto"
	"github.com/craftline/craftline_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// teamHandler handles HTTP requests for teams and team members, including the
// member trash lifecycle.
type teamHandler struct {
	teamService       portssvc.TeamSvcFacade
	teamMemberService portssvc.TeamMemberSvcFacade
}

func newTeamHandler(ts portssvc.TeamSvcFacade, tms portssvc.TeamMemberSvcFacade) *teamHandler {
	return &teamHandler{
		teamService:       ts,
		teamMemberService: tms,
	}
}

// registerTeamRoutes registers team and team member routes.
func registerTeamRoutes(rg *gin.RouterGroup, teamService portssvc.TeamSvcFacade, memberService portssvc.TeamMemberSvcFacade) {
	h := newTeamHandler(teamService, memberService)

	teams := rg.Group("/teams")
	{
		teams.POST("", h.createTeam)
		teams.GET("", h.listTeams)
	}

	members := rg.Group("/team-members")
	{
		members.POST("", h.createTeamMember)
		members.GET("", h.listTeamMembers)
		members.GET("/:id", h.getTeamMember)
		members.PUT("/:id", h.updateTeamMember)
		members.DELETE("/:id", h.deleteTeamMember)
		members.POST("/:id/restore", h.restoreTeamMember)
	}

	rg.DELETE("/trash/team-members/:id", h.purgeTeamMember)
}

// createTeam godoc
// @Summary Create a team
// @Tags teams
// @Accept  json
// @Produce  json
// @Param   team body dto.CreateTeamRequest true "Team details"
// @Success 201 {object} dto.TeamResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create team"
// @Router /teams [post]
func (h *teamHandler) createTeam(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create team request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	createdTeam, err := h.teamService.CreateTeam(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create team in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create team"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToTeamResponse(*createdTeam))
}

// listTeams godoc
// @Summary List teams
// @Tags teams
// @Produce  json
// @Success 200 {array} dto.TeamResponse
// @Failure 500 {object} map[string]string "Failed to list teams"
// @Router /teams [get]
func (h *teamHandler) listTeams(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	teams, err := h.teamService.ListTeams(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list teams from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list teams"})
		return
	}

	resp := make([]dto.TeamResponse, 0, len(teams))
	for _, t := range teams {
		resp = append(resp, dto.ToTeamResponse(t))
	}
	c.JSON(http.StatusOK, resp)
}

// createTeamMember godoc
// @Summary Add a team member
// @Tags team-members
// @Accept  json
// @Produce  json
// @Param   member body dto.CreateTeamMemberRequest true "Team member details"
// @Success 201 {object} dto.TeamMemberResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create team member"
// @Router /team-members [post]
func (h *teamHandler) createTeamMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create team member request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	createdMember, err := h.teamMemberService.CreateTeamMember(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create team member in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create team member"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToTeamMemberResponse(*createdMember))
}

// getTeamMember godoc
// @Summary Get a team member by ID
// @Description Retrieves a single team member, including soft-deleted ones
// @Tags team-members
// @Produce  json
// @Param   id path string true "Team member ID"
// @Success 200 {object} dto.TeamMemberResponse
// @Failure 404 {object} map[string]string "Team member not found"
// @Failure 500 {object} map[string]string "Failed to retrieve team member"
// @Router /team-members/{id} [get]
func (h *teamHandler) getTeamMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	teamMemberID := c.Param("id")

	member, err := h.teamMemberService.GetTeamMemberByID(c.Request.Context(), teamMemberID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Team member not found", slog.String("team_member_id", teamMemberID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
		} else {
			logger.Error("Failed to get team member from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve team member"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamMemberResponse(*member))
}

// listTeamMembers godoc
// @Summary List team members
// @Description Lists non-deleted team members, newest first
// @Tags team-members
// @Produce  json
// @Success 200 {array} dto.TeamMemberResponse
// @Failure 500 {object} map[string]string "Failed to list team members"
// @Router /team-members [get]
func (h *teamHandler) listTeamMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	members, err := h.teamMemberService.ListTeamMembers(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list team members from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list team members"})
		return
	}

	resp := make([]dto.TeamMemberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, dto.ToTeamMemberResponse(m))
	}
	c.JSON(http.StatusOK, resp)
}

// updateTeamMember godoc
// @Summary Update a team member
// @Tags team-members
// @Accept  json
// @Produce  json
// @Param   id path string true "Team member ID"
// @Param   member body dto.UpdateTeamMemberRequest true "Fields to update"
// @Success 200 {object} dto.TeamMemberResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Team member not found"
// @Failure 500 {object} map[string]string "Failed to update team member"
// @Router /team-members/{id} [put]
func (h *teamHandler) updateTeamMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	teamMemberID := c.Param("id")
	var req dto.UpdateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for update team member request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updatedMember, err := h.teamMemberService.UpdateTeamMember(c.Request.Context(), teamMemberID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Team member not found for update", slog.String("team_member_id", teamMemberID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
		} else {
			logger.Error("Failed to update team member in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update team member"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTeamMemberResponse(*updatedMember))
}

// deleteTeamMember godoc
// @Summary Move a team member to trash
// @Description Soft-deletes the member and stores a pre-delete snapshot with the given reason and actor
// @Tags team-members
// @Accept  json
// @Produce  json
// @Param   id path string true "Team member ID"
// @Param   body body dto.DeleteTeamMemberRequest false "Optional reason and actor"
// @Success 200 {object} dto.OKResponse
// @Failure 404 {object} map[string]string "Team member not found"
// @Failure 500 {object} map[string]string "Failed to move team member to trash"
// @Router /team-members/{id} [delete]
func (h *teamHandler) deleteTeamMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	teamMemberID := c.Param("id")

	// Body is optional; both fields default to null.
	var req dto.DeleteTeamMemberRequest
	_ = c.ShouldBindJSON(&req)

	deletedBy := req.DeletedBy
	if deletedBy == nil {
		if actorID, ok := middleware.GetUserIDFromContext(c); ok {
			deletedBy = &actorID
		}
	}

	if err := h.teamMemberService.MoveToTrash(c.Request.Context(), teamMemberID, req.Reason, deletedBy); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Team member not found for trash move", slog.String("team_member_id", teamMemberID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
		} else {
			logger.Error("Failed to move team member to trash", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to move team member to trash"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.OKResponse{OK: true})
}

// restoreTeamMember godoc
// @Summary Restore a team member from trash
// @Description Un-deletes the member and discards the trash snapshot
// @Tags team-members
// @Accept  json
// @Produce  json
// @Param   id path string true "Team member ID"
// @Param   body body dto.TrashActorRequest false "Optional actor"
// @Success 200 {object} dto.OKResponse
// @Failure 500 {object} map[string]string "Failed to restore team member"
// @Router /team-members/{id}/restore [post]
func (h *teamHandler) restoreTeamMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	teamMemberID := c.Param("id")

	var req dto.TrashActorRequest
	_ = c.ShouldBindJSON(&req)

	actor := req.ActorUserID
	if actor == nil {
		if actorID, ok := middleware.GetUserIDFromContext(c); ok {
			actor = &actorID
		}
	}

	if err := h.teamMemberService.RestoreFromTrash(c.Request.Context(), teamMemberID, actor); err != nil {
		logger.Error("Failed to restore team member from trash", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to restore team member"})
		return
	}

	c.JSON(http.StatusOK, dto.OKResponse{OK: true})
}

// purgeTeamMember godoc
// @Summary Permanently discard a team member's trash snapshot
// @Description Removes the snapshot only; the soft-deleted live row stays
// @Tags trash
// @Accept  json
// @Produce  json
// @Param   id path string true "Team member ID"
// @Param   body body dto.TrashActorRequest false "Optional actor"
// @Success 200 {object} dto.OKResponse
// @Failure 500 {object} map[string]string "Failed to purge team member trash"
// @Router /trash/team-members/{id} [delete]
func (h *teamHandler) purgeTeamMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	teamMemberID := c.Param("id")

	var req dto.TrashActorRequest
	_ = c.ShouldBindJSON(&req)

	actor := req.ActorUserID
	if actor == nil {
		if actorID, ok := middleware.GetUserIDFromContext(c); ok {
			actor = &actorID
		}
	}

	if err := h.teamMemberService.PurgeTrash(c.Request.Context(), teamMemberID, actor); err != nil {
		logger.Error("Failed to purge team member trash snapshot", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to purge team member trash"})
		return
	}

	c.JSON(http.StatusOK, dto.OKResponse{OK: true})
}
