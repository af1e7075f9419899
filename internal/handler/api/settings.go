package api

import (
	"errors"
	"net/http"

	"flexin/internal/domain/booking"
	reqdto "flexin/internal/handler/dto/request"
	resdto "flexin/internal/handler/dto/response"
	"flexin/internal/usecase/commands"
	"flexin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsCommands commands.SettingsCommands
	settingsQueries  queries.SettingsQueries
}

func NewSettingsHandler(settingsCommands commands.SettingsCommands, settingsQueries queries.SettingsQueries) *SettingsHandler {
	return &SettingsHandler{
		settingsCommands: settingsCommands,
		settingsQueries:  settingsQueries,
	}
}

// @Summary Get settings
// @Description Current booking rules, blocked dates and announcement
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SettingsResponse
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	view, err := h.settingsQueries.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSettingsView(view))
}

// @Summary Update settings
// @Description Partial update of the booking rules
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateSettingsRequest true "Settings patch"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/settings [patch]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.settingsCommands.UpdateSettings(c.Request.Context(), actor, req.ToPatch()); err != nil {
		switch {
		case errors.Is(err, commands.ErrAdminRequired):
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		case errors.Is(err, commands.ErrInvalidSettings):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Settings validation failed"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Settings updated"})
}

// @Summary Block date
// @Description Close a date to new bookings; existing bookings stand
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BlockDateRequest true "Date to block"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/blocked-dates [post]
func (h *SettingsHandler) BlockDate(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.BlockDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	day, err := req.ToDay()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
		return
	}

	if err := h.settingsCommands.BlockDate(c.Request.Context(), actor, day); err != nil {
		if errors.Is(err, commands.ErrAdminRequired) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Date blocked"})
}

// @Summary Unblock date
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/blocked-dates/{date} [delete]
func (h *SettingsHandler) UnblockDate(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	day, err := booking.ParseDay(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
		return
	}

	if err := h.settingsCommands.UnblockDate(c.Request.Context(), actor, day); err != nil {
		switch {
		case errors.Is(err, commands.ErrAdminRequired):
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		case errors.Is(err, commands.ErrBlockedDateNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Blocked date not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Date unblocked"})
}

// @Summary Publish announcement
// @Description Replaces the active announcement
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AnnouncementRequest true "Announcement"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/announcements [post]
func (h *SettingsHandler) PublishAnnouncement(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.settingsCommands.PublishAnnouncement(c.Request.Context(), actor, req.Message); err != nil {
		switch {
		case errors.Is(err, commands.ErrAdminRequired):
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		case errors.Is(err, commands.ErrEmptyAnnouncement):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Announcement message is empty"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Announcement published"})
}

// @Summary Clear announcement
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/announcements [delete]
func (h *SettingsHandler) ClearAnnouncement(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := h.settingsCommands.ClearAnnouncement(c.Request.Context(), actor); err != nil {
		if errors.Is(err, commands.ErrAdminRequired) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Announcement cleared"})
}
