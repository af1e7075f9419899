package api

import (
	"errors"
	"net/http"

	reqdto "flexin/internal/handler/dto/request"
	resdto "flexin/internal/handler/dto/response"
	"flexin/internal/handler/middleware"
	"flexin/internal/usecase/commands"
	"flexin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SwapHandler struct {
	swapCommands commands.SwapCommands
	swapQueries  queries.SwapQueries
}

func NewSwapHandler(swapCommands commands.SwapCommands, swapQueries queries.SwapQueries) *SwapHandler {
	return &SwapHandler{
		swapCommands: swapCommands,
		swapQueries:  swapQueries,
	}
}

// @Summary Create swap request
// @Description Propose taking over another user's booked day
// @Tags swaps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSwapRequest true "Swap request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /swap-requests [post]
func (h *SwapHandler) CreateSwapRequest(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	day, err := req.ToDay()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format, expected YYYY-MM-DD"})
		return
	}

	requestID, err := h.swapCommands.CreateSwapRequest(c.Request.Context(), actor, req.TargetUserID, day, req.GetMessage())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSwapSelfTarget):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot request a swap with yourself"})
		case errors.Is(err, commands.ErrSwapTargetNotBooked):
			c.JSON(http.StatusConflict, gin.H{"error": "Target user has no active booking on that day"})
		case errors.Is(err, commands.ErrDuplicateBooking):
			c.JSON(http.StatusConflict, gin.H{"error": "You already have a booking on this day"})
		case errors.Is(err, commands.ErrWeeklyLimitReached):
			c.JSON(http.StatusConflict, gin.H{"error": "Weekly booking limit reached"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": requestID.String()})
}

// @Summary List own swap requests
// @Description Requests the user sent or received, newest first
// @Tags swaps
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SwapRequestResponse
// @Router /swap-requests [get]
func (h *SwapHandler) ListMySwapRequests(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.swapQueries.ListForUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSwapRequestViews(views))
}

// @Summary List incoming swap requests
// @Description Pending requests awaiting the user's answer
// @Tags swaps
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SwapRequestResponse
// @Router /swap-requests/incoming [get]
func (h *SwapHandler) ListIncomingSwapRequests(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.swapQueries.ListPendingForTarget(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSwapRequestViews(views))
}

// @Summary Withdraw swap request
// @Tags swaps
// @Produce json
// @Security BearerAuth
// @Param id path string true "Swap request ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /swap-requests/{id} [delete]
func (h *SwapHandler) WithdrawSwapRequest(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid swap request ID format"})
		return
	}

	if err := h.swapCommands.WithdrawSwapRequest(c.Request.Context(), actor, requestID); err != nil {
		h.respondSwapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Swap request withdrawn"})
}

// @Summary Approve swap request
// @Description Approving transfers the booking to the requester atomically
// @Tags swaps
// @Produce json
// @Security BearerAuth
// @Param id path string true "Swap request ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /swap-requests/{id}/approve [post]
func (h *SwapHandler) ApproveSwapRequest(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid swap request ID format"})
		return
	}

	if err := h.swapCommands.ApproveSwapRequest(c.Request.Context(), actor, requestID); err != nil {
		h.respondSwapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Swap request approved"})
}

// @Summary Reject swap request
// @Tags swaps
// @Produce json
// @Security BearerAuth
// @Param id path string true "Swap request ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /swap-requests/{id}/reject [post]
func (h *SwapHandler) RejectSwapRequest(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid swap request ID format"})
		return
	}

	if err := h.swapCommands.RejectSwapRequest(c.Request.Context(), actor, requestID); err != nil {
		h.respondSwapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Swap request rejected"})
}

func (h *SwapHandler) respondSwapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrSwapNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Swap request not found"})
	case errors.Is(err, commands.ErrNotSwapRequester), errors.Is(err, commands.ErrNotSwapTarget):
		c.JSON(http.StatusForbidden, gin.H{"error": "Swap request belongs to another user"})
	case errors.Is(err, commands.ErrSwapAlreadyResolved):
		c.JSON(http.StatusConflict, gin.H{"error": "Swap request is already resolved"})
	case errors.Is(err, commands.ErrSwapTargetNotBooked):
		c.JSON(http.StatusConflict, gin.H{"error": "The booked day no longer exists"})
	case errors.Is(err, commands.ErrDuplicateBooking):
		c.JSON(http.StatusConflict, gin.H{"error": "You already have a booking on this day"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
