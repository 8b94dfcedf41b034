package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	reqdto "expertbook/internal/handler/dto/request"
	resdto "expertbook/internal/handler/dto/response"
	"expertbook/internal/handler/middleware"
	"expertbook/internal/realtime"
	"expertbook/internal/usecase/commands"
	"expertbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ExpertHandler struct {
	expertQueries  queries.ExpertQueries
	slotQueries    queries.SlotQueries
	expertCommands commands.ExpertCommands
	hub            *realtime.Hub
}

func NewExpertHandler(
	expertQueries queries.ExpertQueries,
	slotQueries queries.SlotQueries,
	expertCommands commands.ExpertCommands,
	hub *realtime.Hub,
) *ExpertHandler {
	return &ExpertHandler{
		expertQueries:  expertQueries,
		slotQueries:    slotQueries,
		expertCommands: expertCommands,
		hub:            hub,
	}
}

// @Summary List experts
// @Description Browse the expert directory with search, category filter and cursor pagination
// @Tags experts
// @Produce json
// @Param search query string false "Free-text name or username search"
// @Param category query string false "Exact category filter"
// @Param limit query int false "Page size (default 20, max 200)"
// @Param after query string false "Pagination cursor from a previous page"
// @Success 200 {object} resdto.ExpertListResponse
// @Failure 400 {object} map[string]string
// @Router /experts [get]
func (h *ExpertHandler) ListExperts(c *gin.Context) {
	filter := queries.ExpertListFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit parameter",
			})
			return
		}
		limit = parsed
	}

	var after *queries.Cursor
	if raw := c.Query("after"); raw != "" {
		after = &queries.Cursor{After: raw}
	}

	items, next, err := h.expertQueries.List(c.Request.Context(), filter, after, limit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid pagination cursor",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromExpertList(items, next))
}

// @Summary Get expert
// @Description Get an expert profile by id or username
// @Tags experts
// @Produce json
// @Param id path string true "Expert ID or username"
// @Success 200 {object} resdto.ExpertResponse
// @Failure 404 {object} map[string]string
// @Router /experts/{id} [get]
func (h *ExpertHandler) GetExpert(c *gin.Context) {
	view, err := h.expertQueries.GetByRef(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrExpertNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Expert not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromExpertView(view))
}

// @Summary Get expert availability
// @Description Get the weekly availability template of an expert
// @Tags experts
// @Produce json
// @Param id path string true "Expert ID or username"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 404 {object} map[string]string
// @Router /experts/{id}/availability [get]
func (h *ExpertHandler) GetAvailability(c *gin.Context) {
	view, err := h.expertQueries.GetByRef(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Expert not found",
		})
		return
	}

	rules, err := h.expertQueries.GetAvailability(c.Request.Context(), view.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityRules(view.ID, rules))
}

// @Summary Update availability
// @Description Replace the authenticated expert's weekly template, timezone and buffer
// @Tags experts
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.UpdateAvailabilityRequest true "Availability request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /experts/availability [put]
func (h *ExpertHandler) UpdateAvailability(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.expertCommands.UpdateAvailability(c.Request.Context(), userID, req.ToCommand()); err != nil {
		switch {
		case errors.Is(err, commands.ErrNotExpert):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Expert profile not found",
			})
		case errors.Is(err, commands.ErrInvalidSchedule):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid availability schedule",
			})
		default:
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request data",
			})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List bookable slots
// @Description Generate the expert's open slots for a viewer-local date range
// @Tags experts
// @Produce json
// @Param id path string true "Expert ID or username"
// @Param from query string false "Start date YYYY-MM-DD in the viewer zone (default today)"
// @Param days query int false "Range length in days"
// @Param tz query string false "Viewer IANA timezone (default UTC)"
// @Param event_type query string false "Event type slug selecting the slot duration"
// @Success 200 {object} resdto.SlotsResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /experts/{id}/slots [get]
func (h *ExpertHandler) ListSlots(c *gin.Context) {
	view, err := h.expertQueries.GetByRef(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Expert not found",
		})
		return
	}

	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, perr := strconv.Atoi(raw)
		if perr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid days parameter",
			})
			return
		}
		days = parsed
	}

	result, err := h.slotQueries.ListSlots(c.Request.Context(), queries.SlotsRequest{
		ExpertID:      view.ID,
		ViewerZone:    c.Query("tz"),
		From:          c.Query("from"),
		Days:          days,
		EventTypeSlug: c.Query("event_type"),
	})
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrExpertNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Expert not found",
			})
		case errors.Is(err, queries.ErrEventTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Event type not found",
			})
		case errors.Is(err, queries.ErrInvalidViewerZone):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid viewer timezone",
			})
		case errors.Is(err, queries.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date range",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotsResult(result))
}

// @Summary Stream slot events
// @Description Server-sent events feed of slot_booked / slot_freed for one expert
// @Tags experts
// @Produce text/event-stream
// @Param id path string true "Expert ID or username"
// @Success 200 {string} string "SSE stream"
// @Failure 404 {object} map[string]string
// @Router /experts/{id}/stream [get]
func (h *ExpertHandler) StreamSlotEvents(c *gin.Context) {
	view, err := h.expertQueries.GetByRef(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Expert not found",
		})
		return
	}

	sub := h.hub.Subscribe(view.ID.String())
	defer h.hub.Unsubscribe(sub)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(_ io.Writer) bool {
		select {
		case ev, ok := <-sub.C:
			if !ok {
				return false
			}
			c.SSEvent(ev.Type, string(ev.Marshal()))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
