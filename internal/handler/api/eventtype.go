package api

import (
	"errors"
	"net/http"

	reqdto "expertbook/internal/handler/dto/request"
	resdto "expertbook/internal/handler/dto/response"
	"expertbook/internal/handler/middleware"
	"expertbook/internal/usecase/commands"
	"expertbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EventTypeHandler struct {
	eventTypeQueries  queries.EventTypeQueries
	eventTypeCommands commands.EventTypeCommands
}

func NewEventTypeHandler(
	eventTypeQueries queries.EventTypeQueries,
	eventTypeCommands commands.EventTypeCommands,
) *EventTypeHandler {
	return &EventTypeHandler{
		eventTypeQueries:  eventTypeQueries,
		eventTypeCommands: eventTypeCommands,
	}
}

// @Summary List event types
// @Description Public listing of an expert's event types
// @Tags event-types
// @Produce json
// @Param expertId path string true "Expert ID"
// @Success 200 {array} resdto.EventTypeResponse
// @Failure 400 {object} map[string]string
// @Router /event-types/expert/{expertId} [get]
func (h *EventTypeHandler) ListByExpert(c *gin.Context) {
	expertID, err := uuid.Parse(c.Param("expertId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid expert ID format",
		})
		return
	}

	views, err := h.eventTypeQueries.ListByExpert(c.Request.Context(), expertID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromEventTypeViews(views))
}

// @Summary Create event type
// @Description Create an event type for the authenticated expert
// @Tags event-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.EventTypeRequest true "Event type request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /event-types [post]
func (h *EventTypeHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.EventTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.eventTypeCommands.Create(c.Request.Context(), userID, req.ToCommand())
	if err != nil {
		h.writeCommandError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id": id.String(),
	})
}

// @Summary Update event type
// @Description Update an event type owned by the authenticated expert
// @Tags event-types
// @Accept json
// @Security BearerAuth
// @Param id path string true "Event type ID"
// @Param request body reqdto.EventTypeRequest true "Event type request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /event-types/{id} [put]
func (h *EventTypeHandler) Update(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	eventTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event type ID format",
		})
		return
	}

	var req reqdto.EventTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.eventTypeCommands.Update(c.Request.Context(), userID, eventTypeID, req.ToCommand()); err != nil {
		h.writeCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete event type
// @Description Delete an event type owned by the authenticated expert
// @Tags event-types
// @Security BearerAuth
// @Param id path string true "Event type ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /event-types/{id} [delete]
func (h *EventTypeHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	eventTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event type ID format",
		})
		return
	}

	if err := h.eventTypeCommands.Delete(c.Request.Context(), userID, eventTypeID); err != nil {
		h.writeCommandError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EventTypeHandler) writeCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrNotExpert):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Expert profile not found",
		})
	case errors.Is(err, commands.ErrEventTypeNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Event type not found",
		})
	case errors.Is(err, commands.ErrEventTypeNotOwned):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Event type belongs to another expert",
		})
	case errors.Is(err, commands.ErrSlugTaken):
		c.JSON(http.StatusConflict, gin.H{
			"error": "URL slug already in use",
		})
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
	}
}
