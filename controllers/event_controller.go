package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/saintecare/sainte/storage"
	"github.com/saintecare/sainte/utils"
)

// EventController serves community event endpoints.
type EventController struct {
	store storage.Storage
}

// NewEventController creates a new EventController instance.
func NewEventController(store storage.Storage) *EventController {
	return &EventController{store: store}
}

// UpcomingEvents returns the user's events from today onward, soonest first.
func (e *EventController) UpcomingEvents(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	events, err := e.store.GetUpcomingEvents(ctx.Request.Context(), userID)
	if err != nil {
		utils.ServerError(ctx, err)
		return
	}
	ctx.JSON(200, events)
}

// RSVP confirms the user's attendance for one event.
func (e *EventController) RSVP(ctx *gin.Context) {
	eventID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorMessage(ctx, http.StatusBadRequest, "Invalid event ID")
		return
	}

	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	event, err := e.store.UpdateEventStatus(ctx.Request.Context(), uint(eventID), userID, "confirmed")
	if err != nil {
		respondStorageError(ctx, err, "Event not found")
		return
	}

	utils.InvalidateByPrefix("cache:sccs:report:" + strconv.Itoa(int(userID)))

	ctx.JSON(200, event)
}
