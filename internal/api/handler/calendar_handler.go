package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nomadplanner/planner-api/internal/core/ports"
)

// CalendarHandler serves the calendar events of the request user.
type CalendarHandler struct {
	service ports.CalendarService
}

func NewCalendarHandler(service ports.CalendarService) *CalendarHandler {
	return &CalendarHandler{service: service}
}

// List handles GET /api/calendar.
//
// @Summary      List calendar events
// @Tags         calendar
// @Produce      json
// @Success      200  {array}   domain.CalendarEvent
// @Failure      500  {object}  ErrorResponse
// @Router       /api/calendar [get]
func (h *CalendarHandler) List(c echo.Context) error {
	uid, err := requestUserID(c)
	if err != nil {
		return err
	}
	events, err := h.service.List(c.Request().Context(), uid)
	if err != nil {
		return fail(err, "error fetching calendar events")
	}
	return c.JSON(http.StatusOK, events)
}

// Get handles GET /api/calendar/:id.
//
// @Summary      Get a calendar event
// @Tags         calendar
// @Produce      json
// @Param        id   path      int  true  "Event id"
// @Success      200  {object}  domain.CalendarEvent
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/calendar/{id} [get]
func (h *CalendarHandler) Get(c echo.Context) error {
	uid, err := requestUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	event, err := h.service.Get(c.Request().Context(), uid, id)
	if err != nil {
		return fail(err, "error fetching calendar event")
	}
	return c.JSON(http.StatusOK, event)
}

// Create handles POST /api/calendar.
//
// @Summary      Create a calendar event
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Param        body  body      calendarEventRequest  true  "Event"
// @Success      200   {object}  domain.CalendarEvent
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/calendar [post]
func (h *CalendarHandler) Create(c echo.Context) error {
	uid, err := requestUserID(c)
	if err != nil {
		return err
	}
	var req calendarEventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	event, err := h.service.Create(c.Request().Context(), req.toDomain(uid))
	if err != nil {
		return fail(err, "error creating calendar event")
	}
	return c.JSON(http.StatusOK, event)
}

// Update handles PUT /api/calendar/:id. Absent fields keep their value.
//
// @Summary      Update a calendar event
// @Tags         calendar
// @Accept       json
// @Produce      json
// @Param        id    path      int                        true  "Event id"
// @Param        body  body      calendarEventPatchRequest  true  "Fields to change"
// @Success      200   {object}  domain.CalendarEvent
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/calendar/{id} [put]
func (h *CalendarHandler) Update(c echo.Context) error {
	uid, err := requestUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req calendarEventPatchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	event, err := h.service.Update(c.Request().Context(), uid, id, req.toDomain())
	if err != nil {
		return fail(err, "error updating calendar event")
	}
	return c.JSON(http.StatusOK, event)
}

// Delete handles DELETE /api/calendar/:id.
//
// @Summary      Delete a calendar event
// @Tags         calendar
// @Produce      json
// @Param        id   path      int  true  "Event id"
// @Success      200  {object}  deleteResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/calendar/{id} [delete]
func (h *CalendarHandler) Delete(c echo.Context) error {
	uid, err := requestUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), uid, id); err != nil {
		return fail(err, "error deleting calendar event")
	}
	return c.JSON(http.StatusOK, deleteResponse{Success: true})
}
