package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nomadplanner/planner-api/internal/core/ports"
)

type CoworkingHandler struct {
	service ports.CoworkingService
}

func NewCoworkingHandler(service ports.CoworkingService) *CoworkingHandler {
	return &CoworkingHandler{service: service}
}

// List handles GET /api/coworking.
//
// @Summary      List saved coworking spaces
// @Tags         coworking
// @Produce      json
// @Success      200  {array}   domain.CoworkingSpace
// @Failure      500  {object}  ErrorResponse
// @Router       /api/coworking [get]
func (h *CoworkingHandler) List(c echo.Context) error {
	uid, err := requestUserID(c)
	if err != nil {
		return err
	}
	spaces, err := h.service.List(c.Request().Context(), uid)
	if err != nil {
		return fail(err, "error fetching coworking spaces")
	}
	return c.JSON(http.StatusOK, spaces)
}

// Get handles GET /api/coworking/:id.
//
// @Summary      Get a coworking space
// @Tags         coworking
// @Produce      json
// @Param        id   path      int  true  "Space id"
// @Success      200  {object}  domain.CoworkingSpace
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/coworking/{id} [get]
func (h *CoworkingHandler) Get(c echo.Context) error {
	uid, err := requestUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	space, err := h.service.Get(c.Request().Context(), uid, id)
	if err != nil {
		return fail(err, "error fetching coworking space")
	}
	return c.JSON(http.StatusOK, space)
}

// Create handles POST /api/coworking.
//
// @Summary      Save a coworking space
// @Tags         coworking
// @Accept       json
// @Produce      json
// @Param        body  body      coworkingSpaceRequest  true  "Space"
// @Success      200   {object}  domain.CoworkingSpace
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/coworking [post]
func (h *CoworkingHandler) Create(c echo.Context) error {
	uid, err := requestUserID(c)
	if err != nil {
		return err
	}
	var req coworkingSpaceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	space, err := h.service.Create(c.Request().Context(), req.toDomain(uid))
	if err != nil {
		return fail(err, "error creating coworking space")
	}
	return c.JSON(http.StatusOK, space)
}
