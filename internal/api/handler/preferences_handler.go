package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nomadplanner/planner-api/internal/core/ports"
)

type PreferencesHandler struct {
	service ports.PreferencesService
}

func NewPreferencesHandler(service ports.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{service: service}
}

// Get handles GET /api/user-preferences.
//
// @Summary      Get the user's preferences
// @Tags         preferences
// @Produce      json
// @Success      200  {object}  domain.UserPreferences
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /api/user-preferences [get]
func (h *PreferencesHandler) Get(c echo.Context) error {
	uid, err := requestUserID(c)
	if err != nil {
		return err
	}
	prefs, err := h.service.Get(c.Request().Context(), uid)
	if err != nil {
		return fail(err, "error fetching user preferences")
	}
	return c.JSON(http.StatusOK, prefs)
}

// Save handles POST /api/user-preferences: creates the record or merges the
// present fields into it.
//
// @Summary      Create or update the user's preferences
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Param        body  body      preferencesRequest  true  "Preferences"
// @Success      200   {object}  domain.UserPreferences
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/user-preferences [post]
func (h *PreferencesHandler) Save(c echo.Context) error {
	uid, err := requestUserID(c)
	if err != nil {
		return err
	}
	var req preferencesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	prefs, err := h.service.Save(c.Request().Context(), uid, req.toDomain())
	if err != nil {
		return fail(err, "error updating user preferences")
	}
	return c.JSON(http.StatusOK, prefs)
}
