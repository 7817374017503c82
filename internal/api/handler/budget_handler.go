package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nomadplanner/planner-api/internal/core/ports"
)

type BudgetHandler struct {
	service ports.BudgetService
}

func NewBudgetHandler(service ports.BudgetService) *BudgetHandler {
	return &BudgetHandler{service: service}
}

// List handles GET /api/budget.
//
// @Summary      List budget entries
// @Tags         budget
// @Produce      json
// @Success      200  {array}   domain.BudgetEntry
// @Failure      500  {object}  ErrorResponse
// @Router       /api/budget [get]
func (h *BudgetHandler) List(c echo.Context) error {
	uid, err := requestUserID(c)
	if err != nil {
		return err
	}
	entries, err := h.service.List(c.Request().Context(), uid)
	if err != nil {
		return fail(err, "error fetching budget entries")
	}
	return c.JSON(http.StatusOK, entries)
}

// Get handles GET /api/budget/:id.
//
// @Summary      Get a budget entry
// @Tags         budget
// @Produce      json
// @Param        id   path      int  true  "Entry id"
// @Success      200  {object}  domain.BudgetEntry
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /api/budget/{id} [get]
func (h *BudgetHandler) Get(c echo.Context) error {
	uid, err := requestUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	entry, err := h.service.Get(c.Request().Context(), uid, id)
	if err != nil {
		return fail(err, "error fetching budget entry")
	}
	return c.JSON(http.StatusOK, entry)
}

// Create handles POST /api/budget.
//
// @Summary      Record a budget entry
// @Tags         budget
// @Accept       json
// @Produce      json
// @Param        body  body      budgetEntryRequest  true  "Entry"
// @Success      200   {object}  domain.BudgetEntry
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/budget [post]
func (h *BudgetHandler) Create(c echo.Context) error {
	uid, err := requestUserID(c)
	if err != nil {
		return err
	}
	var req budgetEntryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	entry, err := h.service.Create(c.Request().Context(), req.toDomain(uid))
	if err != nil {
		return fail(err, "error creating budget entry")
	}
	return c.JSON(http.StatusOK, entry)
}

// Update handles PUT /api/budget/:id.
//
// @Summary      Update a budget entry
// @Tags         budget
// @Accept       json
// @Produce      json
// @Param        id    path      int                      true  "Entry id"
// @Param        body  body      budgetEntryPatchRequest  true  "Fields to change"
// @Success      200   {object}  domain.BudgetEntry
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/budget/{id} [put]
func (h *BudgetHandler) Update(c echo.Context) error {
	uid, err := requestUserID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req budgetEntryPatchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	entry, err := h.service.Update(c.Request().Context(), uid, id, req.toDomain())
	if err != nil {
		return fail(err, "error updating budget entry")
	}
	return c.JSON(http.StatusOK, entry)
}
