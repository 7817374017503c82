package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nomadplanner/planner-api/internal/core/domain"
	"github.com/nomadplanner/planner-api/internal/core/ports"
)

type ConversationHandler struct {
	service ports.ConversationService
}

func NewConversationHandler(service ports.ConversationService) *ConversationHandler {
	return &ConversationHandler{service: service}
}

// List handles GET /api/conversations.
//
// @Summary      AI conversation history
// @Tags         assistant
// @Produce      json
// @Param        module  query     string  false  "Restrict to one module"
// @Success      200     {array}   domain.AiConversation
// @Failure      400     {object}  ErrorResponse
// @Failure      500     {object}  ErrorResponse
// @Router       /api/conversations [get]
func (h *ConversationHandler) List(c echo.Context) error {
	uid, err := requestUserID(c)
	if err != nil {
		return err
	}
	module := c.QueryParam("module")
	if module != "" && !domain.IsKnownModule(module) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown module")
	}
	convs, err := h.service.List(c.Request().Context(), uid, module)
	if err != nil {
		return fail(err, "error fetching conversations")
	}
	return c.JSON(http.StatusOK, convs)
}
