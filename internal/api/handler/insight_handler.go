package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nomadplanner/planner-api/internal/core/ports"
)

// maxInsightBody caps free-form payloads forwarded to the AI collaborator.
const maxInsightBody = 1 << 20

// InsightHandler exposes the AI features. Bodies are free-form JSON that is
// forwarded as is; answers are written back unmodified.
type InsightHandler struct {
	service ports.InsightService
}

func NewInsightHandler(service ports.InsightService) *InsightHandler {
	return &InsightHandler{service: service}
}

// rawBody returns the request body as JSON. An empty body reads as {}.
func rawBody(c echo.Context) (json.RawMessage, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxInsightBody+1))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(body) > maxInsightBody {
		return nil, echo.NewHTTPError(http.StatusRequestEntityTooLarge, "payload too large")
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(body) {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid JSON body")
	}
	return json.RawMessage(body), nil
}

type forwardFunc func(c echo.Context, uid int64, body json.RawMessage) (json.RawMessage, error)

// forward wires a free-form AI route.
func (h *InsightHandler) forward(msg string, call forwardFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, err := requestUserID(c)
		if err != nil {
			return err
		}
		body, err := rawBody(c)
		if err != nil {
			return err
		}
		answer, err := call(c, uid, body)
		if err != nil {
			return fail(err, msg)
		}
		return c.JSONBlob(http.StatusOK, answer)
	}
}

// AnalyzeCalendar handles POST /api/calendar/analyze over the stored events.
//
// @Summary      Detect calendar conflicts
// @Tags         calendar
// @Produce      json
// @Success      200  {object}  object  "ConflictAnalysis"
// @Failure      500  {object}  ErrorResponse
// @Router       /api/calendar/analyze [post]
func (h *InsightHandler) AnalyzeCalendar(c echo.Context) error {
	return h.forward("error analyzing calendar", func(c echo.Context, uid int64, _ json.RawMessage) (json.RawMessage, error) {
		return h.service.AnalyzeCalendar(c.Request().Context(), uid)
	})(c)
}

// RecommendCoworking handles POST /api/coworking/recommend.
//
// @Summary      Recommend coworking spaces
// @Tags         coworking
// @Accept       json
// @Produce      json
// @Param        body  body      object  false  "Search criteria"
// @Success      200   {object}  object  "CoworkingRecommendations"
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/coworking/recommend [post]
func (h *InsightHandler) RecommendCoworking(c echo.Context) error {
	return h.forward("error getting coworking recommendations", func(c echo.Context, uid int64, body json.RawMessage) (json.RawMessage, error) {
		return h.service.RecommendCoworking(c.Request().Context(), uid, body)
	})(c)
}

// RecommendTimeZone handles POST /api/timezone/recommend.
//
// @Summary      Recommend meeting windows across time zones
// @Tags         timezone
// @Accept       json
// @Produce      json
// @Param        body  body      object  false  "Team information"
// @Success      200   {object}  object  "TimeZoneRecommendation"
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/timezone/recommend [post]
func (h *InsightHandler) RecommendTimeZone(c echo.Context) error {
	return h.forward("error getting time zone recommendations", func(c echo.Context, uid int64, body json.RawMessage) (json.RawMessage, error) {
		return h.service.RecommendTimeZone(c.Request().Context(), uid, body)
	})(c)
}

// AnalyzeBudget handles POST /api/budget/analyze over the stored entries.
//
// @Summary      Analyze spending
// @Tags         budget
// @Produce      json
// @Success      200  {object}  object  "BudgetAnalysis"
// @Failure      500  {object}  ErrorResponse
// @Router       /api/budget/analyze [post]
func (h *InsightHandler) AnalyzeBudget(c echo.Context) error {
	return h.forward("error analyzing budget", func(c echo.Context, uid int64, _ json.RawMessage) (json.RawMessage, error) {
		return h.service.AnalyzeBudget(c.Request().Context(), uid)
	})(c)
}

// RecommendCommunity handles POST /api/community/recommend.
//
// @Summary      Recommend communities and events
// @Tags         community
// @Accept       json
// @Produce      json
// @Param        body  body      object  false  "User profile"
// @Success      200   {object}  object  "CommunityRecommendations"
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/community/recommend [post]
func (h *InsightHandler) RecommendCommunity(c echo.Context) error {
	return h.forward("error getting community recommendations", func(c echo.Context, uid int64, body json.RawMessage) (json.RawMessage, error) {
		return h.service.RecommendCommunity(c.Request().Context(), uid, body)
	})(c)
}

// LegalResources handles POST /api/legal/resources.
//
// @Summary      Visa, tax and legal guidance
// @Tags         legal
// @Accept       json
// @Produce      json
// @Param        body  body      object  false  "Query"
// @Success      200   {object}  object  "LegalResource"
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/legal/resources [post]
func (h *InsightHandler) LegalResources(c echo.Context) error {
	return h.forward("error getting legal resources", func(c echo.Context, uid int64, body json.RawMessage) (json.RawMessage, error) {
		return h.service.LegalResources(c.Request().Context(), uid, body)
	})(c)
}

// Assistant handles POST /api/assistant.
//
// @Summary      Ask the assistant
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        body  body      assistantRequest  true  "Question"
// @Success      200   {object}  object  "AssistantResponse"
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /api/assistant [post]
func (h *InsightHandler) Assistant(c echo.Context) error {
	return h.forward("error getting assistant response", func(c echo.Context, uid int64, body json.RawMessage) (json.RawMessage, error) {
		var req assistantRequest
		if err := json.Unmarshal(body, &req); err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "query must be a string")
		}
		if err := c.Validate(&req); err != nil {
			return nil, err
		}
		return h.service.Ask(c.Request().Context(), uid, req.Query)
	})(c)
}
