package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/nomadplanner/planner-api/internal/core/domain"
)

type stubInsightService struct {
	got   json.RawMessage
	query string
	err   error
}

func (s *stubInsightService) answer(body json.RawMessage) (json.RawMessage, error) {
	s.got = body
	if s.err != nil {
		return nil, s.err
	}
	return json.RawMessage(`{"ok":true}`), nil
}

func (s *stubInsightService) AnalyzeCalendar(ctx context.Context, userID int64) (json.RawMessage, error) {
	return s.answer(nil)
}

func (s *stubInsightService) RecommendCoworking(ctx context.Context, userID int64, b json.RawMessage) (json.RawMessage, error) {
	return s.answer(b)
}

func (s *stubInsightService) RecommendTimeZone(ctx context.Context, userID int64, b json.RawMessage) (json.RawMessage, error) {
	return s.answer(b)
}

func (s *stubInsightService) AnalyzeBudget(ctx context.Context, userID int64) (json.RawMessage, error) {
	return s.answer(nil)
}

func (s *stubInsightService) RecommendCommunity(ctx context.Context, userID int64, b json.RawMessage) (json.RawMessage, error) {
	return s.answer(b)
}

func (s *stubInsightService) LegalResources(ctx context.Context, userID int64, b json.RawMessage) (json.RawMessage, error) {
	return s.answer(b)
}

func (s *stubInsightService) Ask(ctx context.Context, userID int64, query string) (json.RawMessage, error) {
	s.query = query
	return s.answer(nil)
}

func TestInsightHandler_ForwardsBodyUnmodified(t *testing.T) {
	svc := &stubInsightService{}
	body := `{"location":"Chiang Mai","budget":"low","amenities":["fast wifi"]}`
	c, rec := newContext(http.MethodPost, "/api/coworking/recommend", body, 1)

	if err := NewInsightHandler(svc).RecommendCoworking(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if string(svc.got) != body {
		t.Fatalf("body changed: %s", svc.got)
	}
	if rec.Body.String() != `{"ok":true}` {
		t.Fatalf("answer changed: %s", rec.Body.String())
	}
}

func TestInsightHandler_EmptyBodyIsEmptyObject(t *testing.T) {
	svc := &stubInsightService{}
	c, _ := newContext(http.MethodPost, "/api/legal/resources", "", 1)

	if err := NewInsightHandler(svc).LegalResources(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if string(svc.got) != "{}" {
		t.Fatalf("expected {}, got %s", svc.got)
	}
}

func TestInsightHandler_InvalidJSON(t *testing.T) {
	c, _ := newContext(http.MethodPost, "/api/timezone/recommend", `{"team":`, 1)

	if code := httpCode(t, NewInsightHandler(&stubInsightService{}).RecommendTimeZone(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestInsightHandler_AssistantRequiresQuery(t *testing.T) {
	svc := &stubInsightService{}

	c, _ := newContext(http.MethodPost, "/api/assistant", `{}`, 1)
	var ve *ValidationError
	if err := NewInsightHandler(svc).Assistant(c); !errors.As(err, &ve) || ve.Fields[0].Field != "query" {
		t.Fatalf("expected query validation error, got %v", err)
	}

	c, _ = newContext(http.MethodPost, "/api/assistant", `{"query": 5}`, 1)
	if code := httpCode(t, NewInsightHandler(svc).Assistant(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}

	c, _ = newContext(http.MethodPost, "/api/assistant", `{"query":"Best visa for Thailand?"}`, 1)
	if err := NewInsightHandler(svc).Assistant(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if svc.query != "Best visa for Thailand?" {
		t.Fatalf("unexpected query: %q", svc.query)
	}
}

func TestInsightHandler_CollaboratorFailure(t *testing.T) {
	svc := &stubInsightService{err: domain.ErrMalformedAIResponse}
	c, _ := newContext(http.MethodPost, "/api/budget/analyze", "", 1)

	err := NewInsightHandler(svc).AnalyzeBudget(c)
	var f *Failure
	if !errors.As(err, &f) || f.Message != "error analyzing budget" {
		t.Fatalf("expected route failure, got %v", err)
	}
	if !errors.Is(err, domain.ErrMalformedAIResponse) {
		t.Fatalf("cause lost: %v", err)
	}
}
