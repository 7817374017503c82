package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/nomadplanner/planner-api/internal/core/domain"
)

func answer(text string) string {
	b, _ := json.Marshal(map[string]any{
		"candidates": []any{
			map[string]any{"content": map[string]any{"role": "model", "parts": []any{map[string]any{"text": text}}}},
		},
	})
	return string(b)
}

func newServer(t *testing.T, status int, body string, inspect func(*http.Request, []byte)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		if inspect != nil {
			inspect(r, raw)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newClient(url string) *Client {
	return New(Config{APIKey: "k", BaseURL: url, Model: "gemini-1.5-flash"}, zerolog.Nop())
}

func TestClassify_Success(t *testing.T) {
	srv := newServer(t, http.StatusOK, answer(`{"conflicts":[]}`), func(r *http.Request, body []byte) {
		if r.Method != http.MethodPost {
			t.Errorf("method: %s", r.Method)
		}
		if r.URL.Path != "/v1beta/models/gemini-1.5-flash:generateContent" {
			t.Errorf("path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "k" {
			t.Errorf("missing api key")
		}
		var req generateRequest
		if err := json.Unmarshal(body, &req); err != nil {
			t.Errorf("decode request: %v", err)
			return
		}
		if req.GenerationConfig.ResponseMimeType != "application/json" {
			t.Errorf("mime type: %q", req.GenerationConfig.ResponseMimeType)
		}
		if len(req.Contents) != 1 || req.Contents[0].Parts[0].Text != "analyze" {
			t.Errorf("unexpected contents: %+v", req.Contents)
		}
	})

	got, err := newClient(srv.URL).Classify(context.Background(), "analyze")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if string(got) != `{"conflicts":[]}` {
		t.Fatalf("unexpected answer: %s", got)
	}
}

func TestClassify_StripsCodeFences(t *testing.T) {
	srv := newServer(t, http.StatusOK, answer("```json\n{\"a\":1}\n```"), nil)

	got, err := newClient(srv.URL).Classify(context.Background(), "p")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if string(got) != `{"a":1}` {
		t.Fatalf("unexpected answer: %s", got)
	}
}

func TestClassify_MalformedAnswer(t *testing.T) {
	srv := newServer(t, http.StatusOK, answer("sorry, I cannot help"), nil)

	if _, err := newClient(srv.URL).Classify(context.Background(), "p"); !errors.Is(err, domain.ErrMalformedAIResponse) {
		t.Fatalf("expected ErrMalformedAIResponse, got %v", err)
	}
}

func TestClassify_NoCandidates(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{"candidates":[]}`, nil)

	if _, err := newClient(srv.URL).Classify(context.Background(), "p"); !errors.Is(err, domain.ErrMalformedAIResponse) {
		t.Fatalf("expected ErrMalformedAIResponse, got %v", err)
	}
}

func TestClassify_APIError(t *testing.T) {
	srv := newServer(t, http.StatusBadRequest, `{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`, nil)

	_, err := newClient(srv.URL).Classify(context.Background(), "p")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, domain.ErrMalformedAIResponse) {
		t.Fatalf("api error must not look like a malformed answer: %v", err)
	}
}

func TestClassify_MissingKey(t *testing.T) {
	c := New(Config{BaseURL: "http://127.0.0.1:1", Model: "m"}, zerolog.Nop())

	if _, err := c.Classify(context.Background(), "p"); !errors.Is(err, domain.ErrAIUnavailable) {
		t.Fatalf("expected ErrAIUnavailable, got %v", err)
	}
}

func TestClassify_HonoursContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := newClient(srv.URL).Classify(ctx, "p"); err == nil {
		t.Fatal("expected error after context deadline")
	}
}

func TestStripFences(t *testing.T) {
	cases := map[string]string{
		`{"a":1}`:                  `{"a":1}`,
		"  {\"a\":1}\n":            `{"a":1}`,
		"```\n[1,2]\n```":          `[1,2]`,
		"```json\n{\"b\":true}```": `{"b":true}`,
	}
	for in, want := range cases {
		if got := stripFences(in); got != want {
			t.Errorf("stripFences(%q) = %q, want %q", in, got, want)
		}
	}
}
