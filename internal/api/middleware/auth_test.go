package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

func sign(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

// run executes the middleware and returns the identity seen by the next handler.
func run(t *testing.T, mw echo.MiddlewareFunc, authHeader string) (int64, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen int64
	handler := mw(func(c echo.Context) error {
		seen, _ = c.Get(UserIDKey).(int64)
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return seen, rec
}

func TestIdentity_ValidToken(t *testing.T) {
	token := sign(t, "secret", jwt.MapClaims{
		"sub":      "42",
		"username": "alice",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	uid, rec := run(t, Identity("secret", 1, true), "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if uid != 42 {
		t.Fatalf("expected user 42, got %d", uid)
	}
}

func TestIdentity_DemoFallback(t *testing.T) {
	uid, rec := run(t, Identity("secret", 1, true), "")
	if rec.Code != http.StatusOK || uid != 1 {
		t.Fatalf("expected demo user 1, got %d (status %d)", uid, rec.Code)
	}
}

func TestIdentity_MissingHeaderOutsideDemo(t *testing.T) {
	_, rec := run(t, Identity("secret", 1, false), "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestIdentity_InvalidHeaderFormat(t *testing.T) {
	_, rec := run(t, Identity("secret", 1, true), "Token abc")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestIdentity_InvalidToken(t *testing.T) {
	_, rec := run(t, Identity("secret", 1, true), "Bearer not-a-token")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestIdentity_WrongSecret(t *testing.T) {
	token := sign(t, "other", jwt.MapClaims{"sub": "2"})

	_, rec := run(t, Identity("secret", 1, true), "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestIdentity_ExpiredToken(t *testing.T) {
	token := sign(t, "secret", jwt.MapClaims{"sub": "2", "exp": time.Now().Add(-time.Minute).Unix()})

	_, rec := run(t, Identity("secret", 1, true), "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestIdentity_NonNumericSubject(t *testing.T) {
	token := sign(t, "secret", jwt.MapClaims{"sub": "alice"})

	_, rec := run(t, Identity("secret", 1, true), "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestIdentity_RejectsOtherAlgorithms(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{"sub": "2"}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	_, rec := run(t, Identity("secret", 1, true), "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
