package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// UserIDKey is the echo context key holding the request identity (int64).
const UserIDKey = "user_id"

var errBadSubject = errors.New("subject is not a user id")

// Identity resolves the user of the request. A bearer token must be a valid
// HS256 JWT whose sub claim is the user id. Requests without credentials run
// as demoUserID while demoMode is on and are rejected otherwise.
func Identity(jwtSecret string, demoUserID int64, demoMode bool) echo.MiddlewareFunc {
	key := []byte(jwtSecret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				if !demoMode {
					return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
				}
				c.Set(UserIDKey, demoUserID)
				return next(c)
			}

			scheme, raw, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			uid, err := userIDFromToken(parser, key, raw)
			if errors.Is(err, errBadSubject) {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject")
			}
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(UserIDKey, uid)
			return next(c)
		}
	}
}

func userIDFromToken(parser *jwt.Parser, key []byte, raw string) (int64, error) {
	claims := jwt.RegisteredClaims{}
	if _, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return key, nil
	}); err != nil {
		return 0, err
	}
	uid, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || uid <= 0 {
		return 0, errBadSubject
	}
	return uid, nil
}
