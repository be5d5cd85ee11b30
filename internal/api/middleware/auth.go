package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/anishsharma/fashion-storefront-service/internal/errors"
	"github.com/anishsharma/fashion-storefront-service/internal/models"
	"github.com/anishsharma/fashion-storefront-service/internal/utils/response"
	"github.com/golang-jwt/jwt/v5"
)

type sessionContextKey string

const SessionKey = sessionContextKey("session")

type AuthMiddleware struct {
	jwtKey []byte
}

func NewAuthMiddleware(jwtKey []byte) *AuthMiddleware {

	return &AuthMiddleware{jwtKey: jwtKey}

}

// Authenticate verifies the bearer token and threads an explicit Session into
// the request context. Services receive the Session as an argument; nothing
// below the handlers reads ambient auth state. A request without credentials
// passes through anonymous (no session); only a present-but-bad token is
// rejected here.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		authHeader := r.Header.Get("Authorization")

		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		// Token is of format : "Bearer <token>"
		tokenParts := strings.Split(authHeader, " ")

		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			logger.Warn("Invalid authorization header format")
			response.Error(w, errors.UnauthorizedError("Invalid authorization format"))
			return
		}

		tokenString := tokenParts[1]

		claims := &models.Claims{}

		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {

				logger.Error("Unexpected signing method used in JWT", slog.Any("alg", t.Header["alg"]))
				return nil, errors.BadRequestError("unexpected signing method")

			}
			return m.jwtKey, nil
		})

		if err != nil {
			logger.Warn("JWT parsing failed", slog.String("error", err.Error()))
			response.Error(w, errors.UnauthorizedError("Invalid or expired token"))
			return
		}

		if !token.Valid {
			logger.Warn("Invalid token")
			response.Error(w, errors.UnauthorizedError("Invalid token"))
			return
		}

		if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(time.Now()) {
			logger.Warn("Expired token", slog.String("userId", claims.UserID))
			response.Error(w, errors.UnauthorizedError("Token expired"))
			return
		}

		sess := &models.Session{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
			Token:  tokenString,
		}

		ctx := context.WithValue(r.Context(), SessionKey, sess)

		requestScopedLogger := logger.With(slog.String("userId", claims.UserID))
		ctx = context.WithValue(ctx, LoggerKey, requestScopedLogger)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// SessionFromContext returns the authenticated session, or nil for anonymous
// requests. Callers treat nil as "not signed in", never as an error.
func SessionFromContext(ctx context.Context) *models.Session {
	if sess, ok := ctx.Value(SessionKey).(*models.Session); ok {
		return sess
	}

	return nil
}
