package httpx

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"samplehub/internal/domains"
)

type contextKey string

const viewerContextKey contextKey = "viewer"

// ViewerClaims is the bearer token payload: sub carries the user id.
type ViewerClaims struct {
	Role domains.Role `json:"role"`
	jwt.StandardClaims
}

func Protected(jwtSecret string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")

			viewer, err := ParseViewer(tokenString, jwtSecret)
			if err != nil {
				slog.Debug("rejected bearer token", "err", err)
				Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := WithViewer(r.Context(), viewer)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func ParseViewer(tokenString, jwtSecret string) (domains.Viewer, error) {
	claims := &ViewerClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return domains.Viewer{}, err
	}
	if !token.Valid {
		return domains.Viewer{}, fmt.Errorf("invalid token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domains.Viewer{}, fmt.Errorf("parse sub: %w", err)
	}
	role := claims.Role
	if role != domains.RoleAdmin {
		role = domains.RoleUser
	}
	return domains.Viewer{UserID: userID, Role: role}, nil
}

// SignViewer issues a token for viewer. Used by tooling and tests; login is handled elsewhere.
func SignViewer(viewer domains.Viewer, jwtSecret string, expiresAt int64) (string, error) {
	claims := ViewerClaims{
		Role: viewer.Role,
		StandardClaims: jwt.StandardClaims{
			Subject:   viewer.UserID.String(),
			ExpiresAt: expiresAt,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret))
}

func WithViewer(ctx context.Context, viewer domains.Viewer) context.Context {
	return context.WithValue(ctx, viewerContextKey, viewer)
}

func ViewerFromContext(ctx context.Context) (domains.Viewer, bool) {
	viewer, ok := ctx.Value(viewerContextKey).(domains.Viewer)
	return viewer, ok
}
