package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/Abishekkhanal/channelManager2/internal/auth"

	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates the Bearer token and stores its claims on the
// request context. Token issuance lives in the main PMS auth service; the
// channel manager only verifies.
func AuthMiddleware(jwtSecret string) func(http.Handler) http.Handler {
	if jwtSecret == "" {
		jwtSecret = os.Getenv("JWT_SECRET")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "Unauthorized. Missing bearer token", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")

			claims := &auth.TokenClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(jwtSecret), nil
			})

			if err != nil || !token.Valid {
				http.Error(w, "Unauthorized. Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
