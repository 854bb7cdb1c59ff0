package middleware

import (
	"net/http"

	"github.com/Abishekkhanal/channelManager2/internal/auth"
	"github.com/Abishekkhanal/channelManager2/internal/constants"
)

// IsManagerMiddleware gates the channel-manager surface: callers need the
// manager or admin role.
func IsManagerMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			claims := auth.GetUserClaims(r.Context())
			if claims == nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if !constants.StaffRole(claims.Role()).CanManageChannels() {
				http.Error(w, "Unauthorized. Need manager perms", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
