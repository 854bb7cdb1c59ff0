package auth

import "context"

type contextKey string

const userClaimsKey contextKey = "user_claims"

// SetUserClaims stores authenticated claims on the request context
func SetUserClaims(ctx context.Context, claims UserClaims) context.Context {
	return context.WithValue(ctx, userClaimsKey, claims)
}

// GetUserClaims retrieves claims set by the auth middleware; nil when the
// request was not authenticated.
func GetUserClaims(ctx context.Context) UserClaims {
	claims, ok := ctx.Value(userClaimsKey).(UserClaims)
	if !ok {
		return nil
	}
	return claims
}
