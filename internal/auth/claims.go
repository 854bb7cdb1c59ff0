package auth

import (
	"github.com/Abishekkhanal/channelManager2/internal/constants"

	"github.com/golang-jwt/jwt/v5"
)

// UserClaims is what request handlers see after authentication
type UserClaims interface {
	UserID() string
	Role() string
	Source() string
}

// TokenClaims is the JWT payload issued by the auth service
type TokenClaims struct {
	UserUUID  string              `json:"user_id"`
	RoleValue constants.StaffRole `json:"role"`
	jwt.RegisteredClaims
}

func (c *TokenClaims) UserID() string { return c.UserUUID }
func (c *TokenClaims) Role() string   { return c.RoleValue.String() }
func (c *TokenClaims) Source() string { return "JWT" }
