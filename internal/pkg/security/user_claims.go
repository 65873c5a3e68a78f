package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	jwtSecret     = "yatube-dev-secret"
	jwtExpiration = time.Hour * 24
)

// Configure overrides the signing secret and token lifetime from config.
func Configure(secret string, expireHours int) {
	if secret != "" {
		jwtSecret = secret
	}
	if expireHours > 0 {
		jwtExpiration = time.Duration(expireHours) * time.Hour
	}
}

// UserClaims carries the business identity embedded in a token.
type UserClaims struct {
	UserID   uint64   `json:"user_id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}
