package utils

import (
	"errors"

	"github.com/golang-jwt/jwt/v4"
)

type TokenClaims struct {
	TokenID string
	UserID  string
	Role    string
}

// ParseVerifiedToken decodes claims from a token that already passed
// signature and expiry verification upstream. The HMAC method and
// signature are still enforced during the decode.
func ParseVerifiedToken(tokenString, secret string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	parsed := &TokenClaims{}
	if jti, ok := claims["jti"].(string); ok {
		parsed.TokenID = jti
	}
	if sub, ok := claims["sub"].(string); ok {
		parsed.UserID = sub
	}
	if role, ok := claims["role"].(string); ok {
		parsed.Role = role
	}
	return parsed, nil
}
