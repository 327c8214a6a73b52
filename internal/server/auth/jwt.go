// Package auth verifies the access tokens the platform issues to users.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/citylifes/internal/common"
)

// GenerateToken signs an HS256 token whose subject is userID. The server
// only verifies tokens; this is used by tooling and tests.
func GenerateToken(userID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
	})

	return token.SignedString(secretKey)
}

// GetUserIDFromToken validates tokenString and returns its sub claim.
// Expired tokens yield common.ErrTokenExpired; anything else that fails
// validation yields common.ErrInvalidToken.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", common.ErrTokenExpired
	case err != nil:
		return "", fmt.Errorf("%w: %w", common.ErrInvalidToken, err)
	case claims.Subject == "":
		return "", fmt.Errorf("%w: missing subject", common.ErrInvalidToken)
	}

	return claims.Subject, nil
}
