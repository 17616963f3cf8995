// Package auth implements the session token codec: signed, time-bounded
// identity claims verifiable without any server-side lookup.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/syp-project/authd/internal/common"
)

// Claims is the identity assertion embedded in a session token: the standard
// registered claims plus the email and display name the issuer vouches for.
type Claims struct {
	jwt.RegisteredClaims
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// GenerateToken signs a new HS256 token asserting the given identity,
// valid from now until now + validityDuration.
func GenerateToken(email, fullName string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		Email:    email,
		FullName: fullName,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseClaims verifies tokenString and returns its claims. The signature is
// checked before any claim is interpreted; expiry is checked only on tokens
// whose signature is valid. Failures are reported through the common
// sentinels so callers never depend on the jwt package:
//
//	common.ErrTokenMalformed        — not parseable as a token at all
//	common.ErrTokenSignatureInvalid — parseable but signature mismatch
//	common.ErrTokenExpired          — correctly signed but past expiry
func ParseClaims(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secretKey, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, common.ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, common.ErrTokenSignatureInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, common.ErrTokenExpired
		default:
			return nil, common.ErrTokenMalformed
		}
	}

	if !token.Valid {
		return nil, common.ErrTokenSignatureInvalid
	}

	return claims, nil
}
