package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMissingSecret = errors.New("jwt secret is not configured")

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateJWT signs an HS256 identity token for email.
func GenerateJWT(secret []byte, email string, ttl time.Duration) (string, error) {
	if len(secret) == 0 {
		return "", ErrMissingSecret
	}
	now := time.Now()
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateJWT parses and verifies an HS256 token. Other algorithms are
// rejected.
func ValidateJWT(secret []byte, tokenStr string) (*Claims, error) {
	if len(secret) == 0 {
		return nil, ErrMissingSecret
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
