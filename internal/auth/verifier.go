// Package auth verifies bearer identity tokens and yields the caller's email.
package auth

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/harentsoaR/doctors-portal-api/internal/utils"
)

var (
	ErrDisabled = errors.New("token verification is not configured")
	ErrNoEmail  = errors.New("token carries no email claim")
)

// Verifier checks a raw bearer token and returns the verified email.
type Verifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// FirebaseVerifier validates Firebase ID tokens.
type FirebaseVerifier struct {
	client idTokenVerifier
}

// NewFirebaseVerifier initialises a Firebase app from service-account JSON.
func NewFirebaseVerifier(ctx context.Context, serviceAccountJSON []byte) (*FirebaseVerifier, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsJSON(serviceAccountJSON))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase auth: %w", err)
	}
	return &FirebaseVerifier{client: client}, nil
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (string, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}
	return emailClaim(decoded.Claims)
}

func emailClaim(claims map[string]interface{}) (string, error) {
	email, _ := claims["email"].(string)
	if email == "" {
		return "", ErrNoEmail
	}
	return email, nil
}

// JWTVerifier validates HS256 tokens minted with utils.GenerateJWT. It is
// meant for local development where no Firebase project is available.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (v *JWTVerifier) Verify(_ context.Context, token string) (string, error) {
	claims, err := utils.ValidateJWT(v.secret, token)
	if err != nil {
		return "", err
	}
	if claims.Email == "" {
		return "", ErrNoEmail
	}
	return claims.Email, nil
}

// Disabled rejects every token.
type Disabled struct{}

func (Disabled) Verify(context.Context, string) (string, error) {
	return "", ErrDisabled
}

// New picks Firebase when a service account is configured, then the HS256
// development verifier, then Disabled. The returned name is for logging.
func New(ctx context.Context, serviceAccountJSON, jwtSecret string) (Verifier, string, error) {
	switch {
	case serviceAccountJSON != "":
		v, err := NewFirebaseVerifier(ctx, []byte(serviceAccountJSON))
		if err != nil {
			return nil, "", err
		}
		return v, "firebase", nil
	case jwtSecret != "":
		return NewJWTVerifier(jwtSecret), "jwt", nil
	default:
		return Disabled{}, "disabled", nil
	}
}
