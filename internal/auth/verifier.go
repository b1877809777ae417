// Package auth establishes caller identity from bearer credentials.
//
// Token issuance lives with the external identity provider; this package
// only verifies what the provider signed. The Verifier interface is
// injected into the auth middleware so tests can substitute a stub.
package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the stable caller identity extracted from a verified token.
type Identity struct {
	UserID string
	Email  string
}

// Verifier exchanges a bearer token for a caller identity, or rejects it.
type Verifier interface {
	Verify(tokenString string) (*Identity, error)
}

// Claims represents the claims expected in provider-issued JWTs.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTVerifier verifies HS256 JWTs signed with a shared secret.
type JWTVerifier struct {
	secret []byte
}

// NewJWTVerifier creates a JWTVerifier for the given shared secret.
func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

// Verify parses and validates a token and returns the caller identity.
// The user id comes from the user_id claim, falling back to the subject.
func (v *JWTVerifier) Verify(tokenString string) (*Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	userID := claims.UserID
	if userID == "" {
		userID = claims.Subject
	}
	if userID == "" {
		return nil, fmt.Errorf("token carries no user identity")
	}

	return &Identity{UserID: userID, Email: claims.Email}, nil
}
