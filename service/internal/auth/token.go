// internal/auth/token.go
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for tokens that fail verification or belong to
// another game.
var ErrInvalidToken = errors.New("invalid viewer token")

// ViewerClaims grants a bearer the right to watch one game.
type ViewerClaims struct {
	GameID string `json:"gid"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 viewer tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer returns an issuer whose tokens expire after ttl.
func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, ttl: ttl, now: time.Now}
}

// Issue signs a token for gameID.
func (ti *TokenIssuer) Issue(gameID uuid.UUID) (string, error) {
	now := ti.now()
	claims := ViewerClaims{
		GameID: gameID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ti.secret)
	if err != nil {
		return "", fmt.Errorf("sign viewer token: %w", err)
	}
	return signed, nil
}

// Verify checks the token's signature and expiry and that it was issued for
// gameID. It returns the viewer's subject.
func (ti *TokenIssuer) Verify(token string, gameID uuid.UUID) (string, error) {
	var claims ViewerClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return ti.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(ti.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.GameID != gameID.String() {
		return "", fmt.Errorf("%w: issued for another game", ErrInvalidToken)
	}
	return claims.Subject, nil
}
