package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	issuer     = "aqari"
	sessionTTL = 24 * time.Hour
)

// Claims are carried by a session token.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Session is handed out on login. Nothing checks it; it exists so a front
// end has something to hold on to.
type Session struct {
	Email     string
	Token     string
	ExpiresAt time.Time
}

func (s *Service) issue(email string) (Session, error) {
	now := time.Now().UTC()
	expires := now.Add(sessionTTL)

	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   email,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return Session{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return Session{Email: email, Token: signed, ExpiresAt: expires}, nil
}

// ParseToken validates a token issued by this service.
func (s *Service) ParseToken(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
