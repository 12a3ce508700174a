package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Claims embeds the registered claim set; Subject carries the username.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService turns a verified identity into a signed, time-bounded
// credential and reverses the operation. There is no revocation: a token
// stays valid until its embedded expiry regardless of server-side changes.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	cost   int
}

func NewTokenService(secret string, ttl time.Duration, bcryptCost int) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, cost: bcryptCost}, nil
}

func (s *TokenService) HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), s.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (s *TokenService) VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

func (s *TokenService) Issue(subject, role string) (string, error) {
	return s.IssueWithTTL(subject, role, s.ttl)
}

func (s *TokenService) IssueWithTTL(subject, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Verify rejects bad signatures, wrong signing methods, malformed payloads
// and expired tokens. A token expiring exactly now is already expired.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
