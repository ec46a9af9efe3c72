package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken covers every verification failure: bad signature, expired,
// malformed, or a token presented as the wrong class.
var ErrInvalidToken = errors.New("invalid token")

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"

	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

type tokenClaims struct {
	UserID    uuid.UUID `json:"user_id"`
	TokenType string    `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the short-lived access / long-lived
// refresh token pair. Each class is signed with its own secret and tagged
// with its type, so an access token can never be replayed as a refresh
// token or vice versa.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
}

func NewTokenService(accessSecret, refreshSecret string) *TokenService {
	return &TokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
	}
}

func (s *TokenService) CreateAccessToken(userID uuid.UUID) (string, error) {
	return s.create(userID, tokenTypeAccess, accessTokenTTL, s.accessSecret)
}

func (s *TokenService) CreateRefreshToken(userID uuid.UUID) (string, error) {
	return s.create(userID, tokenTypeRefresh, refreshTokenTTL, s.refreshSecret)
}

func (s *TokenService) VerifyAccessToken(token string) (uuid.UUID, error) {
	return s.verify(token, tokenTypeAccess, s.accessSecret)
}

func (s *TokenService) VerifyRefreshToken(token string) (uuid.UUID, error) {
	return s.verify(token, tokenTypeRefresh, s.refreshSecret)
}

func (s *TokenService) create(userID uuid.UUID, tokenType string, ttl time.Duration, secret []byte) (string, error) {
	now := time.Now()
	claims := &tokenClaims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "roomchat",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (s *TokenService) verify(token, expectedType string, secret []byte) (uuid.UUID, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return uuid.Nil, ErrInvalidToken
	}
	if claims.TokenType != expectedType {
		return uuid.Nil, ErrInvalidToken
	}
	if claims.UserID == uuid.Nil {
		return uuid.Nil, ErrInvalidToken
	}
	return claims.UserID, nil
}
