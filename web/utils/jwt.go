package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// JWTService issues and validates the bearer tokens the game client
// presents on every request.
type JWTService struct {
	secretKey []byte
	lifetime  time.Duration
}

// NewJWTService creates a new JWTService
func NewJWTService(secretKey string) *JWTService {
	return &JWTService{
		secretKey: []byte(secretKey),
		lifetime:  24 * time.Hour,
	}
}

// GenerateToken creates a signed token for a trader
func (s *JWTService) GenerateToken(traderID string, admin bool) (string, error) {
	claims := jwt.MapClaims{
		"trader_id": traderID,
		"admin":     admin,
		"exp":       time.Now().Add(s.lifetime).Unix(),
		"iat":       time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// TokenClaims is the validated identity carried by a bearer token
type TokenClaims struct {
	TraderID string
	Admin    bool
}

// ValidateToken verifies a token and extracts its claims
func (s *JWTService) ValidateToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	traderID, ok := claims["trader_id"].(string)
	if !ok || traderID == "" {
		return nil, ErrInvalidToken
	}

	admin, _ := claims["admin"].(bool)

	return &TokenClaims{TraderID: traderID, Admin: admin}, nil
}
