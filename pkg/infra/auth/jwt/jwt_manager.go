package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
	ErrEmptySecret  = errors.New("jwt secret cannot be empty")
)

const issuer = "title-scanner"

type (
	Manager interface {
		CreateToken(subject string, ttl time.Duration) (string, error)
		ValidateToken(tokenString string) error
		DecodeToken(tokenString string) (*Claims, error)
	}
	manager struct {
		secret []byte
	}
)

// NewJwtManager signs and checks HS256 tokens for the scan API.
func NewJwtManager(secret string) (Manager, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &manager{secret: []byte(secret)}, nil
}

type Claims struct {
	jwt.RegisteredClaims
}

// CreateToken issues a token for subject. A zero ttl means no expiry.
func (m *manager) CreateToken(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Subject:  subject,
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *manager) ValidateToken(tokenString string) error {
	_, err := m.parse(tokenString)
	return err
}

func (m *manager) DecodeToken(tokenString string) (*Claims, error) {
	return m.parse(tokenString)
}

func (m *manager) parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
