package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/notably/notes-api/internal/core/domain"
	"github.com/notably/notes-api/internal/core/ports"
)

const defaultTokenTTL = 24 * time.Hour

// StaticKey wraps a fixed secret as a ports.KeyProvider.
type StaticKey []byte

func (k StaticKey) SigningKey() []byte { return []byte(k) }

// JWTTokenService signs and verifies HS256 bearer tokens. Every issued
// token carries an expiry claim; tokens without one are rejected.
type JWTTokenService struct {
	keys ports.KeyProvider
	ttl  time.Duration
	now  func() time.Time
}

func NewJWTTokenService(keys ports.KeyProvider, ttl time.Duration) *JWTTokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTTokenService{keys: keys, ttl: ttl, now: time.Now}
}

func (s *JWTTokenService) Issue(username string) (string, error) {
	now := s.now().UTC()
	claims := jwt.MapClaims{
		"username": username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.keys.SigningKey())
}

// Verify checks signature, algorithm, and expiry and returns the bound
// username. Malformed input, a tampered payload, a wrong signature, and an
// expired claim all collapse into the same domain.ErrTokenInvalid.
func (s *JWTTokenService) Verify(raw string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.keys.SigningKey(), nil
	}, jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		return "", domain.ErrTokenInvalid
	}

	username, _ := claims["username"].(string)
	if username == "" {
		return "", domain.ErrTokenInvalid
	}
	return username, nil
}
