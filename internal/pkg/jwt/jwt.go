package jwt

import (
	"errors"
	"time"

	"staybook/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// clockSkew is tolerated between the identity service and this process.
const clockSkew = 30 * time.Second

// Tokens are issued by the identity service; this package only needs to
// verify them and read the actor id and role.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	secret   []byte
	lifetime time.Duration
	issuer   string
	parser   *jwt.Parser
}

// NewService verifies HS256 tokens signed with secret. A non-empty issuer
// must match the token's iss claim.
func NewService(secret string, lifetime time.Duration, issuer string) *Service {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(clockSkew),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	return &Service{
		secret:   []byte(secret),
		lifetime: lifetime,
		issuer:   issuer,
		parser:   jwt.NewParser(opts...),
	}
}

// GenerateToken mints a token the way the identity service does. Used by
// local tooling and tests.
func (s *Service) GenerateToken(userID uuid.UUID, role user.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Service) ValidateToken(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := s.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil, !token.Valid:
		return nil, ErrInvalidToken
	}
	return claims, nil
}
