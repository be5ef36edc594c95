package usecase

//go:generate mockgen -source=token_validator.go -destination=../testutil/mock/usecase/token_validator_mock.go -package=usecasemock

import (
	"staybook/internal/domain/user"
	"staybook/internal/pkg/errs"
	"staybook/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator resolves a bearer token issued by the identity service into
// the acting user and role.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}
	if claims.UserID == uuid.Nil {
		return uuid.Nil, "", errs.Wrap(jwt.ErrInvalidToken, "token has no user id")
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Wrapf(err, "token role %q", claims.Role)
	}

	return claims.UserID, role, nil
}
