package usecase

import (
	"hostel-booking/internal/domain/user"
	"hostel-booking/internal/pkg/errs"
	"hostel-booking/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenClaims is what the middleware attaches to the request context after
// a successful validation.
type TokenClaims struct {
	UserID uuid.UUID
	Role   user.Role
}

type TokenValidator interface {
	Validate(token string) (*TokenClaims, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (v *tokenValidatorImpl) Validate(token string) (*TokenClaims, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	role := user.Role(claims.Role)
	if !role.IsValid() {
		return nil, errs.ErrForbidden
	}

	return &TokenClaims{
		UserID: claims.UserID,
		Role:   role,
	}, nil
}
