package usecase

import (
	"github.com/Arielcito/rcfapp-sub002/internal/domain/user"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/errs"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/jwt"

	"github.com/google/uuid"
)

type TokenValidator interface {
	ValidateToken(token string) (user.Actor, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (v *tokenValidatorImpl) ValidateToken(token string) (user.Actor, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return user.Actor{}, err
	}
	userID, err := claims.UserID()
	if err != nil || userID == uuid.Nil {
		return user.Actor{}, errs.Wrap(jwt.ErrInvalidToken, "token subject is not a user id")
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return user.Actor{}, errs.Wrap(err, "invalid role in token")
	}

	return user.Actor{ID: userID, Role: role}, nil
}
