package usecase

import (
	"context"

	"github.com/java-saeng/jwp-shopping-order/internal/domain/member"
	"github.com/java-saeng/jwp-shopping-order/internal/infra"
	"github.com/java-saeng/jwp-shopping-order/internal/pkg/errs"
	"github.com/java-saeng/jwp-shopping-order/internal/pkg/jwt"
	"github.com/java-saeng/jwp-shopping-order/internal/usecase/shared"
)

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/token_validator_mock.go -package=usecasemock

// TokenValidator resolves a bearer token to the acting member.
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) (*member.Member, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
	uow        shared.UnitOfWork
}

func NewTokenValidator(jwtService *jwt.Service, uow shared.UnitOfWork) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
		uow:        uow,
	}
}

func (t *tokenValidatorImpl) ValidateToken(ctx context.Context, tokenString string) (*member.Member, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	m, err := t.uow.CommandReads().MemberByID(ctx, claims.MemberID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(errs.ErrNotFoundMember, "member %d", claims.MemberID)
		}
		return nil, err
	}
	return m, nil
}
