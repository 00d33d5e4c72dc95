package gettokenbyuserid

import (
	"context"
	"errors"
	"tabnews/internal/core/domain/activation"
	e "tabnews/internal/core/domain/errors"
	"tabnews/internal/core/domain/logging"
	"tabnews/internal/core/domain/user"
	"tabnews/internal/core/services"
)

type Input struct {
	UserID user.ID
}

type Result struct {
	Token activation.Token
}

type service struct {
	log             logging.Logger
	tokenRepository activation.TokenRepository
}

func New(
	log logging.Logger,
	tokenRepository activation.TokenRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if tokenRepository == nil {
		panic(e.NewNilArgumentError("tokenRepository"))
	}
	return &service{log: log, tokenRepository: tokenRepository}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	token, err := s.tokenRepository.GetLatestByUserID(ctx, input.UserID)
	var errNotFound *e.NotFoundError
	if errors.As(err, &errNotFound) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not read activation token by user.",
			logging.Entry("input", input),
			logging.Entry("err", err),
		)
		return result, err
	}
	return Result{Token: token}, nil
}
