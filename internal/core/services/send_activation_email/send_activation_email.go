package sendactivationemail

import (
	"context"
	"errors"
	"fmt"
	"tabnews/internal/core/domain/activation"
	e "tabnews/internal/core/domain/errors"
	"tabnews/internal/core/domain/logging"
	"tabnews/internal/core/domain/user"
	"tabnews/internal/core/services"
)

type Input struct {
	UserID user.ID
}

func (i Input) GetRateLimitKey() string {
	return fmt.Sprintf("send_activation_email::%d", i.UserID)
}

type Result struct {
	Token activation.Token
}

type service struct {
	log             logging.Logger
	userRepository  user.Repository
	tokenRepository activation.TokenRepository
	sender          activation.EmailSender
}

func New(
	log logging.Logger,
	userRepository user.Repository,
	tokenRepository activation.TokenRepository,
	sender activation.EmailSender,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if tokenRepository == nil {
		panic(e.NewNilArgumentError("tokenRepository"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	return &service{
		log:             log,
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		sender:          sender,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	u, err := s.userRepository.GetByID(ctx, input.UserID)
	var errNotFound *e.NotFoundError
	if errors.As(err, &errNotFound) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not read user for activation email.",
			logging.Entry("input", input),
			logging.Entry("err", err),
		)
		return result, err
	}

	token, err := s.tokenRepository.Create(ctx, activation.CreateTokenInput{UserID: u.ID})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create activation token.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	if err = s.sender.SendActivationEmail(ctx, u, token.ID); err != nil {
		s.log.Error(
			ctx,
			"Could not send activation email.",
			logging.Entry("userId", u.ID),
			logging.Entry("tokenId", token.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Activation email successfully sent.",
		logging.Entry("userId", u.ID),
		logging.Entry("tokenId", token.ID),
	)
	return Result{Token: token}, nil
}
