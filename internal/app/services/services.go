package services

import (
	"tabnews/internal/app/deps"
	drl "tabnews/internal/core/domain/rate_limiter"
	"tabnews/internal/core/services"
	activateuser "tabnews/internal/core/services/activate_user"
	gettokenbyuserid "tabnews/internal/core/services/get_token_by_user_id"
	grantactivation "tabnews/internal/core/services/grant_activation"
	ratelimiting "tabnews/internal/core/services/rate_limiting"
	sendactivationemail "tabnews/internal/core/services/send_activation_email"
)

type Services struct {
	SendActivationEmail services.Service[sendactivationemail.Input, sendactivationemail.Result]
	ActivateUser        services.Service[activateuser.Input, activateuser.Result]
	GrantActivation     services.Service[grantactivation.Input, grantactivation.Result]
	GetTokenByUserID    services.Service[gettokenbyuserid.Input, gettokenbyuserid.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SendActivationEmail = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 3},
		sendactivationemail.New(
			deps.Logger,
			deps.UserRepository,
			deps.TokenRepository,
			deps.ActivationEmailSender,
		),
	)
	s.ActivateUser = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		activateuser.New(
			deps.Logger,
			deps.UnitOfWork,
		),
	)
	s.GrantActivation = grantactivation.New(
		deps.Logger,
		deps.UnitOfWork,
	)
	s.GetTokenByUserID = gettokenbyuserid.New(
		deps.Logger,
		deps.TokenRepository,
	)

	return s
}
