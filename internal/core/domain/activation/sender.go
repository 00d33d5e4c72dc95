package activation

import (
	"context"
	"tabnews/internal/core/domain/user"
)

type EmailSender interface {
	SendActivationEmail(ctx context.Context, u user.User, tokenID TokenID) error
}
