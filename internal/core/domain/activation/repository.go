package activation

import (
	"context"
	"tabnews/internal/core/domain/user"
)

type CreateTokenInput struct {
	UserID user.ID
}

// TokenRepository stores activation tokens. Expiry is evaluated at read
// time against the store's clock; tokens are never deleted here.
type TokenRepository interface {
	Create(ctx context.Context, input CreateTokenInput) (Token, error)
	GetByID(ctx context.Context, id TokenID) (Token, error)
	// GetValidByID adds the validity predicate (unused and unexpired).
	// An existing but expired or used token yields the same not-found
	// error as an unknown id.
	GetValidByID(ctx context.Context, id TokenID) (Token, error)
	GetLatestByUserID(ctx context.Context, userID user.ID) (Token, error)
	MarkUsed(ctx context.Context, id TokenID) (Token, error)
}
