package activation

import (
	"tabnews/internal/core/domain/user"
	"time"
)

type TokenID string

// TokenValidDuration must match the interval applied by the token
// repository when a row is inserted.
const TokenValidDuration = 15 * time.Minute

// Token is a single-use, time-limited credential proving control of an
// email address. Redeeming it activates the owning account.
type Token struct {
	ID        TokenID
	UserID    user.ID
	Used      bool
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsValid reports whether the token can still be redeemed at the given
// moment.
func (t *Token) IsValid(now time.Time) bool {
	return !t.Used && !t.ExpiresAt.Before(now)
}
