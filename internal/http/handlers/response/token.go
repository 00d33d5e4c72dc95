package response

import (
	"tabnews/internal/core/domain/activation"
	"time"
)

type Token struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"user_id"`
	Used      bool      `json:"used"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (t *Token) FromDomainToken(dt activation.Token) {
	t.ID = string(dt.ID)
	t.UserID = int64(dt.UserID)
	t.Used = dt.Used
	t.ExpiresAt = dt.ExpiresAt
	t.CreatedAt = dt.CreatedAt
}
