package activation

import (
	"context"
	"fmt"
	"sync"
	"tabnews/internal/core/domain/user"
	"time"

	"github.com/google/uuid"
)

type FakeTokenRepository struct {
	Tokens            []Token
	Created           []Token
	NextID            TokenID
	Now               func() time.Time
	ReturnCreateError bool
	lock              sync.Mutex
}

func NewFakeTokenRepository() *FakeTokenRepository {
	return &FakeTokenRepository{Now: func() time.Time { return time.Now().UTC() }}
}

func (r *FakeTokenRepository) Create(ctx context.Context, input CreateTokenInput) (Token, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.ReturnCreateError {
		return Token{}, fmt.Errorf("could not create activation token for user %d", input.UserID)
	}
	id := r.NextID
	if id == "" {
		id = TokenID(uuid.New().String())
	}
	now := r.Now()
	token := Token{
		ID:        id,
		UserID:    input.UserID,
		Used:      false,
		ExpiresAt: now.Add(TokenValidDuration),
		CreatedAt: now,
	}
	r.Tokens = append(r.Tokens, token)
	r.Created = append(r.Created, token)
	return token, nil
}

func (r *FakeTokenRepository) GetByID(ctx context.Context, id TokenID) (Token, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, t := range r.Tokens {
		if t.ID == id {
			return t, nil
		}
	}
	return Token{}, NewTokenNotFoundError(id)
}

func (r *FakeTokenRepository) GetValidByID(ctx context.Context, id TokenID) (Token, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, t := range r.Tokens {
		if t.ID == id && t.IsValid(r.Now()) {
			return t, nil
		}
	}
	return Token{}, NewTokenNotFoundError(id)
}

func (r *FakeTokenRepository) GetLatestByUserID(ctx context.Context, userID user.ID) (Token, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	found := false
	var latest Token
	for _, t := range r.Tokens {
		if t.UserID != userID {
			continue
		}
		if !found || t.CreatedAt.After(latest.CreatedAt) {
			latest = t
			found = true
		}
	}
	if !found {
		return Token{}, NewUserTokenNotFoundError(userID)
	}
	return latest, nil
}

func (r *FakeTokenRepository) MarkUsed(ctx context.Context, id TokenID) (Token, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for ix := range r.Tokens {
		if r.Tokens[ix].ID == id {
			r.Tokens[ix].Used = true
			return r.Tokens[ix], nil
		}
	}
	return Token{}, NewTokenNotFoundError(id)
}

type FakeEmailSender struct {
	Sent        []SentActivationEmail
	ReturnError bool
	lock        sync.Mutex
}

type SentActivationEmail struct {
	User    user.User
	TokenID TokenID
}

func NewFakeEmailSender() *FakeEmailSender {
	return &FakeEmailSender{}
}

func (s *FakeEmailSender) SendActivationEmail(ctx context.Context, u user.User, tokenID TokenID) error {
	if s.ReturnError {
		return fmt.Errorf("could not send activation email to %s", u.Email)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, SentActivationEmail{User: u, TokenID: tokenID})
	return nil
}

func (s *FakeEmailSender) SentCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Sent)
}

func (s *FakeEmailSender) LastSent() SentActivationEmail {
	s.lock.Lock()
	defer s.lock.Unlock()
	l := len(s.Sent)
	if l == 0 {
		panic("Sent count is 0.")
	}
	return s.Sent[l-1]
}
