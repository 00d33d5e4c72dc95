package user

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type FeatureWrite struct {
	UserID   ID
	Features []Feature
}

type FakeUserRepository struct {
	Users          map[ID]User
	Added          []FeatureWrite
	Removed        []FeatureWrite
	ReturnWriteErr bool
	lock           sync.Mutex
	nextID         ID
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make(map[ID]User)}
}

func (r *FakeUserRepository) Create(ctx context.Context, input CreateUserInput) (User, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.nextID++
	u := User{
		ID:        r.nextID,
		Username:  input.Username,
		Email:     input.Email,
		Features:  input.Features,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	r.Users[u.ID] = u
	return u, nil
}

func (r *FakeUserRepository) GetByID(ctx context.Context, id ID) (User, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	u, ok := r.Users[id]
	if !ok {
		return User{}, NewUserNotFoundError(id)
	}
	return u, nil
}

func (r *FakeUserRepository) AddFeatures(ctx context.Context, id ID, features []Feature) (User, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.ReturnWriteErr {
		return User{}, fmt.Errorf("could not add features for user %d", id)
	}
	u, ok := r.Users[id]
	if !ok {
		return User{}, NewUserNotFoundError(id)
	}
	for _, f := range features {
		if !u.HasFeature(f) {
			u.Features = append(u.Features, f)
		}
	}
	r.Users[id] = u
	r.Added = append(r.Added, FeatureWrite{UserID: id, Features: features})
	return u, nil
}

func (r *FakeUserRepository) RemoveFeatures(ctx context.Context, id ID, features []Feature) (User, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.ReturnWriteErr {
		return User{}, fmt.Errorf("could not remove features for user %d", id)
	}
	u, ok := r.Users[id]
	if !ok {
		return User{}, NewUserNotFoundError(id)
	}
	kept := make([]Feature, 0, len(u.Features))
	for _, f := range u.Features {
		removed := false
		for _, rf := range features {
			if f == rf {
				removed = true
				break
			}
		}
		if !removed {
			kept = append(kept, f)
		}
	}
	u.Features = kept
	r.Users[id] = u
	r.Removed = append(r.Removed, FeatureWrite{UserID: id, Features: features})
	return u, nil
}

func (r *FakeUserRepository) FeatureWriteCount() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.Added) + len(r.Removed)
}
