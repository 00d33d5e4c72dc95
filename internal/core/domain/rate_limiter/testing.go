package ratelimiter

import "context"

type FakeRateLimiter struct {
	IsAllowed bool
	Keys      []string
}

func NewFakeRateLimiter(isAllowed bool) *FakeRateLimiter {
	return &FakeRateLimiter{IsAllowed: isAllowed}
}

func (rl *FakeRateLimiter) CheckLimit(ctx context.Context, key string, limit Limit) Result {
	rl.Keys = append(rl.Keys, key)
	if rl.IsAllowed {
		return Result{IsAllowed: true}
	}
	return Result{IsAllowed: false}
}
