package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/authgate-server/internal/model"
)

// DefaultStoreTimeout bounds a single store call when no timeout is configured.
const DefaultStoreTimeout = 3 * time.Second

// bounded runs fn under a deadline derived from ctx. A deadline hit is
// reported as model.ErrUnavailable so callers can tell it from a rejection.
func bounded[T any](ctx context.Context, timeout time.Duration, fn func(context.Context) (T, error)) (T, error) {
	if timeout <= 0 {
		timeout = DefaultStoreTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	res, err := fn(ctx)
	if err != nil && errors.Is(err, context.DeadlineExceeded) {
		return res, fmt.Errorf("%w: %w", model.ErrUnavailable, err)
	}
	return res, err
}

// boundedErr is bounded for calls without a result.
func boundedErr(ctx context.Context, timeout time.Duration, fn func(context.Context) error) error {
	_, err := bounded(ctx, timeout, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}
