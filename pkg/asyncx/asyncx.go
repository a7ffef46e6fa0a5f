// Package asyncx provides small concurrency helpers used across the service:
// fire-and-forget launches, bounded retries and per-call timeouts.
package asyncx

import (
	"context"
	"sync"
	"time"
)

// Do fires fn in a goroutine and forgets it.
func Do(fn func()) {
	go fn()
}

// Retry calls fn up to attempts times, returning as soon as fn succeeds.
// Returns the last error if all attempts fail.
func Retry[T any](ctx context.Context, attempts int, fn func(context.Context) (T, error)) (T, error) {
	var (
		zero T
		val  T
		err  error
	)
	for range attempts {
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}
		val, err = fn(ctx)
		if err == nil {
			return val, nil
		}
	}
	return zero, err
}

// RetryWithBackoff calls fn up to attempts times, doubling the delay between
// failed attempts starting at initialDelay. Respects ctx between retries.
func RetryWithBackoff[T any](
	ctx context.Context,
	attempts int,
	initialDelay time.Duration,
	fn func(context.Context) (T, error),
) (T, error) {
	var (
		zero  T
		val   T
		err   error
		delay = initialDelay
	)
	for i := range attempts {
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		val, err = fn(ctx)
		if err == nil {
			return val, nil
		}

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return zero, ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return zero, err
}

// WithTimeout runs fn with a deadline of d. Returns ctx.Err() if fn does not
// finish in time; fn keeps running in its goroutine until it observes the
// cancelled context.
func WithTimeout[T any](ctx context.Context, d time.Duration, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	type res struct {
		v   T
		err error
	}

	ch := make(chan res, 1)
	go func() {
		v, err := fn(ctx)
		ch <- res{v, err}
	}()

	select {
	case r := <-ch:
		return r.v, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Once wraps fn so it executes at most once regardless of how many goroutines
// call the returned function.
func Once[T any](fn func() (T, error)) func() (T, error) {
	var (
		once sync.Once
		val  T
		err  error
	)
	return func() (T, error) {
		once.Do(func() {
			val, err = fn()
		})
		return val, err
	}
}
