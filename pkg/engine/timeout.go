package engine

import (
	"context"
	"time"

	"gitlab.com/tozd/go/errors"
)

type bounded struct {
	Engine
	timeout time.Duration
}

// WithTimeout bounds every call made to e by d. A call still running at the
// deadline is abandoned and reported as ErrTimeout. A non-positive d returns e
// unchanged.
func WithTimeout(e Engine, d time.Duration) Engine {
	if d <= 0 {
		return e
	}
	return &bounded{Engine: e, timeout: d}
}

// Unwrap returns the engine being bounded.
func (b *bounded) Unwrap() Engine {
	return b.Engine
}

func (b *bounded) ParseCheck(ctx context.Context, text string) (bool, error) {
	return run(ctx, b.timeout, func(ctx context.Context) (bool, error) {
		return b.Engine.ParseCheck(ctx, text)
	})
}

func (b *bounded) FindDefinition(ctx context.Context, span Span, text string) (Reply, error) {
	return run(ctx, b.timeout, func(ctx context.Context) (Reply, error) {
		return b.Engine.FindDefinition(ctx, span, text)
	})
}

func (b *bounded) FindAllUses(ctx context.Context, span Span, text string) ([]Fields, error) {
	return run(ctx, b.timeout, func(ctx context.Context) ([]Fields, error) {
		return b.Engine.FindAllUses(ctx, span, text)
	})
}

func (b *bounded) Reload(ctx context.Context) error {
	r, ok := b.Engine.(Reloader)
	if !ok {
		return nil
	}
	return r.Reload(ctx)
}

type result[T any] struct {
	val T
	err error
}

func run[T any](ctx context.Context, d time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	done := make(chan result[T], 1)
	go func() {
		v, err := fn(ctx)
		done <- result[T]{val: v, err: err}
	}()

	var zero T
	select {
	case r := <-done:
		if r.err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return zero, errors.Errorf("%w after %s: %w", ErrTimeout, d, r.err)
		}
		return r.val, r.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return zero, errors.Errorf("%w after %s", ErrTimeout, d)
		}
		return zero, errors.Errorf("engine call cancelled: %w", ctx.Err())
	}
}
