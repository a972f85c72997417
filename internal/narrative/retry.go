package narrative

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/googleapi"
)

// RetryPolicy is a reusable retry contract: how many times, how long between
// attempts, and which failures are worth repeating at all.
type RetryPolicy struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
	// Retryable reports whether a failure class may be transient.
	Retryable func(error) bool
}

// DefaultRetryPolicy retries rate-limit and unavailable responses three
// times with doubling delays of 1s, 2s, 4s.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: 3,
		BaseDelay:  time.Second,
		MaxDelay:   30 * time.Second,
		Retryable:  IsTransient,
	}
}

// IsTransient reports whether the error looks like a rate limit or a
// temporarily unavailable service. Bad requests and auth failures are
// permanent and must not be retried.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests ||
			apiErr.Code == http.StatusServiceUnavailable
	}

	errStr := strings.ToLower(err.Error())
	for _, pattern := range []string{"rate limit", "too many requests", "service unavailable", "429", "503"} {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

// RetryingGenerator wraps a Generator with the policy's bounded exponential
// backoff.
type RetryingGenerator struct {
	generator Generator
	policy    RetryPolicy
}

func NewRetryingGenerator(generator Generator, policy RetryPolicy) *RetryingGenerator {
	if policy.Retryable == nil {
		policy.Retryable = IsTransient
	}
	return &RetryingGenerator{generator: generator, policy: policy}
}

var _ Generator = (*RetryingGenerator)(nil)

func (r *RetryingGenerator) Generate(ctx context.Context, req Request) (Report, error) {
	var lastErr error

	for attempt := 0; attempt <= r.policy.MaxRetries; attempt++ {
		report, err := r.generator.Generate(ctx, req)
		if err == nil {
			return report, nil
		}
		lastErr = err

		if attempt == r.policy.MaxRetries || !r.policy.Retryable(err) {
			break
		}

		select {
		case <-ctx.Done():
			return Report{}, fmt.Errorf("context cancelled during retry: %w", ctx.Err())
		case <-time.After(r.delayFor(attempt)):
		}
	}

	return Report{}, fmt.Errorf("narrative generation failed: %w", lastErr)
}

func (r *RetryingGenerator) delayFor(attempt int) time.Duration {
	delay := r.policy.BaseDelay * time.Duration(1<<attempt)
	if delay > r.policy.MaxDelay {
		delay = r.policy.MaxDelay
	}
	return delay
}
