package narrative

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

type fakeGenerator struct {
	attempts int
	failures int
	err      error
}

func (f *fakeGenerator) Generate(ctx context.Context, req Request) (Report, error) {
	f.attempts++
	if f.attempts <= f.failures {
		return Report{}, f.err
	}
	return Report{Tagline: "Done", Summary: "recovered on attempt " + fmt.Sprint(f.attempts)}, nil
}

func testPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: 3,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
		Retryable:  IsTransient,
	}
}

func TestRetryRecoversFromRateLimit(t *testing.T) {
	fake := &fakeGenerator{
		failures: 3,
		err:      &googleapi.Error{Code: http.StatusTooManyRequests, Message: "quota"},
	}
	gen := NewRetryingGenerator(fake, testPolicy())

	report, err := gen.Generate(context.Background(), Request{Movie: "Dune"})
	require.NoError(t, err)
	require.Equal(t, 4, fake.attempts)
	require.True(t, report.Valid())
}

func TestRetryGivesUpAfterBudget(t *testing.T) {
	fake := &fakeGenerator{
		failures: 10,
		err:      &googleapi.Error{Code: http.StatusServiceUnavailable},
	}
	gen := NewRetryingGenerator(fake, testPolicy())

	_, err := gen.Generate(context.Background(), Request{})
	require.Error(t, err)
	require.Equal(t, 4, fake.attempts)
}

func TestRetrySkipsPermanentErrors(t *testing.T) {
	fake := &fakeGenerator{
		failures: 10,
		err:      &googleapi.Error{Code: http.StatusBadRequest, Message: "invalid schema"},
	}
	gen := NewRetryingGenerator(fake, testPolicy())

	_, err := gen.Generate(context.Background(), Request{})
	require.Error(t, err)
	require.Equal(t, 1, fake.attempts)
}

func TestRetryStopsOnContextCancel(t *testing.T) {
	fake := &fakeGenerator{
		failures: 10,
		err:      errors.New("rate limit exceeded"),
	}
	policy := testPolicy()
	policy.BaseDelay = time.Minute
	gen := NewRetryingGenerator(fake, policy)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gen.Generate(ctx, Request{})
	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, fake.attempts)
}

func TestIsTransient(t *testing.T) {
	require.False(t, IsTransient(nil))
	require.True(t, IsTransient(&googleapi.Error{Code: 429}))
	require.True(t, IsTransient(&googleapi.Error{Code: 503}))
	require.False(t, IsTransient(&googleapi.Error{Code: 401}))
	require.True(t, IsTransient(errors.New("upstream said: Too Many Requests")))
	require.True(t, IsTransient(errors.New("service unavailable, try later")))
	require.False(t, IsTransient(errors.New("invalid api key")))
}

func TestDelayDoublesAndCaps(t *testing.T) {
	gen := NewRetryingGenerator(&fakeGenerator{}, RetryPolicy{
		MaxRetries: 5,
		BaseDelay:  time.Second,
		MaxDelay:   4 * time.Second,
	})

	require.Equal(t, time.Second, gen.delayFor(0))
	require.Equal(t, 2*time.Second, gen.delayFor(1))
	require.Equal(t, 4*time.Second, gen.delayFor(2))
	require.Equal(t, 4*time.Second, gen.delayFor(3))
}
