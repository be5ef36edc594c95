//go:build unit

package uow

import (
	"context"
	"testing"
	"time"

	"staybook/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryableError(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want bool
	}{
		{"serialization failure", &pgconn.PgError{Code: pgErrCodeSerializationFailure}, true},
		{"deadlock", &pgconn.PgError{Code: pgErrCodeDeadlockDetected}, true},
		{"wrapped deadlock", errs.Wrap(&pgconn.PgError{Code: pgErrCodeDeadlockDetected}, "confirm"), true},
		{"exclusion violation", &pgconn.PgError{Code: "23P01"}, false},
		{"plain error", errs.New("boom"), false},
		{"context canceled", context.Canceled, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isRetryableError(tc.err))
		})
	}
}

func TestShouldRetry_StopsAtMaxRetries(t *testing.T) {
	err := &pgconn.PgError{Code: pgErrCodeSerializationFailure}

	assert.True(t, shouldRetry(err, 0, maxRetries))
	assert.True(t, shouldRetry(err, maxRetries-1, maxRetries))
	assert.False(t, shouldRetry(err, maxRetries, maxRetries))
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := 0; attempt < 4; attempt++ {
		want := time.Duration(1<<attempt) * base
		got := calculateBackoff(attempt, base)

		assert.GreaterOrEqual(t, got, want)
		assert.Less(t, got, want+want/5+time.Nanosecond)
	}
}

func TestCryptoRandInt63n(t *testing.T) {
	assert.Equal(t, int64(0), cryptoRandInt63n(0))
	assert.Equal(t, int64(0), cryptoRandInt63n(-5))
	for i := 0; i < 100; i++ {
		v := cryptoRandInt63n(10)
		assert.GreaterOrEqual(t, v, int64(0))
		assert.Less(t, v, int64(10))
	}
}
