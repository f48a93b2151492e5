package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Astemirdum/review-dashboard/pkg/circuit_breaker"
	"github.com/stretchr/testify/require"
)

func Test_circuitBreaker_Call(t *testing.T) {
	var (
		errService = errors.New("service error")

		ok   = func() error { return nil }
		fail = func() error { return errService }
	)

	t.Run("stays closed on successes", func(t *testing.T) {
		cb := circuit_breaker.New(10, time.Second, 0.3, 2)
		for i := 0; i < 40; i++ {
			require.NoError(t, cb.Call(ok))
		}
	})

	t.Run("opens after failure percentile exceeded", func(t *testing.T) {
		cb := circuit_breaker.New(10, time.Minute, 0.3, 2)
		for i := 0; i < 3; i++ {
			require.ErrorIs(t, cb.Call(fail), errService)
		}
		// the tail is over the 30% threshold, the breaker rejects without calling
		require.ErrorIs(t, cb.Call(ok), circuit_breaker.ErrOpenCB)
	})

	t.Run("recovers through half-open", func(t *testing.T) {
		cb := circuit_breaker.New(4, 10*time.Millisecond, 0.5, 1)
		for i := 0; i < 2; i++ {
			require.ErrorIs(t, cb.Call(fail), errService)
		}
		require.ErrorIs(t, cb.Call(ok), circuit_breaker.ErrOpenCB)

		time.Sleep(20 * time.Millisecond)

		// half-open: calls pass through again, enough successes close it
		for i := 0; i < 3; i++ {
			require.NoError(t, cb.Call(ok))
		}
	})

	t.Run("failed probe reopens", func(t *testing.T) {
		cb := circuit_breaker.New(4, 10*time.Millisecond, 0.5, 1)
		for i := 0; i < 2; i++ {
			require.ErrorIs(t, cb.Call(fail), errService)
		}
		time.Sleep(20 * time.Millisecond)

		require.ErrorIs(t, cb.Call(fail), errService)
		require.ErrorIs(t, cb.Call(ok), circuit_breaker.ErrOpenCB)
	})

	t.Run("reset closes immediately", func(t *testing.T) {
		cb := circuit_breaker.New(4, time.Minute, 0.5, 1)
		for i := 0; i < 2; i++ {
			require.ErrorIs(t, cb.Call(fail), errService)
		}
		require.ErrorIs(t, cb.Call(ok), circuit_breaker.ErrOpenCB)

		cb.Reset()
		require.NoError(t, cb.Call(ok))
	})
}
