package infra

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakerOpensAfterThreshold(t *testing.T) {
	b := NewBreaker(3, time.Hour)
	boom := errors.New("boom")
	fail := func() error { return boom }

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, b.Execute(fail), boom)
	}

	// Open: the function is not even called.
	called := false
	err := b.Execute(func() error { called = true; return nil })
	assert.ErrorIs(t, err, ErrBreakerOpen)
	assert.False(t, called)
}

func TestBreakerSuccessResets(t *testing.T) {
	b := NewBreaker(3, time.Hour)
	boom := errors.New("boom")

	require.Error(t, b.Execute(func() error { return boom }))
	require.Error(t, b.Execute(func() error { return boom }))
	require.NoError(t, b.Execute(func() error { return nil }))

	// The failure count restarted; two more failures do not open it.
	require.Error(t, b.Execute(func() error { return boom }))
	require.Error(t, b.Execute(func() error { return boom }))
	assert.NoError(t, b.Execute(func() error { return nil }))
}

func TestBreakerProbesAfterCooldown(t *testing.T) {
	b := NewBreaker(1, 20*time.Millisecond)
	require.Error(t, b.Execute(func() error { return errors.New("boom") }))
	require.ErrorIs(t, b.Execute(func() error { return nil }), ErrBreakerOpen)

	time.Sleep(30 * time.Millisecond)

	// Cooldown elapsed: the next call probes and closes the breaker.
	assert.NoError(t, b.Execute(func() error { return nil }))
	assert.NoError(t, b.Execute(func() error { return nil }))
}
