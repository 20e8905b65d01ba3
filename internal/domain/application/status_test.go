//go:build unit

package application_test

import (
	"testing"

	"thejulge/internal/domain/application"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTransitionAllowed(t *testing.T) {
	all := []application.Status{
		application.StatusPending,
		application.StatusAccepted,
		application.StatusRejected,
		application.StatusCanceled,
	}

	allowed := map[application.Status][]application.Status{
		application.StatusPending: {
			application.StatusAccepted,
			application.StatusRejected,
			application.StatusCanceled,
		},
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, application.IsTransitionAllowed(from, to),
				"transition %s -> %s", from, to)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, application.StatusPending.IsTerminal())
	assert.True(t, application.StatusAccepted.IsTerminal())
	assert.True(t, application.StatusRejected.IsTerminal())
	assert.True(t, application.StatusCanceled.IsTerminal())
}

func TestIsApplied(t *testing.T) {
	assert.True(t, application.StatusPending.IsApplied())
	assert.True(t, application.StatusAccepted.IsApplied())
	// rejection is the employer's decision, not the worker's withdrawal
	assert.True(t, application.StatusRejected.IsApplied())
	assert.False(t, application.StatusCanceled.IsApplied())
}

func TestParseStatus(t *testing.T) {
	st, err := application.ParseStatus("pending")
	require.NoError(t, err)
	assert.Equal(t, application.StatusPending, st)

	_, err = application.ParseStatus("approved")
	assert.Error(t, err)

	_, err = application.ParseStatus("")
	assert.Error(t, err)
}
