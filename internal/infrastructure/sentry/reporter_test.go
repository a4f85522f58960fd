package sentry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRavenReporter(t *testing.T) {
	r, err := NewRavenReporter("https://public@sentry.example.com/1", "test")
	require.NoError(t, err)
	assert.NotNil(t, r.client)
}

func TestNewRavenReporter_InvalidDSN(t *testing.T) {
	_, err := NewRavenReporter("https://sentry.example.com/1", "test")
	assert.Error(t, err)
}

func TestNoopReporter(t *testing.T) {
	var r Reporter = NewNoopReporter()

	assert.NotPanics(t, func() {
		r.Report(errors.New("lookup failed"), map[string]string{"route": "/"})
	})
}
