package logx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	logger := NewLogger("wizard")
	require.NotNil(t, logger)
	assert.Equal(t, "wizard", logger.GetComponent())
}

func TestWithComponent(t *testing.T) {
	logger := NewLogger("wizard")
	child := logger.WithComponent("nav")

	assert.Equal(t, "nav", child.GetComponent())
	assert.Equal(t, "wizard", logger.GetComponent(), "original logger unchanged")
}

func TestDebugDomainFiltering(t *testing.T) {
	// Save and restore global debug state.
	defer func() {
		SetDebugEnabled(false)
		SetDebugDomains(nil)
	}()

	SetDebugEnabled(false)
	assert.False(t, IsDebugEnabledForDomain("wizard"), "disabled globally")

	SetDebugEnabled(true)
	SetDebugDomains(nil)
	assert.True(t, IsDebugEnabledForDomain("wizard"), "nil domains enables all")

	SetDebugDomains([]string{"assist", " nav "})
	assert.True(t, IsDebugEnabledForDomain("assist"))
	assert.True(t, IsDebugEnabledForDomain("nav"), "domains are trimmed")
	assert.False(t, IsDebugEnabledForDomain("wizard"))
}

func TestErrorfReturnsError(t *testing.T) {
	err := Errorf("load failed: %s", "bad path")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad path")
}

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap(nil, "context"), "nil error passes through")

	err := Errorf("inner")
	wrapped := Wrap(err, "outer")
	require.Error(t, wrapped)
	assert.ErrorIs(t, wrapped, err)
	assert.Contains(t, wrapped.Error(), "outer: inner")
}
