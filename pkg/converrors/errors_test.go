package converrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCapturesStack(t *testing.T) {
	err := New(ErrorTypePrecondition, "output dir already exists")

	assert.Equal(t, ErrorTypePrecondition, err.Type)
	assert.NotEmpty(t, err.Stack)
	assert.Contains(t, err.Error(), "precondition")
	assert.Contains(t, err.Error(), "output dir already exists")
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(cause, ErrorTypeIO, "failed to copy part file")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
	assert.True(t, IsType(err, ErrorTypeIO))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrorTypeIO, "ignored"))
}

func TestIsTypeThroughChain(t *testing.T) {
	inner := New(ErrorTypeEngine, "read failed")
	outer := fmt.Errorf("table lineitem: %w", inner)

	assert.True(t, IsType(outer, ErrorTypeEngine))
	assert.False(t, IsType(outer, ErrorTypeIO))
	assert.False(t, IsType(errors.New("plain"), ErrorTypeEngine))
}

func TestWithDetail(t *testing.T) {
	err := Newf(ErrorTypeConfig, "invalid compression format: %s", "lzo").
		WithDetail("table", "nation").
		WithDetail("file", "nation.tbl")

	require.NotNil(t, err.Details)
	assert.Equal(t, "nation", err.Details["table"])
	assert.Equal(t, "nation.tbl", err.Details["file"])
}

func TestWrapKeepsExistingStack(t *testing.T) {
	inner := New(ErrorTypeIO, "rename failed")
	outer := Wrap(inner, ErrorTypeIO, "failed to relocate part")

	assert.Equal(t, inner.Stack, outer.Stack)
}
