package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string { return s.name }
func (s stubChecker) Check(context.Context) error { return s.err }

func TestReady(t *testing.T) {
	require.NoError(t, NewService().Ready(context.Background()))
	require.NoError(t, NewService(stubChecker{name: "postgres"}, nil).Ready(context.Background()))

	down := errors.New("connection refused")
	err := NewService(stubChecker{name: "postgres"}, stubChecker{name: "redis", err: down}).Ready(context.Background())
	require.ErrorIs(t, err, down)
	assert.Equal(t, "redis: connection refused", err.Error())
}
