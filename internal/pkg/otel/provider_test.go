package otel_test

import (
	"context"
	"testing"

	fotel "fulfillment/internal/pkg/otel"

	"github.com/stretchr/testify/require"
)

func TestSetup_NoopWithoutEndpoint(t *testing.T) {
	shutdown, err := fotel.Setup(t.Context(), "fulfillment-test", "")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, shutdown(ctx))
}

func TestSetup_InstallsProvider(t *testing.T) {
	// 192.0.2.0/24 is reserved for documentation and never answers.
	shutdown, err := fotel.Setup(t.Context(), "fulfillment-test", "http://192.0.2.1:4318")
	require.NoError(t, err)

	require.NoError(t, shutdown(context.Background()))
}

func TestSetup_RejectsMalformedEndpoint(t *testing.T) {
	_, err := fotel.Setup(t.Context(), "fulfillment-test", "://nope")

	require.Error(t, err)
}
