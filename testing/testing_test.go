package testing_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/placer"
	"github.com/arloliu/placer/source"
	placertest "github.com/arloliu/placer/testing"
)

func TestFNVHasher_KnownValues(t *testing.T) {
	h := placertest.FNVHasher()

	// FNV-1a 64-bit offset basis for the empty input.
	require.Equal(t, int64(-3750763034362895579), h.Hash(""))
	require.Equal(t, h.Hash("Request_A"), h.Hash("Request_A"))
	require.NotEqual(t, h.Hash("Request_A"), h.Hash("Request_A_retry1"))
}

func TestNewEngine(t *testing.T) {
	eng := placertest.NewEngine(t,
		placer.WithHasher(placertest.FNVHasher()),
		placer.WithRequestSource(source.NewStatic("Request_A")),
	)

	result, err := eng.Run(context.Background(), "vertical")
	require.NoError(t, err)
	require.Equal(t, 1, result.TotalRequests)
	require.Equal(t, 1, result.Accepted)
}

func TestNewTestLogger(t *testing.T) {
	l := placertest.NewTestLogger(t)
	require.NotNil(t, l)

	l.Debug("probe", "key", "Request_A")
	l.Info("done")
}
