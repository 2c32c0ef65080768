package placer_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/placer"
	"github.com/arloliu/placer/pool"
	"github.com/arloliu/placer/source"
	"github.com/arloliu/placer/test/testutil"
	placertest "github.com/arloliu/placer/testing"
)

type failingSource struct{}

func (failingSource) ListRequests(context.Context) ([]placer.RequestRecord, error) {
	return nil, errors.New("source unavailable")
}

func newFNVEngine(t *testing.T, cfg placer.Config, opts ...placer.Option) *placer.Engine {
	t.Helper()

	all := append([]placer.Option{
		placer.WithHasher(placertest.FNVHasher()),
		placer.WithLogger(placertest.NewTestLogger(t)),
	}, opts...)

	eng, err := placer.NewEngine(&cfg, all...)
	require.NoError(t, err)

	return eng
}

func TestNewEngine(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		eng, err := placer.NewEngine(nil)
		require.ErrorIs(t, err, placer.ErrInvalidConfig)
		require.Nil(t, eng)
	})

	t.Run("empty config gets defaults", func(t *testing.T) {
		cfg := placer.Config{}
		eng, err := placer.NewEngine(&cfg)
		require.NoError(t, err)
		require.Equal(t, 10, eng.MaxAttempts())
		require.Equal(t, pool.DefaultShapes(), eng.Config().Pools)
	})

	t.Run("invalid config", func(t *testing.T) {
		cfg := placer.DefaultConfig()
		cfg.Pools.Vertical.Capacity = -1

		_, err := placer.NewEngine(&cfg)
		require.ErrorIs(t, err, placer.ErrInvalidConfig)
		require.ErrorIs(t, err, placer.ErrInvalidCapacity)
	})

	t.Run("nil request source", func(t *testing.T) {
		cfg := placer.DefaultConfig()
		_, err := placer.NewEngine(&cfg, placer.WithRequestSource(nil))
		require.ErrorIs(t, err, placer.ErrRequestSourceRequired)
	})

	t.Run("nil options are skipped", func(t *testing.T) {
		cfg := placer.DefaultConfig()
		_, err := placer.NewEngine(&cfg, nil, placer.WithLogger(nil), placer.WithMetrics(nil), placer.WithHasher(nil))
		require.NoError(t, err)
	})
}

func TestEngine_Run_Vertical(t *testing.T) {
	eng := newFNVEngine(t, placer.TestConfig())

	result, err := eng.Run(context.Background(), "vertical")

	require.NoError(t, err)
	testutil.AssertBatchInvariants(t, result, eng.MaxAttempts())
	require.Equal(t, "vertical", result.Choice)
	require.Len(t, result.Servers, 4)
	require.Equal(t, 10, result.TotalRequests)
	require.Equal(t, 10, result.Accepted)
	require.Equal(t, 0, result.Retries)
	for i, slot := range result.Servers {
		require.Equal(t, 3, slot.MaxCapacity, "slot %d", i)
	}
}

func TestEngine_Run_Horizontal(t *testing.T) {
	eng := newFNVEngine(t, placer.TestConfig())

	result, err := eng.Run(context.Background(), "horizontal")

	require.NoError(t, err)
	testutil.AssertBatchInvariants(t, result, eng.MaxAttempts())
	require.Len(t, result.Servers, 6)
	require.Equal(t, 10, result.Accepted)

	want := [][]string{
		{"Request_C"},
		{"Request_B"},
		{"Request_A", "Request_G"},
		{"Request_F", "Request_J"},
		{"Request_E", "Request_I"},
		{"Request_D", "Request_H"},
	}
	for i, slot := range result.Servers {
		require.Equal(t, 2, slot.MaxCapacity)
		require.Equal(t, want[i], slot.Requests, "slot %s", slot.Name)
	}
}

func TestEngine_Run_UnknownChoiceFallsBackToVertical(t *testing.T) {
	eng := newFNVEngine(t, placer.TestConfig())

	for _, choice := range []string{"", "diagonal", "Horizontal", " horizontal"} {
		t.Run("choice="+choice, func(t *testing.T) {
			result, err := eng.Run(context.Background(), choice)
			require.NoError(t, err)
			require.Equal(t, choice, result.Choice)
			require.Len(t, result.Servers, 4)
			require.Equal(t, 3, result.Servers[0].MaxCapacity)
		})
	}
}

func TestEngine_Run_AdversarialPool(t *testing.T) {
	cfg := placer.TestConfig()
	cfg.Pools.Vertical = pool.Shape{Servers: 1, Capacity: 1}

	eng := newFNVEngine(t, cfg, placer.WithRequestSource(source.NewStatic("Request_A", "Request_B")))

	result, err := eng.Run(context.Background(), "vertical")

	require.NoError(t, err)
	require.Equal(t, []placer.AssignmentOutcome{
		{Request: "Request_A", Server: "Server-0", Attempts: 1, Status: placer.StatusAccepted},
		{Request: "Request_B", Server: placer.NoServer, Attempts: 10, Status: placer.StatusFailed},
	}, result.Results)
	require.Equal(t, 1, result.Accepted)
	require.Equal(t, 9, result.Retries)
}

func TestEngine_Run_CustomMaxAttemptsAndPrefix(t *testing.T) {
	cfg := placer.TestConfig()
	cfg.MaxAttempts = 3
	cfg.ServerNamePrefix = "node"
	cfg.Pools.Vertical = pool.Shape{Servers: 1, Capacity: 1}

	eng := newFNVEngine(t, cfg, placer.WithRequestSource(source.NewStatic("Request_A", "Request_B")))

	result, err := eng.Run(context.Background(), "vertical")

	require.NoError(t, err)
	testutil.AssertBatchInvariants(t, result, 3)
	require.Equal(t, "node-0", result.Servers[0].Name)
	require.Equal(t, "node-0", result.Results[0].Server)
	require.Equal(t, 3, result.Results[1].Attempts)
	require.Equal(t, placer.StatusFailed, result.Results[1].Status)
}

func TestEngine_Run_FreshPoolPerCall(t *testing.T) {
	eng := newFNVEngine(t, placer.TestConfig())

	first, err := eng.Run(context.Background(), "vertical")
	require.NoError(t, err)
	second, err := eng.Run(context.Background(), "vertical")
	require.NoError(t, err)

	require.Equal(t, first.Results, second.Results)
	require.NotSame(t, first.Servers[0], second.Servers[0])
	require.Equal(t, 10, second.Accepted)
}

func TestEngine_Run_DefaultHasherIsDeterministic(t *testing.T) {
	cfg := placer.TestConfig()
	eng, err := placer.NewEngine(&cfg)
	require.NoError(t, err)

	for _, choice := range []string{"horizontal", "vertical"} {
		first, err := eng.Run(context.Background(), choice)
		require.NoError(t, err)
		testutil.AssertBatchInvariants(t, first, eng.MaxAttempts())
		require.Equal(t, 12, first.Servers[0].MaxCapacity*len(first.Servers))

		second, err := eng.Run(context.Background(), choice)
		require.NoError(t, err)
		require.Equal(t, first, second)
	}
}

func TestEngine_Run_Concurrent(t *testing.T) {
	eng := newFNVEngine(t, placer.TestConfig())

	const runs = 16
	results := make([]*placer.BatchResult, runs)
	errs := make([]error, runs)

	var wg sync.WaitGroup
	for i := range runs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = eng.Run(context.Background(), "horizontal")
		}(i)
	}
	wg.Wait()

	for i := range runs {
		require.NoError(t, errs[i])
		testutil.AssertBatchInvariants(t, results[i], eng.MaxAttempts())
		require.Equal(t, results[0].Results, results[i].Results)
	}
}

func TestEngine_Run_Errors(t *testing.T) {
	t.Run("source failure", func(t *testing.T) {
		eng := newFNVEngine(t, placer.TestConfig(), placer.WithRequestSource(failingSource{}))

		_, err := eng.Run(context.Background(), "vertical")
		require.ErrorContains(t, err, "failed to list requests")
	})

	t.Run("canceled context", func(t *testing.T) {
		eng := newFNVEngine(t, placer.TestConfig())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result, err := eng.Run(ctx, "vertical")
		require.ErrorIs(t, err, context.Canceled)
		require.Nil(t, result)
	})
}
