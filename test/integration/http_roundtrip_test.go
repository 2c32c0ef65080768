package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/placer"
	"github.com/arloliu/placer/internal/metrics"
	"github.com/arloliu/placer/server"
	"github.com/arloliu/placer/test/testutil"
	placertest "github.com/arloliu/placer/testing"
)

func startServer(t *testing.T) (*server.Server, *prometheus.Registry) {
	t.Helper()

	reg := prometheus.NewRegistry()
	logger := placertest.NewTestLogger(t)

	cfg := placer.TestConfig()
	eng, err := placer.NewEngine(&cfg,
		placer.WithLogger(logger),
		placer.WithMetrics(metrics.NewPrometheus(reg, cfg.Metrics.Namespace)),
	)
	require.NoError(t, err)

	srv, err := server.New(eng,
		server.WithAddr(cfg.Server.Addr),
		server.WithGatherer(reg),
		server.WithLogger(logger),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Start(ctx)
	}()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("server did not stop")
		}
	})

	require.Eventually(t, func() bool { return srv.Addr() != "" }, 2*time.Second, 10*time.Millisecond)

	return srv, reg
}

func postRun(t *testing.T, addr, body string) (*placer.BatchResult, *http.Response) {
	t.Helper()

	resp, err := http.Post("http://"+addr+"/run", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if resp.StatusCode != http.StatusOK {
		return nil, resp
	}

	var result placer.BatchResult
	require.NoError(t, json.Unmarshal(data, &result))

	return &result, resp
}

// TestHTTP_RoundTrip exercises the full stack over a real listener.
func TestHTTP_RoundTrip(t *testing.T) {
	srv, _ := startServer(t)

	horizontal, resp := postRun(t, srv.Addr(), `{"choice":"horizontal"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get(server.RunIDHeader))
	testutil.AssertBatchInvariants(t, horizontal, 10)
	require.Len(t, horizontal.Servers, 6)

	vertical, resp := postRun(t, srv.Addr(), `{"choice":"vertical"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	testutil.AssertBatchInvariants(t, vertical, 10)
	require.Len(t, vertical.Servers, 4)

	_, resp = postRun(t, srv.Addr(), `not json`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// TestHTTP_RunIDsAreUnique checks that each run gets its own ID.
func TestHTTP_RunIDsAreUnique(t *testing.T) {
	srv, _ := startServer(t)

	seen := make(map[string]struct{})
	for range 5 {
		_, resp := postRun(t, srv.Addr(), `{"choice":"vertical"}`)
		id := resp.Header.Get(server.RunIDHeader)
		require.NotContains(t, seen, id)
		seen[id] = struct{}{}
	}
}

// TestHTTP_MetricsReflectRuns checks the Prometheus exposition after runs.
func TestHTTP_MetricsReflectRuns(t *testing.T) {
	srv, reg := startServer(t)

	postRun(t, srv.Addr(), `{"choice":"horizontal"}`)
	postRun(t, srv.Addr(), `{"choice":""}`)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	require.True(t, names["placer_batch_runs_total"])
	require.True(t, names["placer_placement_outcomes_total"])
	require.True(t, names["placer_server_load"])

	resp, err := http.Get("http://" + srv.Addr() + "/stats")
	require.NoError(t, err)
	defer resp.Body.Close()

	var stats struct {
		Runs  map[string]int64 `json:"runs"`
		Total int64            `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	require.Equal(t, int64(2), stats.Total)
	require.Equal(t, int64(1), stats.Runs["horizontal"])
	require.Equal(t, int64(1), stats.Runs["vertical"])
}
