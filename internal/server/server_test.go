package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentortools-mcp/internal/config"
	"mentortools-mcp/internal/metrics"
	"mentortools-mcp/internal/providers"
	"mentortools-mcp/internal/tools"
)

type staticLMS struct {
	result json.RawMessage
}

func (s staticLMS) Execute(context.Context, providers.Request) (json.RawMessage, error) {
	return s.result, nil
}

func (s staticLMS) Upload(context.Context, providers.UploadRequest) (json.RawMessage, error) {
	return s.result, nil
}

func newTestServer(t *testing.T, result string) (*Server, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	registry := tools.New(staticLMS{result: json.RawMessage(result)}, tools.Options{
		Metrics: metrics.New(reg),
		Logger:  logr.Discard(),
	})
	cfg := config.Defaults()
	cfg.Transport = config.TransportHTTP
	return New(cfg, registry, Options{Gatherer: reg, Logger: logr.Discard()}), reg
}

func TestHealthz(t *testing.T) {
	s, _ := newTestServer(t, `1`)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"status":"ok","server":"mentortools-mcp-server"}`, string(body))
}

func TestStreamableHTTPSession(t *testing.T) {
	s, _ := newTestServer(t, `7`)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	cs, err := client.Connect(ctx, &mcp.StreamableClientTransport{Endpoint: ts.URL + "/mcp"}, nil)
	require.NoError(t, err)
	defer cs.Close()

	res, err := cs.CallTool(ctx, &mcp.CallToolParams{Name: tools.Prefix + "count_all_files", Arguments: map[string]any{}})
	require.NoError(t, err)
	require.False(t, res.IsError)
	assert.Equal(t, "Total files: 7", res.Content[0].(*mcp.TextContent).Text)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `mentortools_mcp_tool_calls_total{status="success",tool="mentortools_count_all_files"} 1`)
}

func TestInProcessSession(t *testing.T) {
	s, _ := newTestServer(t, `[]`)
	ctx := context.Background()

	serverT, clientT := mcp.NewInMemoryTransports()
	ss, err := s.MCP().Connect(ctx, serverT, nil)
	require.NoError(t, err)
	defer ss.Close()

	cs, err := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil).Connect(ctx, clientT, nil)
	require.NoError(t, err)
	defer cs.Close()

	info := cs.InitializeResult()
	require.NotNil(t, info)
	assert.Equal(t, Name, info.ServerInfo.Name)
	assert.Equal(t, Version, info.ServerInfo.Version)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	s, _ := newTestServer(t, `1`)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRunRejectsUnknownTransport(t *testing.T) {
	s, _ := newTestServer(t, `1`)
	s.cfg.Transport = "carrier-pigeon"
	assert.Error(t, s.Run(context.Background()))
}
