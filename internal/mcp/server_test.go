package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/roivaz/voyp-mcp/internal/config"
	"github.com/roivaz/voyp-mcp/internal/logging"
)

func newTestServer(t *testing.T, status int, body string) (*Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(upstream.Close)

	cfg, err := NewConfig(config.Config{APIKey: "secret", BaseURL: upstream.URL + "/api/mcp/"}, logging.Discard())
	require.NoError(t, err)
	return New(cfg), &hits
}

func handle(t *testing.T, s *Server, method string, params any) gjson.Result {
	t.Helper()
	msg := map[string]any{"jsonrpc": mcp.JSONRPC_VERSION, "id": 1, "method": method}
	if params != nil {
		msg["params"] = params
	}
	raw, err := json.Marshal(msg)
	require.NoError(t, err)

	resp := s.HandleMessage(context.Background(), raw)
	require.NotNil(t, resp)
	out, err := json.Marshal(resp)
	require.NoError(t, err)
	return gjson.ParseBytes(out)
}

func TestNewConfig_RequiresAPIKey(t *testing.T) {
	_, err := NewConfig(config.Config{BaseURL: config.DefaultBaseURL}, logging.Discard())
	require.Error(t, err)
}

func TestServer_ListToolsIsStable(t *testing.T) {
	s, _ := newTestServer(t, http.StatusOK, `{}`)

	first := handle(t, s, "tools/list", nil)
	require.False(t, first.Get("error").Exists(), first.Raw)

	var names []string
	for _, n := range first.Get("result.tools.#.name").Array() {
		names = append(names, n.String())
	}
	assert.ElementsMatch(t, []string{
		"start_call", "hangup_call", "search_places", "search_place",
		"search_place_by_number", "get_call", "get_user",
	}, names)

	handle(t, s, "tools/call", map[string]any{"name": "get_user", "arguments": map[string]any{}})

	second := handle(t, s, "tools/list", nil)
	assert.Equal(t, first.Get("result").Raw, second.Get("result").Raw)
}

func TestServer_CallToolSuccess(t *testing.T) {
	s, hits := newTestServer(t, http.StatusOK, `{"id":"abc","url":"http://x"}`)

	resp := handle(t, s, "tools/call", map[string]any{
		"name":      "start_call",
		"arguments": map[string]any{"number": "+123", "context": "order pizza"},
	})
	require.False(t, resp.Get("error").Exists(), resp.Raw)
	assert.False(t, resp.Get("result.isError").Bool())
	assert.Equal(t, int64(1), resp.Get("result.content.#").Int())
	assert.Equal(t, "text", resp.Get("result.content.0.type").String())
	assert.Equal(t, `{"id":"abc","url":"http://x"}`, resp.Get("result.content.0.text").String())
	assert.Equal(t, int32(1), hits.Load())
}

func TestServer_CallToolUpstreamError(t *testing.T) {
	s, _ := newTestServer(t, http.StatusBadRequest, `{"message":"bad number"}`)

	resp := handle(t, s, "tools/call", map[string]any{
		"name":      "start_call",
		"arguments": map[string]any{"number": "+123", "context": "order pizza"},
	})
	require.False(t, resp.Get("error").Exists(), resp.Raw)
	assert.True(t, resp.Get("result.isError").Bool())
	assert.Equal(t, "Voyp API error: bad number", resp.Get("result.content.0.text").String())
}

func TestServer_CallToolProtocolErrors(t *testing.T) {
	tests := []struct {
		name    string
		params  any
		code    int
		message string
	}{
		{"unknown tool", map[string]any{"name": "nonexistent_tool", "arguments": map[string]any{}}, mcp.METHOD_NOT_FOUND, "Unknown tool: nonexistent_tool"},
		{"hangup without id", map[string]any{"name": "hangup_call", "arguments": map[string]any{}}, mcp.INVALID_PARAMS, "Invalid hangup_call arguments: id is required"},
		{"hangup without arguments", map[string]any{"name": "hangup_call"}, mcp.INVALID_PARAMS, "Invalid hangup_call arguments: id is required"},
		{"wrong argument type", map[string]any{"name": "get_call", "arguments": map[string]any{"id": 7}}, mcp.INVALID_PARAMS, "Invalid get_call arguments: id must be a string"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, hits := newTestServer(t, http.StatusOK, `{}`)

			resp := handle(t, s, "tools/call", tt.params)
			require.True(t, resp.Get("error").Exists(), resp.Raw)
			assert.Equal(t, int64(tt.code), resp.Get("error.code").Int())
			assert.Equal(t, tt.message, resp.Get("error.message").String())
			assert.Equal(t, int64(1), resp.Get("id").Int())
			assert.False(t, resp.Get("result").Exists())
			assert.Zero(t, hits.Load())
		})
	}
}

func TestServer_HandlerFailureIsInternalError(t *testing.T) {
	s, _ := newTestServer(t, http.StatusOK, `{}`)
	s.MCP.AddTool(mcp.NewTool("get_user"), func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return nil, errors.New("boom")
	})

	resp := handle(t, s, "tools/call", map[string]any{"name": "get_user"})
	require.True(t, resp.Get("error").Exists(), resp.Raw)
	assert.Equal(t, int64(mcp.INTERNAL_ERROR), resp.Get("error.code").Int())
	assert.Equal(t, "boom", resp.Get("error.message").String())
}

func TestServer_Prompts(t *testing.T) {
	s, _ := newTestServer(t, http.StatusOK, `{}`)

	list := handle(t, s, "prompts/list", nil)
	var names []string
	for _, n := range list.Get("result.prompts.#.name").Array() {
		names = append(names, n.String())
	}
	assert.ElementsMatch(t, []string{"start-call", "hangup-call"}, names)

	got := handle(t, s, "prompts/get", map[string]any{
		"name":      "start-call",
		"arguments": map[string]string{"number": "+123", "context": "order pizza"},
	})
	require.False(t, got.Get("error").Exists(), got.Raw)
	assert.Equal(t, int64(5), got.Get("result.messages.#").Int())
	assert.Equal(t, "call this number +123", got.Get("result.messages.2.content.text").String())
	assert.Equal(t, "here is what I'd like you to do: order pizza", got.Get("result.messages.4.content.text").String())

	// Unregistered prompts are rejected by mcp-go before any handler runs.
	missing := handle(t, s, "prompts/get", map[string]any{"name": "order-pizza"})
	require.True(t, missing.Get("error").Exists(), missing.Raw)
	assert.Equal(t, int64(mcp.INVALID_PARAMS), missing.Get("error.code").Int())
	assert.Contains(t, missing.Get("error.message").String(), "prompt 'order-pizza' not found")
}

func TestServer_ServeStdio(t *testing.T) {
	s, _ := newTestServer(t, http.StatusOK, `{"name":"Ada"}`)

	in := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","capabilities":{},"clientInfo":{"name":"test","version":"1.0.0"}}}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"get_user","arguments":{}}}`,
		`{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"nonexistent_tool","arguments":{}}}`,
		`{"jsonrpc":"2.0","id":"five","method":"tools/call","params":{"name":"hangup_call","arguments":{}}}`,
		`not json`,
	}, "\n") + "\n"
	var out bytes.Buffer

	require.NoError(t, s.Serve(context.Background(), strings.NewReader(in), &out))

	responses := map[string]gjson.Result{}
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		r := gjson.Parse(line)
		responses[r.Get("id").String()] = r
	}
	require.Len(t, responses, 6, out.String())
	assert.Equal(t, ServerName, responses["1"].Get("result.serverInfo.name").String())
	assert.Equal(t, int64(7), responses["2"].Get("result.tools.#").Int())
	assert.Equal(t, `{"name":"Ada"}`, responses["3"].Get("result.content.0.text").String())
	assert.Equal(t, int64(mcp.METHOD_NOT_FOUND), responses["4"].Get("error.code").Int())
	assert.Equal(t, int64(mcp.INVALID_PARAMS), responses["five"].Get("error.code").Int())
	assert.Equal(t, int64(mcp.PARSE_ERROR), responses[""].Get("error.code").Int())
}

func TestServer_ServeStopsOnCancel(t *testing.T) {
	s, _ := newTestServer(t, http.StatusOK, `{}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	assert.NoError(t, s.Serve(ctx, pr, io.Discard))
}
