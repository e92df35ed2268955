package kodi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rpcEcho decodes the JSON-RPC request and replies with the given result.
func rpcEcho(t *testing.T, capture *map[string]any, result any) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jsonrpc", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2.0", req["jsonrpc"])
		if capture != nil {
			*capture = req
		}

		raw, err := json.Marshal(result)
		require.NoError(t, err)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      1,
			"result":  json.RawMessage(raw),
		})
	}
}

func TestActivePlayerID(t *testing.T) {
	var req map[string]any
	server := httptest.NewServer(rpcEcho(t, &req, []map[string]any{
		{"playerid": 1, "type": "video"},
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "")

	id, playing, err := client.ActivePlayerID(context.Background())
	require.NoError(t, err)
	assert.True(t, playing)
	assert.Equal(t, 1, id)
	assert.Equal(t, "Player.GetActivePlayers", req["method"])
}

func TestActivePlayerID_Idle(t *testing.T) {
	server := httptest.NewServer(rpcEcho(t, nil, []map[string]any{}))
	defer server.Close()

	client := NewClient(server.URL, "", "")

	_, playing, err := client.ActivePlayerID(context.Background())
	require.NoError(t, err)
	assert.False(t, playing)
}

func TestPlayingFile(t *testing.T) {
	var req map[string]any
	server := httptest.NewServer(rpcEcho(t, &req, map[string]any{
		"item": map[string]any{"file": "/video/downloading1.mp4"},
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "")

	file, err := client.PlayingFile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "/video/downloading1.mp4", file)

	params := req["params"].(map[string]any)
	assert.Equal(t, float64(1), params["playerid"])
	assert.Equal(t, []any{"file"}, params["properties"])
}

func TestOpen(t *testing.T) {
	var req map[string]any
	server := httptest.NewServer(rpcEcho(t, &req, "OK"))
	defer server.Close()

	client := NewClient(server.URL, "", "")
	require.NoError(t, client.Open(context.Background(), "/video/downloading1.mp4"))

	assert.Equal(t, "Player.Open", req["method"])
	params := req["params"].(map[string]any)
	item := params["item"].(map[string]any)
	assert.Equal(t, "/video/downloading1.mp4", item["file"])
}

func TestNotify(t *testing.T) {
	var req map[string]any
	server := httptest.NewServer(rpcEcho(t, &req, "OK"))
	defer server.Close()

	client := NewClient(server.URL, "", "")
	require.NoError(t, client.Notify(context.Background(), "Helparr", "Checking...", 2000))

	assert.Equal(t, "GUI.ShowNotification", req["method"])
	params := req["params"].(map[string]any)
	assert.Equal(t, "Helparr", params["title"])
	assert.Equal(t, "Checking...", params["message"])
	assert.Equal(t, float64(2000), params["displaytime"])
}

func TestCall_RPCError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"id":      1,
			"error":   map[string]any{"code": -32601, "message": "Method not found"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "")

	err := client.Open(context.Background(), "x.mp4")
	require.Error(t, err)
	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, -32601, rpcErr.Code)
}

func TestCall_BasicAuth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "kodi", user)
		assert.Equal(t, "secret", pass)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0", "id": 1, "result": "OK",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "kodi", "secret")
	require.NoError(t, client.Open(context.Background(), "x.mp4"))
}
