// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package requester

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type echoRequest struct {
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
	ID     json.RawMessage   `json:"id"`
}

func TestSendRequest(t *testing.T) {
	require := require.New(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req echoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if req.Method != "amm.ping" {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"jsonrpc": "2.0",
				"error":   map[string]any{"code": -32601, "message": "unknown method"},
				"id":      req.ID,
			})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"jsonrpc": "2.0",
			"result":  map[string]any{"success": true},
			"id":      req.ID,
		})
	}))
	defer ts.Close()

	r := New(ts.URL, "amm")
	var reply struct {
		Success bool `json:"success"`
	}
	require.NoError(r.SendRequest(context.Background(), "ping", nil, &reply))
	require.True(reply.Success)

	err := r.SendRequest(context.Background(), "missing", nil, &reply)
	require.ErrorContains(err, "unknown method")
}

func TestSendRequestBadStatus(t *testing.T) {
	require := require.New(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer ts.Close()

	r := New(ts.URL, "amm")
	err := r.SendRequest(context.Background(), "ping", nil, &struct{}{})
	require.ErrorIs(err, ErrUnexpectedStatus)
}
