package messaging

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendText_PostsToInstanceEndpoint(t *testing.T) {
	var gotPath, gotKey string
	var gotBody sendTextRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("apikey")
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &gotBody))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", "secret")
	err := client.SendText(context.Background(), "clinic-inst", "5215550001", "Your appointment is confirmed.")
	require.NoError(t, err)

	assert.Equal(t, "/message/sendText/clinic-inst", gotPath)
	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, "5215550001", gotBody.Number)
	assert.Equal(t, "Your appointment is confirmed.", gotBody.Text)
}

func TestSendText_AcceptsOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	assert.NoError(t, client.SendText(context.Background(), "inst", "123", "hi"))
}

func TestSendText_GatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "instance not connected", http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	err := client.SendText(context.Background(), "inst", "123", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 400")
	assert.Contains(t, err.Error(), "instance not connected")
}
