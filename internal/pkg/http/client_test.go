package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name            string
		config          Config
		expectedTimeout time.Duration
	}{
		{
			name:            "Explicit timeout",
			config:          Config{BaseURL: "https://s3.example.com", Timeout: 30 * time.Second},
			expectedTimeout: 30 * time.Second,
		},
		{
			name:            "Default timeout",
			config:          Config{BaseURL: "http://localhost:8080"},
			expectedTimeout: 10 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.config)

			assert.Equal(t, tt.config.BaseURL, client.baseURL)
			assert.Equal(t, tt.expectedTimeout, client.httpClient.Timeout)
		})
	}
}

func TestClient_URL(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://host/base/"})

	assert.Equal(t, "http://host/base/", client.url(""))
	assert.Equal(t, "http://host/base/data.json", client.url("/data.json"))
}

func TestClient_GetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"title":"Bike"}]`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Timeout: 5 * time.Second})

	var out []map[string]interface{}
	err := client.GetJSON(context.Background(), "", &out)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Bike", out[0]["title"])
}

func TestClient_GetJSON_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	var out []map[string]interface{}
	err := client.GetJSON(context.Background(), "/missing.json", &out)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusForbidden, httpErr.StatusCode)
	assert.Contains(t, err.Error(), "/missing.json")
}

func TestClient_GetJSON_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	var out []map[string]interface{}
	err := client.GetJSON(context.Background(), "", &out)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestClient_GetJSON_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(Config{BaseURL: server.URL})

	var out []map[string]interface{}
	err := client.GetJSON(ctx, "", &out)

	assert.ErrorIs(t, err, context.Canceled)
}
