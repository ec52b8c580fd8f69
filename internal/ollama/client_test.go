package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *Client {
	return NewClientWithConfig(&ClientConfig{BaseURL: url})
}

func TestListModels(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/tags", r.URL.Path)

		json.NewEncoder(w).Encode(ListModelsResponse{
			Models: []ModelInfo{
				{
					Name:   "llama3",
					Size:   4 << 30,
					Digest: "abc123",
					Details: ModelDetails{
						Family:            "llama",
						ParameterSize:     "8B",
						QuantizationLevel: "Q4_0",
					},
				},
				{Name: "qwen2.5-coder:7b"},
			},
		})
	}))
	defer server.Close()

	models, err := newTestClient(server.URL).ListModels(context.Background())
	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.Equal(t, "llama3", models[0].Name)
	assert.Equal(t, "llama", models[0].Details.Family)
	assert.Equal(t, "qwen2.5-coder:7b", models[1].Name)
}

func TestListModelsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	models, err := newTestClient(server.URL).ListModels(context.Background())
	require.Error(t, err)
	assert.Nil(t, models)
	assert.True(t, IsProtocolError(err))
	assert.False(t, IsConnectionError(err))
	assert.False(t, IsDecodeError(err))
}

func TestListModelsDecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).ListModels(context.Background())
	require.Error(t, err)
	assert.True(t, IsDecodeError(err))
}

func TestListModelsConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listening anymore

	_, err := newTestClient(server.URL).ListModels(context.Background())
	require.Error(t, err)
	assert.True(t, IsConnectionError(err))
}

func TestGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req GenerateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3", req.Model)
		assert.Equal(t, "hi", req.Prompt)
		assert.False(t, req.Stream)

		json.NewEncoder(w).Encode(GenerateResponse{
			Model:     "llama3",
			CreatedAt: "t",
			Response:  "Hello!",
			Done:      true,
		})
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL).Generate(context.Background(), "llama3", "hi")
	require.NoError(t, err)
	assert.Equal(t, "Hello!", resp.Response)
	assert.True(t, resp.Done)
	assert.Equal(t, "llama3", resp.Model)
}

func TestGenerateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer server.Close()

	resp, err := newTestClient(server.URL).Generate(context.Background(), "llama3", "hi")
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, IsProtocolError(err))
}

func TestCheckRunning(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Ollama is running"))
	}))
	defer server.Close()

	assert.NoError(t, newTestClient(server.URL).CheckRunning(context.Background()))

	server.Close()
	assert.Error(t, newTestClient(server.URL).CheckRunning(context.Background()))
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{4 << 30, "4.0 GB"},
		{512 << 20, "512.0 MB"},
		{10 << 10, "10.0 KB"},
		{42, "42.0 B"},
	}

	for _, tc := range tests {
		m := ModelInfo{Size: tc.size}
		assert.Equal(t, tc.want, m.FormatSize())
	}
}
