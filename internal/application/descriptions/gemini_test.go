package descriptions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiClient_Generate(t *testing.T) {
	var gotPath, gotKey, gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		var req geminiRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if len(req.Contents) > 0 && len(req.Contents[0].Parts) > 0 {
			gotPrompt = req.Contents[0].Parts[0].Text
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"דירה "},{"text":"מהממת"}]}}]}`))
	}))
	defer srv.Close()

	c := &GeminiClient{APIKey: "k", Model: "test-model", BaseURL: srv.URL}
	text, err := c.Generate(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "דירה מהממת", text)
	assert.Equal(t, "/models/test-model:generateContent", gotPath)
	assert.Equal(t, "k", gotKey)
	assert.Equal(t, "hello", gotPrompt)
}

func TestGeminiClient_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	text, err := (&GeminiClient{APIKey: "k", BaseURL: srv.URL}).Generate(context.Background(), "p")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestGeminiClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"quota"}`))
	}))
	defer srv.Close()

	_, err := (&GeminiClient{APIKey: "k", BaseURL: srv.URL}).Generate(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestGeminiClient_NotConfigured(t *testing.T) {
	_, err := (&GeminiClient{}).Generate(context.Background(), "p")
	assert.ErrorIs(t, err, ErrNotConfigured)

	var nilClient *GeminiClient
	_, err = nilClient.Generate(context.Background(), "p")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
