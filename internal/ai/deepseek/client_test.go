package deepseek

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompletionRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	Temperature float32 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

func completionReply(content string) map[string]interface{} {
	return map[string]interface{}{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"model":  "deepseek-chat",
		"choices": []map[string]interface{}{
			{
				"index": 0,
				"message": map[string]interface{}{
					"role":    "assistant",
					"content": content,
				},
				"finish_reason": "stop",
			},
		},
	}
}

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := NewClient(Config{APIKey: "   "})
	assert.Error(t, err)
}

func TestClient_Complete(t *testing.T) {
	var got fakeCompletionRequest
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionReply("  分数：90\n分析：很好  "))
	}))
	defer upstream.Close()

	client, err := NewClient(Config{APIKey: "sk-test", BaseURL: upstream.URL})
	require.NoError(t, err)

	reply, err := client.Complete(context.Background(), "system prompt", "user prompt")
	require.NoError(t, err)

	assert.Equal(t, "分数：90\n分析：很好", reply)
	assert.Equal(t, "deepseek-chat", got.Model)
	assert.InDelta(t, 0.7, got.Temperature, 0.001)
	assert.Equal(t, 300, got.MaxTokens)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "system prompt", got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "user prompt", got.Messages[1].Content)
}

func TestClient_CustomModel(t *testing.T) {
	var got fakeCompletionRequest
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completionReply("ok"))
	}))
	defer upstream.Close()

	client, err := NewClient(Config{APIKey: "sk-test", BaseURL: upstream.URL, Model: "deepseek-reasoner"})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "s", "u")
	require.NoError(t, err)
	assert.Equal(t, "deepseek-reasoner", got.Model)
}

func TestClient_NoChoices(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"choices": []interface{}{},
		})
	}))
	defer upstream.Close()

	client, err := NewClient(Config{APIKey: "sk-test", BaseURL: upstream.URL})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "s", "u")
	assert.ErrorContains(t, err, "no choices")
}

func TestClient_UpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{"message": "model overloaded", "type": "server_error"},
		})
	}))
	defer upstream.Close()

	client, err := NewClient(Config{APIKey: "sk-test", BaseURL: upstream.URL})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "s", "u")
	assert.ErrorContains(t, err, "chat completion")
}
