package insights

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blockday/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatReply(t *testing.T, content string) string {
	t.Helper()
	reply := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	}
	data, err := json.Marshal(reply)
	require.NoError(t, err)
	return string(data)
}

func TestClientRequestInsight(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatReply(t, `{"score": 72, "summary": "Solid day.", "recommendations": ["Protect the morning block"]}`)))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, "gpt-4o-mini", 5*time.Second)
	insight, err := client.RequestInsight(context.Background(), BuildSummary(nil, nil, 10))

	require.NoError(t, err)
	assert.Equal(t, 72.0, insight.Score)
	assert.Equal(t, "Solid day.", insight.Summary)
	assert.Equal(t, []string{"Protect the morning block"}, insight.Recommendations)
	assert.NotEmpty(t, insight.RequestID)
}

func TestClientRequestInsight_StripsCodeFence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatReply(t, "```json\n{\"score\": 50, \"summary\": \"ok\", \"recommendations\": []}\n```")))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, "gpt-4o-mini", 5*time.Second)
	insight, err := client.RequestInsight(context.Background(), Summary{})

	require.NoError(t, err)
	assert.Equal(t, 50.0, insight.Score)
}

func TestClientRequestInsight_MissingAPIKey(t *testing.T) {
	client := NewClient("", "http://localhost", "gpt-4o-mini", time.Second)

	_, err := client.RequestInsight(context.Background(), Summary{})

	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeExternal))
}

func TestClientRequestInsight_ClientErrorDoesNotRetry(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "bad key"}}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, "gpt-4o-mini", time.Second)
	_, err := client.RequestInsight(context.Background(), Summary{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad key")
	assert.Equal(t, 1, calls)
}

func TestClientRequestInsight_RejectsOutOfRangeScore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatReply(t, `{"score": 140, "summary": "impossible", "recommendations": []}`)))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, "gpt-4o-mini", time.Second)
	_, err := client.RequestInsight(context.Background(), Summary{})

	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeExternal))
}

func TestClientRequestInsight_MalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(chatReply(t, "here are your insights: have a great day")))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL, "gpt-4o-mini", time.Second)
	_, err := client.RequestInsight(context.Background(), Summary{})

	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeExternal))
}
