package examples

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQnAClientComponentExample(t *testing.T) {
	var gotAuth string
	var gotBody qnaRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/qna", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		answer := "<Button variant=\"cta\">Go</Button>"
		json.NewEncoder(w).Encode(map[string]*string{"answer": &answer})
	}))
	defer server.Close()

	client := NewQnAClient(server.URL, "secret", 0)
	got, err := client.ComponentExample(context.Background(), "Button")
	require.NoError(t, err)

	assert.Equal(t, "<Button variant=\"cta\">Go</Button>", got)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Contains(t, gotBody.Question, "Button")
	assert.Equal(t, "salt-design-system", gotBody.Context)
}

func TestQnAClientNullAnswer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"answer": null}`))
	}))
	defer server.Close()

	client := NewQnAClient(server.URL, "", 0)
	got, err := client.ComponentExample(context.Background(), "Card")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestQnAClientErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewQnAClient(server.URL, "", 0)
	_, err := client.ComponentExample(context.Background(), "Card")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
