package upstream

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiModelChat(t *testing.T) {
	var gotPath string
	var gotPayload map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result": "hello back"}`))
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL, HTTP: server.Client()}

	reply, err := client.MultiModelChat("gemini", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello back", reply)
	assert.Equal(t, "/multimodelchat", gotPath)
	assert.Equal(t, "gemini", gotPayload["model"])
	assert.Equal(t, "hello", gotPayload["prompt"])
}

func TestTravelPlanReturnsRawBody(t *testing.T) {
	body := `{"result": "[{\"day\": 1}]"}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/travel_plan", r.URL.Path)
		w.Write([]byte(body))
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL, HTTP: server.Client()}

	raw, err := client.TravelPlan("3 days in Lisbon")
	require.NoError(t, err)
	assert.Equal(t, body, string(raw))
}

func TestClientStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"detail": "model overloaded"}`))
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL, HTTP: server.Client()}

	_, err := client.GenerateRecipe("soup")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "model overloaded")
}

func TestClientNotConfigured(t *testing.T) {
	client := &Client{HTTP: &http.Client{}}

	_, err := client.TravelPlan("anywhere")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
