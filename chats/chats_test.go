package chats

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"wandr/globals"
	"wandr/live"
	"wandr/upstream"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

// A blank message must change nothing: no session, no persisted message,
// no completion request.
func TestSendMessageBlankPrompt(t *testing.T) {
	var upstreamHits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&upstreamHits, 1)
	}))
	defer server.Close()

	prev := api
	api = &upstream.Client{BaseURL: server.URL, HTTP: server.Client()}
	t.Cleanup(func() { api = prev })

	hub := live.NewHub()
	go hub.Run()
	defer hub.Stop()

	body := strings.NewReader(`{"prompt": " \t \n "}`)
	req := httptest.NewRequest(http.MethodPost, "/api/chats/new/messages", body)
	req = req.WithContext(context.WithValue(req.Context(), globals.UserIDKey, "u1"))
	rec := httptest.NewRecorder()

	SendMessage(hub)(rec, req, httprouter.Params{{Key: "chatid", Value: "new"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.EqualValues(t, 0, atomic.LoadInt32(&upstreamHits))
}

func TestSendMessageUnauthorized(t *testing.T) {
	hub := live.NewHub()
	go hub.Run()
	defer hub.Stop()

	req := httptest.NewRequest(http.MethodPost, "/api/chats/new/messages", strings.NewReader(`{"prompt": "hello"}`))
	rec := httptest.NewRecorder()

	SendMessage(hub)(rec, req, httprouter.Params{{Key: "chatid", Value: "new"}})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
