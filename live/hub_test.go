package live

import (
	"encoding/json"
	"testing"
	"time"

	"wandr/models"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send: make(chan []byte, 10),
		Room: "chat1",
	}
	hub.Register(client)

	msg := models.Message{ChatID: "chat1", Sender: models.SenderUser, Text: "hello test", CreatedAt: 1}
	data, _ := json.Marshal(msg)
	hub.Broadcast("chat1", data)

	select {
	case got := <-client.Send:
		if string(got) != string(data) {
			t.Fatalf("expected %s, got %s", data, got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message")
	}

	hub.Unregister(client)
}

func TestHubBroadcastOtherRoomNotDelivered(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send: make(chan []byte, 10),
		Room: "chat1",
	}
	hub.Register(client)

	hub.Broadcast("chat2", []byte("elsewhere"))

	select {
	case got := <-client.Send:
		t.Fatalf("unexpected delivery: %s", got)
	case <-time.After(100 * time.Millisecond):
	}
}
