package live

import (
	"encoding/json"
	"log"
	"net/http"

	"wandr/models"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// BroadcastMessage pushes a persisted transcript entry to everyone
// watching the chat.
func (h *Hub) BroadcastMessage(msg models.Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Failed to marshal broadcast message: %v", err)
		return
	}
	h.Broadcast(msg.ChatID, data)
}

// WebSocketHandler subscribes the caller to new messages of one chat.
// GET /ws/chats/:chatid
func WebSocketHandler(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		room := ps.ByName("chatid")

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}

		client := &Client{
			Send: make(chan []byte, 256),
			Room: room,
		}
		hub.Register(client)

		// write pump
		go func() {
			defer conn.Close()
			for data := range client.Send {
				if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
					return
				}
			}
		}()

		// read pump; listeners send nothing meaningful, so just drain
		// until the connection drops
		go func() {
			defer hub.Unregister(client)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	}
}
