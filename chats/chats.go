package chats

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"wandr/db"
	"wandr/live"
	"wandr/models"
	"wandr/mq"
	"wandr/upstream"
	"wandr/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var api = upstream.NewClient()

const defaultModel = "gemini"

// GET /api/chats
func GetChats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	sessions, err := utils.FindAndDecode[models.Chat](ctx, db.ChatsCollection, bson.M{"user_id": userID}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error fetching chats")
		return
	}

	if sessions == nil {
		sessions = []models.Chat{}
	}

	utils.RespondWithJSON(w, http.StatusOK, sessions)
}

// POST /api/chats
func CreateChat(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Title == "" {
		input.Title = "New chat"
	}

	chat := models.Chat{
		UserID:    userID,
		Title:     input.Title,
		CreatedAt: time.Now().UnixMilli(),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	res, err := db.ChatsCollection.InsertOne(ctx, chat)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create chat")
		return
	}
	chat.ID = res.InsertedID.(primitive.ObjectID)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(chat)
}

// GET /api/chats/:chatid
func GetChat(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	chatIDHex := ps.ByName("chatid")
	userID := utils.GetUserIDFromRequest(r)

	chatID, err := primitive.ObjectIDFromHex(chatIDHex)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid chat ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var chat models.Chat
	err = db.ChatsCollection.FindOne(ctx, bson.M{"_id": chatID, "user_id": userID}).Decode(&chat)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Chat not found")
		return
	}

	// Messages sorted ascending so the transcript reads top to bottom
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	messages, err := utils.FindAndDecode[models.Message](ctx, db.MessagesCollection, bson.M{"chatId": chatIDHex}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "DB error")
		return
	}

	if messages == nil {
		messages = []models.Message{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"chatId":   chatIDHex,
		"messages": messages,
	})
}

// SendMessage handles POST /api/chats/:chatid/messages.
//
// Order inside one send is fixed: the user message is persisted before the
// upstream request goes out, and the assistant message is appended only
// after the reply lands. A failed completion appends the fixed error reply
// to the returned transcript without persisting it, so the session stays
// usable. Use ":chatid" = "new" to start a fresh session titled from the
// prompt.
func SendMessage(hub *live.Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		userID := utils.GetUserIDFromRequest(r)
		if userID == "" {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var input struct {
			Model  string `json:"model"`
			Prompt string `json:"prompt"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
			return
		}

		// A blank prompt changes nothing and calls nothing.
		prompt := strings.TrimSpace(input.Prompt)
		if prompt == "" {
			utils.RespondWithError(w, http.StatusBadRequest, "Empty prompt")
			return
		}

		model := input.Model
		if model == "" {
			model = defaultModel
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		chatID := ps.ByName("chatid")
		now := time.Now().UnixMilli()

		if chatID == "new" {
			chat := models.Chat{
				UserID:    userID,
				Title:     ChatTitle(prompt),
				CreatedAt: now,
			}
			res, err := db.ChatsCollection.InsertOne(ctx, chat)
			if err != nil {
				utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create chat")
				return
			}
			chatID = res.InsertedID.(primitive.ObjectID).Hex()
		} else {
			objID, err := primitive.ObjectIDFromHex(chatID)
			if err != nil {
				utils.RespondWithError(w, http.StatusBadRequest, "Invalid chat ID")
				return
			}
			var chat models.Chat
			if err := db.ChatsCollection.FindOne(ctx, bson.M{"_id": objID, "user_id": userID}).Decode(&chat); err != nil {
				utils.RespondWithError(w, http.StatusNotFound, "Chat not found")
				return
			}
		}

		userMsg := models.Message{
			ChatID:    chatID,
			Sender:    models.SenderUser,
			Text:      prompt,
			CreatedAt: now,
		}
		// Persist before the upstream call; a write failure is logged and
		// the message rides along unpersisted.
		if res, err := db.MessagesCollection.InsertOne(ctx, userMsg); err != nil {
			log.Printf("Failed to save user message: %v", err)
		} else {
			userMsg.ID = res.InsertedID.(primitive.ObjectID)
			hub.BroadcastMessage(userMsg)
		}

		result, err := api.MultiModelChat(model, prompt)
		if err != nil {
			log.Printf("Chat completion failed: %v", err)
			errMsg := models.Message{
				ChatID:    chatID,
				Sender:    models.SenderAI,
				Text:      ErrorReplyText,
				CreatedAt: time.Now().UnixMilli(),
			}
			utils.RespondWithJSON(w, http.StatusOK, utils.M{
				"chatId":   chatID,
				"messages": BuildTranscript([]models.Message{userMsg}, errMsg),
			})
			return
		}

		aiMsg := models.Message{
			ChatID:    chatID,
			Sender:    models.SenderAI,
			Text:      result,
			CreatedAt: time.Now().UnixMilli(),
		}

		// Fresh timeout: the upstream call may have outlived the first one.
		saveCtx, saveCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer saveCancel()

		if res, err := db.MessagesCollection.InsertOne(saveCtx, aiMsg); err != nil {
			log.Printf("Failed to save AI message: %v", err)
		} else {
			aiMsg.ID = res.InsertedID.(primitive.ObjectID)
			hub.BroadcastMessage(aiMsg)
		}

		mq.Emit(userID, "sent", "message", chatID)

		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"chatId":   chatID,
			"messages": BuildTranscript([]models.Message{userMsg}, aiMsg),
		})
	}
}
