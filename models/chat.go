package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	SenderUser = "user"
	SenderAI   = "ai"
)

// Chat is one conversation session.
type Chat struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    string             `json:"user_id" bson:"user_id"`
	Title     string             `json:"title" bson:"title"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
}

// Message is a single transcript entry. CreatedAt is milliseconds since
// epoch to match what the clients render.
type Message struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ChatID    string             `json:"chatId" bson:"chatId"`
	Sender    string             `json:"sender" bson:"sender"`
	Text      string             `json:"text" bson:"text"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
}
