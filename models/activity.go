package models

import "time"

// Activity is one recorded user action, published over the event channel
// and persisted by the activity worker.
type Activity struct {
	UserID     string    `json:"user_id" bson:"user_id"`
	Action     string    `json:"action" bson:"action"`
	EntityType string    `json:"entity_type" bson:"entity_type"`
	EntityID   string    `json:"entity_id" bson:"entity_id"`
	Timestamp  time.Time `json:"timestamp" bson:"timestamp"`
}
