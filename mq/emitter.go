package mq

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"wandr/db"
	"wandr/models"
	"wandr/rdx"
)

const activityChannel = "activity-events"

// Emit publishes a user activity to Redis. Failures are logged and
// swallowed; activity is best-effort bookkeeping, never a request blocker.
func Emit(userID, action, entityType, entityID string) {
	act := models.Activity{
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Timestamp:  time.Now(),
	}

	data, err := json.Marshal(act)
	if err != nil {
		log.Printf("Failed to marshal activity: %v", err)
		return
	}

	if err := rdx.Conn.Publish(context.Background(), activityChannel, data).Err(); err != nil {
		log.Printf("Failed to publish activity: %v", err)
	}
}

// StartActivityWorker drains the activity channel into MongoDB.
func StartActivityWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, activityChannel)
	ch := sub.Channel()

	log.Println("[ActivityWorker] Listening for activity events...")

	for msg := range ch {
		var act models.Activity
		if err := json.Unmarshal([]byte(msg.Payload), &act); err != nil {
			log.Printf("[ActivityWorker] Failed to parse event: %v", err)
			continue
		}

		if _, err := db.ActivitiesCollection.InsertOne(ctx, act); err != nil {
			log.Printf("[ActivityWorker] Insert failed: %v", err)
		}
	}
}
