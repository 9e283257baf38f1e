package chats

import (
	"sort"
	"strings"

	"wandr/models"
)

// ErrorReplyText is appended to the transcript when the upstream
// completion fails. It is never persisted.
const ErrorReplyText = "Error: Could not get a response."

// BuildTranscript merges persisted messages with still-pending local ones
// into display order: ascending creation time, with input order preserved
// on ties so an optimistic append never jumps past the reply that follows
// it.
func BuildTranscript(persisted []models.Message, pending ...models.Message) []models.Message {
	transcript := make([]models.Message, 0, len(persisted)+len(pending))
	transcript = append(transcript, persisted...)
	transcript = append(transcript, pending...)

	sort.SliceStable(transcript, func(i, j int) bool {
		return transcript[i].CreatedAt < transcript[j].CreatedAt
	})
	return transcript
}

// ChatTitle derives a session title from its opening prompt.
func ChatTitle(prompt string) string {
	prompt = strings.TrimSpace(prompt)
	if len(prompt) > 30 {
		prompt = prompt[:30]
	}
	return prompt + "..."
}
