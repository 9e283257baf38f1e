package chats

import (
	"testing"

	"wandr/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTranscriptMergesByCreatedAt(t *testing.T) {
	persisted := []models.Message{
		{Text: "hello", Sender: models.SenderUser, CreatedAt: 100},
		{Text: "hi there", Sender: models.SenderAI, CreatedAt: 200},
	}
	pending := models.Message{Text: "how are you", Sender: models.SenderUser, CreatedAt: 150}

	got := BuildTranscript(persisted, pending)

	require.Len(t, got, 3)
	assert.Equal(t, "hello", got[0].Text)
	assert.Equal(t, "how are you", got[1].Text)
	assert.Equal(t, "hi there", got[2].Text)
}

func TestBuildTranscriptStableOnEqualTimestamps(t *testing.T) {
	persisted := []models.Message{
		{Text: "question", Sender: models.SenderUser, CreatedAt: 100},
	}
	reply := models.Message{Text: ErrorReplyText, Sender: models.SenderAI, CreatedAt: 100}

	got := BuildTranscript(persisted, reply)

	require.Len(t, got, 2)
	assert.Equal(t, "question", got[0].Text)
	assert.Equal(t, ErrorReplyText, got[1].Text)
}

func TestBuildTranscriptNoPending(t *testing.T) {
	got := BuildTranscript(nil)
	assert.Empty(t, got)
}

func TestChatTitle(t *testing.T) {
	assert.Equal(t, "plan a picnic...", ChatTitle("plan a picnic"))
	assert.Equal(t, "plan a picnic...", ChatTitle("  plan a picnic  "))

	long := "this prompt is well over thirty characters long"
	assert.Equal(t, long[:30]+"...", ChatTitle(long))
}
