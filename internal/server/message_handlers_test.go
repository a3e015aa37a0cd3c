package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"joinme/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func messageTestApp(s *Server, userID uint) *fiber.App {
	app := fiber.New()
	app.Use(asUser(userID))
	app.Get("/messages", s.GetConversations)
	app.Post("/messages", s.SendMessage)
	app.Get("/messages/:userId", s.GetMessageHistory)
	return app
}

func TestSendMessageValidatesByType(t *testing.T) {
	s, db, _ := newTestServer(t)
	alice := createUser(t, db, "alice@example.com", "Alice", 52.52, 13.405)
	bob := createUser(t, db, "bob@example.com", "Bob", 52.52, 13.405)
	app := messageTestApp(s, alice.ID)

	tests := []struct {
		name           string
		body           fiber.Map
		expectedStatus int
	}{
		{
			name:           "text ok",
			body:           fiber.Map{"receiverId": bob.ID, "content": "hey", "type": "text"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "text without content",
			body:           fiber.Map{"receiverId": bob.ID, "type": "text"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "image requires data URL",
			body:           fiber.Map{"receiverId": bob.ID, "type": "image", "imageUrl": "https://example.com/x.png"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "image ok",
			body:           fiber.Map{"receiverId": bob.ID, "type": "image", "imageUrl": "data:image/png;base64,AAAA"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "location requires coords",
			body:           fiber.Map{"receiverId": bob.ID, "type": "location"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "location ok",
			body:           fiber.Map{"receiverId": bob.ID, "type": "location", "latitude": 52.52, "longitude": 13.405},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "self message",
			body:           fiber.Map{"receiverId": alice.ID, "content": "hi me", "type": "text"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, app, http.MethodPost, "/messages", tt.body)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestSendMessageResponseCarriesSender(t *testing.T) {
	s, db, _ := newTestServer(t)
	alice := createUser(t, db, "alice@example.com", "Alice", 52.52, 13.405)
	bob := createUser(t, db, "bob@example.com", "Bob", 52.52, 13.405)

	app := messageTestApp(s, alice.ID)
	resp := postJSON(t, app, http.MethodPost, "/messages", fiber.Map{
		"receiverId": bob.ID, "content": "hey", "type": "text",
	})
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var msg models.Message
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&msg))
	assert.Equal(t, "Alice", msg.Sender.Name)
}

func TestMessageHistoryNewestFirstWithSince(t *testing.T) {
	s, db, _ := newTestServer(t)
	alice := createUser(t, db, "alice@example.com", "Alice", 52.52, 13.405)
	bob := createUser(t, db, "bob@example.com", "Bob", 52.52, 13.405)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		sender, receiver := alice.ID, bob.ID
		if i%2 == 1 {
			sender, receiver = bob.ID, alice.ID
		}
		require.NoError(t, db.Create(&models.Message{
			SenderID:   sender,
			ReceiverID: receiver,
			Content:    fmt.Sprintf("msg-%d", i),
			Type:       models.MessageTypeText,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}).Error)
	}

	app := messageTestApp(s, alice.ID)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, fmt.Sprintf("/messages/%d", bob.ID), nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Messages []models.Message `json:"messages"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Messages, 3)
	assert.Equal(t, "msg-2", body.Messages[0].Content)
	assert.Equal(t, "msg-0", body.Messages[2].Content)

	// since filters to strictly newer messages.
	since := base.Add(time.Minute).UTC().Format(time.RFC3339Nano)
	resp2, err := app.Test(httptest.NewRequest(http.MethodGet,
		fmt.Sprintf("/messages/%d?since=%s", bob.ID, since), nil))
	require.NoError(t, err)
	defer func() { _ = resp2.Body.Close() }()

	var filtered struct {
		Messages []models.Message `json:"messages"`
	}
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&filtered))
	require.Len(t, filtered.Messages, 1)
	assert.Equal(t, "msg-2", filtered.Messages[0].Content)
}

func TestMessageHistoryMarksIncomingRead(t *testing.T) {
	s, db, _ := newTestServer(t)
	alice := createUser(t, db, "alice@example.com", "Alice", 52.52, 13.405)
	bob := createUser(t, db, "bob@example.com", "Bob", 52.52, 13.405)

	require.NoError(t, db.Create(&models.Message{
		SenderID: bob.ID, ReceiverID: alice.ID, Content: "unread", Type: models.MessageTypeText,
	}).Error)

	app := messageTestApp(s, alice.ID)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, fmt.Sprintf("/messages/%d", bob.ID), nil))
	require.NoError(t, err)
	_ = resp.Body.Close()

	var msg models.Message
	require.NoError(t, db.Where("sender_id = ?", bob.ID).First(&msg).Error)
	assert.True(t, msg.Read)
}

// The conversation list derives one entry per counterpart from the flat
// table, previewing media messages with a label instead of raw content.
func TestGetConversationsAggregation(t *testing.T) {
	s, db, _ := newTestServer(t)
	alice := createUser(t, db, "alice@example.com", "Alice", 52.52, 13.405)
	bob := createUser(t, db, "bob@example.com", "Bob", 52.52, 13.405)
	carol := createUser(t, db, "carol@example.com", "Carol", 52.52, 13.405)

	base := time.Now().Add(-time.Hour)
	mk := func(sender, receiver uint, content string, mtype models.MessageType, offset time.Duration) {
		require.NoError(t, db.Create(&models.Message{
			SenderID: sender, ReceiverID: receiver,
			Content: content, Type: mtype,
			CreatedAt: base.Add(offset),
		}).Error)
	}

	mk(alice.ID, bob.ID, "old text to bob", models.MessageTypeText, 0)
	mk(bob.ID, alice.ID, "", models.MessageTypeImage, 10*time.Minute)
	mk(carol.ID, alice.ID, "", models.MessageTypeLocation, 5*time.Minute)

	app := messageTestApp(s, alice.ID)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/messages", nil))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Conversations []models.Conversation `json:"conversations"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Conversations, 2)

	// Newest conversation first; media messages preview as labels.
	assert.Equal(t, bob.ID, body.Conversations[0].User.ID)
	assert.Equal(t, "📷 Photo", body.Conversations[0].LastMessage)
	assert.Equal(t, carol.ID, body.Conversations[1].User.ID)
	assert.Equal(t, "📍 Location", body.Conversations[1].LastMessage)
}
