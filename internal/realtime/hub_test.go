package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkhub-net/linkhub/internal/entities"
	"github.com/linkhub-net/linkhub/internal/middleware"
	"github.com/linkhub-net/linkhub/internal/storage"
)

func dial(t *testing.T, hub *Hub, userID string) *websocket.Conn {
	h := hub.Handler()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h(w, r.WithContext(middleware.WithUserID(r.Context(), userID)))
	}))
	t.Cleanup(srv.Close)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return conn
}

func TestHub_Notify(t *testing.T) {
	hub := NewHub()

	recipient := dial(t, hub, "recipient")
	bystander := dial(t, hub, "bystander")

	require.Eventually(t, func() bool {
		return hub.ConnectionsCount() == 2
	}, time.Second, 10*time.Millisecond)

	hub.Notify(&storage.Notification{
		Notification: entities.Notification{
			ID:          "n1",
			RecipientID: "recipient",
			SenderID:    "sender",
			Type:        entities.LikeNotification,
			Title:       "New like",
			Content:     "Jane liked your post",
			Data:        map[string]string{"post_id": "p1"},
			CreatedAt:   time.Unix(100, 0),
		},
		Sender: entities.Profile{ID: "sender", Name: "Jane"},
	})

	recipient.SetReadDeadline(time.Now().Add(time.Second)) // nolint:errcheck
	_, payload, err := recipient.ReadMessage()
	require.NoError(t, err)

	var got struct {
		ID        string            `json:"id"`
		Type      string            `json:"type"`
		Title     string            `json:"title"`
		Content   string            `json:"content"`
		Data      map[string]string `json:"data"`
		Sender    string            `json:"sender_name"`
		CreatedAt int64             `json:"created_at"`
	}
	require.NoError(t, json.Unmarshal(payload, &got))

	assert.Equal(t, "n1", got.ID)
	assert.Equal(t, "like", got.Type)
	assert.Equal(t, "Jane liked your post", got.Content)
	assert.Equal(t, "p1", got.Data["post_id"])
	assert.Equal(t, "Jane", got.Sender)
	assert.EqualValues(t, 100, got.CreatedAt)

	// the bystander must not see somebody else's notification
	bystander.SetReadDeadline(time.Now().Add(100 * time.Millisecond)) // nolint:errcheck
	_, _, err = bystander.ReadMessage()
	require.Error(t, err)
}

func TestHub_NotifyNobodyListening(t *testing.T) {
	hub := NewHub()

	// must not block or panic without subscribers
	hub.Notify(&storage.Notification{
		Notification: entities.Notification{ID: "n1", RecipientID: "nobody"},
	})

	assert.Zero(t, hub.ConnectionsCount())
}

func TestHub_HandlerUnauthorized(t *testing.T) {
	hub := NewHub()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/v1/ws", nil)

	hub.Handler()(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHub_RunClosesConnections(t *testing.T) {
	hub := NewHub()

	conn := dial(t, hub, "user")
	require.Eventually(t, func() bool {
		return hub.ConnectionsCount() == 1
	}, time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- hub.Run(ctx) }()

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)

	assert.Zero(t, hub.ConnectionsCount())

	conn.SetReadDeadline(time.Now().Add(time.Second)) // nolint:errcheck
	_, _, err := conn.ReadMessage()
	require.Error(t, err)
}
