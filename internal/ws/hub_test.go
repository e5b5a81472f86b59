package ws

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialAndAuth(t *testing.T, url, userID string) *websocket.Conn {
	t.Helper()

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	err = conn.WriteJSON(map[string]string{"type": "auth", "userId": userID})
	require.NoError(t, err)

	var reply map[string]string
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "auth_success", reply["type"])
	assert.Equal(t, userID, reply["userId"])

	return conn
}

func waitForConnections(t *testing.T, hub *Hub, userID string, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for hub.Connections(userID) != want {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d connections for %s, got %d", want, userID, hub.Connections(userID))
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestPublishFanOut(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	first := dialAndAuth(t, url, "user-1")
	second := dialAndAuth(t, url, "user-1")
	other := dialAndAuth(t, url, "user-2")

	hub.Publish("user-1", EventProfileUpdated, map[string]any{"balance": 42.5})

	for _, conn := range []*websocket.Conn{first, second} {
		var msg envelope
		require.NoError(t, conn.ReadJSON(&msg))
		assert.Equal(t, EventProfileUpdated, msg.Type)

		data, ok := msg.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, 42.5, data["balance"])
	}

	// The other user's connection must stay silent.
	other.SetReadDeadline(time.Now().Add(100 * time.Millisecond))
	var msg json.RawMessage
	err := other.ReadJSON(&msg)
	assert.Error(t, err)
}

func TestPublishWithoutSubscribers(t *testing.T) {
	hub := NewHub()

	// Nobody is connected; must not panic or block.
	hub.Publish("ghost", EventMiningProgress, map[string]any{"progress": 50})
}

func TestDisconnectRemovesClient(t *testing.T) {
	hub := NewHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	conn := dialAndAuth(t, url, "user-1")
	waitForConnections(t, hub, "user-1", 1)

	conn.Close()
	waitForConnections(t, hub, "user-1", 0)
}
