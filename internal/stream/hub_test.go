package stream

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shenikar/cad_state_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(t *testing.T) *Hub {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	hub := NewHub(logger)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)
	return hub
}

// dial подключает websocket клиента к хабу с фильтром типов событий
func dial(t *testing.T, hub *Hub, types ...models.EventType) *websocket.Conn {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, hub.ServeWS(w, r, types))
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.Eventually(t, func() bool { return hub.ClientCount() > 0 }, time.Second, 5*time.Millisecond)
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) models.StateEvent {
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var event models.StateEvent
	require.NoError(t, json.Unmarshal(data, &event))
	return event
}

func TestHub_DeliversPublishedEvents(t *testing.T) {
	hub := newTestHub(t)
	conn := dial(t, hub)

	event := models.NewStateEvent(models.EventBookOnChanged)
	event.Callsign = "P24"
	require.NoError(t, hub.Publish(context.Background(), event))

	received := readEvent(t, conn)
	assert.Equal(t, event.ID, received.ID)
	assert.Equal(t, models.EventBookOnChanged, received.Type)
	assert.Equal(t, "P24", received.Callsign)
}

func TestHub_FiltersByEventType(t *testing.T) {
	hub := newTestHub(t)
	conn := dial(t, hub, models.EventCallsignChanged)

	require.NoError(t, hub.Publish(context.Background(), models.NewStateEvent(models.EventSyncChanged)))
	require.NoError(t, hub.Publish(context.Background(), models.NewStateEvent(models.EventCallsignChanged)))

	// Первым приходит только подписанное событие
	received := readEvent(t, conn)
	assert.Equal(t, models.EventCallsignChanged, received.Type)
}

func TestHub_UnregistersClosedClients(t *testing.T) {
	hub := newTestHub(t)
	conn := dial(t, hub)

	require.NoError(t, conn.Close())

	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_PublishWhenQueueFull(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	hub := NewHub(logger) // Run не запущен, очередь никто не читает

	var err error
	for i := 0; i <= cap(hub.broadcast); i++ {
		err = hub.Publish(context.Background(), models.NewStateEvent(models.EventSyncChanged))
	}

	assert.ErrorIs(t, err, ErrHubBusy)
}
