package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shenikar/cad_state_system/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 4 * 1024
	sendBufferSize = 64
)

var (
	ErrHubBusy    = errors.New("stream: broadcast queue is full")
	ErrHubStopped = errors.New("stream: hub is stopped")
)

var connectedClients = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "cad_stream_clients",
	Help: "Number of connected event stream clients",
})

// Client - подписчик потока событий
type Client struct {
	ID    string
	types map[models.EventType]bool
	conn  *websocket.Conn
	send  chan []byte
	hub   *Hub

	closeOnce sync.Once
}

// Hub рассылает события состояния подключенным websocket клиентам
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan outbound
	done       chan struct{}
	logger     *logrus.Logger
	upgrader   websocket.Upgrader
	mu         sync.RWMutex
}

type outbound struct {
	eventType models.EventType
	payload   []byte
}

func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan outbound, 256),
		done:       make(chan struct{}),
		logger:     logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Run обслуживает регистрацию клиентов и рассылку до отмены контекста
func (h *Hub) Run(ctx context.Context) {
	h.logger.Info("Starting event stream hub...")
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			connectedClients.Set(0)
			h.logger.Info("Stopping event stream hub.")
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			connectedClients.Set(float64(len(h.clients)))
			h.mu.Unlock()
			h.logger.WithField("client_id", client.ID).Info("Stream client connected")

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			connectedClients.Set(float64(len(h.clients)))
			h.mu.Unlock()
			h.logger.WithField("client_id", client.ID).Info("Stream client disconnected")

		case msg := <-h.broadcast:
			h.mu.Lock()
			for client := range h.clients {
				if !client.wants(msg.eventType) {
					continue
				}
				select {
				case client.send <- msg.payload:
				default:
					// Медленный клиент отключается
					delete(h.clients, client)
					close(client.send)
					h.logger.WithField("client_id", client.ID).Warn("Stream client buffer full, disconnecting")
				}
			}
			connectedClients.Set(float64(len(h.clients)))
			h.mu.Unlock()
		}
	}
}

// Publish ставит событие в очередь рассылки без блокировки
func (h *Hub) Publish(ctx context.Context, event models.StateEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("stream: failed to marshal event: %w", err)
	}
	select {
	case h.broadcast <- outbound{eventType: event.Type, payload: payload}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrHubBusy
	}
}

// ClientCount возвращает число подключенных клиентов
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// ServeWS переводит запрос в websocket и подписывает клиента на события types.
// Пустой список означает все события.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, types []models.EventType) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return fmt.Errorf("stream: failed to upgrade connection: %w", err)
	}

	client := &Client{
		ID:    uuid.NewString(),
		types: make(map[models.EventType]bool, len(types)),
		conn:  conn,
		send:  make(chan []byte, sendBufferSize),
		hub:   h,
	}
	for _, t := range types {
		client.types[t] = true
	}

	select {
	case h.register <- client:
	case <-h.done:
		_ = conn.Close()
		return ErrHubStopped
	case <-r.Context().Done():
		_ = conn.Close()
		return r.Context().Err()
	}

	go client.writePump()
	go client.readPump()
	return nil
}

func (c *Client) wants(eventType models.EventType) bool {
	return len(c.types) == 0 || c.types[eventType]
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		go func() {
			select {
			case c.hub.unregister <- c:
			case <-c.hub.done:
			}
		}()
		_ = c.conn.Close()
	})
}

// writePump отправляет события клиенту и поддерживает соединение пингами
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump читает только служебные кадры: поток однонаправленный
func (c *Client) readPump() {
	defer c.close()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.WithError(err).WithField("client_id", c.ID).Warn("Stream client read error")
			}
			return
		}
	}
}
