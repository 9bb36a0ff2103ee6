package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"plagiarismpro-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const clusterChannel = "plagiarismpro:cluster_events"

// Message is the frame written to every socket.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type clusterPayload struct {
	Origin   string          `json:"origin"`
	DeviceID string          `json:"device_id"`
	Message  json.RawMessage `json:"message"`
}

// Hub tracks the sockets of every device connected to this instance and,
// with redis configured, relays frames to devices connected elsewhere.
type Hub struct {
	id string

	// deviceID -> open sockets (several tabs per device)
	clients map[string][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	rdb    *redis.Client
	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		id:         uuid.NewString(),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[string][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run(ctx context.Context) {
	if h.rdb != nil {
		go h.subscribeToRedis(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.DeviceID] = append(h.clients[client.DeviceID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"device_id": client.DeviceID})

		case client := <-h.unregister:
			h.remove(client)
		}
	}
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := h.clients[client.DeviceID]
	for i, c := range clients {
		if c == client {
			h.clients[client.DeviceID] = append(clients[:i], clients[i+1:]...)
			close(client.Send)
			break
		}
	}
	if len(h.clients[client.DeviceID]) == 0 {
		delete(h.clients, client.DeviceID)
		h.logger.Info("Hub", "Device has no open sockets", map[string]interface{}{"device_id": client.DeviceID})
	}
}

// Send delivers a frame to every socket of the device, here and on other instances.
func (h *Hub) Send(deviceID, msgType string, data interface{}) {
	frame, err := json.Marshal(Message{Type: msgType, Data: data})
	if err != nil {
		h.logger.Error("Hub", "Failed to encode frame", map[string]interface{}{"error": err})
		return
	}

	h.deliverLocal(deviceID, frame)

	if h.rdb != nil {
		payload, _ := json.Marshal(clusterPayload{Origin: h.id, DeviceID: deviceID, Message: frame})
		if err := h.rdb.Publish(context.Background(), clusterChannel, payload).Err(); err != nil {
			h.logger.Warn("Hub", "Redis publish failed", map[string]interface{}{"error": err.Error()})
		}
	}
}

// Connected reports how many sockets this instance holds for the device.
func (h *Hub) Connected(deviceID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[deviceID])
}

func (h *Hub) deliverLocal(deviceID string, frame []byte) {
	var slow []*Client

	h.mu.RLock()
	for _, client := range h.clients[deviceID] {
		select {
		case client.Send <- frame:
		default:
			slow = append(slow, client)
		}
	}
	h.mu.RUnlock()

	for _, client := range slow {
		h.logger.Warn("Hub", "Client Send buffer full, dropping client", map[string]interface{}{"device_id": deviceID})
		go func(c *Client) { h.unregister <- c }(client)
	}
}

// subscribeToRedis relays frames published by other instances.
func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload clusterPayload
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			h.logger.Warn("Hub", "Redis message parse error", map[string]interface{}{"error": err.Error()})
			continue
		}
		if payload.Origin == h.id {
			continue
		}
		h.deliverLocal(payload.DeviceID, payload.Message)
	}
}
