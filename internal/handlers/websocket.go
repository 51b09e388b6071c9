package handlers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/gymscout/internal/common"
	"github.com/ternarybob/gymscout/internal/interfaces"
	"github.com/ternarybob/gymscout/internal/models"
	"github.com/ternarybob/gymscout/internal/selection"
	"golang.org/x/time/rate"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local development
	},
}

// WSMessage is the wire envelope for every WebSocket event.
type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// WebSocketHandler pushes map and selection events to connected UI clients.
// It implements interfaces.MapSurface: camera commands are broadcast as
// camera_fly_to events.
type WebSocketHandler struct {
	logger      arbor.ILogger
	clients     map[*websocket.Conn]bool
	clientMutex map[*websocket.Conn]*sync.Mutex
	mu          sync.RWMutex

	// Rate limiter for gyms_updated events; scheduled rediscovery can fire
	// in bursts. Nil = no throttling.
	gymsUpdatedThrottler *rate.Limiter

	// Unique ID generated on startup - clients use to detect server restart
	serverInstanceID string
}

func NewWebSocketHandler(logger arbor.ILogger, config *common.WebSocketConfig) *WebSocketHandler {
	h := &WebSocketHandler{
		logger:           logger,
		clients:          make(map[*websocket.Conn]bool),
		clientMutex:      make(map[*websocket.Conn]*sync.Mutex),
		serverInstanceID: uuid.New().String(),
	}

	logger.Info().Str("server_instance_id", h.serverInstanceID).Msg("WebSocket handler initialized with server instance ID")

	if config != nil && config.GymsUpdatedThrottle > 0 {
		h.gymsUpdatedThrottler = rate.NewLimiter(rate.Every(config.GymsUpdatedThrottle), 1)
		logger.Debug().
			Str("interval", config.GymsUpdatedThrottle.String()).
			Msg("Throttler initialized for gyms_updated events")
	}

	return h
}

// HandleWebSocket handles WebSocket connections
func (h *WebSocketHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to upgrade WebSocket connection")
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.clientMutex[conn] = &sync.Mutex{}
	clientCount := len(h.clients)
	h.mu.Unlock()

	h.logger.Debug().Msgf("WebSocket client connected (total: %d)", clientCount)

	h.sendHello(conn)

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		delete(h.clientMutex, conn)
		remaining := len(h.clients)
		h.mu.Unlock()

		conn.Close()
		h.logger.Debug().Msgf("WebSocket client disconnected (remaining: %d)", remaining)
	}()

	// Read messages from client (keep connection alive)
	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warn().Err(err).Msg("WebSocket error")
			}
			break
		}
	}
}

// sendHello sends the server instance id to a newly connected client so it
// can reset local state after a server restart.
func (h *WebSocketHandler) sendHello(conn *websocket.Conn) {
	msg := WSMessage{
		Type: "hello",
		Payload: map[string]string{
			"serverInstanceId": h.serverInstanceID,
		},
	}

	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to marshal hello message")
		return
	}

	h.mu.RLock()
	mutex := h.clientMutex[conn]
	h.mu.RUnlock()

	if mutex != nil {
		mutex.Lock()
		err := conn.WriteMessage(websocket.TextMessage, data)
		mutex.Unlock()

		if err != nil {
			h.logger.Warn().Err(err).Msg("Failed to send hello")
		}
	}
}

// broadcast sends an event to all connected clients.
func (h *WebSocketHandler) broadcast(eventType string, payload interface{}) {
	msg := WSMessage{
		Type:    eventType,
		Payload: payload,
	}

	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error().Err(err).Str("event_type", eventType).Msg("Failed to marshal WebSocket message")
		return
	}

	h.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(h.clients))
	mutexes := make([]*sync.Mutex, 0, len(h.clients))
	for conn := range h.clients {
		clients = append(clients, conn)
		mutexes = append(mutexes, h.clientMutex[conn])
	}
	h.mu.RUnlock()

	for i, conn := range clients {
		mutex := mutexes[i]
		mutex.Lock()
		err := conn.WriteMessage(websocket.TextMessage, data)
		mutex.Unlock()

		if err != nil {
			h.logger.Warn().Err(err).Str("event_type", eventType).Msg("Failed to send event to client")
		}
	}
}

// PushCameraCommand broadcasts a camera movement as a camera_fly_to event.
// Implements interfaces.MapSurface.
func (h *WebSocketHandler) PushCameraCommand(cmd interfaces.CameraCommand) error {
	h.broadcast("camera_fly_to", cmd)
	return nil
}

// BroadcastSelectionChanged pushes the new selection state to all clients.
func (h *WebSocketHandler) BroadcastSelectionChanged(state selection.State) {
	h.broadcast("selection_changed", state)
}

// BroadcastGymsUpdated pushes a fresh reconciled gym list to all clients.
func (h *WebSocketHandler) BroadcastGymsUpdated(gyms []models.Gym) {
	if h.gymsUpdatedThrottler != nil && !h.gymsUpdatedThrottler.Allow() {
		return
	}

	h.broadcast("gyms_updated", map[string]interface{}{
		"gyms":  gyms,
		"count": len(gyms),
	})
}
