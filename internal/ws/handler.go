// Package ws streams playground runs over a WebSocket connection so
// the editor can show progress without blocking the page.
package ws

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/jsrefhub/backend/internal/logging"
	"github.com/jsrefhub/backend/internal/monitoring"
	"github.com/jsrefhub/backend/internal/playground"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS policy is enforced at the HTTP layer
	},
}

// Message is one client request frame.
type Message struct {
	Type      string `json:"type"`
	PageID    string `json:"page_id,omitempty"`
	Code      string `json:"code,omitempty"`
	TimeoutMs int    `json:"timeout_ms,omitempty"`
}

// Handler manages WebSocket connections.
type Handler struct {
	playground *playground.Service
	metrics    *monitoring.Metrics
	log        *logging.Logger
}

// NewHandler creates a WebSocket handler.
func NewHandler(pg *playground.Service, metrics *monitoring.Metrics, log *logging.Logger) *Handler {
	return &Handler{
		playground: pg,
		metrics:    metrics,
		log:        log,
	}
}

// conn wraps a websocket connection with serialized writes, since
// run results arrive from worker goroutines.
type conn struct {
	ws *websocket.Conn
	mu sync.Mutex
}

func (c *conn) send(v interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ws.WriteJSON(v)
}

// HandleConnection upgrades the request and serves frames until the
// client disconnects. Each connection is one playground session, so
// a second "run" while one is in flight is rejected.
func (h *Handler) HandleConnection(c *gin.Context) {
	wsConn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer wsConn.Close()

	h.metrics.WSConnections.Inc()
	defer h.metrics.WSConnections.Dec()

	connection := &conn{ws: wsConn}
	session := h.playground.NewSession()
	reqCtx := c.Request.Context()

	connection.send(gin.H{
		"type":    "system",
		"message": "connected to jsref playground",
	})

	for {
		var msg Message
		if err := wsConn.ReadJSON(&msg); err != nil {
			break
		}
		h.metrics.WSMessages.WithLabelValues(msg.Type).Inc()

		switch msg.Type {
		case "run":
			h.handleRun(reqCtx, connection, session, msg)
		case "ping":
			connection.send(gin.H{"type": "pong"})
		default:
			connection.send(gin.H{"type": "error", "message": "unknown message type"})
		}
	}
}

// handleRun executes on a worker goroutine so the read loop stays
// responsive; the session's busy check rejects overlapping runs.
func (h *Handler) handleRun(ctx context.Context, connection *conn, session *playground.Session, msg Message) {
	if session.State() == playground.StateRunning {
		connection.send(gin.H{"type": "error", "message": playground.ErrBusy.Error()})
		return
	}

	connection.send(gin.H{"type": "running", "page_id": msg.PageID})

	go func() {
		record, err := session.Run(ctx, playground.RunRequest{
			PageID:    msg.PageID,
			Code:      msg.Code,
			TimeoutMs: msg.TimeoutMs,
		})
		if err != nil {
			connection.send(gin.H{"type": "error", "message": err.Error()})
			return
		}
		connection.send(gin.H{"type": "result", "run": record})
	}()
}
