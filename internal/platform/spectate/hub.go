package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/matryer/way"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Client is one connected viewer.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub fans frames out to every connected viewer.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{} // closed when Run returns
	stopOnce   sync.Once

	mu       sync.RWMutex
	last     []byte
	byPlayer map[string][]byte

	logger *log.Logger
}

// NewHub creates a new hub. A nil logger writes to stderr.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "spectate",
		})
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 16),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		byPlayer:   make(map[string][]byte),
		logger:     logger,
	}
}

// Run is the hub's event loop. It returns when ctx is done and closes every
// client.
func (h *Hub) Run(ctx context.Context) {
	defer h.stopOnce.Do(func() { close(h.done) })
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.unregisterClient(c)
			}
			return

		case c := <-h.register:
			h.clients[c] = true
			if last := h.Last(); last != nil {
				c.send <- last
			}
			h.logger.Info("viewer joined", "viewers", len(h.clients))

		case c := <-h.unregister:
			h.unregisterClient(c)

		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// Viewer is too slow; drop it.
					h.unregisterClient(c)
				}
			}
		}
	}
}

// Publish queues a frame for every viewer. Frames are dropped while the hub
// is backed up.
func (h *Hub) Publish(f Frame) {
	data, err := json.Marshal(f)
	if err != nil {
		h.logger.Error("cannot marshal frame", "error", err)
		return
	}
	h.mu.Lock()
	h.last = data
	if f.Player != "" {
		h.byPlayer[f.Player] = data
	}
	h.mu.Unlock()

	select {
	case h.broadcast <- data:
	default:
	}
}

// Last returns the most recently published frame as JSON.
func (h *Hub) Last() []byte {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.last
}

// ServeWS upgrades a request to a viewer connection.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	c := &Client{hub: h, conn: conn, send: make(chan []byte, 64)}
	if !h.join(c) {
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

// LastFor returns the most recent frame published by a player.
func (h *Hub) LastFor(player string) []byte {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.byPlayer[player]
}

// ServeFrame writes the latest frame as JSON, optionally for the player
// named in the route.
func (h *Hub) ServeFrame(w http.ResponseWriter, r *http.Request) {
	last := h.Last()
	if player := way.Param(r.Context(), "player"); player != "" {
		last = h.LastFor(player)
	}
	if last == nil {
		http.Error(w, "no frame yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(last)
}

// Handler routes /ws to viewer connections and /frame to the latest frame,
// overall or for one player.
func (h *Hub) Handler() http.Handler {
	router := way.NewRouter()
	router.HandleFunc("GET", "/ws", h.ServeWS)
	router.HandleFunc("GET", "/frame", h.ServeFrame)
	router.HandleFunc("GET", "/frame/:player", h.ServeFrame)
	return router
}

// ListenAndServe runs the hub and an HTTP server on addr until ctx is done.
func (h *Hub) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: h.Handler()}
	go h.Run(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	h.logger.Info("spectator stream listening", "address", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// join hands c to the running hub. It reports false once the hub has stopped.
func (h *Hub) join(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

// leave removes c from the hub, if the hub is still running.
func (h *Hub) leave(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

func (h *Hub) unregisterClient(c *Client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	h.logger.Info("viewer left", "viewers", len(h.clients))
}

// readPump discards viewer input and detects disconnects.
func (c *Client) readPump() {
	defer func() {
		c.hub.leave(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Warn("websocket error", "error", err)
			}
			return
		}
	}
}

// writePump sends frames and pings to the viewer.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
