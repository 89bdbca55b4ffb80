package presenter

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/zishang520/socket.io/v2/socket"
)

// Hub broadcasts the presenter's current step to every connected follower.
type Hub struct {
	io     *socket.Server
	logger *slog.Logger

	mu   sync.Mutex
	last *Frame
}

// NewHub creates a socket.io server. Mount Handler under "/socket.io/".
func NewHub(logger *slog.Logger) *Hub {
	h := &Hub{
		io:     socket.NewServer(nil, nil),
		logger: logger.With("component", "presenter"),
	}
	h.io.On(EventConnection, func(clients ...any) {
		client, ok := clients[0].(*socket.Socket)
		if !ok {
			return
		}
		h.logger.Debug("Follower connected.", "sid", client.Id())
		if f, ok := h.Last(); ok {
			client.Emit(EventStep, f)
		}
	})
	return h
}

// Handler returns the HTTP handler serving the socket.io endpoint.
func (h *Hub) Handler() http.Handler {
	return h.io.ServeHandler(nil)
}

// Publish records f as the current step and broadcasts it.
func (h *Hub) Publish(f Frame) {
	h.mu.Lock()
	if h.last != nil && *h.last == f {
		h.mu.Unlock()
		return
	}
	h.last = &f
	h.mu.Unlock()

	h.logger.Debug("Broadcasting step.", "index", f.Index, "title", f.Title)
	h.io.Emit(EventStep, f)
}

// Last returns the most recently published frame.
func (h *Hub) Last() (Frame, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.last == nil {
		return Frame{}, false
	}
	return *h.last, true
}

// Close disconnects all followers.
func (h *Hub) Close() {
	h.io.Close(nil)
}
