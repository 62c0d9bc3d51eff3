// Package live drives the interactive parts of site pages over a WebSocket.
//
// Each connection owns one event loop. The loop runs every handler of the
// connection: the live search session, the playground instances of the
// greeted page, their timers and every write back to the browser.
package live

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/webstarter/internal/eventloop"
	"github.com/ziadkadry99/webstarter/internal/playground"
	"github.com/ziadkadry99/webstarter/internal/search"
)

// Registry resolves a page to the playground hosts it carries.
type Registry interface {
	Playgrounds(page string) ([]playground.Host, bool)
}

// Options configures every connection of a Hub.
type Options struct {
	Index       []search.Document
	Search      search.SessionOptions
	Editor      playground.EditorOptions
	AckDuration time.Duration
	// WriteTimeout bounds a single write to the browser.
	WriteTimeout time.Duration
}

// Hub serves the live channel.
type Hub struct {
	registry Registry
	opts     Options
}

// maxMessageBytes bounds one client message: a source of MaxSourceBytes
// with every character escaped, plus the envelope.
const maxMessageBytes = 2*playground.MaxSourceBytes + 4<<10

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// New creates a Hub. A nil index means the built-in site index.
func New(registry Registry, opts Options) *Hub {
	if opts.Index == nil {
		opts.Index = search.BuildIndex()
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = 10 * time.Second
	}
	return &Hub{registry: registry, opts: opts}
}

// RegisterRoutes mounts the WebSocket endpoint.
func (h *Hub) RegisterRoutes(r chi.Router) {
	r.Get("/ws/live", h.handleWebSocket)
}

func (h *Hub) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("live: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageBytes)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop := eventloop.New("live", 64)
	c := newConnection(h, conn, loop)
	go loop.Run(ctx)

	c.readLoop()

	loop.Do(c.close)
	loop.Stop()
}
