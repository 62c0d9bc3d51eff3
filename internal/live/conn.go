package live

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/webstarter/internal/eventloop"
	"github.com/ziadkadry99/webstarter/internal/playground"
	"github.com/ziadkadry99/webstarter/internal/search"
)

// Client message types.
const (
	msgHello              = "hello"
	msgSearchInput        = "search.input"
	msgSearchSubmit       = "search.submit"
	msgSearchClose        = "search.close"
	msgPlaygroundInput    = "playground.input"
	msgPlaygroundPaste    = "playground.paste"
	msgPlaygroundReset    = "playground.reset"
	msgPlaygroundSolution = "playground.solution"
)

// Server message types.
const (
	msgSearchResults     = "search.results"
	msgSearchHide        = "search.hide"
	msgPlaygroundPreview = "playground.preview"
	msgPlaygroundEditors = "playground.editors"
	msgPlaygroundLabel   = "playground.label"
	msgError             = "error"
)

// clientMessage is the incoming WebSocket message format.
type clientMessage struct {
	Type  string `json:"type"`
	Page  string `json:"page,omitempty"`
	Query string `json:"query,omitempty"`
	ID    string `json:"id,omitempty"`
	HTML  string `json:"html,omitempty"`
	CSS   string `json:"css,omitempty"`
}

// serverMessage is the outgoing WebSocket message format.
type serverMessage struct {
	Type     string `json:"type"`
	ID       string `json:"id,omitempty"`
	Query    string `json:"query,omitempty"`
	HTML     string `json:"html,omitempty"`
	CSS      string `json:"css,omitempty"`
	Document string `json:"document,omitempty"`
	Label    string `json:"label,omitempty"`
	Content  string `json:"content,omitempty"`
}

// connection is the state of one browser tab. Everything except readLoop
// runs on loop.
type connection struct {
	hub    *Hub
	ws     *websocket.Conn
	loop   *eventloop.Loop
	closed bool

	page    string
	search  *search.Session
	editors map[string]*playground.Editor
}

func newConnection(h *Hub, ws *websocket.Conn, loop *eventloop.Loop) *connection {
	c := &connection{
		hub:     h,
		ws:      ws,
		loop:    loop,
		editors: make(map[string]*playground.Editor),
	}
	c.search = search.NewSession(loop, h.opts.Index, c, h.opts.Search)
	return c
}

// readLoop decodes messages and posts them to the loop until the socket
// closes.
func (c *connection) readLoop() {
	for {
		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			if errors.Is(err, websocket.ErrReadLimit) {
				log.Printf("live: message over %d bytes, closing", maxMessageBytes)
			} else if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("live: websocket read: %v", err)
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.loop.Post(func() { c.sendError("invalid message format") })
			continue
		}
		if !c.loop.Post(func() { c.dispatch(msg) }) {
			return
		}
	}
}

func (c *connection) dispatch(msg clientMessage) {
	switch msg.Type {
	case msgHello:
		c.greet(msg.Page)
	case msgSearchInput:
		c.search.Input(msg.Query)
	case msgSearchSubmit:
		c.search.Submit(msg.Query)
	case msgSearchClose:
		c.search.Close()
	case msgPlaygroundInput:
		if e := c.editor(msg); e != nil {
			e.Input(msg.HTML, msg.CSS)
		}
	case msgPlaygroundPaste:
		if e := c.editor(msg); e != nil {
			e.Paste(msg.HTML, msg.CSS)
		}
	case msgPlaygroundReset:
		if e := c.editor(msg); e != nil {
			e.Reset()
		}
	case msgPlaygroundSolution:
		if e := c.editor(msg); e != nil {
			e.RevealSolution()
		}
	default:
		c.sendError("unknown message type: " + msg.Type)
	}
}

// greet builds the playground instances of page, replacing those of any
// page greeted before on this connection.
func (c *connection) greet(page string) {
	c.closeEditors()
	c.page = page

	hosts, ok := c.hub.registry.Playgrounds(page)
	if !ok {
		log.Printf("live: hello for unknown page %q", page)
		return
	}
	for _, h := range hosts {
		surface := &playgroundSurface{conn: c, id: h.ID}
		inst := playground.New(h.ID, h.Attributes, surface, playground.Options{
			Scheduler:   c.loop,
			AckDuration: c.hub.opts.AckDuration,
		})
		c.editors[h.ID] = playground.NewEditor(c.loop, inst, c.hub.opts.Editor)
	}
}

// editor returns the editor msg targets, or nil when there is none.
func (c *connection) editor(msg clientMessage) *playground.Editor {
	e, ok := c.editors[msg.ID]
	if !ok {
		log.Printf("live: %s for missing playground %q on page %q", msg.Type, msg.ID, c.page)
		return nil
	}
	return e
}

func (c *connection) closeEditors() {
	for id, e := range c.editors {
		e.Close()
		delete(c.editors, id)
	}
}

func (c *connection) close() {
	c.closeEditors()
	c.closed = true
}

func (c *connection) send(msg serverMessage) error {
	if c.closed {
		return playground.ErrSurfaceDetached
	}
	c.ws.SetWriteDeadline(time.Now().Add(c.hub.opts.WriteTimeout))
	if err := c.ws.WriteJSON(msg); err != nil {
		return fmt.Errorf("writing %s: %w", msg.Type, err)
	}
	return nil
}

func (c *connection) sendLogged(msg serverMessage) {
	if err := c.send(msg); err != nil {
		log.Printf("live: websocket write: %v", err)
	}
}

func (c *connection) sendError(message string) {
	c.sendLogged(serverMessage{Type: msgError, Content: message})
}

// ShowResults implements search.Panel.
func (c *connection) ShowResults(fragment template.HTML) {
	c.sendLogged(serverMessage{Type: msgSearchResults, HTML: string(fragment)})
}

// HideResults implements search.Panel.
func (c *connection) HideResults() {
	c.sendLogged(serverMessage{Type: msgSearchHide})
}

// SetInput implements search.Panel.
func (c *connection) SetInput(value string) {
	c.sendLogged(serverMessage{Type: msgSearchInput, Query: value})
}

// playgroundSurface routes one instance's output to the browser.
type playgroundSurface struct {
	conn *connection
	id   string
}

func (s *playgroundSurface) ShowEditors(markup, style string) {
	s.conn.sendLogged(serverMessage{Type: msgPlaygroundEditors, ID: s.id, HTML: markup, CSS: style})
}

func (s *playgroundSurface) WriteDocument(document string) error {
	return s.conn.send(serverMessage{Type: msgPlaygroundPreview, ID: s.id, Document: document})
}

func (s *playgroundSurface) SetSolutionLabel(label string) {
	s.conn.sendLogged(serverMessage{Type: msgPlaygroundLabel, ID: s.id, Label: label})
}
