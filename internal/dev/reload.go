package dev

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ReloadPath is where browsers connect for reload notifications.
const ReloadPath = "/_markup/reload"

// writeWait bounds a single notification write to one browser.
const writeWait = 2 * time.Second

// MessageType tells the browser what to do.
type MessageType string

const (
	MessageReload MessageType = "reload" // reload the page
	MessageCSS    MessageType = "css"    // refetch stylesheets
	MessageError  MessageType = "error"  // show the error overlay
	MessageClear  MessageType = "clear"  // hide the error overlay
)

// Message is one notification as sent over the socket.
type Message struct {
	Type  MessageType `json:"type"`
	Error string      `json:"error,omitempty"`
	File  string      `json:"file,omitempty"`
}

// browser is one connected page. gorilla connections allow a single
// concurrent writer, so sends are serialized per browser.
type browser struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (b *browser) send(data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	_ = b.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return b.conn.WriteMessage(websocket.TextMessage, data)
}

// ReloadServer pushes reload notifications to every connected page.
// The zero value is not usable; use NewReloadServer.
type ReloadServer struct {
	mu       sync.Mutex
	browsers map[*browser]struct{}
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewReloadServer creates a reload server. logger may be nil.
func NewReloadServer(logger *slog.Logger) *ReloadServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReloadServer{
		browsers: make(map[*browser]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  512,
			WriteBufferSize: 1024,
			// Only mounted by serve --dev.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}

// ServeHTTP upgrades the request and holds the connection until the
// browser goes away.
func (s *ReloadServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug("reload upgrade failed", "error", err)
		return
	}
	b := &browser{conn: conn}
	s.add(b)
	s.logger.Debug("reload client connected", "remote", r.RemoteAddr)

	// Browsers never send; reading only detects the close.
	for {
		if _, _, err := conn.NextReader(); err != nil {
			break
		}
	}
	s.remove(b)
}

func (s *ReloadServer) add(b *browser) {
	s.mu.Lock()
	s.browsers[b] = struct{}{}
	s.mu.Unlock()
}

func (s *ReloadServer) remove(b *browser) {
	s.mu.Lock()
	_, ok := s.browsers[b]
	delete(s.browsers, b)
	s.mu.Unlock()
	if ok {
		_ = b.conn.Close()
	}
}

// NotifyReload asks every page to reload.
func (s *ReloadServer) NotifyReload() { s.broadcast(Message{Type: MessageReload}) }

// NotifyCSS asks every page to refetch the stylesheet named file, or
// all stylesheets when no link matches.
func (s *ReloadServer) NotifyCSS(file string) { s.broadcast(Message{Type: MessageCSS, File: file}) }

// NotifyError shows msg in an overlay on every page.
func (s *ReloadServer) NotifyError(msg string) { s.broadcast(Message{Type: MessageError, Error: msg}) }

// ClearError hides the overlay.
func (s *ReloadServer) ClearError() { s.broadcast(Message{Type: MessageClear}) }

func (s *ReloadServer) broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	for _, b := range s.snapshot() {
		if err := b.send(data); err != nil {
			s.logger.Debug("reload client dropped", "error", err)
			s.remove(b)
		}
	}
}

func (s *ReloadServer) snapshot() []*browser {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*browser, 0, len(s.browsers))
	for b := range s.browsers {
		out = append(out, b)
	}
	return out
}

// ClientCount returns the number of connected pages.
func (s *ReloadServer) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.browsers)
}

// Close disconnects every page.
func (s *ReloadServer) Close() {
	for _, b := range s.snapshot() {
		s.remove(b)
	}
}

// ClientScript is the inline JavaScript that connects a page to the
// reload server. It reconnects with backoff after the server restarts.
const ClientScript = `(function () {
  var delay = 500, overlayID = "markup-error-overlay";
  function base(p) { return p.split("/").pop().split("?")[0]; }
  function hide() { var o = document.getElementById(overlayID); if (o) o.remove(); }
  function show(text) {
    hide();
    var o = document.createElement("pre");
    o.id = overlayID;
    o.style.cssText = "position:fixed;inset:0;margin:0;padding:24px;z-index:2147483647;overflow:auto;white-space:pre-wrap;background:#1e1e1e;color:#f88;font:13px monospace";
    o.textContent = text;
    document.body.appendChild(o);
  }
  function restyle(file) {
    var links = Array.prototype.slice.call(document.querySelectorAll("link[rel=stylesheet]"));
    var hit = links.filter(function (l) { return file && base(l.href) === base(file); });
    (hit.length ? hit : links).forEach(function (l) {
      var u = new URL(l.href);
      u.searchParams.set("_t", Date.now());
      l.href = u.href;
    });
  }
  function connect() {
    var ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "` + ReloadPath + `");
    ws.onopen = function () { delay = 500; };
    ws.onmessage = function (e) {
      var m;
      try { m = JSON.parse(e.data); } catch (_) { return; }
      if (m.type === "reload") location.reload();
      else if (m.type === "css") restyle(m.file);
      else if (m.type === "error") show(m.error);
      else if (m.type === "clear") hide();
    };
    ws.onclose = function () { setTimeout(connect, delay); delay = Math.min(delay * 2, 10000); };
  }
  if (document.readyState === "loading") document.addEventListener("DOMContentLoaded", connect);
  else connect();
})();
`
