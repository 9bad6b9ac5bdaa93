package dev

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/markup/internal/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// touch moves the modification time forward so the poll sees a change
// regardless of filesystem timestamp resolution.
func touch(t *testing.T, path string) {
	t.Helper()
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatal(err)
	}
}

func collect(w *Watcher) *[]Change {
	var got []Change
	w.OnChange(func(c Change) { got = append(got, c) })
	return &got
}

func TestWatcher_Modified(t *testing.T) {
	dir := t.TempDir()
	page := filepath.Join(dir, "index.json")
	writeFile(t, page, `["p", "hi"]`)

	w := NewWatcher(WatcherConfig{Paths: []string{dir}})
	got := collect(w)
	w.scanInitial()

	w.checkForChanges()
	if len(*got) != 0 {
		t.Fatalf("unchanged tree reported %v", *got)
	}

	touch(t, page)
	w.checkForChanges()
	if len(*got) != 1 {
		t.Fatalf("got %d changes, want 1", len(*got))
	}
	c := (*got)[0]
	if c.Path != page || c.Type != ChangePage || c.Removed {
		t.Errorf("change = %+v", c)
	}
}

func TestWatcher_NewAndRemoved(t *testing.T) {
	dir := t.TempDir()
	css := filepath.Join(dir, "site.css")
	writeFile(t, css, "body{}")

	w := NewWatcher(WatcherConfig{Paths: []string{dir}})
	got := collect(w)
	w.scanInitial()

	writeFile(t, filepath.Join(dir, "about.json"), `["p", "about"]`)
	if err := os.Remove(css); err != nil {
		t.Fatal(err)
	}
	w.checkForChanges()

	if len(*got) != 2 {
		t.Fatalf("got %d changes, want 2: %v", len(*got), *got)
	}
	byType := map[ChangeType]Change{}
	for _, c := range *got {
		byType[c.Type] = c
	}
	if c := byType[ChangePage]; c.Removed {
		t.Errorf("new page reported as removed: %+v", c)
	}
	if c := byType[ChangeCSS]; !c.Removed || c.Path != css {
		t.Errorf("css change = %+v", c)
	}
}

func TestWatcher_OneChangePerType(t *testing.T) {
	dir := t.TempDir()
	w := NewWatcher(WatcherConfig{Paths: []string{dir}})
	got := collect(w)
	w.scanInitial()

	for _, name := range []string{"a.json", "b.json", "c.json"} {
		writeFile(t, filepath.Join(dir, name), "[]")
	}
	w.checkForChanges()
	if len(*got) != 1 {
		t.Errorf("got %d changes, want 1", len(*got))
	}
}

func TestWatcher_Ignore(t *testing.T) {
	w := NewWatcher(WatcherConfig{
		Paths:  []string{"/srv/site"},
		Ignore: []string{".git", "*.swp", "pages/drafts"},
	})

	tests := []struct {
		path   string
		ignore bool
	}{
		{"/srv/site/.git/HEAD", true},
		{"/srv/site/pages/index.json.swp", true},
		{"/srv/site/pages/drafts/x.json", true},
		{"/srv/site/pages/index.json", false},
		{"/srv/site/drafts/x.json", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := w.shouldIgnore("/srv/site", tt.path); got != tt.ignore {
				t.Errorf("shouldIgnore(%q) = %v, want %v", tt.path, got, tt.ignore)
			}
		})
	}
}

func TestWatcher_IgnoreIsRelativeToRoot(t *testing.T) {
	w := NewWatcher(WatcherConfig{Paths: []string{"/tmp/site"}})
	if w.shouldIgnore("/tmp/site", "/tmp/site/index.json") {
		t.Error("segments above the watched root must not match")
	}
	if !w.shouldIgnore("/tmp/site", "/tmp/site/tmp/index.json") {
		t.Error("tmp below the root should be ignored")
	}
}

func TestWatcher_IsRunning(t *testing.T) {
	w := NewWatcher(WatcherConfig{Paths: []string{t.TempDir()}, Interval: 10 * time.Millisecond})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	deadline := time.Now().Add(time.Second)
	for !w.IsRunning() {
		if time.Now().After(deadline) {
			t.Fatal("watcher did not start")
		}
		time.Sleep(5 * time.Millisecond)
	}

	w.Stop()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Start() = %v, want nil after Stop", err)
		}
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
	if w.IsRunning() {
		t.Error("IsRunning() = true after Stop")
	}
}

func TestClassifyChange(t *testing.T) {
	tests := []struct {
		path string
		want ChangeType
	}{
		{"pages/index.json", ChangePage},
		{"public/site.CSS", ChangeCSS},
		{"public/logo.png", ChangeAsset},
		{"markup.json", ChangeConfig},
	}
	for _, tt := range tests {
		if got := classifyChange(tt.path); got != tt.want {
			t.Errorf("classifyChange(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestCollectWatchPaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, config.ConfigFileName), `{"dev": {"watch": ["pages", "styles"]}}`)
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatal(err)
	}

	got := CollectWatchPaths(cfg)
	want := []string{
		filepath.Join(dir, "pages"),
		filepath.Join(dir, "public"),
		filepath.Join(dir, config.ConfigFileName),
		filepath.Join(dir, "styles"),
	}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("CollectWatchPaths() = %v, want %v", got, want)
	}
}

func TestMessage_JSON(t *testing.T) {
	data, err := json.Marshal(Message{Type: MessageCSS, File: "site.css"})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"type":"css","file":"site.css"}` {
		t.Errorf("got %s", data)
	}
}

func dialReload(t *testing.T, s *ReloadServer) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(s)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + ReloadPath
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { conn.Close() })

	deadline := time.Now().Add(time.Second)
	for s.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(time.Second))
	var msg Message
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatal(err)
	}
	return msg
}

func TestReloadServer_Broadcast(t *testing.T) {
	s := NewReloadServer(nil)
	conn := dialReload(t, s)

	s.NotifyError("boom")
	if msg := readMessage(t, conn); msg.Type != MessageError || msg.Error != "boom" {
		t.Errorf("got %+v", msg)
	}
	s.NotifyReload()
	if msg := readMessage(t, conn); msg.Type != MessageReload {
		t.Errorf("got %+v", msg)
	}

	s.Close()
	if n := s.ClientCount(); n != 0 {
		t.Errorf("ClientCount() = %d after Close", n)
	}
}

func TestReloadServer_ConcurrentNotify(t *testing.T) {
	s := NewReloadServer(nil)
	conn := dialReload(t, s)

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.NotifyCSS("site.css")
		}()
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		if msg := readMessage(t, conn); msg.Type != MessageCSS || msg.File != "site.css" {
			t.Fatalf("message %d: got %+v", i, msg)
		}
	}
	if c := s.ClientCount(); c != 1 {
		t.Errorf("ClientCount() = %d, want 1", c)
	}
}

func TestReloadServer_DropsClosedClient(t *testing.T) {
	s := NewReloadServer(nil)
	conn := dialReload(t, s)
	conn.Close()

	deadline := time.Now().Add(time.Second)
	for s.ClientCount() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("closed client still registered")
		}
		s.NotifyReload()
		time.Sleep(5 * time.Millisecond)
	}
}

func TestReloader_Page(t *testing.T) {
	dir := t.TempDir()
	page := filepath.Join(dir, "index.json")
	writeFile(t, page, `["p", "hi"]`)

	w := NewWatcher(WatcherConfig{Paths: []string{dir}})
	s := NewReloadServer(nil)
	NewReloader(w, s, nil)
	conn := dialReload(t, s)
	w.scanInitial()

	writeFile(t, page, `["p", {"class": 1}`)
	touch(t, page)
	w.checkForChanges()
	msg := readMessage(t, conn)
	if msg.Type != MessageError || !strings.Contains(msg.Error, "E110") {
		t.Errorf("broken page: got %+v", msg)
	}

	writeFile(t, page, `["p", "fixed"]`)
	touch(t, page)
	w.checkForChanges()
	if msg := readMessage(t, conn); msg.Type != MessageClear {
		t.Errorf("fixed page: got %+v, want clear", msg)
	}
	if msg := readMessage(t, conn); msg.Type != MessageReload {
		t.Errorf("fixed page: got %+v, want reload", msg)
	}
}

func TestReloader_CSSAndConfig(t *testing.T) {
	dir := t.TempDir()
	w := NewWatcher(WatcherConfig{Paths: []string{dir}})
	s := NewReloadServer(nil)
	rl := NewReloader(w, s, nil)
	configChanged := false
	rl.OnConfigChange = func() { configChanged = true }
	conn := dialReload(t, s)
	w.scanInitial()

	writeFile(t, filepath.Join(dir, "site.css"), "p{}")
	w.checkForChanges()
	if msg := readMessage(t, conn); msg.Type != MessageCSS || filepath.Base(msg.File) != "site.css" {
		t.Errorf("css: got %+v", msg)
	}

	writeFile(t, filepath.Join(dir, config.ConfigFileName), "{}")
	w.checkForChanges()
	if msg := readMessage(t, conn); msg.Type != MessageReload {
		t.Errorf("config: got %+v", msg)
	}
	if !configChanged {
		t.Error("OnConfigChange not called")
	}
}

func TestClientScript(t *testing.T) {
	for _, want := range []string{ReloadPath, "location.reload()", "markup-error-overlay", "restyle(m.file)"} {
		if !strings.Contains(ClientScript, want) {
			t.Errorf("ClientScript missing %q", want)
		}
	}
}
