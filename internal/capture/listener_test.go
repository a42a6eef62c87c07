package capture

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	soleus "soleus_remote"
	"soleus_remote/internal/logger"

	"github.com/gorilla/websocket"
)

type fakeRecorder struct {
	mu    sync.Mutex
	codes []string
}

func (r *fakeRecorder) Observe(_ context.Context, pronto string, _ time.Time) (*soleus.CapturedButton, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codes = append(r.codes, pronto)
	return nil, nil
}

func (r *fakeRecorder) observed() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.codes...)
}

func TestListener_FeedsAssembledDumpsToRecorder(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()
		lines := []string{
			"[I][remote.pronto:231]: Received Pronto: data=",
			"[I][remote.pronto:233]: 0000 006D 004A 0000 0153 00AE",
			"[I][remote.pronto:233]: 0014 0181",
		}
		if err := conn.WriteMessage(websocket.TextMessage, []byte(strings.Join(lines, "\n"))); err != nil {
			t.Errorf("write: %v", err)
		}
		// Hold the connection open until the client goes away.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	rec := &fakeRecorder{}
	l := NewListener("ws"+strings.TrimPrefix(srv.URL, "http"), rec, logger.Get("error"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		l.Run(ctx)
		close(done)
	}()

	want := "0000 006D 004A 0000 0153 00AE 0014 0181"
	deadline := time.After(3 * time.Second)
	for {
		if codes := rec.observed(); len(codes) > 0 {
			if codes[0] != want {
				t.Errorf("observed %q, want %q", codes[0], want)
			}
			break
		}
		select {
		case <-deadline:
			t.Fatal("recorder never saw the dump")
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestListener_StopsWhenDialKeepsFailing(t *testing.T) {
	rec := &fakeRecorder{}
	l := NewListener("ws://127.0.0.1:1/ws", rec, logger.Get("error"))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	done := make(chan struct{})
	go func() {
		l.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after context deadline")
	}
	if len(rec.observed()) != 0 {
		t.Errorf("observed codes on a dead endpoint: %v", rec.observed())
	}
}
