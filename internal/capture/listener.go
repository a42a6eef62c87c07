// Package capture listens to a remote device's log stream and feeds every
// Pronto dump it reassembles into the capture service, which clusters
// repeats into button definitions.
package capture

import (
	"context"
	"strings"
	"time"

	soleus "soleus_remote"
	"soleus_remote/internal/logger"

	"github.com/gorilla/websocket"
)

// Reconnect backoff bounds.
const (
	minBackoff = time.Second
	maxBackoff = 30 * time.Second

	handshakeTimeout = 10 * time.Second
)

// Recorder receives every complete Pronto code seen in the stream.
type Recorder interface {
	Observe(ctx context.Context, pronto string, at time.Time) (*soleus.CapturedButton, error)
}

// Listener maintains a WebSocket subscription to the device's log stream and
// reconnects with backoff until the context is canceled.
type Listener struct {
	url    string
	rec    Recorder
	log    *logger.Logger
	dialer *websocket.Dialer
}

func NewListener(url string, rec Recorder, log *logger.Logger) *Listener {
	return &Listener{
		url:    url,
		rec:    rec,
		log:    log,
		dialer: &websocket.Dialer{HandshakeTimeout: handshakeTimeout},
	}
}

// Run blocks until ctx is canceled. Each connection gets a fresh parser so a
// dump never spans a reconnect.
func (l *Listener) Run(ctx context.Context) {
	backoff := minBackoff
	for {
		connected, err := l.listenOnce(ctx)
		if connected {
			backoff = minBackoff
		}
		if err != nil && ctx.Err() == nil {
			l.log.Warnw("capture_stream_disconnected", "url", l.url, "err", err, "retry_in", backoff)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}
}

// listenOnce dials the stream and consumes it until the connection breaks or
// ctx is canceled.
func (l *Listener) listenOnce(ctx context.Context) (bool, error) {
	conn, _, err := l.dialer.DialContext(ctx, l.url, nil)
	if err != nil {
		return false, err
	}
	defer func() { _ = conn.Close() }()

	l.log.Infow("capture_stream_connected", "url", l.url)

	// Unblock the read loop when the context is canceled.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	parser := &dumpParser{}
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return true, err
		}
		for _, line := range strings.Split(string(msg), "\n") {
			code, ok := parser.Feed(line)
			if !ok {
				continue
			}
			button, err := l.rec.Observe(ctx, code, time.Now())
			if err != nil {
				l.log.Errorw("capture_observe_failed", "err", err)
				continue
			}
			if button != nil {
				l.log.Infow("button_captured",
					"name", button.ButtonName,
					"matches", button.Matches,
					"pronto_prefix", code[:min(len(code), 40)],
				)
			}
		}
	}
}
