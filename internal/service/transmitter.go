package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const transmitTimeout = 5 * time.Second

// ErrNoDevice reports that no transmit URL is configured; encoding still
// works, only the device push is unavailable.
var ErrNoDevice = errors.New("no transmit device configured")

// HTTPTransmitter drives a remote IR transmitter peripheral over HTTP by
// posting the Pronto code verbatim.
type HTTPTransmitter struct {
	url    string
	client *http.Client
}

func NewHTTPTransmitter(url string) *HTTPTransmitter {
	return &HTTPTransmitter{
		url:    url,
		client: &http.Client{Timeout: transmitTimeout},
	}
}

var _ Transmitter = (*HTTPTransmitter)(nil)

// Transmit posts {"pronto_data": code} to the device endpoint.
func (t *HTTPTransmitter) Transmit(ctx context.Context, pronto string) error {
	if t.url == "" {
		return ErrNoDevice
	}

	body, err := json.Marshal(map[string]string{"pronto_data": pronto})
	if err != nil {
		return fmt.Errorf("marshal transmit payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build transmit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("post to device: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("device rejected transmit: %s", resp.Status)
	}
	return nil
}
