package fcm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// SendURL is the legacy HTTP endpoint, authenticated with a static server key.
const SendURL = "https://fcm.googleapis.com/fcm/send"

// LegacyClient sends push notifications through the legacy FCM HTTP API.
// One Send call is one HTTP request; the endpoint accepts up to 1000
// registration ids per request.
type LegacyClient struct {
	endpoint  string
	serverKey string
	http      *http.Client
}

// NewLegacyClient creates a client for the given server key.
func NewLegacyClient(serverKey string) *LegacyClient {
	return &LegacyClient{
		endpoint:  SendURL,
		serverKey: serverKey,
		http:      &http.Client{},
	}
}

// NewLegacyClientWithEndpoint is used by tests to point at a local server.
func NewLegacyClientWithEndpoint(serverKey, endpoint string) *LegacyClient {
	c := NewLegacyClient(serverKey)
	c.endpoint = endpoint
	return c
}

type legacyNotification struct {
	Title string `json:"title,omitempty"`
	Body  string `json:"body"`
}

type legacyPayload struct {
	RegistrationIDs []string           `json:"registration_ids"`
	Notification    legacyNotification `json:"notification"`
}

// Send delivers one push notification to every token in the batch.
func (c *LegacyClient) Send(ctx context.Context, tokens []string, title, body string) error {
	payload := legacyPayload{
		RegistrationIDs: tokens,
		Notification:    legacyNotification{Title: title, Body: body},
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode FCM payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "key="+c.serverKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send FCM request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("FCM request rejected with status %d", resp.StatusCode)
	}
	return nil
}
