package fcm

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// multicastLimit is the Admin SDK's hard cap on tokens per multicast message.
const multicastLimit = 500

// Client sends push notifications through the Firebase Admin SDK.
type Client struct {
	messagingClient *messaging.Client
}

// NewClient creates a new FCM client using the provided credentials file.
func NewClient(credentialsFile string) (*Client, error) {
	ctx := context.Background()

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	messagingClient, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	log.Println("[FCM] Client initialized successfully")
	return &Client{
		messagingClient: messagingClient,
	}, nil
}

// Send delivers one push notification to every token in the batch. The SDK
// refuses multicasts above 500 tokens, so larger batches are split here.
func (c *Client) Send(ctx context.Context, tokens []string, title, body string) error {
	for len(tokens) > 0 {
		n := len(tokens)
		if n > multicastLimit {
			n = multicastLimit
		}

		message := &messaging.MulticastMessage{
			Tokens: tokens[:n],
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
		}

		response, err := c.messagingClient.SendEachForMulticast(ctx, message)
		if err != nil {
			return fmt.Errorf("failed to send FCM multicast message: %w", err)
		}

		log.Printf("[FCM] Multicast sent: %d success, %d failures", response.SuccessCount, response.FailureCount)
		for i, resp := range response.Responses {
			if !resp.Success {
				log.Printf("[FCM] Failed to send to token %d of batch: %v", i, resp.Error)
			}
		}

		tokens = tokens[n:]
	}
	return nil
}
