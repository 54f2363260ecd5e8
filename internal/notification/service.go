package notification

import (
	"context"
	"fmt"
	"log"

	authrepo "edclass-backend/internal/auth/repository"
)

// MaxTokensPerRequest is the upstream limit on device tokens per push request.
const MaxTokensPerRequest = 1000

// Gateway dispatches one push request for one batch of device tokens.
type Gateway interface {
	Send(ctx context.Context, tokens []string, title, body string) error
}

// Service expands recipient emails to device tokens and fans push
// notifications out to the gateway in bounded batches. Delivery is best
// effort: per-batch failures are logged, never surfaced.
type Service struct {
	userRepo   authrepo.UserRepository
	deviceRepo authrepo.DeviceTokenRepository
	gateway    Gateway
}

// NewService creates the fan-out service. A nil gateway disables push
// delivery; Notify then resolves nothing and returns immediately.
func NewService(userRepo authrepo.UserRepository, deviceRepo authrepo.DeviceTokenRepository, gateway Gateway) *Service {
	return &Service{
		userRepo:   userRepo,
		deviceRepo: deviceRepo,
		gateway:    gateway,
	}
}

// Notify resolves emails to users, flattens their device tokens and sends
// one push request per batch of at most MaxTokensPerRequest tokens, in the
// order the tokens were registered. Every batch is attempted regardless of
// earlier outcomes. The returned error only ever reports a failure to
// resolve recipients.
func (s *Service) Notify(ctx context.Context, emails []string, title, body string) error {
	if s.gateway == nil {
		log.Println("[Notify] Push gateway not configured, skipping delivery")
		return nil
	}
	if len(emails) == 0 {
		return nil
	}

	receivers, err := s.userRepo.FindByEmails(emails)
	if err != nil {
		return fmt.Errorf("failed to resolve recipients: %w", err)
	}

	var tokens []string
	for _, receiver := range receivers {
		deviceTokens, err := s.deviceRepo.TokensByUserID(receiver.ID)
		if err != nil {
			return fmt.Errorf("failed to resolve devices for %s: %w", receiver.Email, err)
		}
		tokens = append(tokens, deviceTokens...)
	}

	if len(tokens) == 0 {
		log.Printf("[Notify] No registered devices among %d recipients", len(receivers))
		return nil
	}

	batches := (len(tokens) + MaxTokensPerRequest - 1) / MaxTokensPerRequest
	for i := 0; i < len(tokens); i += MaxTokensPerRequest {
		end := i + MaxTokensPerRequest
		if end > len(tokens) {
			end = len(tokens)
		}
		batch := tokens[i:end]

		if err := s.gateway.Send(ctx, batch, title, body); err != nil {
			log.Printf("[Notify] Batch %d/%d (%d tokens) failed: %v", i/MaxTokensPerRequest+1, batches, len(batch), err)
			continue
		}
		log.Printf("[Notify] Batch %d/%d (%d tokens) sent", i/MaxTokensPerRequest+1, batches, len(batch))
	}

	return nil
}
