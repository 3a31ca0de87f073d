package chat

import (
	"context"
	"fmt"
	"time"

	stream "github.com/GetStream/stream-chat-go/v5"
)

// StreamProvider mirrors user identities into Stream Chat and mints client
// tokens. The real-time transport itself is entirely Stream's.
type StreamProvider struct {
	client *stream.Client
}

func NewStreamProvider(apiKey, apiSecret string) (*StreamProvider, error) {
	client, err := stream.NewClient(apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("stream client: %w", err)
	}
	return &StreamProvider{client: client}, nil
}

// UpsertUser creates or updates the chat-side copy of a user.
func (p *StreamProvider) UpsertUser(ctx context.Context, id, name, image string) error {
	_, err := p.client.UpsertUser(ctx, &stream.User{
		ID:    id,
		Name:  name,
		Image: image,
	})
	if err != nil {
		return fmt.Errorf("stream upsert user: %w", err)
	}
	return nil
}

// CreateToken mints a client-side chat token for userID. The zero expiry
// leaves token lifetime to the chat provider's default.
func (p *StreamProvider) CreateToken(userID string) (string, error) {
	token, err := p.client.CreateToken(userID, time.Time{})
	if err != nil {
		return "", fmt.Errorf("stream create token: %w", err)
	}
	return token, nil
}
