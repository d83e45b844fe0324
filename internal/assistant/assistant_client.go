package assistant

import (
	"context"
	"iter"
)

type ChatConfig struct {
	Model             string
	SystemInstruction string
	Temperature       float32
}

// Client opens conversations with the hosted model.
//
//go:generate mockgen -source=assistant_client.go -destination=mock/assistant_client_mock.go -package=mock
type Client interface {
	StartChat(ctx context.Context, cfg ChatConfig) (Chat, error)
}

// Chat keeps the model-side history of one conversation. The sequence
// returned by SendMessageStream yields text fragments in order and can only
// be ranged over once.
type Chat interface {
	SendMessageStream(ctx context.Context, text string) iter.Seq2[string, error]
}
