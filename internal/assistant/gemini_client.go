package assistant

import (
	"context"
	"fmt"
	"iter"

	"google.golang.org/genai"
)

type geminiClient struct {
	client *genai.Client
}

func NewGeminiClient(ctx context.Context, apiKey string) (Client, error) {
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &geminiClient{client: c}, nil
}

func (g *geminiClient) StartChat(ctx context.Context, cfg ChatConfig) (Chat, error) {
	temperature := cfg.Temperature
	chat, err := g.client.Chats.Create(ctx, cfg.Model, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(cfg.SystemInstruction, genai.RoleUser),
		Temperature:       &temperature,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("create chat: %w", err)
	}
	return &geminiChat{chat: chat}, nil
}

type geminiChat struct {
	chat *genai.Chat
}

func (g *geminiChat) SendMessageStream(ctx context.Context, text string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for resp, err := range g.chat.SendMessageStream(ctx, genai.Part{Text: text}) {
			if err != nil {
				yield("", err)
				return
			}
			// chunk tanpa teks (mis. hanya metadata) dilewati
			if t := resp.Text(); t != "" {
				if !yield(t, nil) {
					return
				}
			}
		}
	}
}
