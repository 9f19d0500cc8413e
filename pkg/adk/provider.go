package adk

import "context"

// Message represents a chat message
type Message struct {
	Role    string // "user", "model", "system"
	Content string
}

// LLMProvider defines the interface for different AI models
type LLMProvider interface {
	GenerateResponse(ctx context.Context, history []Message) (string, error)
	ListModels(ctx context.Context) ([]string, error)
	Close() error
}
