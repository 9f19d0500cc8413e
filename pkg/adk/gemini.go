package adk

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiProvider(ctx context.Context, apiKey string, modelName string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0)
	model.ResponseMIMEType = "application/json"

	return &GeminiProvider{client: client, model: model}, nil
}

func (g *GeminiProvider) ListModels(ctx context.Context) ([]string, error) {
	iter := g.client.ListModels(ctx)
	var names []string
	for {
		m, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		if strings.Contains(m.Name, "gemini") {
			names = append(names, strings.TrimPrefix(m.Name, "models/"))
		}
	}
	return names, nil
}

// GenerateResponse sends the last message of history. System messages become the
// model's system instruction.
func (g *GeminiProvider) GenerateResponse(ctx context.Context, history []Message) (string, error) {
	var system []genai.Part
	var cs []*genai.Content
	for _, msg := range history {
		switch msg.Role {
		case "system":
			system = append(system, genai.Text(msg.Content))
			continue
		case "model":
		default:
			msg.Role = "user"
		}
		cs = append(cs, &genai.Content{
			Parts: []genai.Part{genai.Text(msg.Content)},
			Role:  msg.Role,
		})
	}
	if len(cs) == 0 {
		return "", fmt.Errorf("empty history")
	}
	if len(system) > 0 {
		g.model.SystemInstruction = &genai.Content{Parts: system}
	}

	session := g.model.StartChat()
	session.History = cs[:len(cs)-1]

	resp, err := session.SendMessage(ctx, cs[len(cs)-1].Parts...)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates")
	}

	var responseText string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			responseText += string(text)
		}
	}
	if responseText == "" {
		return "", fmt.Errorf("empty response")
	}
	return responseText, nil
}

func (g *GeminiProvider) Close() error {
	return g.client.Close()
}
