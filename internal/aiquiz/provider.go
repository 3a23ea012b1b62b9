package aiquiz

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/genquiz/internal/config"
	openai "github.com/sashabaranov/go-openai"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

type Provider interface {
	Complete(ctx context.Context, c Completion) (string, error)
}

type groqProvider struct {
	client *openai.Client
}

// NewGroqProvider talks to Groq through its OpenAI compatible endpoint.
// baseURL may be empty.
func NewGroqProvider(apiKey, baseURL string) (Provider, error) {
	if apiKey == "" {
		return nil, ErrMissingCredential
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = groqBaseURL
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &groqProvider{client: openai.NewClientWithConfig(cfg)}, nil
}

func (p *groqProvider) Complete(ctx context.Context, c Completion) (string, error) {
	log := config.WithContext(ctx).WithField("model", c.Model)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.Model,
		Temperature: c.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: c.System},
			{Role: openai.ChatMessageRoleUser, Content: c.User},
		},
	})
	if err != nil {
		log.WithError(err).Error("Groq chat completion failed")
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == 401 {
			return "", fmt.Errorf("%w: %v", ErrMissingCredential, err)
		}
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty response from model", ErrProvider)
	}

	raw := strings.TrimSpace(resp.Choices[0].Message.Content)
	log.Debugf("Raw completion:\n%s", raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty response from model", ErrProvider)
	}
	return raw, nil
}
