package aiquiz

import (
	"context"
	"fmt"
	"strings"

	"github.com/saulo-duarte/genquiz/internal/config"
	"google.golang.org/genai"
)

type geminiProvider struct {
	client *genai.Client
}

func NewGeminiProvider(ctx context.Context, apiKey string) (Provider, error) {
	if apiKey == "" {
		return nil, ErrMissingCredential
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{client: client}, nil
}

func (p *geminiProvider) Complete(ctx context.Context, c Completion) (string, error) {
	log := config.WithContext(ctx).WithField("model", c.Model)

	result, err := p.client.Models.GenerateContent(
		ctx,
		c.Model,
		genai.Text(c.User),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(c.System, genai.RoleUser),
			Temperature:       genai.Ptr(c.Temperature),
		},
	)
	if err != nil {
		log.WithError(err).Error("Gemini content generation failed")
		return "", fmt.Errorf("%w: %v", ErrProvider, err)
	}

	raw := strings.TrimSpace(result.Text())
	log.Debugf("Raw completion:\n%s", raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty response from model", ErrProvider)
	}
	return raw, nil
}
