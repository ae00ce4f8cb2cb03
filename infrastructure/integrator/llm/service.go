package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	llmdomain "github.com/vfg2006/cloud-cost-api/infrastructure/integrator/llm/domain"
	"github.com/vfg2006/cloud-cost-api/infrastructure/integrator/llm/llmclient"
	"github.com/vfg2006/cloud-cost-api/internal/config"
)

var (
	ErrMissingAPIKey = errors.New("text generation API key is not configured")
	ErrEmptyResponse = errors.New("text generation returned no text")
)

// TextGenerator turns a system/user prompt pair into a single completion.
//
//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
type TextGenerator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type Service struct {
	cfg    config.LLM
	client llmclient.Client
}

func New(cfg config.LLM, client llmclient.Client) TextGenerator {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

func (s *Service) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if s.cfg.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	request := &llmdomain.MessageRequest{
		Model:     s.cfg.Model,
		MaxTokens: s.cfg.MaxTokens,
		System:    systemPrompt,
		Messages: []llmdomain.Message{
			{Role: "user", Content: userPrompt},
		},
	}

	response, err := s.client.CreateMessage(ctx, request)
	if err != nil {
		logrus.WithError(err).WithField("model", s.cfg.Model).Error("Text generation request failed")
		return "", err
	}

	text := strings.TrimSpace(response.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}

	logrus.WithFields(logrus.Fields{
		"model":       response.Model,
		"stop_reason": response.StopReason,
		"chars":       len(text),
	}).Debug("Text generation completed")

	return text, nil
}
