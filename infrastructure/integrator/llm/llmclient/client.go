package llmclient

import (
	"bytes"
	"context"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	llmdomain "github.com/vfg2006/cloud-cost-api/infrastructure/integrator/llm/domain"
	"github.com/vfg2006/cloud-cost-api/internal/config"
	"github.com/vfg2006/cloud-cost-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const serviceName = "llm"

type Client interface {
	CreateMessage(ctx context.Context, req *llmdomain.MessageRequest) (*llmdomain.MessageResponse, error)
}

type MessagesClient struct {
	cfg        config.LLM
	httpClient *http.Client
}

func NewClient(cfg config.LLM) Client {
	return &MessagesClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *MessagesClient) CreateMessage(ctx context.Context, request *llmdomain.MessageRequest) (*llmdomain.MessageResponse, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, errors.Wrap(err, "llm: encode request")
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/v1/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "llm: build request")
	}

	req.Header.Set("x-api-key", c.cfg.APIKey)
	req.Header.Set("anthropic-version", c.cfg.Version)
	req.Header.Set("content-type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "llm: request failed")
	}
	defer resp.Body.Close()

	data, err := utils.ReadResponse(serviceName, resp)
	if err != nil {
		var httpErr *utils.HTTPError
		if errors.As(err, &httpErr) {
			var errResp llmdomain.ErrorResponse
			if json.Unmarshal([]byte(httpErr.Body), &errResp) == nil && errResp.Error.Message != "" {
				httpErr.Body = errResp.Error.Message
			}
		}
		return nil, err
	}

	var response llmdomain.MessageResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, errors.Wrap(err, "llm: decode response")
	}

	return &response, nil
}
