package openai

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/harunnryd/gippity/internal/config"
	gippityErrors "github.com/harunnryd/gippity/internal/errors"
	"github.com/harunnryd/gippity/internal/llm/contract"
	"github.com/harunnryd/gippity/internal/logger"

	"github.com/sashabaranov/go-openai"
)

// Options configures a Client. APIKey and OrgID are required.
type Options struct {
	APIKey      string
	OrgID       string
	BaseURL     string
	Model       string
	Temperature float32
	// Timeout bounds a single request. Zero leaves the call unbounded.
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client sends role-tagged messages to a chat-completions endpoint and returns
// the text of the first choice. It never retries.
type Client struct {
	client      *openai.Client
	model       string
	temperature float32
}

func New(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, gippityErrors.Config(config.EnvOpenAIAPIKey + " not set")
	}
	if strings.TrimSpace(opts.OrgID) == "" {
		return nil, gippityErrors.Config(config.EnvOpenAIOrg + " not set")
	}

	cfg := openai.DefaultConfig(opts.APIKey)
	cfg.OrgID = opts.OrgID
	if opts.BaseURL != "" {
		cfg.BaseURL = strings.TrimSuffix(opts.BaseURL, "/")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if opts.Timeout > 0 {
		bounded := *httpClient
		bounded.Timeout = opts.Timeout
		httpClient = &bounded
	}
	cfg.HTTPClient = httpClient

	model := opts.Model
	if model == "" {
		model = config.DefaultLLMModel
	}

	return &Client{
		client:      openai.NewClientWithConfig(cfg),
		model:       model,
		temperature: opts.Temperature,
	}, nil
}

// NewFromConfig builds a Client from the resolved llm section.
func NewFromConfig(cfg config.LLMConfig) (*Client, error) {
	timeout, err := config.OptionalDuration(cfg.RequestTimeout)
	if err != nil {
		return nil, gippityErrors.WrapWithCategory(err, "llm.request_timeout", gippityErrors.ErrConfig)
	}

	return New(Options{
		APIKey:      cfg.APIKey,
		OrgID:       cfg.OrgID,
		BaseURL:     cfg.BaseURL,
		Model:       cfg.Model,
		Temperature: float32(cfg.Temperature),
		Timeout:     timeout,
	})
}

func (c *Client) Model() string {
	return c.model
}

// Call issues exactly one chat completion request.
func (c *Client) Call(ctx context.Context, messages []contract.Message) (string, error) {
	if len(messages) == 0 {
		return "", gippityErrors.InvalidInput("messages are required")
	}
	for i, m := range messages {
		if err := m.Validate(); err != nil {
			return "", gippityErrors.InvalidInput(fmt.Sprintf("message %d: %v", i, err))
		}
	}

	req := contract.ChatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
	}

	slog.Debug("Sending chat completion",
		"model", req.Model,
		"messages", len(req.Messages),
		"temperature", req.Temperature,
		"trace_id", logger.GetTraceID(ctx))

	resp, err := c.client.CreateChatCompletion(ctx, toChatCompletionRequest(req))
	if err != nil {
		return "", gippityErrors.WrapWithCategory(err, "openai request failed", gippityErrors.ErrTransport)
	}

	content, ok := fromChatCompletionResponse(resp).FirstContent()
	if !ok {
		return "", gippityErrors.InvalidResponse("no choices returned")
	}

	slog.Debug("Chat completion received",
		"model", resp.Model,
		"choices", len(resp.Choices),
		"content_length", len(content),
		"trace_id", logger.GetTraceID(ctx))

	return content, nil
}

func toChatCompletionRequest(req contract.ChatRequest) openai.ChatCompletionRequest {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	return openai.ChatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: req.Temperature,
	}
}

func fromChatCompletionResponse(resp openai.ChatCompletionResponse) contract.ChatResponse {
	out := contract.ChatResponse{Choices: make([]contract.Choice, 0, len(resp.Choices))}
	for _, choice := range resp.Choices {
		out.Choices = append(out.Choices, contract.Choice{
			Message: contract.Message{
				Role:    contract.Role(choice.Message.Role),
				Content: choice.Message.Content,
			},
		})
	}
	return out
}
