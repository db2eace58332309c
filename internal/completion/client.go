package completion

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/fitlog/internal/telemetry/tracing"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrMissingAPIKey   = errors.New("openai api key not set")
	ErrEmptyCompletion = errors.New("completion has no choices")
)

// Error is returned for every failed completion call. StatusCode is set
// only when the API itself replied with an error.
type Error struct {
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("completion failed [status %d]: %s", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("completion failed: %s", e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

type OpenAIClientParams struct {
	APIKey     string
	Model      string
	BaseURL    string
	MaxTokens  int
	Timeout    time.Duration
	HTTPClient *http.Client
}

// OpenAIClient sends single prompt chat completions, without retries.
type OpenAIClient struct {
	client    openai.Client
	apiKey    string
	model     string
	maxTokens int
	timeout   time.Duration
}

func NewOpenAIClient(params OpenAIClientParams) *OpenAIClient {
	opts := []option.RequestOption{
		option.WithAPIKey(params.APIKey),
		option.WithMaxRetries(0),
	}
	if params.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(params.BaseURL))
	}
	if params.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(params.HTTPClient))
	}

	if params.APIKey == "" {
		log.Warnln("openai api key not set, completion calls will fail and fall back to demo synthesis")
	}

	return &OpenAIClient{
		client:    openai.NewClient(opts...),
		apiKey:    params.APIKey,
		model:     params.Model,
		maxTokens: params.MaxTokens,
		timeout:   params.Timeout,
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "completion.openai.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("model", c.model))
	span.SetAttributes(attribute.Int("prompt.length", len(prompt)))

	if c.apiKey == "" {
		return "", &Error{Err: ErrMissingAPIKey}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	}
	if c.maxTokens > 0 {
		params.MaxTokens = openai.Int(int64(c.maxTokens))
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &Error{StatusCode: apiErr.StatusCode, Err: err}
		}
		return "", &Error{Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &Error{Err: ErrEmptyCompletion}
	}

	span.SetAttributes(attribute.Int64("usage.total_tokens", resp.Usage.TotalTokens))
	log.Tracef("completion done, model [%s], total tokens: %d", resp.Model, resp.Usage.TotalTokens)

	return resp.Choices[0].Message.Content, nil
}
