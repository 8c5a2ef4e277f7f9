// Package gemini implements suggest.Generator on the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	htransport "google.golang.org/api/transport/http"
	"google.golang.org/genai"

	"tododay/internal/config"
	"tododay/internal/suggest"
)

// OAuth scope used with Application Default Credentials. The ADC path goes
// through Vertex AI, which accepts cloud-platform tokens.
const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// Client implements suggest.Generator.
type Client struct {
	gc    *genai.Client
	model string
}

// New creates a Gemini client. The API key comes from the environment
// variable named in cfg and selects the Gemini API; without one,
// Application Default Credentials are used against Vertex AI. Returns an
// error if neither is available.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	if key := cfg.APIKey(); key != "" {
		gc, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return &Client{gc: gc, model: modelName(cfg.Suggest.Model)}, nil
	}

	creds, err := google.FindDefaultCredentials(ctx, cloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("no credentials: set %s or configure application default credentials: %w",
			cfg.Suggest.APIKeyEnv, err)
	}
	project := cfg.Suggest.Project
	if project == "" {
		project = creds.ProjectID
	}
	if project == "" {
		return nil, errors.New("application default credentials carry no project: set suggest.project")
	}

	hc, _, err := htransport.NewClient(ctx, option.WithTokenSource(creds.TokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticated http client: %w", err)
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend:    genai.BackendVertexAI,
		Project:    project,
		Location:   cfg.Suggest.Location,
		HTTPClient: hc,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex ai client: %w", err)
	}
	return &Client{gc: gc, model: modelName(cfg.Suggest.Model)}, nil
}

// NewWithHTTPClient creates a Gemini API client with a custom HTTP client
// and base URL (for testing).
func NewWithHTTPClient(ctx context.Context, httpClient *http.Client, baseURL, model string) (*Client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  httpClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
	if err != nil {
		return nil, err
	}
	return &Client{gc: gc, model: modelName(model)}, nil
}

// Lazy defers creating the Client until the first Generate call, so
// commands that never ask for a suggestion do not need credentials.
type Lazy struct {
	cfg *config.Config

	once   sync.Once
	client *Client
	err    error
}

// NewLazy returns a generator that builds its Client from cfg on first use.
func NewLazy(cfg *config.Config) *Lazy {
	return &Lazy{cfg: cfg}
}

// Generate implements suggest.Generator. Failing to create the client is
// reported as suggest.ErrUnavailable.
func (l *Lazy) Generate(ctx context.Context, prompt string) (string, error) {
	l.once.Do(func() {
		l.client, l.err = New(ctx, l.cfg)
	})
	if l.err != nil {
		return "", fmt.Errorf("%w: %v", suggest.ErrUnavailable, l.err)
	}
	return l.client.Generate(ctx, prompt)
}

// Model returns the name of the model in use.
func (c *Client) Model() string {
	return c.model
}

// Generate sends prompt as a single user turn and returns the text of the
// first candidate. No timeout is applied beyond ctx.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.gc.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", wrapError(err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", &suggest.ServiceError{Err: fmt.Errorf("prompt blocked: %s", resp.PromptFeedback.BlockReason)}
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", &suggest.ServiceError{Err: errors.New("no candidates in response")}
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && !part.Thought {
			b.WriteString(part.Text)
		}
	}
	return b.String(), nil
}

// modelName accepts both "gemini-2.5-flash" and "models/gemini-2.5-flash";
// the SDK adds the resource prefix for the selected backend.
func modelName(model string) string {
	model = strings.TrimPrefix(model, "models/")
	if model == "" {
		return config.DefaultModel
	}
	return model
}

// wrapError wraps API errors with user-friendly messages. Errors the
// service answered with become suggest.ServiceError; everything else is
// left as a transport error.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	apiErr, ok := asAPIError(err)
	if !ok {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("request timed out")
		}
		return err
	}

	switch apiErr.Code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &suggest.ServiceError{Err: fmt.Errorf("credentials rejected (%d): %s", apiErr.Code, apiErr.Message)}
	case http.StatusTooManyRequests:
		return &suggest.ServiceError{Err: fmt.Errorf("quota exceeded: %s", apiErr.Message)}
	case http.StatusNotFound:
		return &suggest.ServiceError{Err: fmt.Errorf("model not found: %s", apiErr.Message)}
	}
	return &suggest.ServiceError{Err: err}
}

// asAPIError extracts a genai.APIError, returned by value or by pointer.
func asAPIError(err error) (genai.APIError, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return *apiErrPtr, true
	}
	return genai.APIError{}, false
}
