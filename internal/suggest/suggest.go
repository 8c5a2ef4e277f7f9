// Package suggest asks a text-generation service for a new task.
package suggest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultPrompt is the single prompt sent to the generation service.
const DefaultPrompt = `Suggest a single, simple, and actionable to-do list item for someone looking to be productive today. Respond with only the task text itself, without any introductory phrases like "Here is a task:".`

// FailureMessage is the human-readable text shown for any failed suggestion.
const FailureMessage = "Error fetching suggestion. Please try again."

// Reason classifies a failed suggestion.
type Reason string

const (
	// ReasonTransport means the request did not get a response.
	ReasonTransport Reason = "transport"
	// ReasonService means the service answered with an error or no usable candidate.
	ReasonService Reason = "service"
	// ReasonEmpty means the reply was blank after cleaning.
	ReasonEmpty Reason = "empty"
	// ReasonUnavailable means no generator is configured.
	ReasonUnavailable Reason = "unavailable"
)

// Failure is the error carried by an unsuccessful Result.
type Failure struct {
	Reason Reason
	Err    error
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return fmt.Sprintf("suggestion failed (%s)", f.Reason)
	}
	return fmt.Sprintf("suggestion failed (%s): %v", f.Reason, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// ServiceError marks a generator error as an answer from the service
// rather than a transport problem.
type ServiceError struct {
	Err error
}

func (e *ServiceError) Error() string { return e.Err.Error() }
func (e *ServiceError) Unwrap() error { return e.Err }

// ErrUnavailable is returned by generators that cannot be used at all.
var ErrUnavailable = errors.New("suggestion service not configured")

// Result is either suggested task text or a failure.
type Result struct {
	Text string
	Err  error
}

// OK reports whether the result carries usable text.
func (r Result) OK() bool {
	return r.Err == nil && r.Text != ""
}

// Message returns the text to show the user.
func (r Result) Message() string {
	if r.OK() {
		return r.Text
	}
	return FailureMessage
}

// Reason returns the failure reason, or "" for a successful result.
func (r Result) Reason() Reason {
	var f *Failure
	if errors.As(r.Err, &f) {
		return f.Reason
	}
	if r.Err != nil {
		return ReasonService
	}
	return ""
}

// Generator produces free-form text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Client turns generator output into task suggestions.
type Client struct {
	gen    Generator
	prompt string
	logger logrus.FieldLogger
}

// NewClient creates a Client that sends DefaultPrompt to gen.
func NewClient(gen Generator, logger logrus.FieldLogger) *Client {
	if logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		logger = l
	}
	return &Client{gen: gen, prompt: DefaultPrompt, logger: logger}
}

// Suggest sends one request. It never returns an error directly; failures
// are carried in the Result.
func (c *Client) Suggest(ctx context.Context) Result {
	if c.gen == nil {
		return c.fail(ReasonUnavailable, ErrUnavailable)
	}

	raw, err := c.gen.Generate(ctx, c.prompt)
	if err != nil {
		reason := ReasonTransport
		var svcErr *ServiceError
		switch {
		case errors.As(err, &svcErr):
			reason = ReasonService
		case errors.Is(err, ErrUnavailable):
			reason = ReasonUnavailable
		}
		return c.fail(reason, err)
	}

	text := Clean(raw)
	if text == "" {
		return c.fail(ReasonEmpty, nil)
	}
	c.logger.WithField("text", text).Debug("suggestion received")
	return Result{Text: text}
}

func (c *Client) fail(reason Reason, err error) Result {
	f := &Failure{Reason: reason, Err: err}
	c.logger.WithError(f).WithField("reason", string(reason)).Warn("error suggesting task")
	return Result{Err: f}
}

// Clean trims raw and strips one leading and one trailing quotation mark
// and a leading "* " bullet.
func Clean(raw string) string {
	text := strings.TrimSpace(raw)
	text = strings.TrimPrefix(text, `"`)
	text = strings.TrimSuffix(text, `"`)
	text = strings.TrimPrefix(text, "* ")
	return strings.TrimSpace(text)
}

// LegacyAccept is the caller-side check of the plain-string contract: the
// text must be non-empty and must not mention "error" in any case.
func LegacyAccept(text string) bool {
	return text != "" && !strings.Contains(strings.ToLower(text), "error")
}
