package suggest

import (
	"context"
	"errors"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
)

type fakeGenerator struct {
	text   string
	err    error
	prompt string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.text, f.err
}

func TestClean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Water the plants", "Water the plants"},
		{`"Water the plants"`, "Water the plants"},
		{"* Water the plants", "Water the plants"},
		{"  \"Call mom\"\n", "Call mom"},
		{`"* Stretch"`, "Stretch"},
		{"* x", "x"},
		{`"* Buy milk"`, "Buy milk"},
		{`"  spaced  "`, "spaced"},
		{"** bold", "** bold"},
		{`Say "hi" to a neighbour`, `Say "hi" to a neighbour`},
		{`""`, ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := Clean(tt.in); got != tt.want {
			t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSuggest_Success(t *testing.T) {
	gen := &fakeGenerator{text: "\"Read ten pages of a book\"\n"}
	res := NewClient(gen, nil).Suggest(context.Background())

	if !res.OK() {
		t.Fatalf("expected success, got %v", res.Err)
	}
	if res.Text != "Read ten pages of a book" {
		t.Errorf("unexpected text: %q", res.Text)
	}
	if res.Message() != res.Text {
		t.Errorf("expected message to be the text, got %q", res.Message())
	}
	if gen.prompt != DefaultPrompt {
		t.Errorf("expected the fixed prompt to be sent, got %q", gen.prompt)
	}
}

func TestSuggest_Failures(t *testing.T) {
	tests := []struct {
		name string
		gen  Generator
		want Reason
	}{
		{"transport", &fakeGenerator{err: errors.New("dial tcp: connection refused")}, ReasonTransport},
		{"service", &fakeGenerator{err: &ServiceError{Err: errors.New("quota exceeded")}}, ReasonService},
		{"unavailable generator", &fakeGenerator{err: ErrUnavailable}, ReasonUnavailable},
		{"empty", &fakeGenerator{text: ` "" `}, ReasonEmpty},
		{"no generator", nil, ReasonUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, hook := logtest.NewNullLogger()
			var c *Client
			if tt.gen == nil {
				c = NewClient(nil, logger)
			} else {
				c = NewClient(tt.gen, logger)
			}

			res := c.Suggest(context.Background())
			if res.OK() {
				t.Fatal("expected failure")
			}
			if res.Reason() != tt.want {
				t.Errorf("expected reason %s, got %s", tt.want, res.Reason())
			}
			if res.Message() != FailureMessage {
				t.Errorf("expected failure message, got %q", res.Message())
			}
			if len(hook.Entries) != 1 {
				t.Errorf("expected one log entry, got %d", len(hook.Entries))
			}
		})
	}
}

func TestSuggest_TextMentioningErrorIsAccepted(t *testing.T) {
	res := NewClient(&fakeGenerator{text: "Fix the error in last month's budget"}, nil).Suggest(context.Background())
	if !res.OK() {
		t.Fatalf("expected success, got %v", res.Err)
	}
}

func TestFailureUnwrap(t *testing.T) {
	cause := errors.New("boom")
	res := Result{Err: &Failure{Reason: ReasonTransport, Err: cause}}
	if !errors.Is(res.Err, cause) {
		t.Error("expected failure to unwrap to its cause")
	}
}

func TestLegacyAccept(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Water the plants", true},
		{"", false},
		{FailureMessage, false},
		{"Fix the ERROR log", false},
	}
	for _, tt := range tests {
		if got := LegacyAccept(tt.in); got != tt.want {
			t.Errorf("LegacyAccept(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
