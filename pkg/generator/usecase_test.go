package generator

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentfactory/backend/pkg/catalog"
	"github.com/agentfactory/backend/pkg/llm"
	"github.com/agentfactory/backend/pkg/prompt"
)

type scriptedCompleter struct {
	calls   int
	errs    []error
	text    string
	lastReq llm.Request
}

func (s *scriptedCompleter) Complete(_ context.Context, req llm.Request) (string, error) {
	s.calls++
	s.lastReq = req
	if len(s.errs) > 0 {
		err := s.errs[0]
		s.errs = s.errs[1:]
		if err != nil {
			return "", err
		}
	}
	return s.text, nil
}

func newTestService(c llm.Completer) UseCase {
	return NewService(Options{
		Factory: func(_ catalog.Provider, _, _ string) llm.Completer { return c },
		Retry:   llm.RetryOpts{BaseDelay: time.Millisecond},
		Logger:  zerolog.Nop(),
	})
}

func TestGenerateDone(t *testing.T) {
	fake := &scriptedCompleter{text: "```python\ndef run():\n    pass\n```"}
	svc := newTestService(fake)

	out, err := svc.Generate(context.Background(), Request{
		Framework:   catalog.CrewAI,
		Provider:    catalog.Gemini,
		APIKey:      "key",
		Prompt:      "Build a two-agent research team",
		Temperature: 0.5,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusDone, out.Status)
	assert.Equal(t, "def run():\n    pass", out.Code)
	assert.True(t, out.SyntaxValid)
	assert.NotEqual(t, out.ID.String(), "00000000-0000-0000-0000-000000000000")
	// Model defaults from the provider catalog when the request omits it.
	assert.Equal(t, "gemini-1.5-pro", out.Model)
	// The composed prompt carries the source text and framework verbatim.
	assert.Contains(t, fake.lastReq.User, "Build a two-agent research team")
	assert.Contains(t, fake.lastReq.User, "CrewAI")
	assert.NotEmpty(t, fake.lastReq.System)
}

func TestGenerateRateLimitedOnceThenDone(t *testing.T) {
	fake := &scriptedCompleter{
		errs: []error{&llm.RateLimitError{Provider: "gemini"}, nil},
		text: "```python\nx = 1\n```",
	}
	svc := newTestService(fake)

	out, err := svc.Generate(context.Background(), Request{
		Framework: catalog.LangGraph,
		Provider:  catalog.Gemini,
		APIKey:    "key",
		Prompt:    "triage workflow",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusDone, out.Status)
	assert.Equal(t, "x = 1", out.Code)
	assert.Equal(t, 2, fake.calls)
}

func TestGenerateFromTemplate(t *testing.T) {
	fake := &scriptedCompleter{text: "```python\nx = 1\n```"}
	svc := newTestService(fake)

	out, err := svc.Generate(context.Background(), Request{
		Framework:  catalog.CrewAI,
		Provider:   catalog.OpenAI,
		APIKey:     "key",
		TemplateID: "crewai-research-team",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusDone, out.Status)
	assert.Contains(t, fake.lastReq.User, "Set up a research team with analyst and writer roles")
}

func TestGenerateSourceConflict(t *testing.T) {
	svc := newTestService(&scriptedCompleter{})

	out, err := svc.Generate(context.Background(), Request{
		Framework:  catalog.CrewAI,
		Provider:   catalog.Gemini,
		APIKey:     "key",
		TemplateID: "crewai-research-team",
		Prompt:     "also some free text",
	})
	assert.ErrorIs(t, err, ErrSourceConflict)
	assert.Equal(t, StatusFailed, out.Status)
}

func TestGenerateEmptyPrompt(t *testing.T) {
	svc := newTestService(&scriptedCompleter{})

	out, err := svc.Generate(context.Background(), Request{
		Framework: catalog.CrewAI,
		Provider:  catalog.Gemini,
		APIKey:    "key",
		Prompt:    "   ",
	})
	assert.ErrorIs(t, err, prompt.ErrEmptyInput)
	assert.Equal(t, StatusFailed, out.Status)
}

func TestGenerateUnknownTemplate(t *testing.T) {
	svc := newTestService(&scriptedCompleter{})

	out, err := svc.Generate(context.Background(), Request{
		Framework:  catalog.CrewAI,
		Provider:   catalog.Gemini,
		APIKey:     "key",
		TemplateID: "nope",
	})
	assert.ErrorIs(t, err, catalog.ErrUnknownTemplate)
	assert.Equal(t, StatusFailed, out.Status)
}

func TestGenerateUnknownModel(t *testing.T) {
	fake := &scriptedCompleter{}
	svc := newTestService(fake)

	out, err := svc.Generate(context.Background(), Request{
		Framework: catalog.CrewAI,
		Provider:  catalog.Gemini,
		Model:     "gpt-4-turbo",
		APIKey:    "key",
		Prompt:    "crew",
	})
	assert.ErrorIs(t, err, ErrUnknownModel)
	assert.Equal(t, StatusFailed, out.Status)
	assert.Zero(t, fake.calls)
}

func TestGenerateUnsupportedProvider(t *testing.T) {
	// Default factory: the anthropic variant must fail fast without a call.
	svc := NewService(Options{
		Retry:  llm.RetryOpts{BaseDelay: time.Millisecond},
		Logger: zerolog.Nop(),
	})

	out, err := svc.Generate(context.Background(), Request{
		Framework: catalog.AutoGen,
		Provider:  catalog.Anthropic,
		APIKey:    "key",
		Prompt:    "chat agents",
	})
	assert.ErrorIs(t, err, llm.ErrUnsupportedProvider)
	assert.Equal(t, StatusFailed, out.Status)
}

func TestGenerateProviderErrorSurfacedUnmodified(t *testing.T) {
	authErr := &llm.AuthError{Provider: "openai", Body: "bad key"}
	svc := newTestService(&scriptedCompleter{errs: []error{authErr}})

	out, err := svc.Generate(context.Background(), Request{
		Framework: catalog.CrewAI,
		Provider:  catalog.OpenAI,
		APIKey:    "bad",
		Prompt:    "crew",
	})
	var got *llm.AuthError
	require.ErrorAs(t, err, &got)
	assert.Same(t, authErr, got)
	assert.Equal(t, StatusFailed, out.Status)
}

func TestGenerateInvalidSyntaxStillDone(t *testing.T) {
	fake := &scriptedCompleter{text: "```python\ndef run(:\n```"}
	svc := newTestService(fake)

	out, err := svc.Generate(context.Background(), Request{
		Framework: catalog.CrewAI,
		Provider:  catalog.Gemini,
		APIKey:    "key",
		Prompt:    "crew",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusDone, out.Status)
	assert.False(t, out.SyntaxValid)
	assert.NotEmpty(t, out.SyntaxError)
	assert.Equal(t, "def run(:", out.Code)
}
