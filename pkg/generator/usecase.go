// Package generator runs the generation pipeline: resolve the use-case
// source, compose the prompt, call the selected provider (with the bounded
// rate-limit retry), and validate the reply.
package generator

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/agentfactory/backend/pkg/catalog"
	"github.com/agentfactory/backend/pkg/llm"
	"github.com/agentfactory/backend/pkg/prompt"
	"github.com/agentfactory/backend/pkg/validate"
)

// UseCase runs one synchronous generation attempt per call. There is no
// queueing and no state shared between attempts.
type UseCase interface {
	Generate(ctx context.Context, req Request) (Generation, error)
}

// CompleterFactory builds the provider client for one attempt. The key comes
// from the request, so clients cannot be reused across attempts.
type CompleterFactory func(p catalog.Provider, apiKey, model string) llm.Completer

// Options configures the generation service.
type Options struct {
	// Factory builds provider clients; defaults to the catalog-wired
	// providers. Overridable for tests.
	Factory CompleterFactory
	// Retry bounds the rate-limit retry applied around every provider call.
	Retry llm.RetryOpts
	// Logger receives per-attempt progress. API keys are never logged.
	Logger zerolog.Logger
}

type service struct {
	factory CompleterFactory
	retry   llm.RetryOpts
	log     zerolog.Logger
}

// NewService creates the generation use case.
func NewService(opts Options) UseCase {
	if opts.Factory == nil {
		opts.Factory = DefaultFactory("", "")
	}
	return &service{
		factory: opts.Factory,
		retry:   opts.Retry,
		log:     opts.Logger,
	}
}

func (s *service) Generate(ctx context.Context, req Request) (Generation, error) {
	g := Generation{
		ID:        uuid.New(),
		Framework: req.Framework,
		Provider:  req.Provider,
		Model:     req.Model,
		Status:    StatusComposing,
		CreatedAt: time.Now().UTC(),
	}
	started := time.Now()

	log := s.log.With().
		Stringer("generationId", g.ID).
		Str("framework", string(req.Framework)).
		Str("provider", string(req.Provider)).
		Logger()

	source, err := resolveSource(req)
	if err != nil {
		return fail(g, log, err)
	}

	provider, err := catalog.ProviderByID(string(req.Provider))
	if err != nil {
		return fail(g, log, err)
	}
	if g.Model == "" {
		g.Model = provider.DefaultModel
	} else if !provider.HasModel(g.Model) {
		return fail(g, log, ErrUnknownModel)
	}

	instr, err := prompt.Compose(req.Framework, source)
	if err != nil {
		return fail(g, log, err)
	}

	g.Status = StatusRequesting
	completer := llm.NewRetryCompleter(s.factory(provider, req.APIKey, g.Model), s.retry)
	raw, err := completer.Complete(ctx, llm.Request{
		System:      instr.System,
		User:        instr.User,
		Temperature: req.Temperature,
	})
	if err != nil {
		return fail(g, log, err)
	}

	g.Status = StatusValidating
	res := validate.Run(req.Framework, raw)
	g.RawText = raw
	g.Code = res.Code
	g.SyntaxValid = res.SyntaxValid
	g.SyntaxError = res.SyntaxError
	g.FrameworkValid = res.FrameworkValid

	g.Status = StatusDone
	log.Info().
		Str("model", g.Model).
		Bool("syntaxValid", g.SyntaxValid).
		Bool("frameworkValid", g.FrameworkValid).
		Dur("took", time.Since(started)).
		Msg("generation done")
	return g, nil
}

// resolveSource enforces the exactly-one-of invariant between the template
// selection and free prompt text. An empty source is left for the composer
// to reject so both arrive at the same error.
func resolveSource(req Request) (string, error) {
	hasTemplate := req.TemplateID != ""
	hasPrompt := strings.TrimSpace(req.Prompt) != ""

	if hasTemplate && hasPrompt {
		return "", ErrSourceConflict
	}
	if hasTemplate {
		t, err := catalog.TemplateByID(req.TemplateID)
		if err != nil {
			return "", err
		}
		return t.Description, nil
	}
	return req.Prompt, nil
}

func fail(g Generation, log zerolog.Logger, err error) (Generation, error) {
	g.Status = StatusFailed
	log.Warn().Err(err).Msg("generation failed")
	return g, err
}
