package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/agentfactory/backend/api/http/presenter"
	"github.com/agentfactory/backend/pkg/catalog"
	"github.com/agentfactory/backend/pkg/generator"
	"github.com/agentfactory/backend/pkg/llm"
	"github.com/agentfactory/backend/pkg/prompt"
)

// defaultTemperature matches the UI slider's initial position.
const defaultTemperature = 0.5

type GenerateHandler struct {
	uc generator.UseCase
}

func NewGenerateHandler(uc generator.UseCase) *GenerateHandler { return &GenerateHandler{uc: uc} }

type generateRequest struct {
	Framework string `json:"framework"`
	Provider  string `json:"provider"`
	Model     string `json:"model"`
	// APIKey is forwarded to the selected provider and nothing else.
	APIKey      string   `json:"apiKey"`
	TemplateID  string   `json:"templateId"`
	Prompt      string   `json:"prompt"`
	Temperature *float64 `json:"temperature"`
}

type generateResponse struct {
	generator.Generation
	Filename     string `json:"filename"`
	Requirements string `json:"requirements"`
}

// Create runs one generation attempt: compose the prompt, call the provider,
// validate the reply.
// @Summary Generate agent code
// @Description Builds a framework-specific prompt from a template or free text, sends it to the selected LLM provider, and returns the extracted code with advisory validation flags.
// @Tags    generation
// @Accept  json
// @Produce json
// @Param   input body generateRequest true "Generation parameters; exactly one of templateId and prompt supplies the use case"
// @Success 200 {object} generateResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 429 {object} presenter.ErrorResponse
// @Failure 501 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /generations [post]
func (h *GenerateHandler) Create(c *fiber.Ctx) error {
	var req generateRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON body")
	}

	f, err := catalog.ParseFramework(req.Framework)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	if req.APIKey == "" {
		return presenter.Error(c, http.StatusBadRequest, "apiKey is required")
	}
	temperature := defaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	out, err := h.uc.Generate(c.Context(), generator.Request{
		Framework:   f,
		Provider:    catalog.ProviderID(req.Provider),
		Model:       req.Model,
		APIKey:      req.APIKey,
		TemplateID:  req.TemplateID,
		Prompt:      req.Prompt,
		Temperature: temperature,
	})
	if err != nil {
		return presenter.Error(c, statusForError(err), err.Error())
	}

	return presenter.JSON(c, http.StatusOK, generateResponse{
		Generation:   out,
		Filename:     f.DownloadFilename(),
		Requirements: f.Requirements(),
	})
}

// statusForError maps the pipeline error taxonomy onto HTTP statuses.
func statusForError(err error) int {
	var authErr *llm.AuthError
	var rateErr *llm.RateLimitError
	var netErr *llm.NetworkError
	var apiErr *llm.APIError

	switch {
	case errors.Is(err, prompt.ErrEmptyInput),
		errors.Is(err, generator.ErrSourceConflict),
		errors.Is(err, generator.ErrUnknownModel),
		errors.Is(err, catalog.ErrUnknownProvider),
		errors.Is(err, catalog.ErrUnknownFramework):
		return http.StatusBadRequest
	case errors.Is(err, catalog.ErrUnknownTemplate):
		return http.StatusNotFound
	case errors.As(err, &authErr):
		return http.StatusUnauthorized
	case errors.As(err, &rateErr):
		return http.StatusTooManyRequests
	case errors.Is(err, llm.ErrUnsupportedProvider):
		return http.StatusNotImplemented
	case errors.As(err, &netErr), errors.As(err, &apiErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
