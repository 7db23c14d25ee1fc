package generator

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/agentfactory/backend/pkg/catalog"
)

// Status tracks where a generation attempt is in its lifecycle. Attempts move
// composing -> requesting -> validating -> done; any step may jump to failed.
// done and failed are terminal.
type Status string

const (
	StatusComposing  Status = "composing"
	StatusRequesting Status = "requesting"
	StatusValidating Status = "validating"
	StatusDone       Status = "done"
	StatusFailed     Status = "failed"
)

// ErrSourceConflict is returned when a request carries both a template id and
// free prompt text. Exactly one of them must supply the use-case description.
var ErrSourceConflict = errors.New("generator: template and prompt are mutually exclusive")

// ErrUnknownModel is returned when the requested model is not in the
// provider's catalog.
var ErrUnknownModel = errors.New("generator: model not offered by provider")

// Request is one generation attempt as the UI submits it. The API key is
// held only for the duration of the attempt and is never logged or persisted.
type Request struct {
	Framework   catalog.Framework
	Provider    catalog.ProviderID
	Model       string
	APIKey      string
	TemplateID  string
	Prompt      string
	Temperature float64
}

// Generation is the outcome of one attempt. It lives only in the response;
// nothing is stored server-side.
type Generation struct {
	ID             uuid.UUID          `json:"id"`
	Framework      catalog.Framework  `json:"framework"`
	Provider       catalog.ProviderID `json:"provider"`
	Model          string             `json:"model"`
	RawText        string             `json:"rawText"`
	Code           string             `json:"code"`
	SyntaxValid    bool               `json:"syntaxValid"`
	SyntaxError    string             `json:"syntaxError,omitempty"`
	FrameworkValid bool               `json:"frameworkValid"`
	Status         Status             `json:"status"`
	CreatedAt      time.Time          `json:"createdAt"`
}
