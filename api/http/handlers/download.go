package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/agentfactory/backend/api/http/presenter"
	"github.com/agentfactory/backend/pkg/catalog"
)

// DownloadHandler turns generated code the browser holds into a file
// download. Nothing is stored server-side; the client sends the code back.
type DownloadHandler struct{}

func NewDownloadHandler() *DownloadHandler { return &DownloadHandler{} }

type downloadRequest struct {
	Framework string `json:"framework"`
	Code      string `json:"code"`
}

// Code returns the code as a Python source attachment named after the
// framework.
// @Summary Download generated code
// @Tags    generation
// @Accept  json
// @Produce plain
// @Param   input body downloadRequest true "Framework tag and code to package"
// @Success 200 {string} string
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /generations/download [post]
func (h *DownloadHandler) Code(c *fiber.Ctx) error {
	var req downloadRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON body")
	}
	f, err := catalog.ParseFramework(req.Framework)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	if strings.TrimSpace(req.Code) == "" {
		return presenter.Error(c, http.StatusBadRequest, "code is empty")
	}
	return presenter.Attachment(c, "text/x-python; charset=utf-8", f.DownloadFilename(), req.Code)
}
