package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/agentfactory/backend/api/http/presenter"
	"github.com/agentfactory/backend/pkg/catalog"
)

// CatalogHandler serves the static generation catalogs: frameworks,
// providers with their models, and quick-start templates.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler { return &CatalogHandler{} }

type frameworkResponse struct {
	Tag  string `json:"tag"`
	Info string `json:"info"`
}

// Frameworks lists the supported agent frameworks.
// @Summary List agent frameworks
// @Tags    catalog
// @Produce json
// @Success 200 {array} frameworkResponse
// @Router  /frameworks [get]
func (h *CatalogHandler) Frameworks(c *fiber.Ctx) error {
	frameworks := catalog.Frameworks()
	out := make([]frameworkResponse, 0, len(frameworks))
	for _, f := range frameworks {
		out = append(out, frameworkResponse{Tag: string(f), Info: f.Info()})
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// Providers lists the LLM providers and the models each one serves.
// @Summary List LLM providers
// @Tags    catalog
// @Produce json
// @Success 200 {array} catalog.Provider
// @Router  /providers [get]
func (h *CatalogHandler) Providers(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, catalog.Providers())
}

// Templates lists quick-start templates, optionally for one framework.
// @Summary List quick-start templates
// @Tags    catalog
// @Produce json
// @Param   framework query string false "Framework tag filter"
// @Success 200 {array} catalog.Template
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /templates [get]
func (h *CatalogHandler) Templates(c *fiber.Ctx) error {
	tag := c.Query("framework")
	if tag == "" {
		return presenter.JSON(c, http.StatusOK, catalog.Templates())
	}
	f, err := catalog.ParseFramework(tag)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	return presenter.JSON(c, http.StatusOK, catalog.TemplatesByFramework(f))
}

// Requirements returns the pip requirements for a framework as plain text,
// suitable for saving as requirements.txt next to the generated code.
// @Summary Framework pip requirements
// @Tags    catalog
// @Produce plain
// @Param   tag path string true "Framework tag"
// @Success 200 {string} string
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /frameworks/{tag}/requirements [get]
func (h *CatalogHandler) Requirements(c *fiber.Ctx) error {
	f, err := catalog.ParseFramework(c.Params("tag"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	return presenter.Attachment(c, fiber.MIMETextPlainCharsetUTF8, "requirements.txt", f.Requirements())
}
