package checkers

import (
	"context"
	"errors"

	"github.com/agentfactory/backend/pkg/catalog"
)

// CatalogChecker verifies the static catalogs are populated. The catalogs are
// built at init, so this mostly guards against a broken build being rolled out.
type CatalogChecker struct{}

func NewCatalogChecker() *CatalogChecker { return &CatalogChecker{} }

func (c *CatalogChecker) Name() string { return "catalog" }

func (c *CatalogChecker) Check(_ context.Context) error {
	if len(catalog.Frameworks()) == 0 {
		return errors.New("framework catalog is empty")
	}
	if len(catalog.Providers()) == 0 {
		return errors.New("provider catalog is empty")
	}
	if len(catalog.Templates()) == 0 {
		return errors.New("template catalog is empty")
	}
	return nil
}
