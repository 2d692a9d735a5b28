package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/tenant-console/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tenant-console/internal/domain/catalog"
)

// CatalogHandler serves the static package catalog.
type CatalogHandler struct{}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// ListPackages handles GET /api/v1/packages.
func (h *CatalogHandler) ListPackages(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToPackageListResponse(catalog.All()))
}
