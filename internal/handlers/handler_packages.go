package handlers

import (
	"errors"
	"net/http"

	"github.com/amphorabeer/pms_backend/internal/apperrors"
	portssvc "github.com/amphorabeer/pms_backend/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// packageHandler exposes the static package catalog
type packageHandler struct {
	catalog portssvc.PackageCatalog
}

// newPackageHandler creates a new packageHandler
func newPackageHandler(catalog portssvc.PackageCatalog) *packageHandler {
	return &packageHandler{catalog: catalog}
}

// registerPackageRoutes registers the read-only package catalog routes
func registerPackageRoutes(rg *gin.RouterGroup, catalog portssvc.PackageCatalog) {
	h := newPackageHandler(catalog)

	packageGroup := rg.Group("/packages")
	{
		packageGroup.GET("", h.listPackages)
		packageGroup.GET("/:code", h.getPackage)
	}
}

// listPackages godoc
// @Summary List package definitions
// @Description Returns all active package definitions from the catalog
// @Tags packages
// @Produce json
// @Success 200 {array} domain.PackageDefinition
// @Security BearerAuth
// @Router /packages [get]
func (h *packageHandler) listPackages(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.List())
}

// getPackage godoc
// @Summary Get a package definition
// @Description Resolves a package definition by its short code (RO, BB, HB, FB, AI)
// @Tags packages
// @Produce json
// @Param code path string true "Package code"
// @Success 200 {object} domain.PackageDefinition
// @Failure 404 {object} map[string]string "Package not found"
// @Security BearerAuth
// @Router /packages/{code} [get]
func (h *packageHandler) getPackage(c *gin.Context) {
	def, err := h.catalog.FindByCode(c.Param("code"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve package"})
		return
	}
	c.JSON(http.StatusOK, def)
}
