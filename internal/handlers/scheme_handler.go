package handlers

import (
	"net/http"

	"schemecheck_backend/internal/apperrors"
	"schemecheck_backend/internal/catalog"
	"schemecheck_backend/internal/models"
	"schemecheck_backend/internal/services"
	"schemecheck_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SchemeHandler struct {
	*BaseHandler
	cat                *catalog.Catalog
	eligibilityService services.EligibilityService
}

func NewSchemeHandler(base *BaseHandler, cat *catalog.Catalog, eligibilityService services.EligibilityService) *SchemeHandler {
	return &SchemeHandler{
		BaseHandler:        base,
		cat:                cat,
		eligibilityService: eligibilityService,
	}
}

// RegisterRoutes registers the public catalog and eligibility routes.
func (h *SchemeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
	rg.GET("/schemes", h.ListSchemes)
	rg.GET("/schemes/category/:category", h.ListSchemesByCategory)
	rg.GET("/schemes/:id", h.GetScheme)
	rg.POST("/check-eligibility", h.CheckEligibility)
	rg.GET("/locations", h.ListLocations)
}

func (h *SchemeHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "schemes": h.cat.Len()})
}

// ListSchemes
// @Summary      Full scheme catalog
// @Tags         schemes
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /api/schemes [get]
func (h *SchemeHandler) ListSchemes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"schemes": h.cat.Schemes()})
}

// GetScheme
// @Summary      Single scheme by id
// @Tags         schemes
// @Produce      json
// @Param        id path string true "Scheme id"
// @Success      200 {object} models.SchemeRecord
// @Router       /api/schemes/{id} [get]
func (h *SchemeHandler) GetScheme(c *gin.Context) {
	scheme := h.cat.ByID(c.Param("id"))
	if scheme == nil {
		apperrors.HandleError(c, apperrors.ErrSchemeNotFound)
		return
	}
	c.JSON(http.StatusOK, scheme)
}

// ListSchemesByCategory
// @Summary      Schemes in a category
// @Tags         schemes
// @Produce      json
// @Param        category path string true "Category"
// @Success      200 {object} map[string]interface{}
// @Router       /api/schemes/category/{category} [get]
func (h *SchemeHandler) ListSchemesByCategory(c *gin.Context) {
	schemes := h.cat.ByCategory(c.Param("category"))
	if schemes == nil {
		schemes = []models.SchemeRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"schemes": schemes})
}

// CheckEligibility
// @Summary      Filter the catalog against a demographic profile
// @Tags         schemes
// @Accept       json
// @Produce      json
// @Param        body body dto.EligibilityRequest true "Demographic profile"
// @Success      200 {object} dto.EligibilityResponse
// @Router       /api/check-eligibility [post]
func (h *SchemeHandler) CheckEligibility(c *gin.Context) {
	var req dto.EligibilityRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	eligible, err := h.eligibilityService.Check(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.EligibilityResponse{EligibleSchemes: eligible})
}

// ListLocations
// @Summary      States with their districts
// @Tags         schemes
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /api/locations [get]
func (h *SchemeHandler) ListLocations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"states": h.cat.Locations()})
}
