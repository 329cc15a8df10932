package handlers

import (
	"net/http"

	"schemecheck_backend/internal/middleware"
	"schemecheck_backend/internal/services"
	"schemecheck_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

// RegisterRoutes registers the authenticated user routes.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	user := rg.Group("/user")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("/me", h.GetMe)
		user.POST("/schemes/save", h.SaveScheme)
		user.DELETE("/schemes/save/:schemeId", h.UnsaveScheme)
		user.POST("/schemes/apply", h.ApplyToScheme)
	}
}

// GetMe
// @Summary      Current account profile with saved and applied schemes
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.UserResponse
// @Router       /api/user/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.userService.GetProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// SaveScheme
// @Summary      Bookmark a scheme (idempotent)
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.SaveSchemeRequest true "Scheme reference"
// @Success      200 {object} map[string]interface{}
// @Router       /api/user/schemes/save [post]
func (h *UserHandler) SaveScheme(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SaveSchemeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	saved, err := h.userService.SaveScheme(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"savedSchemes": saved})
}

// UnsaveScheme
// @Summary      Remove a bookmark (no-op when absent)
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Param        schemeId path string true "Scheme id"
// @Success      200 {object} map[string]interface{}
// @Router       /api/user/schemes/save/{schemeId} [delete]
func (h *UserHandler) UnsaveScheme(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	saved, err := h.userService.UnsaveScheme(userID, c.Param("schemeId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"savedSchemes": saved})
}

// ApplyToScheme
// @Summary      Record or update a scheme application
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ApplySchemeRequest true "Application"
// @Success      200 {object} map[string]interface{}
// @Router       /api/user/schemes/apply [post]
func (h *UserHandler) ApplyToScheme(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplySchemeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	applied, err := h.userService.ApplyToScheme(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appliedSchemes": applied})
}
