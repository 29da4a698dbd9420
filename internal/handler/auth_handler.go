package handler

import (
	"net/http"

	"patient-transport-backend/internal/middleware"
	"patient-transport-backend/internal/service"
	"patient-transport-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// LoginRequest is accepted as JSON or as a form
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type LogoutRequest struct {
	Token string `json:"token" form:"token"`
}

// Login handles user authentication. A caller that already presents a valid
// token gets it back without re-authenticating.
func (h *AuthHandler) Login(c *gin.Context) {
	if token := c.GetHeader(middleware.TokenHeader); token != "" {
		if _, err := h.authService.Validate(c.Request.Context(), token); err == nil {
			utils.SuccessResponse(c, gin.H{"token": token})
			return
		}
	}

	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, response)
}

// Logout invalidates the token from the body or the request headers
func (h *AuthHandler) Logout(c *gin.Context) {
	var req LogoutRequest
	// an empty body is allowed; the token may come from the headers
	_ = c.ShouldBind(&req)
	if req.Token == "" {
		req.Token = middleware.TokenFromRequest(c)
	}

	if err := h.authService.Logout(c.Request.Context(), req.Token); err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ValidateToken reports a token as valid. It runs behind the auth middleware.
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{"token": "VALID"})
}
