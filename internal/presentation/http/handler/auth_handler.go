package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rizkyfh/laundry-pos-api/internal/application/service"
	"github.com/rizkyfh/laundry-pos-api/internal/presentation/http/dto/request"
	"github.com/rizkyfh/laundry-pos-api/internal/presentation/http/dto/response"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles PIN login
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Username, req.PIN)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", result)
}

// ChangePIN handles a PIN change for the authenticated user
func (h *AuthHandler) ChangePIN(c *gin.Context) {
	var req request.ChangePINRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	username := GetUsername(c)
	if username == "" {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	if err := h.authService.ChangePIN(c.Request.Context(), username, req.CurrentPIN, req.NewPIN); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "PIN changed successfully", nil)
}
