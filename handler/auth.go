package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arrebolmedia/video-editor/config"
	"github.com/arrebolmedia/video-editor/middleware"
	"github.com/arrebolmedia/video-editor/pkg/logger"
)

type AuthHandler struct {
	config *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{config: cfg}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Success   bool      `json:"success"`
	Token     string    `json:"token"`
	ExpiresAt string    `json:"expires_at"`
	User      LoginUser `json:"user"`
}

type LoginUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Login checks the credentials against the configured users and issues a JWT.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email y contraseña requeridos"})
		return
	}

	user := h.config.FindUser(req.Email)
	if user == nil || user.Password != req.Password {
		logger.Warn(c.Request.Context(), "login rejected", "email", req.Email)
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Credenciales incorrectas"})
		return
	}

	token, expiresAt, err := middleware.GenerateToken(user.Email, user.Role, &h.config.Auth)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Error del servidor"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Success:   true,
		Token:     token,
		ExpiresAt: expiresAt.Format("2006-01-02T15:04:05Z07:00"),
		User: LoginUser{
			Email: user.Email,
			Name:  user.Name,
			Role:  user.Role,
		},
	})
}

// ListUsers returns the people projects can be assigned to.
func (h *AuthHandler) ListUsers(c *gin.Context) {
	out := make([]gin.H, 0, len(h.config.Users))
	for _, u := range h.config.Users {
		if u.Role != "editor" && u.Role != "admin" {
			continue
		}
		out = append(out, gin.H{"email": u.Email, "name": u.Name})
	}
	c.JSON(http.StatusOK, out)
}
