package handlers

import (
	"errors"
	"net/http"
	"time"

	"print_shop/internal/middleware"
	"print_shop/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userService services.UserService
	jwtSecret   string
	tokenTTL    time.Duration
}

func NewAuthHandler(userService services.UserService, jwtSecret string, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{userService: userService, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "username and password are required")
		return
	}

	user, err := h.userService.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, APIResponse{Success: false, Message: "invalid username or password"})
			return
		}
		respondServiceError(c, err)
		return
	}

	token, err := middleware.IssueToken(h.jwtSecret, user, h.tokenTTL)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, gin.H{
		"token": token,
		"user":  user,
	}, nil)
}
