package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"car-dealership-api/config"
	"car-dealership-api/middleware"
	"car-dealership-api/models"
	"car-dealership-api/services"
	"car-dealership-api/utils"
)

type AuthHandler struct {
	auth      *services.AuthService
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthHandler(auth *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{auth: auth, jwtSecret: cfg.JWTSecret, jwtExpiry: cfg.JWTExpiry}
}

type RegisterRequest struct {
	Username string      `json:"username" binding:"required,min=3"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=6"`
	Role     models.Role `json:"role" binding:"omitempty,oneof=customer manager admin"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a user account and returns it with a fresh token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	user, err := h.auth.Register(services.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		utils.Error(c, err)
		return
	}

	token, err := middleware.GenerateToken(user.ID, h.jwtSecret, h.jwtExpiry)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Send(c, http.StatusCreated, "User registered successfully", gin.H{
		"user":  user,
		"token": token,
	})
}

// Login authenticates by email/password and returns the user with a token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, err)
		return
	}

	user, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		utils.Error(c, err)
		return
	}

	token, err := middleware.GenerateToken(user.ID, h.jwtSecret, h.jwtExpiry)
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Send(c, http.StatusOK, "Login successful", gin.H{
		"user":  user,
		"token": token,
	})
}
