package controllers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-admin/models"
	"hotel-admin/utils"
)

type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (models.User, error)
}

type AuthController struct {
	Users     Authenticator
	JWTSecret string
	TokenTTL  time.Duration
}

func NewAuthController(users Authenticator, secret string, ttl time.Duration) *AuthController {
	return &AuthController{Users: users, JWTSecret: secret, TokenTTL: ttl}
}

type loginPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login (POST /api/auth/login)
func (ctrl *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "username and password required")
		return
	}

	user, err := ctrl.Users.Authenticate(c.Request.Context(), strings.TrimSpace(payload.Username), payload.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.RoleID, ctrl.JWTSecret, ctrl.TokenTTL)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":            user.ID,
			"nombre":        user.FullName,
			"usuario":       user.Username,
			"idTipoUsuario": user.RoleID,
		},
	})
}
