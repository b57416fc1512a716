package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-admin/models"
	"hotel-admin/utils"
)

type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, u *models.User, password string) error
}

type UserController struct {
	Users UserStore
}

func NewUserController(users UserStore) *UserController {
	return &UserController{Users: users}
}

type createUserPayload struct {
	FullName string `json:"nombre"`
	Username string `json:"usuario" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	RoleID   uint   `json:"idTipoUsuario" binding:"required"`
}

// GetUsers (GET /api/users)
func (ctrl *UserController) GetUsers(c *gin.Context) {
	users, err := ctrl.Users.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, users)
}

// CreateUser (POST /api/users)
func (ctrl *UserController) CreateUser(c *gin.Context) {
	var payload createUserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	u := models.User{FullName: payload.FullName, Username: payload.Username, RoleID: payload.RoleID}
	if err := ctrl.Users.Create(c.Request.Context(), &u, payload.Password); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, u)
}
