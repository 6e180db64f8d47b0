package handler

import (
	"context"
	"fmt"
	"net/http"

	model "plate-auction/internal/models"
	"plate-auction/services/auction/helpers"
	"plate-auction/utils"

	"github.com/gin-gonic/gin"
)

type AuthServiceInterface interface {
	Register(ctx context.Context, username, email, password string, isStaff bool) (model.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}

type UserHandler struct {
	service AuthServiceInterface
}

func NewUserHandler(service AuthServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterHandler handles POST /users
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	user, err := h.service.Register(c.Request.Context(), req.Username, req.Email, req.Password, req.IsStaff)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("RegisterHandler: failed to register user", map[string]any{
			"username": req.Username,
			"error":    err.Error(),
		})
		return
	}

	resp := helpers.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		IsStaff:  user.IsStaff,
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "user registered successfully")
	helpers.LogSuccess("RegisterHandler", "user registered successfully", map[string]any{
		"user_id":  user.ID,
		"username": user.Username,
		"is_staff": user.IsStaff,
	})
}

// LoginHandler handles POST /auth/login
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("LoginHandler: login failed", map[string]any{
			"username": req.Username,
			"error":    err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, "login successful")
	helpers.LogSuccess("LoginHandler", "login successful", map[string]any{
		"username": req.Username,
	})
}
