package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dimasprs/skycast-api/internal/application"
	"github.com/dimasprs/skycast-api/internal/domain/entity"
	"github.com/dimasprs/skycast-api/pkg/response"
	"github.com/dimasprs/skycast-api/pkg/validation"
)

type AuthHandler struct {
	Accounts *application.AccountService
	Logger   *logrus.Logger
}

func NewAuthHandler(accounts *application.AccountService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Accounts: accounts, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type userPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toUserPayload(u *entity.User) userPayload {
	return userPayload{ID: u.ID, Name: u.Name, Email: u.Email}
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, http.StatusBadRequest, validation.ToDetails(err))
		return
	}

	u, token, err := h.Accounts.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Message(c, http.StatusConflict, "Email already registered")
			return
		}
		h.serverError(c, "register failed", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered",
		"token":   token,
		"user":    toUserPayload(u),
	})
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, http.StatusBadRequest, validation.ToDetails(err))
		return
	}

	u, token, err := h.Accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			// Same body for unknown email and wrong password.
			response.Message(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.serverError(c, "login failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged in",
		"token":   token,
		"user":    toUserPayload(u),
	})
}

func (h *AuthHandler) serverError(c *gin.Context, msg string, err error) {
	if h.Logger != nil {
		h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error(msg)
	}
	response.Message(c, http.StatusInternalServerError, "Server error")
}
