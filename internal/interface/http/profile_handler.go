package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dimasprs/skycast-api/internal/application"
	"github.com/dimasprs/skycast-api/internal/interface/middleware"
	"github.com/dimasprs/skycast-api/pkg/response"
)

type ProfileHandler struct {
	Accounts *application.AccountService
	Logger   *logrus.Logger
}

func NewProfileHandler(accounts *application.AccountService, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Accounts: accounts, Logger: logger}
}

// Get GET /api/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)

	u, err := h.Accounts.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Message(c, http.StatusNotFound, "User not found")
			return
		}
		h.serverError(c, "get profile failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":         u.ID,
			"name":       u.Name,
			"email":      u.Email,
			"created_at": u.CreatedAt.UTC().Format(time.RFC3339),
		},
		"history": u.SearchHistory,
	})
}

// Delete DELETE /api/profile
// Idempotent: deleting an already-absent account still succeeds.
func (h *ProfileHandler) Delete(c *gin.Context) {
	userID := c.GetString(middleware.CtxUserIDKey)

	if err := h.Accounts.DeleteAccount(c.Request.Context(), userID); err != nil {
		h.serverError(c, "delete account failed", err)
		return
	}
	response.Message(c, http.StatusOK, "Account deleted")
}

func (h *ProfileHandler) serverError(c *gin.Context, msg string, err error) {
	if h.Logger != nil {
		h.Logger.WithError(err).WithField("request_id", c.GetString("request_id")).Error(msg)
	}
	response.Message(c, http.StatusInternalServerError, "Server error")
}
