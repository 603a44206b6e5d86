package handler

import (
	"net/http"
	"strconv"

	"tamapet/config"
	"tamapet/internal/auth"
	"tamapet/internal/middleware"
	"tamapet/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	cfg   *config.Config
	users *service.UserService
}

func NewUserHandler(cfg *config.Config, users *service.UserService) *UserHandler {
	return &UserHandler{cfg: cfg, users: users}
}

// Start creates an anonymous user and returns its session token.
func (h *UserHandler) Start(c *gin.Context) {
	user, err := h.users.Start(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	token, err := auth.GenerateSessionToken(h.cfg, user.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id": user.UserID,
		"money":   user.Money,
		"token":   token,
	})
}

func (h *UserHandler) GetBalance(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"money": user.Money})
}

func (h *UserHandler) GetTransactions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	list, err := h.users.Transactions(c.Request.Context(), middleware.GetUserID(c), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": list})
}
