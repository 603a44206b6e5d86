package handler

import (
	"net/http"
	"strconv"

	"tamapet/internal/middleware"
	"tamapet/internal/service"

	"github.com/gin-gonic/gin"
)

type MinigameHandler struct {
	games *service.MinigameService
}

func NewMinigameHandler(games *service.MinigameService) *MinigameHandler {
	return &MinigameHandler{games: games}
}

func (h *MinigameHandler) Start(c *gin.Context) {
	gameID, err := strconv.Atoi(c.Param("id"))
	if err != nil || gameID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid game id"})
		return
	}
	result, err := h.games.Start(c.Request.Context(), middleware.GetUserID(c), uint(gameID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"can_play":        true,
		"attempt_id":      result.AttemptID,
		"remaining_plays": result.RemainingPlays,
	})
}

type finishRequest struct {
	Score     int `json:"score"`
	TimeSpent int `json:"time_spent"`
}

func (h *MinigameHandler) Finish(c *gin.Context) {
	attemptID, err := strconv.Atoi(c.Param("id"))
	if err != nil || attemptID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid attempt id"})
		return
	}
	var req finishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	result, err := h.games.Finish(c.Request.Context(), middleware.GetUserID(c), uint(attemptID), req.Score, req.TimeSpent)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"money":   result.Money,
		"balance": result.Balance,
	})
}
