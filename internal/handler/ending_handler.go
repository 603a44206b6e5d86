package handler

import (
	"net/http"

	"tamapet/internal/middleware"
	"tamapet/internal/service"

	"github.com/gin-gonic/gin"
)

type EndingHandler struct {
	ending *service.EndingService
}

func NewEndingHandler(ending *service.EndingService) *EndingHandler {
	return &EndingHandler{ending: ending}
}

// Reset wipes the account and returns the fresh-start state.
func (h *EndingHandler) Reset(c *gin.Context) {
	if err := h.ending.Reset(c.Request.Context(), middleware.GetUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"money": 0,
		"animals": []gin.H{
			{"animal_id": 1, "name": nil, "current_emotion": 50, "is_runaway": false},
			{"animal_id": 2, "name": nil, "current_emotion": 50, "is_runaway": false},
			{"animal_id": 3, "name": nil, "current_emotion": 50, "is_runaway": false},
		},
		"total_play_days":  0,
		"total_used_money": 0,
	})
}

func (h *EndingHandler) Summary(c *gin.Context) {
	summary, err := h.ending.Summary(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
