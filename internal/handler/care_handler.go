package handler

import (
	"net/http"
	"strconv"

	"tamapet/internal/middleware"
	"tamapet/internal/service"

	"github.com/gin-gonic/gin"
)

type CareHandler struct {
	care *service.CareService
}

func NewCareHandler(care *service.CareService) *CareHandler {
	return &CareHandler{care: care}
}

type careActionRequest struct {
	Slot     int  `json:"animal_id" binding:"required,min=1,max=3"`
	ActionID uint `json:"action_id" binding:"required"`
}

// PerformAction runs a care action and returns the emotion change.
func (h *CareHandler) PerformAction(c *gin.Context) {
	var req careActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	result, err := h.care.PerformCareAction(c.Request.Context(), middleware.GetUserID(c), req.Slot, req.ActionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"predicted_delta":  result.PredictedDelta,
		"previous_emotion": result.PreviousEmotion,
		"new_emotion":      result.NewEmotion,
		"action_name":      result.ActionName,
		"success":          true,
	})
}

// ListActions returns catalog actions for a category and stage.
func (h *CareHandler) ListActions(c *gin.Context) {
	category := c.Query("category")
	stage, err := strconv.Atoi(c.DefaultQuery("stage", "1"))
	if err != nil || stage < 1 || stage > 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stage"})
		return
	}
	actions, err := h.care.ListActions(c.Request.Context(), category, stage)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"actions": actions})
}

type messageRequest struct {
	Category       string  `json:"category" binding:"required"`
	PredictedDelta float64 `json:"predicted_delta"`
}

// ResultMessage returns the animal's reaction line for a care result.
func (h *CareHandler) ResultMessage(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	msg, err := h.care.ResultMessage(c.Request.Context(), req.Category, req.PredictedDelta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
