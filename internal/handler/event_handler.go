package handler

import (
	"net/http"
	"strconv"
	"time"

	"tamapet/internal/middleware"
	"tamapet/internal/service"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	attendance *service.AttendanceService
	birthdays  *service.BirthdayService
}

func NewEventHandler(attendance *service.AttendanceService, birthdays *service.BirthdayService) *EventHandler {
	return &EventHandler{attendance: attendance, birthdays: birthdays}
}

func (h *EventHandler) GetAttendance(c *gin.Context) {
	data, err := h.attendance.Board(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *EventHandler) CheckIn(c *gin.Context) {
	data, err := h.attendance.CheckIn(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *EventHandler) BirthdayReward(c *gin.Context) {
	slot, err := strconv.Atoi(c.Param("slot"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid animal id"})
		return
	}
	result, err := h.birthdays.GiveReward(c.Request.Context(), middleware.GetUserID(c), slot, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"amount":  result.Amount,
		"balance": result.Balance,
	})
}
