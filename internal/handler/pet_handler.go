package handler

import (
	"net/http"
	"strconv"

	"tamapet/internal/domain"
	"tamapet/internal/middleware"
	"tamapet/internal/service"

	"github.com/gin-gonic/gin"
)

type PetHandler struct {
	pets *service.PetService
}

func NewPetHandler(pets *service.PetService) *PetHandler {
	return &PetHandler{pets: pets}
}

type nicknameRequest struct {
	Animals []service.Nickname `json:"animals" binding:"required"`
}

// RegisterNicknames names all three animals, creating them.
func (h *PetHandler) RegisterNicknames(c *gin.Context) {
	var req nicknameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	result, err := h.pets.RegisterNicknames(c.Request.Context(), middleware.GetUserID(c), req.Animals)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"animals": result})
}

func (h *PetHandler) GetAnimal(c *gin.Context) {
	slot, ok := slotParam(c)
	if !ok {
		return
	}
	animal, err := h.pets.GetAnimal(c.Request.Context(), middleware.GetUserID(c), slot)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"animal":  animal,
		"species": domain.SpeciesForSlot[slot],
	})
}

func (h *PetHandler) ReturnRunaway(c *gin.Context) {
	slot, ok := slotParam(c)
	if !ok {
		return
	}
	result, err := h.pets.ReturnRunaway(c.Request.Context(), middleware.GetUserID(c), slot)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"animal":  result.Animal,
		"balance": result.Balance,
	})
}

func (h *PetHandler) PriceList(c *gin.Context) {
	slot, ok := slotParam(c)
	if !ok {
		return
	}
	category := c.Query("category")
	prices, stage, err := h.pets.PriceList(c.Request.Context(), middleware.GetUserID(c), slot, category)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"animal_id":       slot,
		"evolution_stage": stage,
		"category":        category,
		"prices":          prices,
	})
}

// slotParam parses the :slot path parameter, responding 400 on garbage.
func slotParam(c *gin.Context) (int, bool) {
	slot, err := strconv.Atoi(c.Param("slot"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid animal id"})
		return 0, false
	}
	return slot, true
}
