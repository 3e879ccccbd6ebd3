package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shiva-026/Samvidhaan/models"
	"github.com/Shiva-026/Samvidhaan/utils"
)

// HistoryController serves the freedom-struggle history quiz.
type HistoryController struct {
	db *gorm.DB
}

// NewHistoryController creates a HistoryController.
func NewHistoryController(db *gorm.DB) *HistoryController {
	return &HistoryController{db: db}
}

// Questions returns every question ordered by id. The response is a bare
// array, not wrapped in a success envelope; clients depend on this shape.
func (h *HistoryController) Questions(ctx *gin.Context) {
	questions := []models.HistoryQuestion{}
	if err := h.db.Order("id ASC").Find(&questions).Error; err != nil {
		utils.Sugar.Errorf("history questions fetch failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history questions"})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// CheckAnswer compares case-sensitively against the stored correct option.
func (h *HistoryController) CheckAnswer(ctx *gin.Context) {
	type request struct {
		ID             uint   `json:"id"`
		SelectedOption string `json:"selectedOption"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil || req.ID == 0 || req.SelectedOption == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing question ID or selected option"})
		return
	}

	var question models.HistoryQuestion
	if err := h.db.First(&question, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Question not found"})
			return
		}
		utils.Sugar.Errorf("history question lookup failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to check answer"})
		return
	}

	if question.CorrectOption == req.SelectedOption {
		ctx.JSON(http.StatusOK, gin.H{"success": true, "correct": true})
		return
	}

	correctText, ok := question.OptionText(question.CorrectOption)
	if !ok {
		utils.Sugar.Errorf("history question %d has malformed correct option %q", question.ID, question.CorrectOption)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to check answer"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "correct": false, "correctAnswerText": correctText})
}
