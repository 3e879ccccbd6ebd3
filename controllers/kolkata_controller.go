package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shiva-026/Samvidhaan/models"
	"github.com/Shiva-026/Samvidhaan/utils"
)

// KolkataController serves the Kolkata city quiz. No authentication: quiz
// play requires no login.
type KolkataController struct {
	db *gorm.DB
}

// NewKolkataController creates a KolkataController.
func NewKolkataController(db *gorm.DB) *KolkataController {
	return &KolkataController{db: db}
}

// Questions returns every question without the correct option.
func (k *KolkataController) Questions(ctx *gin.Context) {
	questions := []models.KolkataQuestion{}
	if err := k.db.Order("id").Find(&questions).Error; err != nil {
		utils.Sugar.Errorf("kolkata questions fetch failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch questions"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "questions": questions})
}

// CheckAnswer compares the submitted option against the stored correct
// option. The comparison is case-sensitive in this module.
func (k *KolkataController) CheckAnswer(ctx *gin.Context) {
	type request struct {
		ID             uint   `json:"id"`
		SelectedOption string `json:"selectedOption"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil || req.ID == 0 || req.SelectedOption == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing question ID or selected option"})
		return
	}

	var question models.KolkataQuestion
	if err := k.db.First(&question, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Question not found"})
			return
		}
		utils.Sugar.Errorf("kolkata question lookup failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to check answer"})
		return
	}

	if question.CorrectOption == req.SelectedOption {
		ctx.JSON(http.StatusOK, gin.H{"success": true, "correct": true})
		return
	}

	correctText, ok := question.OptionText(question.CorrectOption)
	if !ok {
		utils.Sugar.Errorf("kolkata question %d has malformed correct option %q", question.ID, question.CorrectOption)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to check answer"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "correct": false, "correctAnswerText": correctText})
}
