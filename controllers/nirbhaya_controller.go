package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shiva-026/Samvidhaan/models"
	"github.com/Shiva-026/Samvidhaan/utils"
)

// NirbhayaController serves the women-safety quiz. Unlike Kolkata and
// History, its rows carry an explanation returned with every answer check.
type NirbhayaController struct {
	db *gorm.DB
}

// NewNirbhayaController creates a NirbhayaController.
func NewNirbhayaController(db *gorm.DB) *NirbhayaController {
	return &NirbhayaController{db: db}
}

// Questions returns every question ordered by id as a bare array.
func (n *NirbhayaController) Questions(ctx *gin.Context) {
	questions := []models.NirbhayaQuestion{}
	if err := n.db.Order("id ASC").Find(&questions).Error; err != nil {
		utils.Sugar.Errorf("nirbhaya questions fetch failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch questions"})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// CheckAnswer compares case-sensitively and always includes the explanation.
func (n *NirbhayaController) CheckAnswer(ctx *gin.Context) {
	type request struct {
		ID             uint   `json:"id"`
		SelectedOption string `json:"selectedOption"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil || req.ID == 0 || req.SelectedOption == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing question ID or selected option"})
		return
	}

	var question models.NirbhayaQuestion
	if err := n.db.First(&question, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Question not found"})
			return
		}
		utils.Sugar.Errorf("nirbhaya question lookup failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to check answer"})
		return
	}

	if question.CorrectAnswer == req.SelectedOption {
		ctx.JSON(http.StatusOK, gin.H{"success": true, "correct": true, "explanation": question.Explanation})
		return
	}

	correctText, ok := question.OptionText(question.CorrectAnswer)
	if !ok {
		utils.Sugar.Errorf("nirbhaya question %d has malformed correct answer %q", question.ID, question.CorrectAnswer)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to check answer"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":           true,
		"correct":           false,
		"correctAnswerText": correctText,
		"explanation":       question.Explanation,
	})
}
