package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shiva-026/Samvidhaan/models"
	"github.com/Shiva-026/Samvidhaan/utils"
)

const preambleQuestionsPerRound = 5

// PreambleController serves the preamble learning cards, the preamble quiz,
// and its append-only score log. Score saving is the only quiz endpoint that
// writes, and it is a separate explicit call, never part of answer checking.
type PreambleController struct {
	db *gorm.DB
}

// NewPreambleController creates a PreambleController.
func NewPreambleController(db *gorm.DB) *PreambleController {
	return &PreambleController{db: db}
}

// Questions returns 5 questions sampled uniformly, correct answers included.
func (p *PreambleController) Questions(ctx *gin.Context) {
	var questions []models.PreambleQuestion
	if err := p.db.Find(&questions).Error; err != nil {
		utils.Sugar.Errorf("preamble questions fetch failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}
	if len(questions) == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No questions found."})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":   true,
		"questions": utils.Sample(questions, preambleQuestionsPerRound),
	})
}

// Cards returns the static learning cards ordered by id.
func (p *PreambleController) Cards(ctx *gin.Context) {
	var cards []models.PreambleCard
	if err := p.db.Order("id").Find(&cards).Error; err != nil {
		utils.Sugar.Errorf("preamble cards fetch failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}
	if len(cards) == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No cards found."})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "cards": cards})
}

// CheckAnswer grades case-insensitively and returns the correct answer with
// the explanation.
func (p *PreambleController) CheckAnswer(ctx *gin.Context) {
	type request struct {
		QuestionID     uint   `json:"questionId"`
		SelectedOption string `json:"selectedOption"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil || req.QuestionID == 0 || req.SelectedOption == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Question ID and selected option are required."})
		return
	}

	var question models.PreambleQuestion
	if err := p.db.First(&question, req.QuestionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Question not found."})
			return
		}
		utils.Sugar.Errorf("preamble question lookup failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":       true,
		"correct":       strings.EqualFold(question.CorrectAnswer, req.SelectedOption),
		"correctAnswer": question.CorrectAnswer,
		"explanation":   question.Explanation,
	})
}

// SaveScore appends a completed-run record. No upsert: every completed quiz
// adds a new row.
func (p *PreambleController) SaveScore(ctx *gin.Context) {
	type request struct {
		UserID         uint `json:"userId" binding:"required"`
		Score          int  `json:"score"`
		TotalQuestions int  `json:"totalQuestions" binding:"required"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid request payload"})
		return
	}

	record := models.PreambleScore{
		UserID:         req.UserID,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
		CompletedAt:    time.Now(),
	}
	if err := p.db.Create(&record).Error; err != nil {
		utils.Sugar.Errorf("preamble score insert failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Score saved successfully",
		"scoreId": record.ID,
	})
}
