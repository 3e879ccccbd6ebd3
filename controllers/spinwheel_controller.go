package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shiva-026/Samvidhaan/models"
	"github.com/Shiva-026/Samvidhaan/utils"
)

const spinWheelQuestionsPerSpin = 3

// SpinWheelController serves the spin-wheel game: the topic list the wheel is
// built from and topic-filtered question samples. Question payloads include
// the correct answer; the front end reveals it after the wheel stops.
type SpinWheelController struct {
	db *gorm.DB
}

// NewSpinWheelController creates a SpinWheelController.
func NewSpinWheelController(db *gorm.DB) *SpinWheelController {
	return &SpinWheelController{db: db}
}

// Topics returns the distinct topics in lexicographic order.
func (s *SpinWheelController) Topics(ctx *gin.Context) {
	topics := []string{}
	err := s.db.Model(&models.SpinWheelQuestion{}).
		Distinct("topic").
		Order("topic").
		Pluck("topic", &topics).Error
	if err != nil {
		utils.Sugar.Errorf("spin wheel topics fetch failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "topics": topics})
}

// Questions returns 3 questions sampled uniformly from the given topic.
func (s *SpinWheelController) Questions(ctx *gin.Context) {
	topic := ctx.Param("topic")

	var questions []models.SpinWheelQuestion
	if err := s.db.Where("topic = ?", topic).Find(&questions).Error; err != nil {
		utils.Sugar.Errorf("spin wheel questions fetch failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}
	if len(questions) == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No questions found for this topic."})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":   true,
		"questions": utils.Sample(questions, spinWheelQuestionsPerSpin),
	})
}

// CheckAnswer grades case-insensitively and returns the correct answer letter
// with the explanation. No option-text resolution in this module.
func (s *SpinWheelController) CheckAnswer(ctx *gin.Context) {
	type request struct {
		QuestionID     uint   `json:"questionId"`
		SelectedOption string `json:"selectedOption"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil || req.QuestionID == 0 || req.SelectedOption == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Question ID and selected option are required."})
		return
	}

	var question models.SpinWheelQuestion
	if err := s.db.First(&question, req.QuestionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Question not found."})
			return
		}
		utils.Sugar.Errorf("spin wheel question lookup failed: %v", err)
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
