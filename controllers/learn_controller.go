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

const learnQuestionsPerRound = 5

// LearnController serves the five-level learn module: sampled question sets,
// single answer checks, and whole-quiz batch submission. Every handler
// validates the level against the fixed allow-list before a table name is
// chosen; nothing from the path ever reaches query text.
type LearnController struct {
	db *gorm.DB
}

// NewLearnController creates a LearnController.
func NewLearnController(db *gorm.DB) *LearnController {
	return &LearnController{db: db}
}

// Questions returns 5 questions sampled uniformly from the level's table.
func (l *LearnController) Questions(ctx *gin.Context) {
	table, ok := models.LearnQuizTable(ctx.Param("level"))
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid level. Must be between 1-5."})
		return
	}

	var questions []models.LearnQuestion
	if err := l.db.Table(table).Find(&questions).Error; err != nil {
		utils.Sugar.Errorf("learn questions fetch failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}
	if len(questions) == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No questions found for this level."})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":   true,
		"questions": utils.Sample(questions, learnQuestionsPerRound),
	})
}

// CheckAnswer grades one answer case-insensitively and always returns the
// correct letter, its option text, and the explanation.
func (l *LearnController) CheckAnswer(ctx *gin.Context) {
	table, ok := models.LearnQuizTable(ctx.Param("level"))
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid level. Must be between 1-5."})
		return
	}

	type request struct {
		QuestionID     uint   `json:"questionId"`
		SelectedOption string `json:"selectedOption"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil || req.QuestionID == 0 || req.SelectedOption == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Question ID and selected option are required."})
		return
	}

	var question models.LearnQuestion
	if err := l.db.Table(table).Where("id = ?", req.QuestionID).Take(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Question not found."})
			return
		}
		utils.Sugar.Errorf("learn question lookup failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	correctText, ok := question.OptionText(question.CorrectAnswer)
	if !ok {
		utils.Sugar.Errorf("learn question %d has malformed correct answer %q", question.ID, question.CorrectAnswer)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":           true,
		"correct":           strings.EqualFold(question.CorrectAnswer, req.SelectedOption),
		"correctAnswer":     question.CorrectAnswer,
		"correctAnswerText": correctText,
		"explanation":       question.Explanation,
	})
}

// SubmitQuiz grades an ordered batch of answers. Unknown question ids are
// skipped without failing the batch but still count toward the submitted
// total; the percentage denominator is the submitted count. An empty answers
// array is rejected rather than producing an undefined percentage.
func (l *LearnController) SubmitQuiz(ctx *gin.Context) {
	table, ok := models.LearnQuizTable(ctx.Param("level"))
	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid level. Must be between 1-5."})
		return
	}

	type answer struct {
		QuestionID     uint   `json:"questionId"`
		SelectedOption string `json:"selectedOption"`
	}
	type request struct {
		Answers []answer `json:"answers"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Answers == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Answers array is required."})
		return
	}
	if len(req.Answers) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Answers array must not be empty."})
		return
	}

	correctCount := 0
	results := make([]gin.H, 0, len(req.Answers))

	for _, ans := range req.Answers {
		var question models.LearnQuestion
		err := l.db.Table(table).Where("id = ?", ans.QuestionID).Take(&question).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			utils.Sugar.Errorf("learn submit lookup failed: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}

		isCorrect := strings.EqualFold(question.CorrectAnswer, ans.SelectedOption)
		if isCorrect {
			correctCount++
		}
		results = append(results, gin.H{
			"questionId":    ans.QuestionID,
			"correct":       isCorrect,
			"correctAnswer": question.CorrectAnswer,
			"explanation":   question.Explanation,
		})
	}

	total := len(req.Answers)
	ctx.JSON(http.StatusOK, gin.H{
		"success":    true,
		"score":      correctCount,
		"total":      total,
		"percentage": float64(correctCount) / float64(total) * 100,
		"results":    results,
	})
}
