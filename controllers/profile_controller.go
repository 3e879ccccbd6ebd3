package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Shiva-026/Samvidhaan/models"
	"github.com/Shiva-026/Samvidhaan/utils"
)

// ProfileController serves the profile read and the score/progress writes.
// All three routes sit behind the session guard.
type ProfileController struct {
	db *gorm.DB
}

// NewProfileController creates a ProfileController.
func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{db: db}
}

// GetProfile returns identity fields joined with every game score and
// learning progress row, plus the derived total_score (sum over zero rows
// is 0). Any valid token may read any profile; the original behaves the same
// way and the contract is preserved.
func (p *ProfileController) GetProfile(ctx *gin.Context) {
	userID, err := strconv.ParseUint(ctx.Param("userId"), 10, 64)
	if err != nil {
		// A non-numeric id can never match a row.
		ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var user models.User
	if err := p.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		utils.Sugar.Errorf("profile user lookup failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	scores := []models.GameScore{}
	if err := p.db.Where("user_id = ?", user.ID).Find(&scores).Error; err != nil {
		utils.Sugar.Errorf("profile score lookup failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	progress := []models.LearningProgress{}
	if err := p.db.Where("user_id = ?", user.ID).Find(&progress).Error; err != nil {
		utils.Sugar.Errorf("profile progress lookup failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	totalScore := 0
	for _, s := range scores {
		totalScore += s.Score
	}

	ctx.JSON(http.StatusOK, gin.H{
		"id":                user.ID,
		"username":          user.Username,
		"email":             user.Email,
		"game_scores":       scores,
		"learning_progress": progress,
		"total_score":       totalScore,
	})
}

// SaveScore upserts the score for a (user, game type) pair. A resubmission
// replaces the stored value; score ranges are the caller's responsibility.
func (p *ProfileController) SaveScore(ctx *gin.Context) {
	type request struct {
		UserID   uint   `json:"userId" binding:"required"`
		GameType string `json:"gameType" binding:"required"`
		Score    int    `json:"score"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	record := models.GameScore{UserID: req.UserID, GameType: req.GameType, Score: req.Score}
	err := p.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "game_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"score"}),
	}).Create(&record).Error
	if err != nil {
		utils.Sugar.Errorf("score upsert failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Score saved successfully"})
}

// SaveProgress upserts the learning progress for a (user, section) pair with
// the same replace-on-write semantics as SaveScore.
func (p *ProfileController) SaveProgress(ctx *gin.Context) {
	type request struct {
		UserID   uint   `json:"userId" binding:"required"`
		Section  string `json:"section" binding:"required"`
		Progress int    `json:"progress"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	record := models.LearningProgress{UserID: req.UserID, Section: req.Section, Progress: req.Progress}
	err := p.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "section"}},
		DoUpdates: clause.AssignmentColumns([]string{"progress"}),
	}).Create(&record).Error
	if err != nil {
		utils.Sugar.Errorf("progress upsert failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Progress saved successfully"})
}
