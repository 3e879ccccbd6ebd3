package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shiva-026/Samvidhaan/models"
	"github.com/Shiva-026/Samvidhaan/utils"
)

const amendmentsPerGame = 4

// AmendmentController serves the constitutional amendments reference list and
// the matching-game subset.
type AmendmentController struct {
	db *gorm.DB
}

// NewAmendmentController creates an AmendmentController.
func NewAmendmentController(db *gorm.DB) *AmendmentController {
	return &AmendmentController{db: db}
}

// All returns every amendment ordered by year ascending.
func (a *AmendmentController) All(ctx *gin.Context) {
	var amendments []models.Amendment
	if err := a.db.Order("year").Find(&amendments).Error; err != nil {
		utils.Sugar.Errorf("amendments fetch failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}
	if len(amendments) == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No amendments found."})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "amendments": amendments})
}

// GameData returns 4 amendments chosen uniformly at random for the matching
// game. No repeatable seed is required.
func (a *AmendmentController) GameData(ctx *gin.Context) {
	var amendments []models.Amendment
	if err := a.db.Find(&amendments).Error; err != nil {
		utils.Sugar.Errorf("amendment game data fetch failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}
	if len(amendments) == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No amendments found for the game."})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":    true,
		"amendments": utils.Sample(amendments, amendmentsPerGame),
	})
}
