package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shiva-026/Samvidhaan/config"
	"github.com/Shiva-026/Samvidhaan/controllers"
	"github.com/Shiva-026/Samvidhaan/middleware"
	"github.com/Shiva-026/Samvidhaan/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		// fallback to default recovery if logger failed to init
		r.Use(gin.Recovery())
	}

	r.Use(middleware.RequestID())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authController := controllers.NewAuthController(db)
	profileController := controllers.NewProfileController(db)
	kolkataController := controllers.NewKolkataController(db)
	historyController := controllers.NewHistoryController(db)
	nirbhayaController := controllers.NewNirbhayaController(db)
	learnController := controllers.NewLearnController(db)
	spinWheelController := controllers.NewSpinWheelController(db)
	amendmentController := controllers.NewAmendmentController(db)
	preambleController := controllers.NewPreambleController(db)

	auth := r.Group("")
	auth.Use(middleware.RateLimitMiddleware())
	auth.POST("/signup", authController.Signup)
	auth.POST("/login", authController.Login)

	protected := r.Group("")
	protected.Use(middleware.AuthRequired())
	protected.GET("/profile/:userId", profileController.GetProfile)
	protected.POST("/score", profileController.SaveScore)
	protected.POST("/progress", profileController.SaveProgress)

	// Quiz play requires no login; these stay outside the session guard.
	r.GET("/kolkata/questions", kolkataController.Questions)
	r.POST("/kolkata/check-answer", kolkataController.CheckAnswer)

	r.GET("/history/questions", historyController.Questions)
	r.POST("/history/check-answer", historyController.CheckAnswer)

	r.GET("/nirbhaya/questions", nirbhayaController.Questions)
	r.POST("/nirbhaya/check-answer", nirbhayaController.CheckAnswer)

	r.GET("/learn/questions/:level", learnController.Questions)
	r.POST("/learn/check-answer/:level", learnController.CheckAnswer)
	r.POST("/learn/submit-quiz/:level", learnController.SubmitQuiz)

	r.GET("/spin-wheel/topics", spinWheelController.Topics)
	r.GET("/spin-wheel/questions/:topic", spinWheelController.Questions)
	r.POST("/spin-wheel/check-answer", spinWheelController.CheckAnswer)

	r.GET("/amendments/all", amendmentController.All)
	r.GET("/amendments/game-data", amendmentController.GameData)

	r.GET("/preamble/questions", preambleController.Questions)
	r.GET("/preamble/cards", preambleController.Cards)
	r.POST("/preamble/check-answer", preambleController.CheckAnswer)
	r.POST("/preamble/save-score", preambleController.SaveScore)

	r.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	return r
}
