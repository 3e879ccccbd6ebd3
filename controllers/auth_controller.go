package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Shiva-026/Samvidhaan/models"
	"github.com/Shiva-026/Samvidhaan/utils"
)

// AuthController handles signup and login. There is no third-party login and
// no session state beyond the issued JWT.
type AuthController struct {
	db *gorm.DB
}

// NewAuthController creates an AuthController.
func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{db: db}
}

// Signup registers a new user with a bcrypt password digest. The duplicate
// check runs before the insert; the store's unique indexes remain the
// authoritative backstop for the benign race between concurrent signups.
func (a *AuthController) Signup(ctx *gin.Context) {
	type request struct {
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Username, email and password are required"})
		return
	}

	var existing models.User
	err := a.db.Where("username = ? OR email = ?", req.Username, req.Email).First(&existing).Error
	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already exists"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.Sugar.Errorf("signup duplicate check failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.Sugar.Errorf("signup password hashing failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := a.db.Create(&user).Error; err != nil {
		utils.Sugar.Errorf("signup insert failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "User created successfully"})
}

// Login verifies credentials and issues a 24h JWT. The error body is identical
// for an unknown username and a wrong password to avoid user enumeration.
func (a *AuthController) Login(ctx *gin.Context) {
	type request struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	var user models.User
	if err := a.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Sugar.Errorf("login lookup failed: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
			return
		}
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !utils.CheckPassword(user.PasswordHash, req.Password) {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username, utils.TokenLifetime)
	if err != nil {
		utils.Sugar.Errorf("login token generation failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":  "Login successful",
		"token":    token,
		"userId":   user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}
