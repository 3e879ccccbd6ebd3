package models

import "time"

// GameScore holds one score per (user, game type). Saving again replaces the
// previous value rather than accumulating.
type GameScore struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	UserID   uint   `gorm:"uniqueIndex:idx_user_game;not null" json:"-"`
	GameType string `gorm:"size:64;uniqueIndex:idx_user_game;not null" json:"game_type"`
	Score    int    `gorm:"not null" json:"score"`
}

func (GameScore) TableName() string { return "game_scores" }

// LearningProgress holds one progress value per (user, section) with the same
// replace-on-write semantics as GameScore.
type LearningProgress struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	UserID   uint   `gorm:"uniqueIndex:idx_user_section;not null" json:"-"`
	Section  string `gorm:"size:64;uniqueIndex:idx_user_section;not null" json:"section"`
	Progress int    `gorm:"not null" json:"progress"`
}

func (LearningProgress) TableName() string { return "learning_progress" }

// PreambleScore is an append-only log of completed preamble quiz runs.
type PreambleScore struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index;not null" json:"user_id"`
	Score          int       `gorm:"not null" json:"score"`
	TotalQuestions int       `gorm:"not null" json:"total_questions"`
	CompletedAt    time.Time `json:"completed_at"`
}

func (PreambleScore) TableName() string { return "preamble_scores" }
