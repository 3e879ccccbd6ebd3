package models

// PreambleCard is static learning content shown before the preamble quiz.
type PreambleCard struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	CardTitle   string `gorm:"column:card_title" json:"card_title"`
	CardContent string `gorm:"column:card_content" json:"card_content"`
	CardType    string `gorm:"column:card_type" json:"card_type"`
}

func (PreambleCard) TableName() string { return "preamble_cards" }
