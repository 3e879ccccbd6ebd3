package models

// Amendment is read-only reference data for the amendment matching game.
type Amendment struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	AmendmentNumber  string `gorm:"column:amendment_number" json:"amendment_number"`
	AmendmentTitle   string `gorm:"column:amendment_title" json:"amendment_title"`
	ShortDescription string `gorm:"column:short_description" json:"short_description"`
	FullDescription  string `gorm:"column:full_description" json:"full_description"`
	Impact           string `gorm:"column:impact" json:"impact"`
	Year             int    `gorm:"column:year" json:"year"`
}

func (Amendment) TableName() string { return "amendments" }
