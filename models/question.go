package models

import "strings"

// OptionSet is the four answer slots shared by every quiz table. The correct
// indicator always names one of these slots; resolution goes through the fixed
// lookup below, never through string-built column access.
type OptionSet struct {
	OptionA string `gorm:"column:option_a" json:"option_a"`
	OptionB string `gorm:"column:option_b" json:"option_b"`
	OptionC string `gorm:"column:option_c" json:"option_c"`
	OptionD string `gorm:"column:option_d" json:"option_d"`
}

// OptionText resolves a correct-option letter to its stored option text.
// Returns false for anything outside a-d.
func (o OptionSet) OptionText(letter string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(letter)) {
	case "a":
		return o.OptionA, true
	case "b":
		return o.OptionB, true
	case "c":
		return o.OptionC, true
	case "d":
		return o.OptionD, true
	default:
		return "", false
	}
}

// KolkataQuestion is a row of the Kolkata city quiz. The correct option is a
// letter code and is never serialized in listings.
type KolkataQuestion struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Question string `gorm:"column:question" json:"question"`
	OptionSet
	CorrectOption string `gorm:"column:correct_option" json:"-"`
}

func (KolkataQuestion) TableName() string { return "kolkata_quiz" }

// HistoryQuestion mirrors KolkataQuestion for the history quiz table.
type HistoryQuestion struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Question string `gorm:"column:question" json:"question"`
	OptionSet
	CorrectOption string `gorm:"column:correct_option" json:"-"`
}

func (HistoryQuestion) TableName() string { return "history_quiz" }

// NirbhayaQuestion rows carry an explanation shown with every answer check.
type NirbhayaQuestion struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	QuestionText string `gorm:"column:question_text" json:"question_text"`
	OptionSet
	CorrectAnswer string `gorm:"column:correct_answer" json:"-"`
	Explanation   string `gorm:"column:explanation" json:"-"`
}

func (NirbhayaQuestion) TableName() string { return "nirbhaya_quiz" }

// LearnQuestion is a row of one of the five learn_level{n}_quiz tables; the
// table itself is chosen via LearnQuizTable, so no TableName is declared.
type LearnQuestion struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	QuestionText string `gorm:"column:question_text" json:"question_text"`
	OptionSet
	CorrectAnswer string `gorm:"column:correct_answer" json:"-"`
	Explanation   string `gorm:"column:explanation" json:"explanation"`
}

// learnTables is the fixed allow-list of learn quiz tables. Level strings that
// are not keys here must be rejected before any query is built.
var learnTables = map[string]string{
	"1": "learn_level1_quiz",
	"2": "learn_level2_quiz",
	"3": "learn_level3_quiz",
	"4": "learn_level4_quiz",
	"5": "learn_level5_quiz",
}

// LearnQuizTable maps a level path parameter to its table name. ok is false
// for anything outside levels 1-5.
func LearnQuizTable(level string) (string, bool) {
	table, ok := learnTables[level]
	return table, ok
}

// SpinWheelQuestion rows are grouped by topic. Listings deliberately include
// the correct answer; the front end reveals it after the wheel stops.
type SpinWheelQuestion struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	QuestionText string `gorm:"column:question_text" json:"question_text"`
	Topic        string `gorm:"column:topic" json:"-"`
	OptionSet
	CorrectAnswer string `gorm:"column:correct_answer" json:"correct_answer"`
	Explanation   string `gorm:"column:explanation" json:"explanation"`
}

func (SpinWheelQuestion) TableName() string { return "spin_wheel_questions" }

// PreambleQuestion rows back the preamble quiz; listings include the correct
// answer and explanation.
type PreambleQuestion struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	QuestionText string `gorm:"column:question_text" json:"question_text"`
	OptionSet
	CorrectAnswer string `gorm:"column:correct_answer" json:"correct_answer"`
	Explanation   string `gorm:"column:explanation" json:"explanation"`
}

func (PreambleQuestion) TableName() string { return "preamble_questions" }
