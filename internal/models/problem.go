package models

// Problem is seeded once and read-only through the API. CorrectAnswer may
// hold several acceptable values separated by ';' or ',' ("2;3").
type Problem struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Title         string `gorm:"size:128;not null" json:"title"`
	Description   string `gorm:"type:text;not null" json:"description"`
	Subject       string `gorm:"size:16;not null;index" json:"subject"`
	Difficulty    string `gorm:"size:16;not null" json:"difficulty"`
	CorrectAnswer string `gorm:"size:256;not null" json:"-"`
	Points        int    `gorm:"not null;default:10" json:"points"`
}

const (
	SubjectMath        = "math"
	SubjectInformatics = "informatics"

	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)
