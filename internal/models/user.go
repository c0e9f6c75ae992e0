package models

import "time"

// User is created either lazily on first contact from the Telegram bot
// (TelegramID set) or through email registration (Email + PasswordHash set).
// Level is derived: score/100 + 1, recalculated on every score change.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	TelegramID   *int64    `gorm:"uniqueIndex" json:"telegram_id,omitempty"`
	Email        *string   `gorm:"size:255;uniqueIndex" json:"email,omitempty"`
	PasswordHash string    `gorm:"size:255" json:"-"`
	Name         string    `gorm:"size:100" json:"name"`
	Score        int       `gorm:"not null;default:0" json:"score"`
	Level        int       `gorm:"not null;default:1" json:"level"`
	CreatedAt    time.Time `json:"created_at"`
}
