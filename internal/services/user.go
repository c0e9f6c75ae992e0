package services

import (
	"errors"

	"github.com/ArtemTurin1/miniapp/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetOrCreateByTelegramID returns the user with the given telegram id,
// creating one on first contact. Two concurrent first contacts may both
// try the insert; the unique index rejects the loser, which then retries
// as a lookup so exactly one row survives.
func (s *UserService) GetOrCreateByTelegramID(tgID int64) (*models.User, error) {
	var user models.User
	if err := s.db.Where("telegram_id = ?", tgID).First(&user).Error; err == nil {
		return &user, nil
	}

	user = models.User{TelegramID: &tgID, Level: 1}
	err := s.db.Create(&user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		if err := s.db.Where("telegram_id = ?", tgID).First(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetByTelegramID(tgID int64) (*models.User, error) {
	var user models.User
	err := s.db.Where("telegram_id = ?", tgID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// RegisterByEmail creates an email/password account. The duplicate-key
// branch covers the race where two registrations pass the existence
// check at the same time.
func (s *UserService) RegisterByEmail(email, password, name string) (*models.User, error) {
	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        &email,
		PasswordHash: string(hash),
		Name:         name,
		Level:        1,
	}
	err = s.db.Create(&user).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CheckCredentials verifies an email/password pair. Accounts created via
// telegram only (no stored hash) always fail.
func (s *UserService) CheckCredentials(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if user.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}
