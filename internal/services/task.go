package services

import (
	"errors"
	"time"

	"github.com/ArtemTurin1/miniapp/internal/models"

	"gorm.io/gorm"
)

type TaskService struct {
	db    *gorm.DB
	users *UserService
}

func NewTaskService(db *gorm.DB, users *UserService) *TaskService {
	return &TaskService{db: db, users: users}
}

// ListByTelegramID returns the user's tasks newest first. An unknown
// telegram id reads as a user with no tasks, not an error.
func (s *TaskService) ListByTelegramID(tgID int64) ([]models.Task, error) {
	user, err := s.users.GetByTelegramID(tgID)
	if errors.Is(err, ErrUserNotFound) {
		return []models.Task{}, nil
	}
	if err != nil {
		return nil, err
	}

	tasks := []models.Task{}
	if err := s.db.Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskService) Create(tgID int64, title string) (*models.Task, error) {
	user, err := s.users.GetOrCreateByTelegramID(tgID)
	if err != nil {
		return nil, err
	}

	task := models.Task{
		UserID:    user.ID,
		Title:     title,
		CreatedAt: time.Now(),
	}
	if err := s.db.Create(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// Complete marks a task done. Completing an already-completed task is a
// no-op that still returns the task.
func (s *TaskService) Complete(taskID uint) (*models.Task, error) {
	var task models.Task
	err := s.db.First(&task, taskID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}

	if task.Completed {
		return &task, nil
	}

	task.Completed = true
	if err := s.db.Model(&task).Update("completed", true).Error; err != nil {
		return nil, err
	}
	return &task, nil
}
