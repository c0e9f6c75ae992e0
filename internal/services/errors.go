package services

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProblemNotFound = errors.New("problem not found")
	ErrTaskNotFound    = errors.New("task not found")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
