package services

import (
	"errors"

	"github.com/ekaraca/gymhub-backend/internal/repository"
)

var (
	// ErrForbidden: authenticated but not allowed to perform the action.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidCredentials: login with an unknown user or wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotFound and ErrConflict are re-exported so handlers depend on one
	// package for error mapping.
	ErrNotFound = repository.ErrNotFound
	ErrConflict = repository.ErrConflict
)
