package models

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidID    = errors.New("invalid id")
	ErrValidation   = errors.New("validation error")
	ErrDuplicate    = errors.New("already exists")
	ErrUserNotFound = errors.New("user not found")
	ErrNotOwner     = errors.New("not the author")
)
