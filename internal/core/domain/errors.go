package domain

import "errors"

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCourseNotFound     = errors.New("course not found")
	ErrInvalidCourseID    = errors.New("invalid course id")
	ErrCourseValidation   = errors.New("invalid course")
	ErrInternal           = errors.New("internal server error")
)
