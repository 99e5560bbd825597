package domain

import "errors"

var (
	ErrEmptyTitle      = errors.New("task title is empty")
	ErrInvalidPosition = errors.New("invalid task number")
	ErrArchiveNotFound = errors.New("archive file not found")
)
