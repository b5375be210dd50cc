package domain

import "errors"

var (
	ErrNotFound       = errors.New("project not found")
	ErrDuplicateTitle = errors.New("project already exist")
	ErrInvalidInput   = errors.New("invalid project input")
)
