package services

import (
	"errors"
	"strings"
)

// Общие ошибки, используемые в сервисах и маппинге HTTP.
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrDuplicateEmail   = errors.New("This email is already registered")
	ErrArchiveDisabled  = errors.New("export archiving is not configured")
)

// ValidationError несёт полный список сообщений валидации в порядке проверки.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return ErrValidationFailed.Error() + ": " + strings.Join(e.Messages, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
