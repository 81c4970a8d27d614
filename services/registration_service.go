package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dosada05/hackathon-registration/models"
	"github.com/Dosada05/hackathon-registration/repositories"
)

type RegistrationService interface {
	Register(ctx context.Context, input RegistrationInput) (*models.Registration, error)
}

type registrationService struct {
	registrationRepo repositories.RegistrationRepository
	logger           *slog.Logger
}

func NewRegistrationService(registrationRepo repositories.RegistrationRepository, logger *slog.Logger) RegistrationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &registrationService{
		registrationRepo: registrationRepo,
		logger:           logger,
	}
}

// Register валидирует заявку и сохраняет её. Валидация всегда выполняется до обращения к хранилищу.
func (s *registrationService) Register(ctx context.Context, input RegistrationInput) (*models.Registration, error) {
	reg, messages := ValidateRegistration(input)
	if len(messages) > 0 {
		return nil, &ValidationError{Messages: messages}
	}

	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		if errors.Is(err, repositories.ErrRegistrationEmailConflict) {
			s.logger.InfoContext(ctx, "duplicate registration rejected", slog.String("email", reg.Email))
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}

	s.logger.InfoContext(ctx, "registration accepted",
		slog.Int("registration_id", reg.ID),
		slog.String("participation_type", string(reg.ParticipationType)),
	)
	return reg, nil
}
