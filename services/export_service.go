package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Dosada05/hackathon-registration/models"
	"github.com/Dosada05/hackathon-registration/repositories"
)

// ExportFileName — имя файла, под которым отдаётся CSV.
const ExportFileName = "hackathon_registrations.csv"

var csvHeader = []string{
	"ID", "Full Name", "Email", "Phone", "Participation Type", "Team Members",
	"Skill Level", "Project Idea", "Wants Free License",
	"Availability Confirmed", "Share Recordings", "Social Handle", "Registered At",
}

type ExportService interface {
	ListAll(ctx context.Context) ([]models.Registration, error)
	ExportCSV(ctx context.Context, w io.Writer) error
	Stats(ctx context.Context) (*models.RegistrationStats, error)
}

type exportService struct {
	registrationRepo repositories.RegistrationRepository
}

func NewExportService(registrationRepo repositories.RegistrationRepository) ExportService {
	return &exportService{registrationRepo: registrationRepo}
}

// ListAll возвращает все заявки, новые первыми. Пагинации нет: ожидается небольшое число строк.
func (s *exportService) ListAll(ctx context.Context) ([]models.Registration, error) {
	regs, err := s.registrationRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	return regs, nil
}

func (s *exportService) ExportCSV(ctx context.Context, w io.Writer) error {
	regs, err := s.ListAll(ctx)
	if err != nil {
		return err
	}
	return WriteRegistrationsCSV(w, regs)
}

func (s *exportService) Stats(ctx context.Context) (*models.RegistrationStats, error) {
	regs, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeStats(regs), nil
}

// WriteRegistrationsCSV пишет заголовок и по строке на заявку в переданном порядке.
func WriteRegistrationsCSV(w io.Writer, regs []models.Registration) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for i := range regs {
		if err := cw.Write(csvRecord(&regs[i])); err != nil {
			return fmt.Errorf("failed to write csv row for registration %d: %w", regs[i].ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRecord(r *models.Registration) []string {
	return []string{
		strconv.Itoa(r.ID),
		r.FullName,
		r.Email,
		derefString(r.Phone),
		r.ParticipationType.Label(),
		derefString(r.TeamMembers),
		r.SkillLevel.Label(),
		r.ProjectIdea,
		yesNo(r.WantsFreeLicense),
		yesNo(r.AvailabilityConfirmed),
		yesNo(r.ShareRecordings),
		derefString(r.SocialHandle),
		r.CreatedAt,
	}
}

// ComputeStats считает сводку по уже загруженному списку.
func ComputeStats(regs []models.Registration) *models.RegistrationStats {
	stats := &models.RegistrationStats{
		Total:           len(regs),
		ByParticipation: make(map[models.ParticipationType]int),
		BySkillLevel:    make(map[models.SkillLevel]int),
	}
	for _, r := range regs {
		stats.ByParticipation[r.ParticipationType]++
		stats.BySkillLevel[r.SkillLevel]++
		if r.WantsFreeLicense {
			stats.WantsFreeLicense++
		}
		if r.ShareRecordings {
			stats.ShareRecordings++
		}
	}
	return stats
}
