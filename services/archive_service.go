package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dosada05/hackathon-registration/storage"
)

const archiveKeyPrefix = "exports/hackathon_registrations_"

type ArchiveResult struct {
	Key  string `json:"key"`
	URL  string `json:"url"`
	Rows int    `json:"rows"`
}

// ArchiveService сохраняет снимок CSV-экспорта в объектное хранилище.
type ArchiveService interface {
	Archive(ctx context.Context) (*ArchiveResult, error)
}

type archiveService struct {
	exportService ExportService
	uploader      storage.FileUploader
	now           func() time.Time
	logger        *slog.Logger
}

// NewArchiveService принимает nil uploader, если хранилище не настроено; тогда Archive возвращает ErrArchiveDisabled.
func NewArchiveService(exportService ExportService, uploader storage.FileUploader, logger *slog.Logger) ArchiveService {
	if logger == nil {
		logger = slog.Default()
	}
	return &archiveService{
		exportService: exportService,
		uploader:      uploader,
		now:           time.Now,
		logger:        logger,
	}
}

func (s *archiveService) Archive(ctx context.Context) (*ArchiveResult, error) {
	if s.uploader == nil {
		return nil, ErrArchiveDisabled
	}

	regs, err := s.exportService.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := WriteRegistrationsCSV(&buf, regs); err != nil {
		return nil, err
	}

	key := archiveKeyPrefix + s.now().UTC().Format("20060102T150405Z") + ".csv"
	res, err := s.uploader.Upload(ctx, key, "text/csv", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to archive export: %w", err)
	}

	s.logger.InfoContext(ctx, "export archived", slog.String("key", res.Key), slog.Int("rows", len(regs)))
	return &ArchiveResult{Key: res.Key, URL: res.Location, Rows: len(regs)}, nil
}
