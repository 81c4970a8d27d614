package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/Dosada05/hackathon-registration/models"
	"github.com/Dosada05/hackathon-registration/services"
)

type AdminHandler struct {
	exportService  services.ExportService
	archiveService services.ArchiveService
	logger         *slog.Logger
}

func NewAdminHandler(es services.ExportService, as services.ArchiveService, logger *slog.Logger) *AdminHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdminHandler{
		exportService:  es,
		archiveService: as,
		logger:         logger,
	}
}

type adminPageData struct {
	Registrations []models.Registration
	Stats         *models.RegistrationStats
}

// Dashboard показывает все заявки, новые первыми.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	regs, err := h.exportService.ListAll(r.Context())
	if err != nil {
		serverErrorResponse(w, r, h.logger, err)
		return
	}

	data := adminPageData{
		Registrations: regs,
		Stats:         services.ComputeStats(regs),
	}
	if err := renderPage(w, "admin.html", data); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// ExportCSV отдаёт все заявки файлом hackathon_registrations.csv.
func (h *AdminHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	// Буферизуем, чтобы ошибка чтения не оборвала уже начатый ответ.
	var buf bytes.Buffer
	if err := h.exportService.ExportCSV(r.Context(), &buf); err != nil {
		serverErrorResponse(w, r, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+services.ExportFileName)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to write csv export", slog.Any("error", err))
	}
}

// Archive выгружает снимок CSV в объектное хранилище.
func (h *AdminHandler) Archive(w http.ResponseWriter, r *http.Request) {
	res, err := h.archiveService.Archive(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	response := jsonResponse{"success": true, "key": res.Key, "url": res.URL, "rows": res.Rows}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}
