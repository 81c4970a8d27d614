package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/hackathon-registration/services"
)

const registrationSuccessMessage = "Registration successful!"

type RegistrationHandler struct {
	registrationService services.RegistrationService
	logger              *slog.Logger
}

func NewRegistrationHandler(rs services.RegistrationService, logger *slog.Logger) *RegistrationHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RegistrationHandler{
		registrationService: rs,
		logger:              logger,
	}
}

// Form отдаёт страницу с формой регистрации.
func (h *RegistrationHandler) Form(w http.ResponseWriter, r *http.Request) {
	if err := renderPage(w, "index.html", nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// Register принимает JSON-заявку.
// 200 — успех, 400 — ошибки валидации, 409 — email уже зарегистрирован.
func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input services.RegistrationInput
	if err := readJSON(w, r, &input); err != nil {
		failureResponse(w, r, h.logger, http.StatusBadRequest, []string{err.Error()})
		return
	}

	if _, err := h.registrationService.Register(r.Context(), input); err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	response := jsonResponse{"success": true, "message": registrationSuccessMessage}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}
