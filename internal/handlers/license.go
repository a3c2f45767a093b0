package handlers

import (
	"log/slog"
	"net/http"

	"github.com/cheetahbyte/clavekey/internal/handlers/dto"
)

func (h *Handlers) CreateLicense(w http.ResponseWriter, r *http.Request) {
	var data dto.LicenseCreationRequest
	if err := decodeJSON(w, r, &data); err != nil {
		slog.Error("failed to read body", "err", err.Error())
		return
	}

	result, err := h.Services.License().NewLicense(r.Context(), data)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (h *Handlers) ValidateLicense(w http.ResponseWriter, r *http.Request) {
	var data dto.LicenseValidationRequest
	if err := decodeJSON(w, r, &data); err != nil {
		return
	}

	result, err := h.Services.Validation().Validate(r.Context(), data)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handlers) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
