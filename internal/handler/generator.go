package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/metrics"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

// GeneratorHandler handles HTTP requests for generation and strength
// checking.
type GeneratorHandler struct {
	service *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(svc *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{service: svc}
}

// HandlePassword handles POST /api/v1/generate/password requests.
func (h *GeneratorHandler) HandlePassword(w http.ResponseWriter, r *http.Request) {
	var req model.PasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.GeneratePassword(req)
	if err != nil {
		metrics.ObserveGeneration("password", "error")
		writeGenerationError(w, err)
		return
	}

	metrics.ObserveGeneration("password", "ok")
	writeJSON(w, http.StatusOK, resp)
}

// HandlePassphrase handles POST /api/v1/generate/passphrase requests.
func (h *GeneratorHandler) HandlePassphrase(w http.ResponseWriter, r *http.Request) {
	var req model.PassphraseRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.GeneratePassphrase(req)
	if err != nil {
		metrics.ObserveGeneration("passphrase", "error")
		writeGenerationError(w, err)
		return
	}

	metrics.ObserveGeneration("passphrase", "ok")
	writeJSON(w, http.StatusOK, resp)
}

// HandleStrength handles POST /api/v1/strength requests. Scoring never
// fails; malformed bodies are the only rejection.
func (h *GeneratorHandler) HandleStrength(w http.ResponseWriter, r *http.Request) {
	var req model.StrengthRequest
	if !decodeBody(w, r, &req) {
		return
	}

	metrics.ObserveStrengthCheck()
	writeJSON(w, http.StatusOK, h.service.CheckStrength(req))
}

// decodeBody decodes a JSON request body into dst, writing the error
// response itself when decoding fails. An empty body is accepted and
// leaves dst at its zero value, so every field takes its default.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if r.Body == nil {
		return true
	}
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}
	return true
}

func writeGenerationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, crypto.ErrNoCharacterSets), errors.Is(err, crypto.ErrNonPositiveMax):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, crypto.ErrWordListUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
