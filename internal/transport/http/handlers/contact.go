package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/amankhan2005/DecoderHealth/internal/application/contact"
	"github.com/amankhan2005/DecoderHealth/internal/transport/http/response"
)

type ContactHandler struct {
	svc *contact.Service
	lg  zerolog.Logger
}

func NewContactHandler(svc *contact.Service, lg zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		svc: svc,
		lg:  lg.With().Str("component", "contact_handler").Logger(),
	}
}

type createLeadRequest struct {
	Name       string `json:"name" validate:"required,max=120"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"omitempty,max=20"`
	Message    string `json:"message" validate:"omitempty,max=4000"`
	LeadSource string `json:"leadSource" validate:"omitempty,max=80"`
}

// Save handles POST /contact/save.
func (h *ContactHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req createLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Message(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validateRequest(req); err != nil {
		response.Err(w, err)
		return
	}

	lead, err := h.svc.Create(r.Context(), req.Name, req.Email, req.Phone, req.Message, req.LeadSource)
	if err != nil {
		h.lg.Error().Err(err).Msg("creating lead failed")
		response.Err(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"lead":    toLeadDTO(lead),
	})
}

// GetAll handles GET /contact/getall with optional status / leadSource
// equality filters.
func (h *ContactHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	leads, err := h.svc.List(r.Context(), q.Get("status"), q.Get("leadSource"))
	if err != nil {
		h.lg.Error().Err(err).Msg("listing leads failed")
		response.Err(w, err)
		return
	}

	out := make([]leadDTO, 0, len(leads))
	for _, l := range leads {
		out = append(out, toLeadDTO(l))
	}
	response.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"count":   len(out),
		"leads":   out,
	})
}

// GetByID handles GET /contact/{id}.
func (h *ContactHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	lead, err := h.svc.Get(r.Context(), id)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"lead":    toLeadDTO(lead),
	})
}

// Delete handles DELETE /contact/delete/{id}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.svc.Delete(r.Context(), id); err != nil {
		response.Err(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Lead deleted.",
	})
}
