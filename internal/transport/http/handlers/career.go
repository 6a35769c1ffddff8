package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/amankhan2005/DecoderHealth/internal/application/career"
	"github.com/amankhan2005/DecoderHealth/internal/domain"
	"github.com/amankhan2005/DecoderHealth/internal/transport/http/response"
)

const maxMultipartMemory = 32 << 20

// ResumeStore persists an uploaded resume to disk.
type ResumeStore interface {
	SaveResume(fh *multipart.FileHeader) (domain.StoredFile, error)
}

type CareerHandler struct {
	dispatcher *career.Service
	uploads    ResumeStore
	lg         zerolog.Logger
}

func NewCareerHandler(dispatcher *career.Service, uploads ResumeStore, lg zerolog.Logger) *CareerHandler {
	return &CareerHandler{
		dispatcher: dispatcher,
		uploads:    uploads,
		lg:         lg.With().Str("component", "career_handler").Logger(),
	}
}

// Apply handles POST /career/apply. Validation failures answer 400 before
// any side effect; on success the 200 goes out first and the notification
// dispatch runs as a detached unit of work.
func (h *CareerHandler) Apply(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		response.Message(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	sub := domain.Submission{
		FullName:   r.FormValue("fullName"),
		Email:      r.FormValue("email"),
		Phone:      r.FormValue("phone"),
		Zip:        r.FormValue("zip"),
		City:       r.FormValue("city"),
		State:      r.FormValue("state"),
		Credential: r.FormValue("credential"),
		Interested: r.FormValue("interested"),
	}

	if err := sub.Validate(); err != nil {
		response.Err(w, err)
		return
	}

	file, fh, err := r.FormFile("resume")
	if err != nil {
		response.Message(w, http.StatusBadRequest, "Resume file is required.")
		return
	}
	_ = file.Close()

	stored, err := h.uploads.SaveResume(fh)
	if err != nil {
		var ae *domain.AppError
		if errors.As(err, &ae) && ae.Code == domain.CodeValidation {
			response.Err(w, err)
			return
		}
		h.lg.Error().Err(err).Msg("storing resume failed")
		response.JSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"message": "Failed to send application.",
			"error":   "could not store the uploaded file",
		})
		return
	}

	// Instant response; mail delivery never holds the caller.
	response.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Application submitted successfully.",
	})

	h.dispatcher.DispatchAsync(sub, stored)
}
