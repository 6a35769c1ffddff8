package handlers

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/amankhan2005/DecoderHealth/internal/application/sitesettings"
	"github.com/amankhan2005/DecoderHealth/internal/domain"
	"github.com/amankhan2005/DecoderHealth/internal/transport/http/response"
)

// LogoStore persists an uploaded logo image to disk.
type LogoStore interface {
	SaveLogo(fh *multipart.FileHeader) (domain.StoredFile, error)
}

type SettingsHandler struct {
	svc     *sitesettings.Service
	uploads LogoStore
	lg      zerolog.Logger
}

func NewSettingsHandler(svc *sitesettings.Service, uploads LogoStore, lg zerolog.Logger) *SettingsHandler {
	return &SettingsHandler{
		svc:     svc,
		uploads: uploads,
		lg:      lg.With().Str("component", "settings_handler").Logger(),
	}
}

// Get handles GET /settings, creating the record on first read.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.GetOrCreate(r.Context())
	if err != nil {
		h.lg.Error().Err(err).Msg("loading settings failed")
		response.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load settings"})
		return
	}
	response.JSON(w, http.StatusOK, toSettingsDTO(st))
}

// Update handles PUT /settings behind the admin-header middleware. The body
// is either JSON or a (multipart) form carrying an optional logo file; the
// fieldsToUpdate value is normalized here so the merge logic never sees its
// raw shape.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	req, err := h.parseUpdate(r)
	if err != nil {
		response.Err(w, err)
		return
	}

	st, err := h.svc.Update(r.Context(), req)
	if err != nil {
		h.lg.Error().Err(err).Msg("updating settings failed")
		response.JSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to update settings"})
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{
		"ok":       true,
		"settings": toSettingsDTO(st),
	})
}

func (h *SettingsHandler) parseUpdate(r *http.Request) (sitesettings.UpdateRequest, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		return h.parseJSONUpdate(r)
	}
	return h.parseFormUpdate(r)
}

func (h *SettingsHandler) parseJSONUpdate(r *http.Request) (sitesettings.UpdateRequest, error) {
	var req sitesettings.UpdateRequest

	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return req, domain.ErrValidation("invalid request body")
	}

	if raw, ok := body["fieldsToUpdate"]; ok {
		var arr []string
		if err := json.Unmarshal(raw, &arr); err == nil {
			req.Fields, req.Selective = sitesettings.ParseFields(arr)
		} else {
			var s string
			if err := json.Unmarshal(raw, &s); err == nil {
				req.Fields, req.Selective = sitesettings.ParseFields([]string{s})
			}
		}
	}

	req.Values = make(map[domain.Field]string)
	for _, f := range domain.AllFields {
		if f == domain.FieldLogo {
			continue
		}
		raw, ok := body[string(f)]
		if !ok {
			continue
		}
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			continue
		}
		req.Values[f] = v
	}

	return req, nil
}

func (h *SettingsHandler) parseFormUpdate(r *http.Request) (sitesettings.UpdateRequest, error) {
	var req sitesettings.UpdateRequest

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil && err != http.ErrNotMultipart {
		return req, domain.ErrValidation("invalid form body")
	}

	req.Fields, req.Selective = sitesettings.ParseFields(r.Form["fieldsToUpdate"])

	req.Values = make(map[domain.Field]string)
	for _, f := range domain.AllFields {
		if f == domain.FieldLogo {
			continue
		}
		if vs, ok := r.Form[string(f)]; ok && len(vs) > 0 {
			req.Values[f] = vs[0]
		}
	}

	if file, fh, err := r.FormFile("logo"); err == nil {
		_ = file.Close()
		stored, err := h.uploads.SaveLogo(fh)
		if err != nil {
			return req, err
		}
		req.LogoPath = "/uploads/settings/" + stored.Filename
	}

	return req, nil
}
