package handlers

import (
	"time"

	"github.com/amankhan2005/DecoderHealth/internal/domain"
)

type leadDTO struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Message    string    `json:"message"`
	Status     string    `json:"status"`
	LeadSource string    `json:"leadSource"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toLeadDTO(l *domain.Lead) leadDTO {
	return leadDTO{
		ID:         l.ID,
		Name:       l.Name,
		Email:      l.Email,
		Phone:      l.Phone,
		Message:    l.Message,
		Status:     l.Status,
		LeadSource: l.LeadSource,
		CreatedAt:  l.CreatedAt,
	}
}

type settingsDTO struct {
	ID         string                `json:"id"`
	Global     map[string]string     `json:"global"`
	GlobalMeta map[string]*time.Time `json:"globalMeta"`
}

// toSettingsDTO renders the record in the shape the admin panel reads:
// every field key in global, and a <field>UpdatedAt key in globalMeta that
// is null until the field is first changed.
func toSettingsDTO(s *domain.SiteSettings) settingsDTO {
	global := make(map[string]string, len(domain.AllFields))
	meta := make(map[string]*time.Time, len(domain.AllFields))

	for _, f := range domain.AllFields {
		global[string(f)] = s.Global[f]

		key := string(f) + "UpdatedAt"
		if t, ok := s.Meta[f]; ok {
			tt := t
			meta[key] = &tt
		} else {
			meta[key] = nil
		}
	}

	return settingsDTO{ID: s.ID, Global: global, GlobalMeta: meta}
}
