package domain

import "time"

// Field enumerates the site-settings keys an admin may change. Anything
// outside this set is dropped at the HTTP boundary.
type Field string

const (
	FieldLogo      Field = "logo"
	FieldPhone     Field = "phone"
	FieldEmail     Field = "email"
	FieldAddress   Field = "address"
	FieldFacebook  Field = "facebook"
	FieldInstagram Field = "instagram"
	FieldTwitter   Field = "twitter"
	FieldTikTok    Field = "tiktok"
	FieldYouTube   Field = "youtube"
)

// AllFields is the canonical field order, used for rendering and merges.
// Logo is special: it only ever originates from an uploaded file, never a
// body value.
var AllFields = []Field{
	FieldLogo,
	FieldPhone,
	FieldEmail,
	FieldAddress,
	FieldFacebook,
	FieldInstagram,
	FieldTwitter,
	FieldTikTok,
	FieldYouTube,
}

func (f Field) Valid() bool {
	for _, k := range AllFields {
		if f == k {
			return true
		}
	}
	return false
}

// SiteSettings is the singleton configuration record. Every key in Global
// may have a matching entry in Meta recording when it last changed; a
// missing Meta entry means "never updated".
type SiteSettings struct {
	ID     string
	Global map[Field]string
	Meta   map[Field]time.Time
}

// NewSiteSettings returns the record created on first read: all fields
// empty, no timestamps.
func NewSiteSettings(id string) *SiteSettings {
	g := make(map[Field]string, len(AllFields))
	for _, f := range AllFields {
		g[f] = ""
	}
	return &SiteSettings{
		ID:     id,
		Global: g,
		Meta:   make(map[Field]time.Time),
	}
}

// Set writes one field and stamps its last-updated time.
func (s *SiteSettings) Set(f Field, value string, now time.Time) {
	if s.Global == nil {
		s.Global = make(map[Field]string)
	}
	if s.Meta == nil {
		s.Meta = make(map[Field]time.Time)
	}
	s.Global[f] = value
	s.Meta[f] = now
}
