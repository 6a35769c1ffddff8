package sitesettings

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/amankhan2005/DecoderHealth/internal/domain"
)

// Repository abstracts storage of the singleton settings record.
type Repository interface {
	Get(ctx context.Context) (*domain.SiteSettings, error)
	Create(ctx context.Context, s *domain.SiteSettings) error
	Save(ctx context.Context, s *domain.SiteSettings) error
}

type Clock interface{ Now() time.Time }

type sysClock struct{}

func (sysClock) Now() time.Time { return time.Now().UTC() }

type Service struct {
	repo  Repository
	clock Clock
	lg    zerolog.Logger
}

func New(repo Repository, lg zerolog.Logger) *Service {
	return NewWithClock(repo, sysClock{}, lg)
}

func NewWithClock(repo Repository, clock Clock, lg zerolog.Logger) *Service {
	return &Service{
		repo:  repo,
		clock: clock,
		lg:    lg.With().Str("component", "settings_service").Logger(),
	}
}

// GetOrCreate loads the singleton record, creating it with empty fields and
// no timestamps on first read.
func (s *Service) GetOrCreate(ctx context.Context) (*domain.SiteSettings, error) {
	st, err := s.repo.Get(ctx)
	if err == nil {
		return st, nil
	}
	var ae *domain.AppError
	if errors.As(err, &ae) && ae.Code == domain.CodeNotFound {
		st = domain.NewSiteSettings(uuid.NewString())
		if err := s.repo.Create(ctx, st); err != nil {
			return nil, err
		}
		s.lg.Info().Str("id", st.ID).Msg("created settings record")
		return st, nil
	}
	return nil, err
}

// UpdateRequest carries one settings update, already normalized at the
// HTTP boundary.
type UpdateRequest struct {
	// Selective is true when the request named any fields at all, even if
	// none of the names were recognized. Only when it is false does the
	// update run in apply-all mode.
	Selective bool
	// Fields is the normalized selection list; consulted only when
	// Selective is set.
	Fields FieldSet
	// Values holds the recognized body fields that were present in the
	// request. Logo never appears here.
	Values map[domain.Field]string
	// LogoPath is set when a logo file was uploaded.
	LogoPath string
}

// Update applies the request to the singleton record and persists it.
// In selective mode only listed fields are considered, even if other values
// were supplied; in apply-all mode every recognized present field applies.
// All fields touched by one call share a single timestamp. Read-merge-write
// is not locked: admin-only, low contention, last write wins.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*domain.SiteSettings, error) {
	st, err := s.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	selective := req.Selective

	if req.LogoPath != "" && (!selective || req.Fields.Has(domain.FieldLogo)) {
		st.Set(domain.FieldLogo, req.LogoPath, now)
	}

	for _, f := range domain.AllFields {
		if f == domain.FieldLogo {
			continue
		}
		v, present := req.Values[f]
		if !present {
			continue
		}
		if selective && !req.Fields.Has(f) {
			continue
		}
		st.Set(f, v, now)
	}

	if err := s.repo.Save(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}
