package contact

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/amankhan2005/DecoderHealth/internal/domain"
)

// Repository abstracts lead storage.
type Repository interface {
	Create(ctx context.Context, l *domain.Lead) error
	GetByID(ctx context.Context, id string) (*domain.Lead, error)
	List(ctx context.Context, status, leadSource string) ([]*domain.Lead, error)
	Delete(ctx context.Context, id string) error
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
		lg:    lg.With().Str("component", "contact_service").Logger(),
	}
}

func (s *Service) Create(ctx context.Context, name, email, phone, message, leadSource string) (*domain.Lead, error) {
	l, err := domain.NewLead(name, email, phone, message, leadSource, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	s.lg.Info().Str("id", l.ID).Str("source", l.LeadSource).Msg("lead created")
	return l, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Lead, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, status, leadSource string) ([]*domain.Lead, error) {
	return s.repo.List(ctx, status, leadSource)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.lg.Info().Str("id", id).Msg("lead deleted")
	return nil
}
