package sitesettings

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amankhan2005/DecoderHealth/internal/domain"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// memRepo is an in-memory settings repository.
type memRepo struct {
	stored  *domain.SiteSettings
	saves   int
	creates int
}

func (r *memRepo) Get(ctx context.Context) (*domain.SiteSettings, error) {
	if r.stored == nil {
		return nil, domain.ErrNotFound("settings not found")
	}
	return r.stored, nil
}

func (r *memRepo) Create(ctx context.Context, s *domain.SiteSettings) error {
	r.creates++
	r.stored = s
	return nil
}

func (r *memRepo) Save(ctx context.Context, s *domain.SiteSettings) error {
	r.saves++
	r.stored = s
	return nil
}

var t0 = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestService(repo *memRepo, now time.Time) *Service {
	return NewWithClock(repo, fixedClock{t: now}, zerolog.Nop())
}

func selection(names ...string) FieldSet {
	fs, _ := ParseFields(names)
	return fs
}

func TestGetOrCreateCreatesOnFirstRead(t *testing.T) {
	repo := &memRepo{}
	svc := newTestService(repo, t0)

	st, err := svc.GetOrCreate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.creates)
	assert.Empty(t, st.Meta)
	for _, f := range domain.AllFields {
		assert.Equal(t, "", st.Global[f])
	}

	// Second read returns the same record without another create.
	st2, err := svc.GetOrCreate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.creates)
	assert.Equal(t, st.ID, st2.ID)
}

func TestUpdateSelectiveModeIgnoresUnlistedFields(t *testing.T) {
	repo := &memRepo{}
	svc := newTestService(repo, t0)

	// Seed with a previous email value and timestamp.
	seedTime := t0.Add(-24 * time.Hour)
	seeded := domain.NewSiteSettings("s1")
	seeded.Set(domain.FieldEmail, "old@x.com", seedTime)
	repo.stored = seeded

	st, err := svc.Update(context.Background(), UpdateRequest{
		Selective: true,
		Fields:    selection("phone"),
		Values: map[domain.Field]string{
			domain.FieldPhone: "111",
			domain.FieldEmail: "new@x.com", // supplied but not selected
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "111", st.Global[domain.FieldPhone])
	assert.Equal(t, t0, st.Meta[domain.FieldPhone])

	assert.Equal(t, "old@x.com", st.Global[domain.FieldEmail], "unselected field must not change")
	assert.Equal(t, seedTime, st.Meta[domain.FieldEmail], "unselected field timestamp must not change")
}

func TestUpdateSelectiveModeListedButAbsentFieldUnchanged(t *testing.T) {
	repo := &memRepo{}
	svc := newTestService(repo, t0)

	seeded := domain.NewSiteSettings("s1")
	seeded.Set(domain.FieldPhone, "000", t0.Add(-time.Hour))
	repo.stored = seeded

	st, err := svc.Update(context.Background(), UpdateRequest{
		Selective: true,
		Fields:    selection("phone", "email"),
		Values: map[domain.Field]string{
			domain.FieldEmail: "new@x.com",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "000", st.Global[domain.FieldPhone], "listed but absent field stays as-is")
	assert.Equal(t, "new@x.com", st.Global[domain.FieldEmail])
}

func TestUpdateSelectionOfOnlyUnknownNamesAppliesNothing(t *testing.T) {
	repo := &memRepo{}
	svc := newTestService(repo, t0)

	// Every name in the selection is unrecognized, so the normalized set is
	// empty. The update must stay selective and leave everything untouched
	// rather than degrade into apply-all mode.
	fields, requested := ParseFields([]string{"bogus"})
	require.True(t, requested)
	require.Empty(t, fields)

	st, err := svc.Update(context.Background(), UpdateRequest{
		Selective: requested,
		Fields:    fields,
		Values:    map[domain.Field]string{domain.FieldPhone: "111"},
	})
	require.NoError(t, err)

	assert.Equal(t, "", st.Global[domain.FieldPhone])
	_, ok := st.Meta[domain.FieldPhone]
	assert.False(t, ok)
}

func TestUpdateApplyAllMode(t *testing.T) {
	repo := &memRepo{}
	svc := newTestService(repo, t0)

	st, err := svc.Update(context.Background(), UpdateRequest{
		Values: map[domain.Field]string{
			domain.FieldPhone:    "111",
			domain.FieldEmail:    "new@x.com",
			domain.FieldFacebook: "https://fb.example/clinic",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "111", st.Global[domain.FieldPhone])
	assert.Equal(t, "new@x.com", st.Global[domain.FieldEmail])
	assert.Equal(t, "https://fb.example/clinic", st.Global[domain.FieldFacebook])

	// All fields touched in one call share the identical timestamp.
	assert.Equal(t, t0, st.Meta[domain.FieldPhone])
	assert.Equal(t, t0, st.Meta[domain.FieldEmail])
	assert.Equal(t, t0, st.Meta[domain.FieldFacebook])

	// Untouched fields have no timestamp.
	_, ok := st.Meta[domain.FieldAddress]
	assert.False(t, ok)
}

func TestUpdateLogoOnlyFromUpload(t *testing.T) {
	t.Run("applied_in_apply_all_mode", func(t *testing.T) {
		repo := &memRepo{}
		svc := newTestService(repo, t0)

		st, err := svc.Update(context.Background(), UpdateRequest{
			LogoPath: "/uploads/settings/logo.png",
		})
		require.NoError(t, err)
		assert.Equal(t, "/uploads/settings/logo.png", st.Global[domain.FieldLogo])
		assert.Equal(t, t0, st.Meta[domain.FieldLogo])
	})

	t.Run("skipped_when_not_selected", func(t *testing.T) {
		repo := &memRepo{}
		svc := newTestService(repo, t0)

		st, err := svc.Update(context.Background(), UpdateRequest{
			Selective: true,
			Fields:    selection("phone"),
			Values:    map[domain.Field]string{domain.FieldPhone: "111"},
			LogoPath:  "/uploads/settings/logo.png",
		})
		require.NoError(t, err)
		assert.Equal(t, "", st.Global[domain.FieldLogo])
	})

	t.Run("applied_when_selected", func(t *testing.T) {
		repo := &memRepo{}
		svc := newTestService(repo, t0)

		st, err := svc.Update(context.Background(), UpdateRequest{
			Selective: true,
			Fields:    selection("logo"),
			LogoPath:  "/uploads/settings/logo.png",
		})
		require.NoError(t, err)
		assert.Equal(t, "/uploads/settings/logo.png", st.Global[domain.FieldLogo])
	})

	t.Run("no_file_no_logo_change", func(t *testing.T) {
		repo := &memRepo{}
		svc := newTestService(repo, t0)

		st, err := svc.Update(context.Background(), UpdateRequest{
			Selective: true,
			Fields:    selection("logo"),
		})
		require.NoError(t, err)
		assert.Equal(t, "", st.Global[domain.FieldLogo])
		_, ok := st.Meta[domain.FieldLogo]
		assert.False(t, ok)
	})
}

func TestUpdatePersistsRecord(t *testing.T) {
	repo := &memRepo{}
	svc := newTestService(repo, t0)

	_, err := svc.Update(context.Background(), UpdateRequest{
		Values: map[domain.Field]string{domain.FieldPhone: "111"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.saves)
	assert.Equal(t, "111", repo.stored.Global[domain.FieldPhone])
}
