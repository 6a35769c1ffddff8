package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/amankhan2005/DecoderHealth/internal/domain"
)

var (
	resumeExts = map[string]bool{".pdf": true, ".doc": true, ".docx": true}
	logoExts   = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".webp": true, ".svg": true}
)

// Store writes multipart uploads to local disk under a base directory.
// It hands back a StoredFile reference; deleting the file afterwards is the
// caller's responsibility.
type Store struct {
	dir     string
	maxSize int64
	lg      zerolog.Logger
}

func NewStore(dir string, maxSize int64, lg zerolog.Logger) *Store {
	return &Store{
		dir:     dir,
		maxSize: maxSize,
		lg:      lg.With().Str("component", "upload_store").Logger(),
	}
}

// SaveResume stores a career-application resume under <dir>/resumes.
func (s *Store) SaveResume(fh *multipart.FileHeader) (domain.StoredFile, error) {
	return s.save(fh, "resumes", resumeExts)
}

// SaveLogo stores a settings logo image under <dir>/settings.
func (s *Store) SaveLogo(fh *multipart.FileHeader) (domain.StoredFile, error) {
	return s.save(fh, "settings", logoExts)
}

func (s *Store) save(fh *multipart.FileHeader, sub string, allowed map[string]bool) (domain.StoredFile, error) {
	var out domain.StoredFile

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowed[ext] {
		return out, domain.ErrValidation(fmt.Sprintf("file type %q is not allowed", ext))
	}
	if s.maxSize > 0 && fh.Size > s.maxSize {
		return out, domain.ErrValidation("file exceeds the maximum allowed size")
	}

	dir := filepath.Join(s.dir, sub)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return out, fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.NewString() + ext
	path := filepath.Join(dir, name)

	src, err := fh.Open()
	if err != nil {
		return out, fmt.Errorf("open multipart file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return out, fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(path)
		return out, fmt.Errorf("write upload file: %w", err)
	}

	s.lg.Debug().Str("path", path).Str("original", fh.Filename).Msg("stored upload")

	return domain.StoredFile{
		Path:         path,
		OriginalName: fh.Filename,
		Filename:     name,
	}, nil
}
