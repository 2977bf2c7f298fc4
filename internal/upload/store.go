package upload

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Vipul160305/placetrack/internal/common"
)

// Store writes uploaded blobs into a flat directory, addressed by a
// generated filename.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create upload directory", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save stores the blob under a fresh name derived from the original
// extension and returns that name.
func (s *Store) Save(originalName string, src io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExt(ext) {
		return "", common.NewValidationError("unsupported file type", map[string]string{"file": "only pdf, doc and docx files are accepted"})
	}
	name := common.NewUUID().String() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", common.NewError(common.CodeInternal, "failed to store file", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dst.Name())
		return "", common.NewError(common.CodeInternal, "failed to store file", err)
	}
	return name, nil
}

func allowedExt(ext string) bool {
	switch ext {
	case ".pdf", ".doc", ".docx":
		return true
	default:
		return false
	}
}
