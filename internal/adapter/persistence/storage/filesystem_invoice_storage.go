package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gst_invoice/internal/usecase/interfaces"
)

var ErrInvalidFilename = errors.New("invalid invoice filename")

// FilesystemInvoiceStorage writes invoices as <dir>/<filename>.
//
// Writes go through a temporary file and a rename; a failed write leaves no
// partial PDF. Existing files with the same name are replaced.
type FilesystemInvoiceStorage struct {
	dir string
}

var _ interfaces.IInvoiceStorage = (*FilesystemInvoiceStorage)(nil)

// NewFilesystemInvoiceStorage creates dir if it does not exist.
func NewFilesystemInvoiceStorage(dir string) (*FilesystemInvoiceStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create invoice dir %s: %w", dir, err)
	}
	return &FilesystemInvoiceStorage{dir: dir}, nil
}

func (s *FilesystemInvoiceStorage) Save(_ context.Context, filename string, pdf []byte) (string, error) {
	name := filepath.Base(filename)
	if name != filename || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilename, filename)
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+".*.tmp")
	if err != nil {
		return "", err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(pdf); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return "", err
	}

	out := filepath.Join(s.dir, name)
	if err := os.Rename(tmpName, out); err != nil {
		os.Remove(tmpName)
		return "", err
	}
	return out, nil
}
