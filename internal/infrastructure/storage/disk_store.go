// Package storage guarda adjuntos en disco y los expone bajo /uploads.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/stonecrusher-api/internal/application/ports"
)

// PublicPrefix ruta HTTP desde la que se sirven los adjuntos.
const PublicPrefix = "/uploads"

var _ ports.AttachmentStore = (*DiskStore)(nil)

// DiskStore escribe cada adjunto en dir con un nombre único.
type DiskStore struct {
	dir string
}

// NewDiskStore crea dir si no existe.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear %s: %w", dir, err)
	}
	return &DiskStore{dir: dir}, nil
}

// Dir directorio físico (para servirlo como estático).
func (s *DiskStore) Dir() string { return s.dir }

// Save copia r a disco y devuelve la ruta pública "/uploads/<uuid>-<nombre>".
func (s *DiskStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name := uuid.NewString() + "-" + sanitize(originalName)
	dst := filepath.Join(s.dir, name)

	f, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("storage: crear archivo: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("storage: escribir archivo: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("storage: cerrar archivo: %w", err)
	}
	return PublicPrefix + "/" + name, nil
}

// sanitize deja solo el nombre base y reemplaza separadores y espacios.
func sanitize(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "file"
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
}
