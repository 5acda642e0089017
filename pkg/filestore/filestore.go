// Package filestore is the filesystem-backed blob store. Blobs live in a
// single storage directory under generated names; a FileMetadata row maps
// each generated name to its absolute path.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Nickname-is-not-avaliable/planing-system/pkg/metrics"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/model"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/service"
	"github.com/Nickname-is-not-avaliable/planing-system/pkg/store"
)

// allowedExtensions is the fixed media/document/archive allow-list.
var allowedExtensions = map[string]struct{}{
	"jpg": {}, "jpeg": {}, "png": {}, "gif": {}, "bmp": {}, "tiff": {},
	"webp": {}, "svg": {}, "mp3": {}, "wav": {}, "ogg": {}, "aac": {},
	"flac": {}, "m4a": {}, "mp4": {}, "mkv": {}, "avi": {}, "mov": {},
	"wmv": {}, "webm": {}, "pdf": {}, "doc": {}, "docx": {}, "docm": {},
	"txt": {}, "odt": {}, "rtf": {}, "xls": {}, "xlsx": {}, "xlsm": {},
	"ods": {}, "csv": {}, "ppt": {}, "pptx": {}, "odp": {}, "zip": {},
	"rar": {}, "7z": {}, "tar": {}, "gz": {}, "bz2": {},
}

type Store struct {
	dir    string
	files  store.FileMetadataStore
	logger *zap.Logger
	now    func() time.Time
}

func New(dir string, files store.FileMetadataStore, logger *zap.Logger) *Store {
	return &Store{dir: dir, files: files, logger: logger, now: time.Now}
}

// Upload validates the content, writes it under a generated name and
// records the metadata row. Path collisions overwrite.
func (s *Store) Upload(ctx context.Context, content []byte, originalFilename string) (*model.FileMetadata, error) {
	if len(content) == 0 {
		return nil, service.Invalidf("file must not be empty")
	}

	ext := extension(originalFilename)
	if _, ok := allowedExtensions[ext]; !ok {
		return nil, service.Invalidf("unsupported file format: %q", ext)
	}

	storedName := s.generateStoredName(originalFilename, ext)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, service.Internal("failed to create storage directory", err)
	}

	path, err := filepath.Abs(filepath.Join(s.dir, storedName))
	if err != nil {
		return nil, service.Internal("failed to resolve storage path", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return nil, service.Internal("failed to write file", err)
	}

	meta := &model.FileMetadata{Filename: storedName, FilePath: path}
	if err := s.files.Create(ctx, meta); err != nil {
		return nil, service.Internal("failed to save file metadata", err)
	}

	metrics.FilesUploaded.Inc()
	s.logger.Info("stored file",
		zap.String("filename", storedName),
		zap.Int("size", len(content)))
	return meta, nil
}

// Download resolves a stored filename to its metadata and re-verifies
// that the blob still exists on disk, so a vanished file surfaces as
// not-found instead of a dangling handle.
func (s *Store) Download(ctx context.Context, filename string) (*model.FileMetadata, error) {
	meta, err := s.files.GetByFilename(ctx, filename)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, service.NotFoundf("file not found: %s", filename)
		}
		return nil, service.Internal("failed to load file metadata", err)
	}

	if _, err := os.Stat(meta.FilePath); err != nil {
		if os.IsNotExist(err) {
			s.logger.Warn("file metadata points at a missing blob",
				zap.String("filename", filename),
				zap.String("path", meta.FilePath))
			return nil, service.NotFoundf("file not found: %s", filename)
		}
		return nil, service.Internal("failed to stat file", err)
	}

	return meta, nil
}

// extension returns the lower-cased substring after the last dot, or the
// empty string when there is none.
func extension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx == -1 {
		return ""
	}
	return strings.ToLower(filename[idx+1:])
}

func (s *Store) generateStoredName(originalFilename, ext string) string {
	sanitized := make([]byte, 0, len(originalFilename))
	for i := 0; i < len(originalFilename); i++ {
		c := originalFilename[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			sanitized = append(sanitized, c)
		} else {
			sanitized = append(sanitized, '_')
		}
	}
	return fmt.Sprintf("%s-%d.%s", sanitized, s.now().UnixMilli(), ext)
}
