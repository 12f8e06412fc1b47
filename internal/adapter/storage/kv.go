package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/niksmo/storefront/internal/core/port"
	"github.com/spf13/afero"
)

var _ port.KeyValue = (*FileKV)(nil)

// FileKV keeps one JSON file per logical key inside dir. It is the
// only component touching the durable medium.
type FileKV struct {
	fs  afero.Fs
	dir string
}

func NewFileKV(fs afero.Fs, dir string) (FileKV, error) {
	const op = "FileKV"

	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return FileKV{}, fmt.Errorf("%s: failed to prepare dir: %w", op, err)
	}
	return FileKV{fs: fs, dir: dir}, nil
}

// Read decodes the payload stored under key into v. It never fails:
// a missing key or an undecodable payload reports false and leaves
// the stored payload untouched until the next Write. On false the
// caller must discard v.
func (s FileKV) Read(key string, v any) bool {
	const op = "FileKV.Read"

	data, err := afero.ReadFile(s.fs, s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("failed to read payload",
				"op", op, "key", key, "err", err)
		}
		return false
	}

	if err := json.Unmarshal(data, v); err != nil {
		slog.Warn("corrupted payload, falling back to default",
			"op", op, "key", key, "err", err)
		return false
	}
	return true
}

// Write serializes v and atomically replaces the prior payload: the
// data lands in a temp file first and is renamed over the target, so
// a subsequent Read observes either the old or the new payload.
func (s FileKV) Write(key string, v any) error {
	const op = "FileKV.Write"

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%s: failed to encode %q: %w", op, key, err)
	}

	tmp := s.path(key) + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("%s: failed to write %q: %w", op, key, err)
	}

	if err := s.fs.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("%s: failed to replace %q: %w", op, key, err)
	}
	return nil
}

func (s FileKV) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
