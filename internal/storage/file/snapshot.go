// Package file persists the marker set as a flat JSON document: the whole
// array is read once at boot and rewritten after every mutation. This is a
// snapshot, not a log; losing the most recent mutation on a crash is accepted
// given the marker TTL.
package file

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"

	"github.com/borsel2002/yollar-burada/internal/domain"
	"github.com/borsel2002/yollar-burada/pkg/e"
)

type Snapshot struct {
	path   string
	logger *slog.Logger
	mu     sync.Mutex
}

func New(path string, logger *slog.Logger) *Snapshot {
	return &Snapshot{
		path:   path,
		logger: logger,
	}
}

// Load reads the snapshot file. A missing file is a normal first boot and
// yields an empty set; a corrupt file is reported so the caller can decide to
// start empty.
func (s *Snapshot) Load() ([]domain.Marker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, e.Wrap("read snapshot file", e.ErrPersistence)
	}

	var markers []domain.Marker
	if err := json.Unmarshal(data, &markers); err != nil {
		return nil, e.Wrap("decode snapshot file", e.ErrPersistence)
	}

	s.logger.Info("snapshot loaded",
		slog.String("path", s.path),
		slog.Int("markers", len(markers)),
	)
	return markers, nil
}

// Save rewrites the whole document. Write-to-temp plus rename keeps the file
// whole even if the process dies mid-write.
func (s *Snapshot) Save(markers []domain.Marker) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if markers == nil {
		markers = []domain.Marker{}
	}

	data, err := json.Marshal(markers)
	if err != nil {
		return e.Wrap("encode snapshot", e.ErrPersistence)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".markers-*.json")
	if err != nil {
		return e.Wrap("create temp snapshot", e.ErrPersistence)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return e.Wrap("write temp snapshot", e.ErrPersistence)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return e.Wrap("close temp snapshot", e.ErrPersistence)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return e.Wrap("replace snapshot file", e.ErrPersistence)
	}
	return nil
}
