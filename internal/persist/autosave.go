package persist

import (
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Autosaver writes best-effort snapshots after mutations. Saves run off the
// caller's goroutine so a write can never block the next mutation, and
// concurrent requests coalesce into the in-flight save.
type Autosaver struct {
	store   *FileStore
	logger  *slog.Logger
	collect func() Snapshot
	group   singleflight.Group
	wg      sync.WaitGroup
}

// NewAutosaver builds an autosaver. collect must capture a consistent copy of
// the current state; it is invoked on the saving goroutine.
func NewAutosaver(store *FileStore, logger *slog.Logger, collect func() Snapshot) *Autosaver {
	return &Autosaver{store: store, logger: logger, collect: collect}
}

// Schedule fires a background save. Failures are logged and dropped; the
// in-memory state remains the source of truth.
func (a *Autosaver) Schedule() {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		_, err, _ := a.group.Do("snapshot", func() (any, error) {
			return nil, a.store.Save(a.collect())
		})
		if err != nil {
			a.logger.Error("snapshot save failed", slog.Any("error", err))
		}
	}()
}

// Flush saves synchronously, for shutdown paths.
func (a *Autosaver) Flush() error {
	a.wg.Wait()
	return a.store.Save(a.collect())
}

// Wait blocks until scheduled saves have settled.
func (a *Autosaver) Wait() {
	a.wg.Wait()
}
