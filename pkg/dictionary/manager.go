package dictionary

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/yaklabco/gospell/internal/logging"
)

// ErrUnknownDictionary is returned when an ID matches no builtin, no
// registered source, and no local file.
var ErrUnknownDictionary = errors.New("unknown dictionary")

// Manager loads dictionaries on demand and keeps them cached in memory for
// the life of the process. It is safe for concurrent use; a given ID is
// loaded at most once even under concurrent lookups.
type Manager struct {
	cacheDir string
	sources  map[string]Source

	mu    sync.RWMutex
	cache map[string]Dictionary

	group singleflight.Group
	dl    *downloader
}

// NewManager creates a Manager whose download cache lives under cacheDir.
func NewManager(cacheDir string) *Manager {
	return &Manager{
		cacheDir: cacheDir,
		sources:  make(map[string]Source),
		cache:    make(map[string]Dictionary),
		dl:       newDownloader(cacheDir),
	}
}

// DefaultCacheDir returns the per-user dictionary cache directory.
func DefaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "gospell", "dictionaries")
	}
	return filepath.Join(base, "gospell", "dictionaries")
}

// RegisterSource makes a custom dictionary source resolvable by ID. Custom
// sources shadow the builtin source table but never the embedded builtins.
func (m *Manager) RegisterSource(src Source) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sources[src.ID] = src
}

// Get returns the dictionary for id, loading it on first use. Loads are
// deduplicated so concurrent callers share one fetch per ID.
func (m *Manager) Get(ctx context.Context, id string) (Dictionary, error) {
	m.mu.RLock()
	d, ok := m.cache[id]
	m.mu.RUnlock()
	if ok {
		return d, nil
	}

	v, err, _ := m.group.Do(id, func() (any, error) {
		// Re-check under the group: a concurrent caller may have
		// populated the cache between the RUnlock and Do.
		m.mu.RLock()
		cached, hit := m.cache[id]
		m.mu.RUnlock()
		if hit {
			return cached, nil
		}

		loaded, loadErr := m.load(ctx, id)
		if loadErr != nil {
			return nil, loadErr
		}

		m.mu.Lock()
		m.cache[id] = loaded
		m.mu.Unlock()

		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	dict, ok := v.(Dictionary)
	if !ok {
		return nil, fmt.Errorf("dictionary %s: unexpected cached type %T", id, v)
	}
	return dict, nil
}

// GetAll resolves every ID, logging and skipping the ones that fail. The
// returned slice preserves the order of ids minus failures.
func (m *Manager) GetAll(ctx context.Context, ids []string) []Dictionary {
	dicts := make([]Dictionary, 0, len(ids))
	for _, id := range ids {
		d, err := m.Get(ctx, id)
		if err != nil {
			logging.FromContext(ctx).Warn("skipping unavailable dictionary",
				logging.FieldDictionary, id,
				logging.FieldError, err)
			continue
		}
		dicts = append(dicts, d)
	}
	return dicts
}

// Available lists every dictionary ID the manager can resolve without
// network or filesystem probes: builtins, default sources and registered
// custom sources, sorted and deduplicated.
func (m *Manager) Available() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, id := range BuiltinIDs {
		seen[id] = struct{}{}
	}
	for id := range defaultSources {
		seen[id] = struct{}{}
	}
	for id := range m.sources {
		seen[id] = struct{}{}
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// load resolves id to a dictionary. Builtins come from the embedded data,
// sources with a Path from the local filesystem, and sources with a URL
// through the download cache. A bare ID that names an existing file is
// treated as a local wordlist path.
func (m *Manager) load(ctx context.Context, id string) (Dictionary, error) {
	if IsBuiltin(id) {
		return loadBuiltin(id)
	}

	m.mu.RLock()
	custom := m.sources
	m.mu.RUnlock()

	if src, ok := lookupSource(id, custom); ok {
		if src.Path != "" {
			return LoadWordlist(src.Path)
		}
		path, err := m.dl.Fetch(ctx, src.URL)
		if err != nil {
			return nil, err
		}
		return LoadWordlist(path)
	}

	if info, err := os.Stat(id); err == nil && !info.IsDir() {
		return LoadWordlist(id)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownDictionary, id)
}
