package powercfg

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sync"

	"github.com/smnsjas/go-powercfg/guid"
)

// Logger is an optional interface for debug logging.
// If not set, no logging is performed.
type Logger interface {
	// Printf formats and logs a debug message.
	Printf(format string, v ...interface{})
}

// Store provides typed access to one power-configuration provider.
//
// A Store is a lightweight handle factory: Scheme, SubGroup and Setting
// values constructed from it hold no native resources, and every operation
// reads through the provider. A Store is safe for concurrent use.
type Store struct {
	mu sync.RWMutex

	provider Provider

	// Debug logging
	logger     Logger
	slogLogger *slog.Logger
}

// New returns a Store over the given provider. On Windows, Open wires the
// native powrprof-backed provider; New exists for tests and custom
// providers.
func New(p Provider) *Store {
	return &Store{provider: p}
}

// Provider returns the provider the store reads and writes through.
func (s *Store) Provider() Provider {
	return s.provider
}

// SetLogger sets a logger for debug output. Pass nil to disable logging.
func (s *Store) SetLogger(logger Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger = logger
}

// SetSlogLogger sets a structured logger for debug output. Messages are
// logged at Debug level. Pass nil to disable. When both a Logger and an
// slog.Logger are set, the structured logger wins.
func (s *Store) SetSlogLogger(logger *slog.Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slogLogger = logger
}

// EnableDebugLogging enables debug output to stderr with a [powercfg] prefix.
func (s *Store) EnableDebugLogging() {
	s.SetLogger(log.New(os.Stderr, "[powercfg] ", log.LstdFlags))
}

// logf logs a debug message if a logger is set.
func (s *Store) logf(format string, v ...interface{}) {
	s.mu.RLock()
	logger := s.logger
	slogLogger := s.slogLogger
	s.mu.RUnlock()

	if slogLogger != nil {
		slogLogger.Debug(fmt.Sprintf(format, v...))
		return
	}
	if logger != nil {
		logger.Printf(format, v...)
	}
}

// enumerate collects identifiers by walking indexes until the provider
// reports ErrNoMoreItems.
func (s *Store) enumerate(scope Scope, scheme, subgroup *guid.GUID) ([]guid.GUID, error) {
	var ids []guid.GUID
	for i := uint32(0); ; i++ {
		id, err := s.provider.Enumerate(scope, scheme, subgroup, i)
		if errors.Is(err, ErrNoMoreItems) {
			s.logf("enumerated %d %s entries", len(ids), scope)
			return ids, nil
		}
		if err != nil {
			return nil, fmt.Errorf("enumerate %s index %d: %w", scope, i, err)
		}
		ids = append(ids, id)
	}
}
