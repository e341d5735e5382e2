// Package conn tracks the clusters an administration session knows about and
// which of them is currently selected. Adapters are constructed eagerly at
// registration time and handed to invokers by reference; there is no lazy
// module-scoped singleton, so first use cannot race on construction.
package conn

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/clusterlens/esadmin/internal/adapter"
)

// ErrUnknownCluster is returned when a name was never registered.
var ErrUnknownCluster = errors.New("unknown cluster")

type cluster struct {
	uri       string
	adapter   *adapter.Adapter
	connected bool
}

// Store is a registry of named clusters with at most one active selection.
// Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	clusters map[string]*cluster
	active   string
	log      zerolog.Logger

	connectTimeout time.Duration
}

// NewStore returns an empty store with nothing selected.
func NewStore(log zerolog.Logger) *Store {
	return &Store{
		clusters:       make(map[string]*cluster),
		log:            log,
		connectTimeout: 15 * time.Second,
	}
}

// FromEnv builds a store holding the environment-configured cluster and
// selects it. The cluster is registered but not yet pinged; call Connect.
func FromEnv(log zerolog.Logger) (*Store, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	s := NewStore(log)
	s.connectTimeout = cfg.ConnectTimeout
	opts := []adapter.Option{adapter.WithHTTPTimeout(cfg.HTTPTimeout), adapter.WithLogger(log)}
	if cfg.Username != "" {
		opts = append(opts, adapter.WithBasicAuth(cfg.Username, cfg.Password))
	}
	if err := s.Add(cfg.ClusterName, cfg.ClusterURI, opts...); err != nil {
		return nil, err
	}
	if err := s.Select(cfg.ClusterName); err != nil {
		return nil, err
	}
	return s, nil
}

// Add registers a cluster under name, constructing its adapter immediately.
// Re-registering an existing name replaces its adapter and drops its
// connected flag.
func (s *Store) Add(name, uri string, opts ...adapter.Option) error {
	if name == "" {
		return fmt.Errorf("cluster name cannot be empty")
	}
	ad, err := adapter.New(uri, opts...)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clusters[name] = &cluster{uri: uri, adapter: ad}
	return nil
}

// Select makes name the active cluster.
func (s *Store) Select(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clusters[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCluster, name)
	}
	s.active = name
	return nil
}

// ClearSelection deselects the active cluster. Subsequent invokes become
// silent no-ops until Select is called again.
func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = ""
}

// Active returns the adapter for the selected cluster, or false when
// nothing is selected.
func (s *Store) Active() (*adapter.Adapter, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.clusters[s.active]
	if !ok {
		return nil, false
	}
	return c.adapter, true
}

// ActiveName returns the selected cluster name, or false when nothing is
// selected.
func (s *Store) ActiveName() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.active == "" {
		return "", false
	}
	return s.active, true
}

// Names lists registered cluster names in stable order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.clusters))
	for name := range s.clusters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Connect health-checks the named cluster, retrying transport failures with
// exponential backoff until the configured connect window elapses. An API
// rejection (for example bad credentials) fails immediately; retrying it
// cannot help.
func (s *Store) Connect(ctx context.Context, name string) error {
	s.mu.RLock()
	c, ok := s.clusters[name]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCluster, name)
	}

	exp := backoff.NewExponentialBackOff()
	exp.MaxElapsedTime = s.connectTimeout
	err := backoff.Retry(func() error {
		err := c.adapter.Ping(ctx)
		var apiErr *adapter.APIError
		if errors.As(err, &apiErr) {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(exp, ctx))
	if err != nil {
		s.log.Error().Err(err).Str("cluster", name).Str("uri", c.uri).Msg("cluster health check failed")
		return err
	}

	s.mu.Lock()
	c.connected = true
	s.mu.Unlock()
	s.log.Info().Str("cluster", name).Str("uri", c.uri).Msg("cluster reachable")
	return nil
}

// Connected reports whether the named cluster passed its health check.
func (s *Store) Connected(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.clusters[name]
	return ok && c.connected
}
