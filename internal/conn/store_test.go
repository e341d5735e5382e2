package conn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestStore_SelectAndActive(t *testing.T) {
	t.Parallel()
	s := NewStore(zerolog.Nop())
	if _, ok := s.Active(); ok {
		t.Fatalf("empty store has an active cluster")
	}
	if err := s.Add("local", "http://localhost:9200"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.Select("local"); err != nil {
		t.Fatalf("select: %v", err)
	}
	ad, ok := s.Active()
	if !ok || ad == nil || ad.BaseURL() != "http://localhost:9200" {
		t.Fatalf("active adapter: %v %v", ad, ok)
	}
	name, ok := s.ActiveName()
	if !ok || name != "local" {
		t.Fatalf("active name %q %v", name, ok)
	}
}

func TestStore_SelectUnknownCluster(t *testing.T) {
	t.Parallel()
	s := NewStore(zerolog.Nop())
	if err := s.Select("missing"); err == nil {
		t.Fatalf("expected ErrUnknownCluster")
	}
}

func TestStore_ClearSelection(t *testing.T) {
	t.Parallel()
	s := NewStore(zerolog.Nop())
	_ = s.Add("a", "http://localhost:9200")
	_ = s.Select("a")
	s.ClearSelection()
	if _, ok := s.Active(); ok {
		t.Fatalf("selection not cleared")
	}
}

func TestStore_NamesSorted(t *testing.T) {
	t.Parallel()
	s := NewStore(zerolog.Nop())
	_ = s.Add("prod", "http://prod:9200")
	_ = s.Add("dev", "http://dev:9200")
	names := s.Names()
	if len(names) != 2 || names[0] != "dev" || names[1] != "prod" {
		t.Fatalf("names %v", names)
	}
}

func TestConnect_MarksClusterConnected(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()
	s := NewStore(zerolog.Nop())
	_ = s.Add("test", srv.URL)
	if s.Connected("test") {
		t.Fatalf("connected before health check")
	}
	if err := s.Connect(context.Background(), "test"); err != nil {
		t.Fatalf("connect: %v", err)
	}
	if !s.Connected("test") {
		t.Fatalf("connected flag not set")
	}
}

// An engine rejection is permanent: retrying bad credentials cannot help,
// so Connect must fail after a single ping.
func TestConnect_APIRejectionFailsFast(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()
	s := NewStore(zerolog.Nop())
	s.connectTimeout = 2 * time.Second
	_ = s.Add("test", srv.URL)
	if err := s.Connect(context.Background(), "test"); err == nil {
		t.Fatalf("expected error")
	}
	if hits.Load() != 1 {
		t.Fatalf("rejected ping retried %d times", hits.Load())
	}
	if s.Connected("test") {
		t.Fatalf("rejected cluster marked connected")
	}
}

func TestConnect_RetriesTransportFailures(t *testing.T) {
	t.Parallel()
	s := NewStore(zerolog.Nop())
	s.connectTimeout = 300 * time.Millisecond
	_ = s.Add("down", "http://127.0.0.1:1")
	start := time.Now()
	if err := s.Connect(context.Background(), "down"); err == nil {
		t.Fatalf("expected error")
	}
	// at least one backoff sleep happened before giving up
	if time.Since(start) < 100*time.Millisecond {
		t.Fatalf("gave up too fast: %v", time.Since(start))
	}
}

func TestConnect_UnknownCluster(t *testing.T) {
	t.Parallel()
	s := NewStore(zerolog.Nop())
	if err := s.Connect(context.Background(), "nope"); err == nil {
		t.Fatalf("expected ErrUnknownCluster")
	}
}
