package esadmin

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

// newTestInvoker spins up a server and an invoker whose store has the
// server registered and selected.
func newTestInvoker(t *testing.T, handler http.Handler) (*Invoker, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	store := NewConnectionStore(zerolog.Nop())
	if err := store.Add("test", srv.URL); err != nil {
		t.Fatalf("add cluster: %v", err)
	}
	if err := store.Select("test"); err != nil {
		t.Fatalf("select cluster: %v", err)
	}
	return NewInvoker(store), srv
}

func jsonHandler(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

func TestInvoke_SuccessStateAndBody(t *testing.T) {
	t.Parallel()
	inv, _ := newTestInvoker(t, jsonHandler(http.StatusOK, `{"status":"green"}`))

	body, err := inv.Invoke(context.Background(), ClusterHealth{})
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	m, ok := body.(map[string]any)
	if !ok || m["status"] != "green" {
		t.Fatalf("unexpected body: %#v", body)
	}
	st := inv.State()
	if st.Loading || st.APIError || st.NetworkError || st.Status != http.StatusOK {
		t.Fatalf("unexpected state after success: %+v", st)
	}
}

func TestInvoke_NonJSONSuccessDecodesToTrue(t *testing.T) {
	t.Parallel()
	inv, _ := newTestInvoker(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("OK"))
	}))

	body, err := inv.Invoke(context.Background(), RefreshIndex{Index: "logs"})
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	if body != true {
		t.Fatalf("expected true sentinel, got %#v", body)
	}
}

func TestInvoke_NoClusterSelectedIsSilentNoop(t *testing.T) {
	t.Parallel()
	store := NewConnectionStore(zerolog.Nop())
	inv := NewInvoker(store)
	before := inv.State()

	body, err := inv.Invoke(context.Background(), ClusterHealth{})
	if body != nil || err != nil {
		t.Fatalf("expected nil, nil; got %#v, %v", body, err)
	}
	if inv.State() != before {
		t.Fatalf("state changed on no-op invoke: %+v", inv.State())
	}
	if inv.State().Status != -1 {
		t.Fatalf("initial status should be -1, got %d", inv.State().Status)
	}
}

func TestInvoke_IndexNotFoundMessage(t *testing.T) {
	t.Parallel()
	payload := `{"error":{"type":"index_not_found_exception","reason":"no such index [missing]"},"status":404}`
	inv, _ := newTestInvoker(t, jsonHandler(http.StatusNotFound, payload))

	_, err := inv.Invoke(context.Background(), GetIndex{Index: "missing"})
	if !IsAPI(err) {
		t.Fatalf("expected ErrAPI, got %v", err)
	}
	st := inv.State()
	if st.APIErrorMessage != "Index not found" {
		t.Fatalf("message %q", st.APIErrorMessage)
	}
	if !st.APIError || st.NetworkError || st.Status != http.StatusNotFound {
		t.Fatalf("unexpected state: %+v", st)
	}
}

func TestInvoke_UnrecognizedErrorIsStringified(t *testing.T) {
	t.Parallel()
	payload := `{"error":{"type":"illegal_argument_exception","reason":"bad request"},"status":400}`
	inv, _ := newTestInvoker(t, jsonHandler(http.StatusBadRequest, payload))

	_, err := inv.Invoke(context.Background(), CreateIndex{Index: "x"})
	if !IsAPI(err) {
		t.Fatalf("expected ErrAPI, got %v", err)
	}
	want, _ := json.Marshal(map[string]any{
		"reason": "bad request",
		"type":   "illegal_argument_exception",
	})
	if got := inv.State().APIErrorMessage; got != string(want) {
		t.Fatalf("message %q, want %q", got, want)
	}
}

func TestInvoke_NonJSONErrorBodyPassesThrough(t *testing.T) {
	t.Parallel()
	inv, _ := newTestInvoker(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("shard failure"))
	}))

	_, err := inv.Invoke(context.Background(), ClusterStats{})
	if !IsAPI(err) {
		t.Fatalf("expected ErrAPI, got %v", err)
	}
	if got := inv.State().APIErrorMessage; got != "shard failure" {
		t.Fatalf("message %q", got)
	}
}

func TestInvoke_TransportFailureSetsNetworkError(t *testing.T) {
	t.Parallel()
	store := NewConnectionStore(zerolog.Nop())
	// reserved port, connection refused immediately
	if err := store.Add("down", "http://127.0.0.1:1"); err != nil {
		t.Fatalf("add cluster: %v", err)
	}
	if err := store.Select("down"); err != nil {
		t.Fatalf("select cluster: %v", err)
	}
	inv := NewInvoker(store)

	_, err := inv.Invoke(context.Background(), ClusterHealth{})
	if !IsNetwork(err) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
	st := inv.State()
	if !st.NetworkError || st.APIError || st.Status != -1 {
		t.Fatalf("unexpected state: %+v", st)
	}
	if st.APIErrorMessage == "" {
		t.Fatalf("expected raw error text in message")
	}
}

func TestInvoke_FanOutDecodesInOrder(t *testing.T) {
	t.Parallel()
	inv, _ := newTestInvoker(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"path":"` + r.URL.Path + `"}`))
	}))

	body, err := inv.Invoke(context.Background(), DeleteIndices{Indices: []string{"a", "b", "c"}})
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	items, ok := body.([]any)
	if !ok || len(items) != 3 {
		t.Fatalf("expected 3 decoded items, got %#v", body)
	}
	for i, want := range []string{"/a", "/b", "/c"} {
		m, ok := items[i].(map[string]any)
		if !ok || m["path"] != want {
			t.Fatalf("item %d = %#v, want path %q", i, items[i], want)
		}
	}
}
