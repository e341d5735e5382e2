package esadmin

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/clusterlens/esadmin/internal/adapter"
	"github.com/clusterlens/esadmin/internal/jsonutil"
)

// Body is a normalized response payload: a decoded JSON value, the boolean
// true sentinel for a non-JSON success, a []any of those for fan-out
// operations (in request order), or nil for a failed read.
type Body = any

// RequestState is the per-invoker status record UI code binds against.
// It is replaced wholesale on every phase transition, never field-wise.
type RequestState struct {
	Loading         bool
	NetworkError    bool
	APIError        bool
	APIErrorMessage string
	Status          int // HTTP status of the last response, -1 when unknown
}

func initialState() RequestState { return RequestState{Status: -1} }

// Invoker wraps single calls to the search-engine adapter, owning the
// RequestState transitions around each call. One Invoker per UI call site;
// overlapping calls on the same Invoker are last-write-wins by design of
// the callers, but snapshots are never torn.
type Invoker struct {
	store *ConnectionStore
	log   zerolog.Logger

	mu    sync.Mutex
	state RequestState
}

// InvokerOption configures an Invoker during construction.
type InvokerOption func(*Invoker)

// WithInvokerLogger routes invoke diagnostics to the given logger.
func WithInvokerLogger(log zerolog.Logger) InvokerOption {
	return func(inv *Invoker) { inv.log = log }
}

// NewInvoker builds an Invoker bound to the given connection store.
func NewInvoker(store *ConnectionStore, opts ...InvokerOption) *Invoker {
	inv := &Invoker{store: store, log: zerolog.Nop(), state: initialState()}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// State returns the current snapshot.
func (inv *Invoker) State() RequestState {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.state
}

// Loading reports whether a call is in flight.
func (inv *Invoker) Loading() bool { return inv.State().Loading }

func (inv *Invoker) setState(s RequestState) {
	inv.mu.Lock()
	inv.state = s
	inv.mu.Unlock()
}

// Invoke dispatches op against the active cluster and normalizes the
// response body. When no cluster is selected it returns (nil, nil) without
// touching the RequestState; a deselected target is not an error.
//
// On failure it returns ErrAPI or ErrNetwork; the detailed message lives in
// the RequestState and the logs, never in the returned error.
func (inv *Invoker) Invoke(ctx context.Context, op Operation) (Body, error) {
	ad, ok := inv.store.Active()
	if !ok {
		inv.log.Debug().Str("operation", op.Name()).Msg("no cluster selected, skipping call")
		return nil, nil
	}

	invokesTotal.WithLabelValues(op.Name()).Inc()
	inv.setState(RequestState{Loading: true, Status: -1})

	resps, err := ad.Do(ctx, op)
	if err != nil {
		return nil, inv.fail(op, err)
	}

	inv.setState(RequestState{Status: resps[len(resps)-1].Status})
	return decodeBody(resps), nil
}

// fail classifies err, records the matching snapshot and diagnostics, and
// returns the generic sentinel the caller may propagate.
func (inv *Invoker) fail(op Operation, err error) error {
	invokeID := uuid.NewString()

	var apiErr *adapter.APIError
	if errors.As(err, &apiErr) {
		msg := apiErrorMessage(apiErr)
		inv.setState(RequestState{APIError: true, APIErrorMessage: msg, Status: apiErr.Status})
		invokeFailuresTotal.WithLabelValues(op.Name(), "api").Inc()
		inv.log.Error().
			Str("invoke_id", invokeID).
			Str("operation", op.Name()).
			Int("status", apiErr.Status).
			Str("api_error", msg).
			Msg("engine rejected call")
		return ErrAPI
	}

	inv.setState(RequestState{NetworkError: true, APIErrorMessage: err.Error(), Status: -1})
	invokeFailuresTotal.WithLabelValues(op.Name(), "network").Inc()
	inv.log.Error().
		Str("invoke_id", invokeID).
		Str("operation", op.Name()).
		Err(err).
		Msg("transport failure")
	return ErrNetwork
}

// apiErrorMessage builds the human-readable message for a rejected call.
// A structured engine error with type index_not_found_exception gets the
// short form; any other structured error is serialized verbatim; a non-JSON
// failure body passes through as raw text.
func apiErrorMessage(e *adapter.APIError) string {
	parsed := jsonutil.Parse(e.Body)
	obj, ok := parsed.(map[string]any)
	if !ok {
		return e.Body
	}
	errVal, ok := obj["error"]
	if !ok {
		return jsonutil.Stringify(obj)
	}
	if em, ok := errVal.(map[string]any); ok {
		if em["type"] == "index_not_found_exception" {
			return "Index not found"
		}
	}
	return jsonutil.Stringify(errVal)
}

// decodeBody normalizes responses per their shape: one response decodes to
// a scalar Body, several decode to []any in request order.
func decodeBody(resps []adapter.Response) Body {
	if len(resps) == 1 {
		return decodeOne(resps[0])
	}
	items := make([]any, len(resps))
	for i, r := range resps {
		items[i] = decodeOne(r)
	}
	return items
}

func decodeOne(r adapter.Response) any {
	if strings.Contains(r.ContentType, "application/json") {
		return jsonutil.Parse(r.Body)
	}
	return true
}
