// Package adapter mediates calls to the search-engine HTTP API. One Adapter
// is scoped to one cluster endpoint; construction is explicit and happens at
// connection-registration time, never lazily at call time.
package adapter

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// Response is one fully-read HTTP response from the engine.
type Response struct {
	Status      int
	ContentType string
	Body        string
}

// APIError reports a call that reached the engine and was rejected: the
// engine produced a response with an error status. Body holds the raw
// response text for the caller to decode.
type APIError struct {
	Status      int
	ContentType string
	Body        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d", e.Status)
}

// Adapter executes Operations against one cluster endpoint.
type Adapter struct {
	rest *resty.Client
	log  zerolog.Logger
}

// New constructs an Adapter for the given base URI. The returned adapter
// performs no I/O until Ping or Do is called.
func New(uri string, opts ...Option) (*Adapter, error) {
	if uri == "" {
		return nil, fmt.Errorf("adapter: uri cannot be empty")
	}
	a := &Adapter{
		rest: resty.New().
			SetBaseURL(uri).
			SetHeader("Content-Type", "application/json").
			SetTimeout(30 * time.Second),
		log: zerolog.Nop(),
	}
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// BaseURL returns the cluster endpoint this adapter talks to.
func (a *Adapter) BaseURL() string { return a.rest.BaseURL }

// Ping issues a bare GET against the cluster root as a health check.
func (a *Adapter) Ping(ctx context.Context) error {
	resp, err := a.rest.R().SetContext(ctx).Get("/")
	if err != nil {
		return fmt.Errorf("ping %s: %w", a.rest.BaseURL, err)
	}
	if resp.IsError() {
		return &APIError{
			Status:      resp.StatusCode(),
			ContentType: resp.Header().Get("Content-Type"),
			Body:        string(resp.Body()),
		}
	}
	return nil
}

// Do executes the operation's planned requests. Multi-request operations run
// concurrently and Do joins every request before returning, so the result
// slice is always complete and in plan order. The first error encountered
// (in plan order) is returned after the join.
func (a *Adapter) Do(ctx context.Context, op Operation) ([]Response, error) {
	reqs := op.plan()
	if len(reqs) == 0 {
		return nil, fmt.Errorf("adapter: operation %s planned no requests", op.Name())
	}
	if len(reqs) == 1 {
		resp, err := a.exec(ctx, reqs[0])
		if err != nil {
			return nil, err
		}
		return []Response{resp}, nil
	}

	out := make([]Response, len(reqs))
	errs := make([]error, len(reqs))
	var wg sync.WaitGroup
	for i, r := range reqs {
		wg.Add(1)
		go func(i int, r restReq) {
			defer wg.Done()
			out[i], errs[i] = a.exec(ctx, r)
		}(i, r)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (a *Adapter) exec(ctx context.Context, r restReq) (Response, error) {
	req := a.rest.R().SetContext(ctx)
	if len(r.query) > 0 {
		req.SetQueryParamsFromValues(r.query)
	}
	if r.body != nil {
		req.SetBody(r.body)
	}
	resp, err := req.Execute(r.method, r.path)
	if err != nil {
		a.log.Debug().Err(err).Str("method", r.method).Str("path", r.path).Msg("transport failure")
		return Response{}, fmt.Errorf("%s %s: %w", r.method, r.path, err)
	}
	if resp.IsError() {
		return Response{}, &APIError{
			Status:      resp.StatusCode(),
			ContentType: resp.Header().Get("Content-Type"),
			Body:        string(resp.Body()),
		}
	}
	return Response{
		Status:      resp.StatusCode(),
		ContentType: resp.Header().Get("Content-Type"),
		Body:        string(resp.Body()),
	}, nil
}
