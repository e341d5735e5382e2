package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/clusterlens/esadmin"
)

func TestStdinConfirmer_Answers(t *testing.T) {
	t.Parallel()
	cases := map[string]bool{
		"y\n":   true,
		"Y\n":   true,
		"yes\n": true,
		"n\n":   false,
		"\n":    false,
	}
	for input, want := range cases {
		var out bytes.Buffer
		c := &stdinConfirmer{in: strings.NewReader(input), out: &out}
		if got := c.Confirm(context.Background(), "Delete logs?"); got != want {
			t.Fatalf("input %q: got %v, want %v", input, got, want)
		}
		if !strings.Contains(out.String(), "Delete logs?") {
			t.Fatalf("prompt not shown: %q", out.String())
		}
	}
}

func TestStdinConfirmer_EOFDeclines(t *testing.T) {
	t.Parallel()
	c := &stdinConfirmer{in: strings.NewReader(""), out: &bytes.Buffer{}}
	if c.Confirm(context.Background(), "sure?") {
		t.Fatalf("EOF must decline")
	}
}

func TestStdinConfirmer_CancelledContextDeclines(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := &stdinConfirmer{in: strings.NewReader("y\n"), out: &bytes.Buffer{}}
	if c.Confirm(ctx, "sure?") {
		t.Fatalf("cancelled context must decline")
	}
}

func TestLogNotifier_RendersOutcome(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	n := logNotifier{log: zerolog.New(&buf)}

	n.Notify(esadmin.RequestState{Status: 200}, esadmin.Snackbar{Title: "Index created"})
	if !strings.Contains(buf.String(), "Index created") {
		t.Fatalf("success notification missing: %q", buf.String())
	}

	buf.Reset()
	n.Notify(esadmin.RequestState{APIError: true, APIErrorMessage: "Index not found", Status: 404}, esadmin.Snackbar{Title: "Request failed"})
	out := buf.String()
	if !strings.Contains(out, "Request failed") || !strings.Contains(out, "Index not found") {
		t.Fatalf("failure notification missing detail: %q", out)
	}
}
