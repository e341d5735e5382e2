package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/clusterlens/esadmin"
)

// stdinConfirmer is the terminal confirmation dialog: it prompts on out and
// reads one line from in. Anything but y/yes declines, as does a read error
// or a cancelled context.
type stdinConfirmer struct {
	in  io.Reader
	out io.Writer
}

func (c *stdinConfirmer) Confirm(ctx context.Context, message string) bool {
	if ctx.Err() != nil {
		return false
	}
	fmt.Fprintf(c.out, "%s [y/N]: ", message)
	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// logNotifier renders snackbar notifications on the console log.
type logNotifier struct {
	log zerolog.Logger
}

func (n logNotifier) Notify(state esadmin.RequestState, sb esadmin.Snackbar) {
	if state.NetworkError || state.APIError {
		n.log.Error().Int("status", state.Status).Str("detail", state.APIErrorMessage).Msg(sb.Title)
		return
	}
	ev := n.log.Info().Int("status", state.Status)
	if sb.Text != "" {
		ev = ev.Str("detail", sb.Text)
	}
	ev.Msg(sb.Title)
}
