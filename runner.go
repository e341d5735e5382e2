package esadmin

import "context"

// Snackbar is a transient result notification descriptor.
type Snackbar struct {
	Title string
	Text  string
}

// SnackbarFunc builds a Snackbar from the operation's decoded body. It is a
// pure builder: the Runner applies it after the call settles, so it must not
// perform side effects of its own.
type SnackbarFunc func(Body) Snackbar

// Confirmer asks the user to confirm a destructive action. Implementations
// block until the user answers; ctx cancellation counts as decline.
type Confirmer interface {
	Confirm(ctx context.Context, message string) bool
}

// Notifier shows a result notification. state carries the outcome the
// implementation may render (error message, HTTP status).
type Notifier interface {
	Notify(state RequestState, sb Snackbar)
}

// Runner is the mutation helper for user-triggered actions: optional
// confirmation, one invoke, reload signal and result notification. Errors
// are fully absorbed into the notification.
type Runner struct {
	inv     *Invoker
	confirm Confirmer
	notify  Notifier
	reload  func()
}

// NewRunner builds a Runner. confirm, notify and reload may each be nil
// when the call site has no dialog, no notification area or no parent to
// refresh.
func NewRunner(inv *Invoker, confirm Confirmer, notify Notifier, reload func()) *Runner {
	return &Runner{inv: inv, confirm: confirm, notify: notify, reload: reload}
}

// RunRequest describes one user-triggered action.
type RunRequest struct {
	// Op is the mutating operation to dispatch.
	Op Operation

	// ConfirmMsg, when non-empty, is put to the Confirmer first; a decline
	// aborts the run with no call made and no state change.
	ConfirmMsg string

	// Snackbar and SnackbarFn select the success notification: a static
	// descriptor or a builder applied to the decoded body. SnackbarFn wins
	// when both are set; when neither is set no success notification is
	// shown.
	Snackbar   *Snackbar
	SnackbarFn SnackbarFunc
}

// Run executes the action and reports whether it succeeded. It never
// returns an error: failures surface as a generic notification derived
// from the invoker's RequestState.
func (r *Runner) Run(ctx context.Context, req RunRequest) bool {
	if req.ConfirmMsg != "" && r.confirm != nil {
		if !r.confirm.Confirm(ctx, req.ConfirmMsg) {
			return false
		}
	}

	body, err := r.inv.Invoke(ctx, req.Op)
	if err != nil {
		if r.notify != nil {
			r.notify.Notify(r.inv.State(), Snackbar{Title: "Request failed"})
		}
		return false
	}

	if r.reload != nil {
		r.reload()
	}
	if r.notify != nil {
		switch {
		case req.SnackbarFn != nil:
			r.notify.Notify(r.inv.State(), req.SnackbarFn(body))
		case req.Snackbar != nil:
			r.notify.Notify(r.inv.State(), *req.Snackbar)
		}
	}
	return true
}
