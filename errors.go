package esadmin

import "errors"

// ErrAPI is returned when the engine produced a response but rejected the
// call. The detailed engine message lives in the invoker's RequestState.
var ErrAPI = errors.New("api error")

// ErrNetwork is returned when the call failed before any response existed.
var ErrNetwork = errors.New("network error")

// IsAPI reports whether err is an engine-level rejection.
func IsAPI(err error) bool { return errors.Is(err, ErrAPI) }

// IsNetwork reports whether err is a transport failure.
func IsNetwork(err error) bool { return errors.Is(err, ErrNetwork) }
