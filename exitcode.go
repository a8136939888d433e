package systemctl

import (
	"errors"
	"os/exec"
)

// systemctl exit codes follow the LSB init script conventions
const (
	// exitSuccess indicates the command completed as requested
	exitSuccess = 0
	// exitGenericFailure is returned for queries on units systemd does
	// not know; the invocation itself succeeded and produced output
	exitGenericFailure = 1
	// exitNotRunning is returned for queries on inactive or dead units;
	// the invocation itself succeeded and produced output
	exitNotRunning = 3
	// exitNoPermission signals missing privileges or a missing unit
	exitNoPermission = 4
)

// classifyExit maps a completed systemctl invocation onto a domain
// outcome. Codes 0, 1 and 3 are successful invocations: 1 and 3 mean the
// payload reports an absent or inactive unit, so callers must still parse
// the captured output rather than treat them as failures. A signalled
// process carries no exit code and is reported as ErrKilledBySignal.
func classifyExit(code int, signaled bool) error {
	if signaled {
		return ErrKilledBySignal
	}
	switch code {
	case exitSuccess, exitGenericFailure, exitNotRunning:
		return nil
	case exitNoPermission:
		return ErrPermissionOrNotFound
	default:
		return &ExitCodeError{Code: code}
	}
}

// classifyRunError classifies the error returned by exec.Cmd.Run once the
// output streams have been drained. A nil error is exit code 0. Errors
// other than *exec.ExitError (spawn failures, context cancellation) are
// passed through untouched: the process never produced an exit signal to
// classify.
func classifyRunError(err error) error {
	if err == nil {
		return classifyExit(exitSuccess, false)
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return err
	}
	code := exitErr.ExitCode()
	if code == -1 {
		// Wait completed but the process was killed by a signal.
		return classifyExit(0, true)
	}
	return classifyExit(code, false)
}
