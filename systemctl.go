package systemctl

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"time"
)

// Defaults for the SystemCtl client
const (
	// DefaultPath is the default location of the systemctl binary
	DefaultPath = "/usr/bin/systemctl"

	// DefaultTimeout is the per-invocation timeout applied when the
	// caller's context carries no deadline of its own
	DefaultTimeout = 10 * time.Second
)

// RunResult carries the fully drained output of one systemctl invocation.
// Stderr is captured and carried through for diagnostics but never parsed.
type RunResult struct {
	// Stdout is the drained standard output
	Stdout string
	// Stderr is the drained standard error
	Stderr string
	// ExitCode is the raw process exit code (-1 when killed by a signal)
	ExitCode int
}

// SystemCtl invokes the systemctl command-line tool and turns its output
// into typed records. The zero value is not usable; construct with New.
// A SystemCtl is safe for concurrent use: it holds no mutable state and
// every query owns its captured text.
type SystemCtl struct {
	// Path is the location of the systemctl binary
	Path string

	// Args are global arguments prepended to every invocation, such as
	// --user
	Args []string

	// Timeout bounds each invocation when the caller's context has no
	// deadline; zero disables the bound
	Timeout time.Duration
}

// Option configures a SystemCtl
type Option func(*SystemCtl)

// WithPath sets the path to the systemctl binary
func WithPath(path string) Option {
	return func(c *SystemCtl) {
		c.Path = path
	}
}

// WithArgs sets global arguments prepended to every invocation
func WithArgs(args ...string) Option {
	return func(c *SystemCtl) {
		c.Args = args
	}
}

// WithTimeout sets the per-invocation timeout
func WithTimeout(d time.Duration) Option {
	return func(c *SystemCtl) {
		c.Timeout = d
	}
}

// New creates a SystemCtl with default settings and applies any provided
// options.
func New(opts ...Option) *SystemCtl {
	c := &SystemCtl{
		Path:    DefaultPath,
		Timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// capture invokes systemctl, drains both streams completely, and only
// then classifies the exit signal. The ordering matters: exit codes 1 and
// 3 are successful invocations whose payload reports an absent or
// inactive unit, so output must be available to the caller regardless of
// the code. Classification failures are wrapped in a UnitError alongside
// the partially captured result.
func (c *SystemCtl) capture(ctx context.Context, op Operation, unit string, args ...string) (RunResult, error) {
	if c.Timeout > 0 {
		if _, ok := ctx.Deadline(); !ok {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, c.Timeout)
			defer cancel()
		}
	}

	full := make([]string, 0, len(c.Args)+len(args))
	full = append(full, c.Args...)
	full = append(full, args...)

	cmd := exec.CommandContext(ctx, c.Path, full...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	res := RunResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}

	if err := classifyRunError(runErr); err != nil {
		return res, &UnitError{Op: op, Unit: unit, Err: err}
	}
	return res, nil
}

// DaemonReload reloads all unit files
func (c *SystemCtl) DaemonReload(ctx context.Context) (RunResult, error) {
	return c.capture(ctx, OpDaemonReload, "", opDaemonReloadStr)
}

// Start starts the given unit
func (c *SystemCtl) Start(ctx context.Context, unit string) (RunResult, error) {
	return c.capture(ctx, OpStart, unit, opStartStr, unit)
}

// Stop stops the given unit
func (c *SystemCtl) Stop(ctx context.Context, unit string) (RunResult, error) {
	return c.capture(ctx, OpStop, unit, opStopStr, unit)
}

// Restart forces the given unit to (re)start
func (c *SystemCtl) Restart(ctx context.Context, unit string) (RunResult, error) {
	return c.capture(ctx, OpRestart, unit, opRestartStr, unit)
}

// Reload triggers a configuration reload for the given unit
func (c *SystemCtl) Reload(ctx context.Context, unit string) (RunResult, error) {
	return c.capture(ctx, OpReload, unit, opReloadStr, unit)
}

// ReloadOrRestart reloads the given unit, restarting it when reload is
// unsupported
func (c *SystemCtl) ReloadOrRestart(ctx context.Context, unit string) (RunResult, error) {
	return c.capture(ctx, OpReloadOrRestart, unit, opReloadOrRestartStr, unit)
}

// Enable enables the given unit to start at boot
func (c *SystemCtl) Enable(ctx context.Context, unit string) (RunResult, error) {
	return c.capture(ctx, OpEnable, unit, opEnableStr, unit)
}

// Disable disables the given unit from starting at boot
func (c *SystemCtl) Disable(ctx context.Context, unit string) (RunResult, error) {
	return c.capture(ctx, OpDisable, unit, opDisableStr, unit)
}

// Clean removes the runtime, state and cache directories of the given unit
func (c *SystemCtl) Clean(ctx context.Context, unit string) (RunResult, error) {
	return c.capture(ctx, OpClean, unit, opCleanStr, unit)
}

// Isolate starts the given unit and stops all others not depended on by it
func (c *SystemCtl) Isolate(ctx context.Context, unit string) (RunResult, error) {
	return c.capture(ctx, OpIsolate, unit, opIsolateStr, unit)
}

// Freeze halts the given unit's processes. The operation may not be
// feasible on every system.
func (c *SystemCtl) Freeze(ctx context.Context, unit string) (RunResult, error) {
	return c.capture(ctx, OpFreeze, unit, opFreezeStr, unit)
}

// Unfreeze resumes a frozen unit (systemctl thaw)
func (c *SystemCtl) Unfreeze(ctx context.Context, unit string) (RunResult, error) {
	return c.capture(ctx, OpThaw, unit, opThawStr, unit)
}

// Status returns the raw status block for the given unit
func (c *SystemCtl) Status(ctx context.Context, unit string) (RunResult, error) {
	return c.capture(ctx, OpStatus, unit, opStatusStr, unit)
}

// Cat returns the raw configuration directive dump for the given unit
func (c *SystemCtl) Cat(ctx context.Context, unit string) (RunResult, error) {
	return c.capture(ctx, OpCat, unit, opCatStr, unit)
}

// IsActive reports whether the given unit is actively running. An
// inactive unit is a successful probe, not an error.
func (c *SystemCtl) IsActive(ctx context.Context, unit string) (bool, error) {
	res, err := c.capture(ctx, OpIsActive, unit, opIsActiveStr, unit)
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(res.Stdout) == "active", nil
}

// Exists reports whether the given unit is known to systemd, ie. it could
// be or is deployed and manageable.
func (c *SystemCtl) Exists(ctx context.Context, unit string) (bool, error) {
	rows, err := c.ListUnitFiles(ctx, "", "", unit)
	if err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}

// ListUnitFiles returns the typed rows of `systemctl list-unit-files`.
// typeFilter, stateFilter and glob are optional; empty strings omit the
// corresponding filter.
func (c *SystemCtl) ListUnitFiles(ctx context.Context, typeFilter, stateFilter, glob string) ([]UnitFile, error) {
	args := []string{opListUnitFilesStr}
	if typeFilter != "" {
		args = append(args, "--type", typeFilter)
	}
	if stateFilter != "" {
		args = append(args, "--state", stateFilter)
	}
	if glob != "" {
		args = append(args, glob)
	}

	res, err := c.capture(ctx, OpListUnitFiles, glob, args...)
	if err != nil {
		return nil, err
	}
	rows, err := parseUnitFiles(res.Stdout)
	if err != nil {
		return nil, &UnitError{Op: OpListUnitFiles, Unit: glob, Err: err}
	}
	return rows, nil
}

// ListUnits returns the unit file names from `systemctl list-unit-files`,
// with the same optional filters as ListUnitFiles.
func (c *SystemCtl) ListUnits(ctx context.Context, typeFilter, stateFilter, glob string) ([]string, error) {
	rows, err := c.ListUnitFiles(ctx, typeFilter, stateFilter, glob)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.UnitFile)
	}
	return names, nil
}

// ListEnabledServices returns the service units currently declared enabled
func (c *SystemCtl) ListEnabledServices(ctx context.Context) ([]string, error) {
	return c.ListUnits(ctx, typeServiceStr, autoStartEnabledStr, "")
}

// ListDisabledServices returns the service units currently declared disabled
func (c *SystemCtl) ListDisabledServices(ctx context.Context) ([]string, error) {
	return c.ListUnits(ctx, typeServiceStr, autoStartDisabledStr, "")
}

// Unit builds a typed Unit snapshot for the given name. It validates that
// the unit exists before parsing, then combines three probes: the status
// block, the configuration directive dump, and an independent is-active
// check. The Active: line of the status block is deliberately not parsed;
// duplicating systemd's active/failed/activating sub-state machine from
// display text is less reliable than asking directly.
//
// Construction fails only when the unit does not exist or its type suffix
// cannot be decoded; all other malformed fields leave the record partial.
func (c *SystemCtl) Unit(ctx context.Context, name string) (*Unit, error) {
	exists, err := c.Exists(ctx, name)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, &UnitError{Op: OpStatus, Unit: name, Err: ErrNotFound}
	}

	status, err := c.Status(ctx, name)
	if err != nil {
		return nil, err
	}
	u, err := unmarshalStatus(status.Stdout)
	if err != nil {
		return nil, &UnitError{Op: OpStatus, Unit: name, Err: err}
	}

	// Directives are best-effort: a failed cat leaves them unset.
	if cat, err := c.Cat(ctx, name); err == nil {
		applyDirectives(u, cat.Stdout)
	}

	active, err := c.IsActive(ctx, name)
	if err != nil {
		return nil, err
	}
	u.Active = active

	return u, nil
}
