package systemctl

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUnitEndToEnd(t *testing.T) {
	ctl := New(WithPath(fakeCronScript(t)))
	ctx := context.Background()

	u, err := ctl.Unit(ctx, "cron.service")
	require.NoError(t, err)

	require.Equal(t, "cron", u.Name)
	require.Equal(t, TypeService, u.Type)
	require.Equal(t, "Periodic command scheduler", u.Description)
	require.Equal(t, StateLoaded, u.State)
	require.Equal(t, "/lib/systemd/system/cron.service", u.Script)
	require.Equal(t, AutoStartEnabled, u.AutoStart)
	require.True(t, u.Preset)
	require.True(t, u.Active, "active flag must come from the is-active probe")
	require.Equal(t, 787, u.PID)
	require.Equal(t, "cron", u.Process)
	require.Equal(t, []Doc{
		{Kind: DocMan, Ref: "cron"},
		{Kind: DocMan, Ref: "crontab"},
		{Kind: DocURL, Ref: "https://example.org/cron"},
	}, u.Docs)
	require.Equal(t, "/usr/sbin/cron -f $EXTRA_OPTS", u.ExecStart)
	require.Equal(t, "on-failure", u.RestartPolicy)
	require.Equal(t, []string{"multi-user.target"}, u.WantedBy)
}

func TestUnitNotFound(t *testing.T) {
	ctl := New(WithPath(fakeCronScript(t)))

	_, err := ctl.Unit(context.Background(), "ghost.service")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrNotFound)

	var unitErr *UnitError
	require.ErrorAs(t, err, &unitErr)
	require.Equal(t, "ghost.service", unitErr.Unit)
}

func TestExists(t *testing.T) {
	ctl := New(WithPath(fakeCronScript(t)))
	ctx := context.Background()

	ok, err := ctl.Exists(ctx, "cron.service")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = ctl.Exists(ctx, "ghost.service")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestIsActive(t *testing.T) {
	t.Run("active", func(t *testing.T) {
		ctl := New(WithPath(fakeCronScript(t)))
		active, err := ctl.IsActive(context.Background(), "cron.service")
		require.NoError(t, err)
		require.True(t, active)
	})

	t.Run("inactive exits 3 without error", func(t *testing.T) {
		path := writeFakeSystemctl(t, `echo inactive
exit 3
`)
		ctl := New(WithPath(path))
		active, err := ctl.IsActive(context.Background(), "cron.service")
		require.NoError(t, err)
		require.False(t, active)
	})
}

func TestListUnitFilesFilters(t *testing.T) {
	// The fake records its arguments so the filter plumbing is observable.
	argFile := filepath.Join(t.TempDir(), "args")
	path := writeFakeSystemctl(t, `shift
echo "$*" > `+argFile+`
echo "cron.service enabled enabled"
`)
	ctl := New(WithPath(path))

	rows, err := ctl.ListUnitFiles(context.Background(), "service", "enabled", "cron*")
	require.NoError(t, err)
	require.Len(t, rows, 1)

	recorded, err := os.ReadFile(argFile)
	require.NoError(t, err)
	require.Equal(t, "--type service --state enabled cron*", strings.TrimSpace(string(recorded)))
}

func TestListUnits(t *testing.T) {
	ctl := New(WithPath(fakeCronScript(t)))

	names, err := ctl.ListUnits(context.Background(), "", "", "")
	require.NoError(t, err)
	require.Equal(t, []string{"cron.service", "dbus.service", "ssh.service", "tmp.mount"}, names)
}

func TestExitCodeClassificationThroughClient(t *testing.T) {
	t.Run("exit 4", func(t *testing.T) {
		ctl := New(WithPath(writeFakeSystemctl(t, "exit 4\n")))
		_, err := ctl.Status(context.Background(), "cron.service")
		require.ErrorIs(t, err, ErrPermissionOrNotFound)
	})

	t.Run("unknown exit code", func(t *testing.T) {
		ctl := New(WithPath(writeFakeSystemctl(t, "exit 7\n")))
		_, err := ctl.Start(context.Background(), "cron.service")
		var exitErr *ExitCodeError
		require.ErrorAs(t, err, &exitErr)
		require.Equal(t, 7, exitErr.Code)
	})

	t.Run("killed by signal", func(t *testing.T) {
		ctl := New(WithPath(writeFakeSystemctl(t, "kill -9 $$\n")))
		_, err := ctl.Stop(context.Background(), "cron.service")
		require.ErrorIs(t, err, ErrKilledBySignal)
	})

	t.Run("output captured despite exit 1", func(t *testing.T) {
		ctl := New(WithPath(writeFakeSystemctl(t, `echo "Unit ghost.service could not be found."
exit 1
`)))
		res, err := ctl.Status(context.Background(), "ghost.service")
		require.NoError(t, err)
		require.Contains(t, res.Stdout, "could not be found")
	})
}

func TestCaptureTimeout(t *testing.T) {
	ctl := New(WithPath(writeFakeSystemctl(t, "sleep 10\n")), WithTimeout(50*time.Millisecond))

	start := time.Now()
	_, err := ctl.Status(context.Background(), "cron.service")
	require.Error(t, err)
	require.Less(t, time.Since(start), 5*time.Second)
}

func TestUnitSnapshotIdempotent(t *testing.T) {
	ctl := New(WithPath(fakeCronScript(t)))
	ctx := context.Background()

	first, err := ctl.Unit(ctx, "cron.service")
	require.NoError(t, err)
	second, err := ctl.Unit(ctx, "cron.service")
	require.NoError(t, err)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("snapshots diverged:\n%+v\n%+v", first, second)
	}
}

func TestGlobalArgs(t *testing.T) {
	// Global args are prepended ahead of the verb.
	path := writeFakeSystemctl(t, `if [ "$1" != "--user" ]; then
    exit 7
fi
exit 0
`)
	ctl := New(WithPath(path), WithArgs("--user"))
	_, err := ctl.DaemonReload(context.Background())
	require.NoError(t, err)
}

func TestUnitErrorUnwrap(t *testing.T) {
	err := &UnitError{Op: OpStatus, Unit: "cron.service", Err: ErrNotFound}
	require.True(t, errors.Is(err, ErrNotFound))
	require.Contains(t, err.Error(), "status")
	require.Contains(t, err.Error(), "cron.service")
}
