package systemctl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/renameio/v2"
)

// writeFakeSystemctl writes an executable shell script standing in for
// the systemctl binary and returns its path. Tests drive the client
// against it with WithPath.
func writeFakeSystemctl(t *testing.T, script string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "systemctl")
	if err := renameio.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatal(err)
	}
	return path
}

// cronListing is a realistic list-unit-files table with decoration
const cronListing = `UNIT FILE                              STATE           VENDOR PRESET
cron.service                           enabled         enabled
dbus.service                           static          -
ssh.service                            enabled         enabled
tmp.mount                              disabled        disabled

4 unit files listed.
`

// cronStatus is a realistic `systemctl status cron.service` block
const cronStatus = `● cron.service - Periodic command scheduler
     Loaded: loaded (/lib/systemd/system/cron.service; enabled; vendor preset: enabled)
     Active: active (running) since Mon 2026-08-24 08:11:32 UTC; 2 days ago
       Docs: man:cron(8)
             man:crontab(5)
             https://example.org/cron
   Main PID: 787 (cron)
      Tasks: 1 (limit: 4915)
     Memory: 1.1M
        CPU: 2.341s
     CGroup: /system.slice/cron.service
             └─787 /usr/sbin/cron -f
`

// cronCat is a realistic `systemctl cat cron.service` directive dump
const cronCat = `# /lib/systemd/system/cron.service
[Unit]
Description=Periodic command scheduler
After=remote-fs.target
After=nss-user-lookup.target

[Service]
ExecStart=/usr/sbin/cron -f $EXTRA_OPTS
ExecReload=/bin/kill -HUP $MAINPID
KillMode=process
Restart=on-failure

[Install]
WantedBy=multi-user.target
`

// fakeCronScript is a fake systemctl serving the cron fixtures
func fakeCronScript(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	mustWrite := func(name, content string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return p
	}

	listing := mustWrite("listing.txt", cronListing)
	status := mustWrite("status.txt", cronStatus)
	catOut := mustWrite("cat.txt", cronCat)

	return writeFakeSystemctl(t, `cmd="$1"
case "$cmd" in
list-unit-files)
    shift
    glob=""
    while [ $# -gt 0 ]; do
        case "$1" in
        --type|--state)
            shift 2
            ;;
        *)
            glob="$1"
            shift
            ;;
        esac
    done
    if [ -n "$glob" ]; then
        grep -F "$glob" `+listing+` || true
    else
        cat `+listing+`
    fi
    ;;
status)
    cat `+status+`
    ;;
cat)
    cat `+catOut+`
    ;;
is-active)
    echo active
    ;;
*)
    exit 0
    ;;
esac
`)
}
