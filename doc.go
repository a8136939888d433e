// Package systemctl provides a Go client for managing and monitoring
// systemd units through the systemctl command-line tool.
//
// The core functionality centers around the SystemCtl type, which invokes
// systemctl, classifies its exit codes, and parses its semi-structured
// text output into typed records:
//
//	ctl := systemctl.New()
//
//	// Start a unit
//	_, err := ctl.Start(context.Background(), "nginx.service")
//
//	// Build a typed snapshot from `systemctl status` + `systemctl cat`
//	u, err := ctl.Unit(context.Background(), "nginx.service")
//	fmt.Printf("state: %v, enabled: %v, pid: %d\n", u.State, u.AutoStart, u.PID)
//
// # Parsing Philosophy
//
// systemctl's status output is not a formal grammar: it is
// whitespace-sensitive, has optional and repeated sections, and changes
// across systemd versions. The parsers here therefore fail soft. A status
// block with missing, reordered, or unrecognized fields still yields a
// partial Unit; only structural problems (the unit does not exist, or its
// type suffix cannot be decoded) abort a query. Tabular list-unit-files
// output, by contrast, is rejected wholesale when a row is malformed,
// since truncated tables are not locally recoverable the way free-text
// status blocks are.
//
// # Manager for Bulk Operations
//
// The Manager type is provided as a convenience for applications that need
// to control multiple units concurrently:
//
//	manager := systemctl.NewManager(
//	    systemctl.WithConcurrency(5),
//	    systemctl.WithManagerTimeout(10 * time.Second),
//	)
//
//	err := manager.Start(ctx, "web.service", "db.service", "cache.service")
//
// Every parse is a pure function over captured text, so unlimited parallel
// invocations are safe without synchronization.
//
// # Design Philosophy
//
// This library prioritizes:
//
//   - Exit-code classification before any output interpretation
//   - Graceful degradation on unanticipated but plausible input
//   - Context-aware operations with proper timeouts
//   - Type safety (closed enums instead of raw state strings)
package systemctl
