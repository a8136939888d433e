package systemctl

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"vawter.tech/stopper"
)

// DefaultWatchDebounce is the default debounce for unit file change
// events, coalescing the bursts editors and package managers produce
const DefaultWatchDebounce = 100 * time.Millisecond

// WatchEvent represents a refreshed unit snapshot after its backing file
// changed
type WatchEvent struct {
	Unit *Unit
	Err  error
}

// WatchCleanupFunc stops a watch and releases its resources
type WatchCleanupFunc func() error

// watchState serializes debouncer access and remembers the last emitted
// snapshot so unchanged re-reads are suppressed
type watchState struct {
	mu        sync.Mutex
	last      *Unit
	debouncer *time.Timer
}

// Watch monitors a unit's backing file and emits a refreshed Unit
// snapshot whenever it changes. The watch covers configuration edits, not
// runtime state transitions: systemd exposes no file to observe for the
// latter, so callers needing liveness should poll IsActive. Events are
// debounced; the returned cleanup stops the watcher goroutine and closes
// the channel.
func (c *SystemCtl) Watch(ctx context.Context, name string) (<-chan WatchEvent, WatchCleanupFunc, error) {
	u, err := c.Unit(ctx, name)
	if err != nil {
		return nil, nil, err
	}
	if u.Script == "" {
		return nil, nil, &UnitError{Op: OpStatus, Unit: name, Err: errors.New("unit has no backing file to watch")}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, &UnitError{Op: OpStatus, Unit: name, Err: err}
	}

	// Watch the containing directory: editors and renameio-style writers
	// replace the file, which drops a watch registered on the file itself.
	fragment := filepath.Clean(u.Script)
	if err := watcher.Add(filepath.Dir(fragment)); err != nil {
		_ = watcher.Close()
		return nil, nil, &UnitError{Op: OpStatus, Unit: name, Err: err}
	}

	ch := make(chan WatchEvent, 10)

	sctx := stopper.WithContext(ctx)
	sctx.Defer(func() {
		_ = watcher.Close()
		close(ch)
	})

	state := &watchState{last: u}

	cleanup := func() error {
		sctx.Stop(100 * time.Millisecond)
		return sctx.Wait()
	}

	readAndSend := func() {
		if sctx.IsStopping() {
			return
		}

		refreshed, err := c.Unit(ctx, name)
		if err != nil {
			if !sctx.IsStopping() {
				select {
				case ch <- WatchEvent{Err: err}:
				case <-sctx.Stopping():
				}
			}
			return
		}

		state.mu.Lock()
		changed := !reflect.DeepEqual(refreshed, state.last)
		if changed {
			state.last = refreshed
		}
		state.mu.Unlock()

		if changed && !sctx.IsStopping() {
			select {
			case ch <- WatchEvent{Unit: refreshed}:
			case <-sctx.Stopping():
			}
		}
	}

	sctx.Go(func(sctx *stopper.Context) error {
		sctx.Defer(func() {
			state.mu.Lock()
			if state.debouncer != nil {
				state.debouncer.Stop()
			}
			state.mu.Unlock()
		})

		for !sctx.IsStopping() {
			select {
			case <-sctx.Stopping():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}

				if filepath.Clean(event.Name) == fragment {
					state.mu.Lock()
					if state.debouncer != nil {
						state.debouncer.Stop()
					}
					state.debouncer = time.AfterFunc(DefaultWatchDebounce, readAndSend)
					state.mu.Unlock()
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				if err != nil && !sctx.IsStopping() {
					select {
					case ch <- WatchEvent{Err: err}:
					case <-sctx.Stopping():
						return nil
					}
				}
			}
		}
		return nil
	})

	return ch, cleanup, nil
}
