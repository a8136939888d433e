package systemctl

import (
	"fmt"
	"strconv"
	"strings"
)

// statusGlyphWidth is the byte width of the state glyph prefixing the
// status header line ("●", "○", "×" are each three UTF-8 bytes).
const statusGlyphWidth = 3

// scanState tracks the one stateful carry in the status body scan: once a
// Docs: line has been seen, indented continuation lines keep contributing
// doc references until the next recognized prefix.
type scanState int

const (
	// stateScanning is the default line-by-line dispatch state
	stateScanning scanState = iota
	// stateInDocsBlock accepts continuation lines of a Docs: block
	stateInDocsBlock
)

// statusHandler consumes the trimmed remainder of a recognized status
// line and returns the scan state for subsequent lines.
type statusHandler func(u *Unit, rest string) scanState

// statusPrefixes is the ordered dispatch table for status body lines.
// Prefixes are tested in sequence and the first match consumes the line;
// anything unmatched falls through to the default ignore policy. The
// discard entries are deliberate: those lines are recognized so they are
// not mistaken for Docs: continuations, but their content is reserved for
// future structure and captured nowhere.
var statusPrefixes = []struct {
	prefix string
	handle statusHandler
}{
	{"Loaded:", handleLoaded},
	{"Transient:", handleTransient},
	{"Active:", discardLine},
	{"Docs:", handleDocs},
	{"What:", handleWhat},
	{"Where:", handleWhere},
	{"Main PID:", handlePID},
	{"Cntrl PID:", handlePID},
	{"Process:", discardLine},
	{"CGroup:", discardLine},
	{"Tasks:", discardLine},
	{"Memory:", handleMemory},
	{"CPU:", handleCPU},
}

// unmarshalStatus builds a Unit from the captured text of one status
// query. Only two conditions fail the whole record: an empty header and
// an undecodable unit type suffix. Every other malformed or absent field
// is absorbed locally, leaving the field at its zero value; the format
// evolves across systemd versions and strict rejection would break on any
// unseen line.
func unmarshalStatus(stdout string) (*Unit, error) {
	lines := strings.Split(stdout, "\n")

	u := &Unit{}
	if err := parseStatusHeader(u, lines[0]); err != nil {
		return nil, err
	}
	parseStatusBody(u, lines[1:])
	return u, nil
}

// parseStatusHeader decodes the first status line:
//
//	<glyph> <name>.<type> - <description>
//
// The glyph occupies a fixed three-byte prefix. The description is
// optional and only present after a lone "-" token.
func parseStatusHeader(u *Unit, line string) error {
	if len(line) > statusGlyphWidth {
		line = line[statusGlyphWidth:]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return fmt.Errorf("%w: empty status header", ErrUnitTypeDecode)
	}

	nameRaw := fields[0]
	if len(fields) >= 2 && fields[1] == "-" {
		u.Description = strings.Join(fields[2:], " ")
	}

	idx := strings.LastIndex(nameRaw, ".")
	if idx < 0 {
		return fmt.Errorf("%w: unit %q has no type suffix", ErrUnitTypeDecode, nameRaw)
	}
	utype, err := ParseUnitType(nameRaw[idx+1:])
	if err != nil {
		return err
	}
	u.Name = nameRaw[:idx]
	u.Type = utype
	return nil
}

// parseStatusBody scans the remaining status lines through the prefix
// dispatch table. Dispatch is order-independent across lines except for
// the Docs: continuation carry, which the scanState machine makes
// explicit: continuation lines are accepted only immediately after a
// Docs: line or another continuation line.
func parseStatusBody(u *Unit, lines []string) {
	state := stateScanning
	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		matched := false
		for _, entry := range statusPrefixes {
			if rest, ok := strings.CutPrefix(line, entry.prefix+" "); ok {
				state = entry.handle(u, strings.TrimSpace(rest))
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		if state == stateInDocsBlock {
			// A malformed continuation line contributes nothing but does
			// not end the block; doc references are best-effort metadata.
			if doc, err := ParseDoc(line); err == nil {
				u.Docs = append(u.Docs, doc)
			}
		}
	}
}

func discardLine(_ *Unit, _ string) scanState {
	return stateScanning
}

// handleLoaded distinguishes the two load shapes:
//
//	loaded (/lib/systemd/system/cron.service; enabled; vendor preset: enabled)
//	masked (Reason: Unit cron.service is masked.)
//
// The loaded parenthetical splits on ";" into the backing script path,
// the auto-start token, and an optional vendor preset whose trailing
// "enabled" marker sets the flag.
func handleLoaded(u *Unit, rest string) scanState {
	switch {
	case strings.HasPrefix(rest, stateLoadedStr+" "):
		u.State = StateLoaded
		body := strings.TrimPrefix(rest, stateLoadedStr+" ")
		body = strings.TrimPrefix(body, "(")
		body = strings.TrimSuffix(body, ")")
		items := strings.Split(body, ";")
		u.Script = strings.TrimSpace(items[0])
		if len(items) > 1 {
			u.AutoStart = ParseAutoStartMode(items[1])
		}
		if len(items) > 2 {
			u.Preset = strings.HasSuffix(strings.TrimSpace(items[2]), autoStartEnabledStr)
		}
	case strings.HasPrefix(rest, stateMaskedStr):
		u.State = StateMasked
	}
	return stateScanning
}

func handleTransient(u *Unit, rest string) scanState {
	if rest == "yes" {
		u.Transient = true
	}
	return stateScanning
}

// handleDocs consumes the first doc descriptor and opens the continuation
// block for the indented descriptors that may follow.
func handleDocs(u *Unit, rest string) scanState {
	if doc, err := ParseDoc(rest); err == nil {
		u.Docs = append(u.Docs, doc)
	}
	return stateInDocsBlock
}

func handleWhat(u *Unit, rest string) scanState {
	u.Mounted = rest
	return stateScanning
}

func handleWhere(u *Unit, rest string) scanState {
	u.MountPoint = rest
	return stateScanning
}

// handlePID parses "787 (gpm)" shaped values shared by the Main PID: and
// Cntrl PID: lines. An unparsable pid defaults to 0 rather than failing
// the record.
func handlePID(u *Unit, rest string) scanState {
	pidStr, proc, found := strings.Cut(rest, " ")
	if !found {
		return stateScanning
	}
	pid, err := strconv.Atoi(pidStr)
	if err != nil {
		pid = 0
	}
	u.PID = pid
	u.Process = strings.NewReplacer("(", "", ")", "").Replace(proc)
	return stateScanning
}

func handleMemory(u *Unit, rest string) scanState {
	u.Memory = rest
	return stateScanning
}

func handleCPU(u *Unit, rest string) scanState {
	u.CPU = rest
	return stateScanning
}

// directiveLists maps list-valued directive dump keys to their slice
// fields; repeated keys append in file order and duplicates are kept.
var directiveLists = map[string]func(u *Unit) *[]string{
	"Wants":    func(u *Unit) *[]string { return &u.Wants },
	"WantedBy": func(u *Unit) *[]string { return &u.WantedBy },
	"Also":     func(u *Unit) *[]string { return &u.Also },
	"Before":   func(u *Unit) *[]string { return &u.Before },
	"After":    func(u *Unit) *[]string { return &u.After },
}

// directiveScalars maps scalar directive dump keys to their fields;
// repeated keys overwrite, last one wins.
var directiveScalars = map[string]func(u *Unit) *string{
	"ExecStart":  func(u *Unit) *string { return &u.ExecStart },
	"ExecReload": func(u *Unit) *string { return &u.ExecReload },
	"Restart":    func(u *Unit) *string { return &u.RestartPolicy },
	"KillMode":   func(u *Unit) *string { return &u.KillMode },
}

// applyDirectives folds a directive dump (`systemctl cat` output) into
// the unit. Each line is split on its first "="; lines without one, and
// lines with unrecognized keys, are skipped. The value keeps everything
// after the first "=" since command lines legitimately contain it.
func applyDirectives(u *Unit, stdout string) {
	for _, line := range strings.Split(stdout, "\n") {
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		if field, ok := directiveLists[key]; ok {
			*field(u) = append(*field(u), value)
			continue
		}
		if field, ok := directiveScalars[key]; ok {
			*field(u) = value
		}
	}
}
