package systemctl

import (
	"fmt"
	"strings"
)

// listingColumns is the minimum column count of a list-unit-files data
// row: unit file, state, vendor preset.
const listingColumns = 3

// parseUnitFiles decodes tabular `systemctl list-unit-files` output into
// ordered UnitFile rows. Data rows are picked out by a heuristic on the
// first column: it contains a "." and does not end with one, which
// excludes the header, the trailing "N unit files listed." summary and
// blank decoration. A selected row with fewer than three columns fails
// the whole listing: a truncated table is not locally recoverable the way
// a free-text status block is.
func parseUnitFiles(stdout string) ([]UnitFile, error) {
	var rows []UnitFile
	for _, line := range strings.Split(stdout, "\n") {
		cols := strings.Fields(line)
		if len(cols) == 0 {
			continue
		}
		if !strings.Contains(cols[0], ".") || strings.HasSuffix(cols[0], ".") {
			continue
		}
		if len(cols) < listingColumns {
			return nil, fmt.Errorf("%w: %q", ErrMalformedListing, line)
		}
		rows = append(rows, UnitFile{
			UnitFile:     cols[0],
			State:        cols[1],
			VendorPreset: parsePreset(cols[2]),
		})
	}
	return rows, nil
}

// parsePreset decodes a vendor preset column; anything outside the two
// known tokens is an unknown recommendation, including the "-" systemd
// prints when no preset applies.
func parsePreset(s string) Preset {
	switch s {
	case "enabled":
		return PresetEnabled
	case "disabled":
		return PresetDisabled
	default:
		return PresetUnknown
	}
}
