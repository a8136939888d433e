package systemctl

// Unit is a typed snapshot of a single systemd unit, assembled from the
// status block, the configuration directive dump, and an independent
// active probe. Optional fields are absent-by-default: nil slices, empty
// strings and a zero PID mean the corresponding line never appeared (or
// never parsed), as opposed to a value that was explicitly empty.
type Unit struct {
	// Name is the unit name with the type suffix stripped
	Name string
	// Type is the unit type, derived from the name's dotted suffix
	Type UnitType
	// Description is the free text following the header line's "-" delimiter
	Description string
	// State is the unit definition's load state
	State LoadState
	// AutoStart is the boot-time enablement policy
	AutoStart AutoStartMode
	// Active reports whether the unit is actively running, probed
	// independently of the status block
	Active bool
	// Preset reports the vendor's default enablement recommendation,
	// derived from the trailing marker of the Loaded: parenthetical
	Preset bool
	// Script is the path of the backing unit file; set whenever the unit
	// is loaded, never when it is masked
	Script string
	// RestartPolicy is the Restart= directive value
	RestartPolicy string
	// KillMode is the KillMode= directive value
	KillMode string
	// Process is the name of the main supervised process
	Process string
	// PID is the main process ID (0 when unknown or unparsable)
	PID int
	// Tasks is the task accounting line, captured as opaque text
	Tasks string
	// CPU is the CPU consumption line, captured as opaque text
	CPU string
	// Memory is the memory consumption line, captured as opaque text
	Memory string
	// Mounted is the What: source; only meaningful for mount and
	// automount units
	Mounted string
	// MountPoint is the Where: target; only meaningful for mount and
	// automount units
	MountPoint string
	// Docs holds the documentation references, in file order
	Docs []Doc
	// Wants holds Wants= directive values, in file order
	Wants []string
	// WantedBy holds WantedBy= directive values, in file order
	WantedBy []string
	// Also holds Also= directive values, in file order
	Also []string
	// Before holds Before= directive values, in file order
	Before []string
	// After holds After= directive values, in file order
	After []string
	// ExecStart is the command line executed on start requests
	ExecStart string
	// ExecReload is the command line executed on reload requests
	ExecReload string
	// Transient reports whether the unit was created at runtime rather
	// than from an installed unit file
	Transient bool
}

// UnitFile is one row of `systemctl list-unit-files` output. The state is
// kept as the raw token because the listing command's vocabulary is wider
// than the status block's load states.
type UnitFile struct {
	// UnitFile is the dotted unit file name
	UnitFile string
	// State is the raw enablement state token
	State string
	// VendorPreset is the vendor's enablement recommendation
	VendorPreset Preset
}

// Preset is the tri-state vendor enablement recommendation from a
// listing row
type Preset int

const (
	// PresetUnknown indicates the listing showed no recommendation
	PresetUnknown Preset = iota
	// PresetEnabled indicates the vendor recommends enablement
	PresetEnabled
	// PresetDisabled indicates the vendor recommends the unit stay disabled
	PresetDisabled
)

// String returns the string representation of the preset
func (p Preset) String() string {
	switch p {
	case PresetEnabled:
		return "enabled"
	case PresetDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}
