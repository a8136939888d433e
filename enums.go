package systemctl

import (
	"fmt"
	"strings"
)

// UnitType describes a unit declaration type in systemd. It is always
// derived from the unit name's dotted suffix.
type UnitType int

const (
	// TypeService is a supervised process unit (the default type)
	TypeService UnitType = iota
	// TypeSocket is a socket-activation unit
	TypeSocket
	// TypeMount is a filesystem mount point unit
	TypeMount
	// TypeAutoMount is an on-demand mount point unit
	TypeAutoMount
	// TypeTimer is a scheduled-activation unit
	TypeTimer
	// TypePath is a path-activation unit
	TypePath
	// TypeTarget is a synchronization point unit
	TypeTarget
	// TypeScope is an externally created process group unit
	TypeScope
	// TypeSlice is a resource-management group unit
	TypeSlice
)

// UnitType string constants
const (
	typeServiceStr   = "service"
	typeSocketStr    = "socket"
	typeMountStr     = "mount"
	typeAutoMountStr = "automount"
	typeTimerStr     = "timer"
	typePathStr      = "path"
	typeTargetStr    = "target"
	typeScopeStr     = "scope"
	typeSliceStr     = "slice"
)

// String returns the unit name suffix for the type
func (t UnitType) String() string {
	switch t {
	case TypeSocket:
		return typeSocketStr
	case TypeMount:
		return typeMountStr
	case TypeAutoMount:
		return typeAutoMountStr
	case TypeTimer:
		return typeTimerStr
	case TypePath:
		return typePathStr
	case TypeTarget:
		return typeTargetStr
	case TypeScope:
		return typeScopeStr
	case TypeSlice:
		return typeSliceStr
	default:
		return typeServiceStr
	}
}

// ParseUnitType decodes a unit name suffix into a UnitType. The match is
// case-sensitive after whitespace trimming. An unrecognized suffix is a
// hard failure: a unit that cannot be classified cannot be represented,
// so there is no fallback variant.
func ParseUnitType(s string) (UnitType, error) {
	switch strings.TrimSpace(s) {
	case typeServiceStr:
		return TypeService, nil
	case typeSocketStr:
		return TypeSocket, nil
	case typeMountStr:
		return TypeMount, nil
	case typeAutoMountStr:
		return TypeAutoMount, nil
	case typeTimerStr:
		return TypeTimer, nil
	case typePathStr:
		return TypePath, nil
	case typeTargetStr:
		return TypeTarget, nil
	case typeScopeStr:
		return TypeScope, nil
	case typeSliceStr:
		return TypeSlice, nil
	default:
		return TypeService, fmt.Errorf("%w: unknown unit type %q", ErrUnitTypeDecode, s)
	}
}

// LoadState describes whether systemd has loaded a unit's definition
type LoadState int

const (
	// StateMasked indicates the unit definition is masked (the default)
	StateMasked LoadState = iota
	// StateLoaded indicates the unit definition has been loaded from disk
	StateLoaded
)

// LoadState string constants
const (
	stateMaskedStr = "masked"
	stateLoadedStr = "loaded"
)

// String returns the string representation of the load state
func (s LoadState) String() string {
	switch s {
	case StateLoaded:
		return stateLoadedStr
	default:
		return stateMaskedStr
	}
}

// ParseLoadState decodes a load state token. The match is case-sensitive
// after whitespace trimming.
func ParseLoadState(s string) (LoadState, error) {
	switch strings.TrimSpace(s) {
	case stateLoadedStr:
		return StateLoaded, nil
	case stateMaskedStr:
		return StateMasked, nil
	default:
		return StateMasked, fmt.Errorf("unknown load state %q", s)
	}
}

// AutoStartMode describes a unit's boot-time enablement policy
type AutoStartMode int

const (
	// AutoStartDisabled indicates the unit does not start at boot (the default)
	AutoStartDisabled AutoStartMode = iota
	// AutoStartEnabled indicates the unit starts at boot
	AutoStartEnabled
	// AutoStartEnabledRuntime indicates the unit is enabled for this boot only
	AutoStartEnabledRuntime
	// AutoStartStatic indicates the unit cannot be enabled but may be a dependency
	AutoStartStatic
	// AutoStartGenerated indicates the unit file was produced by a generator
	AutoStartGenerated
	// AutoStartIndirect indicates the unit is enabled through another unit
	AutoStartIndirect
	// AutoStartTransient indicates the unit was created at runtime
	AutoStartTransient
)

// AutoStartMode string constants
const (
	autoStartDisabledStr       = "disabled"
	autoStartEnabledStr        = "enabled"
	autoStartEnabledRuntimeStr = "enabled-runtime"
	autoStartStaticStr         = "static"
	autoStartGeneratedStr      = "generated"
	autoStartIndirectStr       = "indirect"
	autoStartTransientStr      = "transient"
)

// String returns the string representation of the auto-start mode
func (m AutoStartMode) String() string {
	switch m {
	case AutoStartEnabled:
		return autoStartEnabledStr
	case AutoStartEnabledRuntime:
		return autoStartEnabledRuntimeStr
	case AutoStartStatic:
		return autoStartStaticStr
	case AutoStartGenerated:
		return autoStartGeneratedStr
	case AutoStartIndirect:
		return autoStartIndirectStr
	case AutoStartTransient:
		return autoStartTransientStr
	default:
		return autoStartDisabledStr
	}
}

// ParseAutoStartMode decodes an enablement token. The match is
// case-sensitive after whitespace trimming. Unlike unit types, this
// vocabulary is open-ended: systemd grows enablement states across
// versions, and failing a whole unit record over one is undesirable, so
// an unrecognized token degrades to AutoStartDisabled instead of
// returning an error. Keep this policy separate from ParseUnitType; a
// unified decoder would silently mask genuinely fatal type mismatches.
func ParseAutoStartMode(s string) AutoStartMode {
	switch strings.TrimSpace(s) {
	case autoStartEnabledStr:
		return AutoStartEnabled
	case autoStartEnabledRuntimeStr:
		return AutoStartEnabledRuntime
	case autoStartStaticStr:
		return AutoStartStatic
	case autoStartGeneratedStr:
		return AutoStartGenerated
	case autoStartIndirectStr:
		return AutoStartIndirect
	case autoStartTransientStr:
		return AutoStartTransient
	default:
		return AutoStartDisabled
	}
}
