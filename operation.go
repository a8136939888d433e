package systemctl

// Operation represents a systemctl verb
type Operation int

const (
	// OpUnknown represents an unknown operation
	OpUnknown Operation = iota
	// OpStart starts a unit
	OpStart
	// OpStop stops a unit
	OpStop
	// OpRestart forces a unit to (re)start
	OpRestart
	// OpReload asks a unit to reload its configuration
	OpReload
	// OpReloadOrRestart reloads a unit, restarting it if reload is unsupported
	OpReloadOrRestart
	// OpEnable enables a unit to start at boot
	OpEnable
	// OpDisable disables a unit from starting at boot
	OpDisable
	// OpStatus queries a unit's status block
	OpStatus
	// OpCat dumps a unit's configuration directives
	OpCat
	// OpIsActive probes whether a unit is actively running
	OpIsActive
	// OpListUnitFiles lists installed unit files
	OpListUnitFiles
	// OpDaemonReload reloads all unit files
	OpDaemonReload
	// OpIsolate starts a unit and stops everything not depended on by it
	OpIsolate
	// OpFreeze halts a unit's processes
	OpFreeze
	// OpThaw resumes a frozen unit
	OpThaw
	// OpClean removes a unit's runtime, state and cache directories
	OpClean
)

// Operation string constants
const (
	opUnknownStr         = "unknown"
	opStartStr           = "start"
	opStopStr            = "stop"
	opRestartStr         = "restart"
	opReloadStr          = "reload"
	opReloadOrRestartStr = "reload-or-restart"
	opEnableStr          = "enable"
	opDisableStr         = "disable"
	opStatusStr          = "status"
	opCatStr             = "cat"
	opIsActiveStr        = "is-active"
	opListUnitFilesStr   = "list-unit-files"
	opDaemonReloadStr    = "daemon-reload"
	opIsolateStr         = "isolate"
	opFreezeStr          = "freeze"
	opThawStr            = "thaw"
	opCleanStr           = "clean"
)

// String returns the systemctl verb for the operation
func (op Operation) String() string {
	switch op {
	case OpStart:
		return opStartStr
	case OpStop:
		return opStopStr
	case OpRestart:
		return opRestartStr
	case OpReload:
		return opReloadStr
	case OpReloadOrRestart:
		return opReloadOrRestartStr
	case OpEnable:
		return opEnableStr
	case OpDisable:
		return opDisableStr
	case OpStatus:
		return opStatusStr
	case OpCat:
		return opCatStr
	case OpIsActive:
		return opIsActiveStr
	case OpListUnitFiles:
		return opListUnitFilesStr
	case OpDaemonReload:
		return opDaemonReloadStr
	case OpIsolate:
		return opIsolateStr
	case OpFreeze:
		return opFreezeStr
	case OpThaw:
		return opThawStr
	case OpClean:
		return opCleanStr
	default:
		return opUnknownStr
	}
}
