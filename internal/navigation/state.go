package navigation

// State is a step of the per-key state machine
type State int

const (
	Idle State = iota
	IntentDispatched
	ProbeBuilt
	Committed
	Reverted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case IntentDispatched:
		return "intent-dispatched"
	case ProbeBuilt:
		return "probe-built"
	case Committed:
		return "committed"
	case Reverted:
		return "reverted"
	default:
		return "unknown"
	}
}

// MarshalText lets states appear by name in JSON reports
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Intent is what a key press asks the camera to do
type Intent int

const (
	IntentNone Intent = iota
	IntentPitchUp
	IntentPitchDown
	IntentAzimuthLeft
	IntentAzimuthRight
	IntentForward
	IntentBackward
	IntentShutdown
)

var keyIntents = map[string]Intent{
	"Up":     IntentPitchUp,
	"Down":   IntentPitchDown,
	"Left":   IntentAzimuthLeft,
	"Right":  IntentAzimuthRight,
	"z":      IntentForward,
	"Z":      IntentForward,
	"s":      IntentBackward,
	"S":      IntentBackward,
	"Escape": IntentShutdown,
}

// IntentFor maps a key symbol to its intent. Unknown keys map to IntentNone.
func IntentFor(key string) Intent {
	return keyIntents[key]
}

// IsTranslation reports whether the intent moves the camera along its view
// direction
func (i Intent) IsTranslation() bool {
	return i == IntentForward || i == IntentBackward
}

func (i Intent) String() string {
	switch i {
	case IntentPitchUp:
		return "pitch-up"
	case IntentPitchDown:
		return "pitch-down"
	case IntentAzimuthLeft:
		return "azimuth-left"
	case IntentAzimuthRight:
		return "azimuth-right"
	case IntentForward:
		return "forward"
	case IntentBackward:
		return "backward"
	case IntentShutdown:
		return "shutdown"
	default:
		return "none"
	}
}

func (i Intent) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// Outcome reports what a single key press did
type Outcome struct {
	Key               string  `json:"key"`
	Intent            Intent  `json:"intent"`
	Trace             []State `json:"trace"`
	PatchCells        int     `json:"patch_cells"`
	Probed            bool    `json:"probed"`
	Intersections     int     `json:"intersections"`
	Blocked           bool    `json:"blocked"`
	Renders           int     `json:"renders"`
	ShutdownRequested bool    `json:"shutdown_requested"`
}
