// Package selection owns the map interaction state: which gym is active,
// whether the detail sheet and scout modal are open, and the camera commands
// those transitions produce.
package selection

import "github.com/ternarybob/gymscout/internal/models"

// Phase names the selection machine's current mode. Idle is both the
// initial phase and reachable again via ClearSelection; there is no
// terminal phase.
type Phase string

const (
	// PhaseIdle: no active gym, nothing gated.
	PhaseIdle Phase = "idle"
	// PhasePreviewing: a verified gym is active, sheet expanded, camera moved.
	PhasePreviewing Phase = "previewing"
	// PhaseAuthGate: a shadow gym was activated without a session. The
	// scouting intent is deliberately not queued; the user re-activates
	// after signing in.
	PhaseAuthGate Phase = "auth_gate"
	// PhaseScouting: the scout modal is open, pre-filled from POI tags.
	PhaseScouting Phase = "scouting"
)

// State is the single selection snapshot the UI renders. Mutated only
// through Reduce.
type State struct {
	Phase          Phase                  `json:"phase"`
	ActiveGym      *models.Gym            `json:"active_gym,omitempty"`
	SheetOpen      bool                   `json:"sheet_open"`
	ScoutModalOpen bool                   `json:"scout_modal_open"`
	ScoutPrefill   *models.PrefillPayload `json:"scout_prefill,omitempty"`
}

// NewState returns the initial idle state with the sheet collapsed.
func NewState() State {
	return State{Phase: PhaseIdle}
}

// Rules holds the configured transition tuning. Thresholds and camera
// parameters are configuration, not magic constants.
type Rules struct {
	FlyToZoom           float64
	FlyToDurationMs     int
	SheetCloseThreshold float64 // Downward drag offset beyond which the sheet closes
	SheetOpenThreshold  float64 // Upward drag offset beyond which the sheet opens
}

// Event is a selection machine input.
type Event interface {
	event()
}

// Activate is fired when a map pin or list entry is tapped. Authenticated
// carries the session gate captured at dispatch time.
type Activate struct {
	Gym           models.Gym
	Authenticated bool
}

// ClearSelection resets the active gym without touching the sheet; sheet
// visibility and selection are independent axes.
type ClearSelection struct{}

// ToggleSheet flips the sheet open/closed regardless of selection.
type ToggleSheet struct{}

// SheetDragReleased reports the drag offset at gesture release. Positive
// offsets are downward.
type SheetDragReleased struct {
	Offset float64
}

// ScoutAdded is fired after the backend accepted a scout submission.
type ScoutAdded struct {
	Gym models.VerifiedGym
}

// ScoutDismissed closes the scout modal without submitting.
type ScoutDismissed struct{}

func (Activate) event()          {}
func (ClearSelection) event()    {}
func (ToggleSheet) event()       {}
func (SheetDragReleased) event() {}
func (ScoutAdded) event()        {}
func (ScoutDismissed) event()    {}

// Command is a side effect requested by a transition, executed by the
// caller after the state swap.
type Command interface {
	command()
}

// FlyToCommand asks the camera to move to a coordinate.
type FlyToCommand struct {
	Coordinate models.Coordinate
	Zoom       float64
	DurationMs int
}

func (FlyToCommand) command() {}
