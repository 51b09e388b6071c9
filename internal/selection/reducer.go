package selection

import (
	"github.com/ternarybob/gymscout/internal/models"
	"github.com/ternarybob/gymscout/internal/services/prefill"
)

// Reduce applies an event to the current state and returns the next state
// plus the side-effect commands the transition requires. Pure: no I/O, no
// mutation of the input state.
func Reduce(rules Rules, state State, ev Event) (State, []Command) {
	switch e := ev.(type) {
	case Activate:
		return reduceActivate(rules, state, e)

	case ClearSelection:
		// Selection and sheet visibility are independent axes: the sheet
		// stays as it is and shows the full list with nothing selected.
		state.ActiveGym = nil
		if state.Phase == PhasePreviewing || state.Phase == PhaseAuthGate {
			state.Phase = PhaseIdle
		}
		return state, nil

	case ToggleSheet:
		state.SheetOpen = !state.SheetOpen
		return state, nil

	case SheetDragReleased:
		// Threshold-gated, not proportional: small drags are a no-op.
		if e.Offset > rules.SheetCloseThreshold {
			state.SheetOpen = false
		} else if e.Offset < -rules.SheetOpenThreshold {
			state.SheetOpen = true
		}
		return state, nil

	case ScoutAdded:
		// The list append happens in the gym service; the machine only
		// closes the modal and settles on the freshly verified gym.
		gym := models.VerifiedEntry(e.Gym)
		state.ActiveGym = &gym
		state.ScoutModalOpen = false
		state.ScoutPrefill = nil
		state.Phase = PhasePreviewing
		return state, nil

	case ScoutDismissed:
		state.ScoutModalOpen = false
		state.ScoutPrefill = nil
		if state.Phase == PhaseScouting {
			state.Phase = PhaseIdle
		}
		return state, nil
	}

	return state, nil
}

func reduceActivate(rules Rules, state State, e Activate) (State, []Command) {
	gym := e.Gym

	switch gym.Kind {
	case models.GymKindVerified:
		// A previously open scout modal is unaffected by previewing a
		// verified gym.
		state.ActiveGym = &gym
		state.SheetOpen = true
		state.Phase = PhasePreviewing
		return state, []Command{FlyToCommand{
			Coordinate: gym.Coordinate(),
			Zoom:       rules.FlyToZoom,
			DurationMs: rules.FlyToDurationMs,
		}}

	case models.GymKindShadow:
		if !e.Authenticated {
			// No queued intent: the user must re-activate after signing in.
			state.ActiveGym = &gym
			state.Phase = PhaseAuthGate
			return state, nil
		}

		payload := prefill.Extract(*gym.Shadow)
		state.ActiveGym = &gym
		state.ScoutModalOpen = true
		state.ScoutPrefill = &payload
		state.Phase = PhaseScouting
		// No camera movement for shadow activation.
		return state, nil
	}

	return state, nil
}
