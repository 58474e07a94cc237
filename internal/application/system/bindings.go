package system

import "github.com/younwookim/exiled/internal/domain/entity"

// Action is something a held key makes the player do
type Action int

const (
	ActionNone Action = iota
	ActionMoveRight
	ActionMoveLeft
	ActionJump
	ActionAirJump
	ActionClimbUp
	ActionClimbDown
)

// String returns the string representation of the action
func (a Action) String() string {
	switch a {
	case ActionMoveRight:
		return "MoveRight"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionJump:
		return "Jump"
	case ActionAirJump:
		return "AirJump"
	case ActionClimbUp:
		return "ClimbUp"
	case ActionClimbDown:
		return "ClimbDown"
	default:
		return "None"
	}
}

// Bindings maps each key to the action it triggers
type Bindings [keyCount]Action

var (
	groundBindings = Bindings{
		KeyRight: ActionMoveRight,
		KeyLeft:  ActionMoveLeft,
		KeyUp:    ActionJump,
	}
	airBindings = Bindings{
		KeyRight: ActionMoveRight,
		KeyLeft:  ActionMoveLeft,
		KeyUp:    ActionAirJump,
	}
	shootBindings = Bindings{
		KeyUp:   ActionClimbUp,
		KeyDown: ActionClimbDown,
	}
)

var stateBindings = map[entity.ActionState]Bindings{
	entity.Standing:    groundBindings,
	entity.MovingLeft:  groundBindings,
	entity.MovingRight: groundBindings,
	entity.Jumping:     groundBindings,
	entity.InAir:       airBindings,
	entity.ShootRight:  shootBindings,
	entity.ShootLeft:   shootBindings,
	entity.ShootTop:    shootBindings,
	entity.ShootBottom: shootBindings,
	entity.Death:       {},
}

// BindingsFor returns the key bindings active in a player state
func BindingsFor(st entity.ActionState) Bindings {
	return stateBindings[st]
}

// Actions returns the actions for the held keys in KeyOrder
func (b Bindings) Actions(held KeySet) []Action {
	var out []Action
	for _, k := range KeyOrder {
		if !held.Has(k) {
			continue
		}
		if a := b[k]; a != ActionNone {
			out = append(out, a)
		}
	}
	return out
}
