package entity

import "fmt"

// ActionState is the mutually exclusive behavioural mode of an entity
type ActionState int

const (
	Standing ActionState = iota
	MovingLeft
	MovingRight
	Jumping
	InAir
	ShootRight
	ShootLeft
	ShootTop
	ShootBottom
	Death

	// Projectile states
	Flying
	Resolved

	actionStateCount
)

var actionStateNames = [actionStateCount]string{
	Standing:    "Standing",
	MovingLeft:  "MovingLeft",
	MovingRight: "MovingRight",
	Jumping:     "Jumping",
	InAir:       "InAir",
	ShootRight:  "ShootRight",
	ShootLeft:   "ShootLeft",
	ShootTop:    "ShootTop",
	ShootBottom: "ShootBottom",
	Death:       "Death",
	Flying:      "Flying",
	Resolved:    "Resolved",
}

// String returns the string representation of the state
func (s ActionState) String() string {
	if s < 0 || s >= actionStateCount {
		return "Unknown"
	}
	return actionStateNames[s]
}

// IsShooting returns true for the four directional shooting states
func (s ActionState) IsShooting() bool {
	return s == ShootRight || s == ShootLeft || s == ShootTop || s == ShootBottom
}

// Kind identifies which transition table an entity uses
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindProjectile
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindEnemy:
		return "Enemy"
	case KindProjectile:
		return "Projectile"
	default:
		return "Unknown"
	}
}

// StateSet is a set of action states
type StateSet uint32

// NewStateSet builds a set from the given states
func NewStateSet(states ...ActionState) StateSet {
	var s StateSet
	for _, st := range states {
		s |= 1 << uint(st)
	}
	return s
}

// Contains returns true if st is in the set
func (s StateSet) Contains(st ActionState) bool {
	if st < 0 || st >= actionStateCount {
		return false
	}
	return s&(1<<uint(st)) != 0
}

// TransitionTable maps a state to the states it may move to.
// States absent from the table are not valid for the kind.
type TransitionTable map[ActionState]StateSet

var (
	playerAll = NewStateSet(Standing, MovingLeft, MovingRight, Jumping, InAir,
		ShootRight, ShootLeft, ShootTop, ShootBottom, Death)
	shooting = NewStateSet(ShootRight, ShootLeft, ShootTop, ShootBottom)
)

var transitionTables = map[Kind]TransitionTable{
	KindPlayer: {
		Standing:    playerAll,
		MovingLeft:  playerAll,
		MovingRight: playerAll,
		Jumping:     playerAll,
		// Jumping is the grounded take-off charge
		InAir:       playerAll &^ NewStateSet(Jumping),
		ShootRight:  shooting | NewStateSet(Standing, Death),
		ShootLeft:   shooting | NewStateSet(Standing, Death),
		ShootTop:    shooting | NewStateSet(Standing, Death),
		ShootBottom: shooting | NewStateSet(Standing, Death),
		Death:       NewStateSet(Death),
	},
	KindEnemy: {
		Standing: NewStateSet(Standing, Death),
		Death:    NewStateSet(Death),
	},
	KindProjectile: {
		Flying:   NewStateSet(Flying, Resolved),
		Resolved: NewStateSet(Resolved),
	},
}

// CanTransition reports whether an entity of kind k may move from -> to
func CanTransition(k Kind, from, to ActionState) bool {
	next, ok := transitionTables[k][from]
	if !ok {
		return false
	}
	return next.Contains(to)
}

// StateMachine holds exactly one active state for an entity
type StateMachine struct {
	kind    Kind
	current ActionState
}

// NewStateMachine creates a state machine in the initial state.
// Panics if initial is not a state of the kind.
func NewStateMachine(k Kind, initial ActionState) StateMachine {
	if _, ok := transitionTables[k][initial]; !ok {
		panic(fmt.Sprintf("entity: %s is not a %s state", initial, k))
	}
	return StateMachine{kind: k, current: initial}
}

// Current returns the active state
func (m *StateMachine) Current() ActionState { return m.current }

// Is returns true if st is the active state
func (m *StateMachine) Is(st ActionState) bool { return m.current == st }

// Transition moves to the given state if the table allows it.
// Returns false and keeps the current state otherwise.
func (m *StateMachine) Transition(to ActionState) bool {
	if !CanTransition(m.kind, m.current, to) {
		return false
	}
	m.current = to
	return true
}

// Terminal returns true if no other state is reachable
func (m *StateMachine) Terminal() bool {
	next := transitionTables[m.kind][m.current]
	return next == NewStateSet(m.current)
}

// Direction represents one of four screen directions
type Direction int

const (
	DirNone  Direction = -1
	DirRight Direction = 0
	DirUp    Direction = 1
	DirLeft  Direction = 2
	DirDown  Direction = 3
)

// DirectionFromAngle buckets an angle in degrees (counter-clockwise, 0 = right)
// into a direction: Right (-45, 45], Up (45, 135], Down (-135, -45], Left otherwise.
func DirectionFromAngle(deg float64) Direction {
	switch {
	case deg > -45 && deg <= 45:
		return DirRight
	case deg > 45 && deg <= 135:
		return DirUp
	case deg > -135 && deg <= -45:
		return DirDown
	default:
		return DirLeft
	}
}

// ShootState returns the shooting state for a direction.
// An invalid direction is a programmer error and panics.
func ShootState(dir Direction) ActionState {
	switch dir {
	case DirRight:
		return ShootRight
	case DirUp:
		return ShootTop
	case DirLeft:
		return ShootLeft
	case DirDown:
		return ShootBottom
	default:
		panic(fmt.Sprintf("entity: invalid shooting direction %d", dir))
	}
}
