package system

import (
	"github.com/younwookim/exiled/internal/domain/entity"
	"github.com/younwookim/exiled/internal/infrastructure/config"
)

// PlayerTuning holds the player constants with every duration in ticks
type PlayerTuning struct {
	Kinematics KinematicsConfig
	Collision  CollisionConfig

	Width, Height   float64
	WalkingSpeed    float64
	MaxWalkingSpeed float64

	JumpVelocity float64
	MaxAirJumps  int
	JumpCooldown int
	JumpCharge   int

	Hook              entity.HookParams
	MaxHooks          int
	ClimbInitialDelay int
	ClimbInterval     int
	ClimbStride       float64

	DeathDelay int
	DeathStep  int
	SinkFactor float64
}

// PlayerTuningFrom converts the physics config into player tuning
func PlayerTuningFrom(cfg *config.PhysicsConfig) PlayerTuning {
	return PlayerTuning{
		Kinematics:      KinematicsFrom(cfg),
		Collision:       CollisionFrom(cfg),
		Width:           cfg.Player.Width,
		Height:          cfg.Player.Height,
		WalkingSpeed:    cfg.Player.WalkingSpeed,
		MaxWalkingSpeed: cfg.Player.MaxWalkingSpeed,
		JumpVelocity:    cfg.Jump.Velocity,
		MaxAirJumps:     cfg.Jump.MaxAirJumps,
		JumpCooldown:    cfg.Ticks(cfg.Jump.Cooldown),
		JumpCharge:      cfg.Ticks(cfg.Jump.ChargeTime),
		Hook: entity.HookParams{
			Width:        cfg.Hook.Width,
			Height:       cfg.Hook.Height,
			Speed:        cfg.Hook.Speed,
			LaunchOffset: cfg.Hook.LaunchOffset,
			Delay:        cfg.Ticks(cfg.Hook.LaunchDelay),
			Acceleration: cfg.Hook.Acceleration,
		},
		MaxHooks:          cfg.Hook.MaxHooks,
		ClimbInitialDelay: cfg.Ticks(cfg.Hook.Climb.InitialDelay),
		ClimbInterval:     cfg.Ticks(cfg.Hook.Climb.Interval),
		ClimbStride:       cfg.Hook.Climb.Stride,
		DeathDelay:        cfg.Ticks(cfg.Death.Delay),
		DeathStep:         cfg.Ticks(cfg.Death.StepInterval),
		SinkFactor:        cfg.Death.SinkFactor,
	}
}

// Player is the controllable sprite
type Player struct {
	tuning PlayerTuning
	body   entity.Body
	sm     entity.StateMachine

	region       entity.Rect
	counterparts Counterparts
	hooks        entity.RecentList[*Projectile]

	held  KeySet
	flags StepFlags

	jumpsUsed    int
	jumpCooldown int
	jumpCharge   int
	climbTimer   int
	deathTimer   int

	events   []CollisionEvent
	grounded bool

	nearDoor    int
	hasNearDoor bool
	dead        bool
	despawned   bool
}

// NewPlayer creates a player placed in region with its centre on spawn
func NewPlayer(t PlayerTuning, region entity.Rect, spawn entity.Vec) *Player {
	p := &Player{
		tuning: t,
		hooks:  entity.NewRecentList[*Projectile](max(t.MaxHooks, 1)),
	}
	p.Place(region, spawn)
	return p
}

// Place moves the player into a new bounded region. The counterpart map,
// hooks and motion are reset; the action state is kept unless dead.
func (p *Player) Place(region entity.Rect, spawn entity.Vec) {
	p.region = region
	p.body = entity.NewBody(spawn, p.tuning.Width, p.tuning.Height)
	p.counterparts = Counterparts{}
	p.hooks.Clear()
	p.events = nil
	p.hasNearDoor = false
	if !p.dead {
		p.sm = entity.NewStateMachine(entity.KindPlayer, entity.Standing)
	}
	p.jumpCharge = p.tuning.JumpCharge
}

// SetTuning swaps the constants, used when the config is reloaded
func (p *Player) SetTuning(t PlayerTuning) {
	p.tuning = t
}

func (p *Player) Name() string              { return entity.PlayerName }
func (p *Player) Rect() entity.Rect         { return p.body.Rect }
func (p *Player) State() entity.ActionState { return p.sm.Current() }

// Body returns a copy of the player's body
func (p *Player) Body() entity.Body { return p.body }

// Region returns the region the player is bounded to
func (p *Player) Region() entity.Rect { return p.region }

// Grounded returns true if the last tick ended standing on something
func (p *Player) Grounded() bool { return p.grounded }

// JumpsUsed returns the number of jumps since the player last stood on something
func (p *Player) JumpsUsed() int { return p.jumpsUsed }

// Dead returns true once the player touched something hostile
func (p *Player) Dead() bool { return p.dead }

// NearDoor returns the number of the door the player overlaps
func (p *Player) NearDoor() (int, bool) { return p.nearDoor, p.hasNearDoor }

// Events returns the collisions found during the last tick
func (p *Player) Events() []CollisionEvent { return p.events }

// Hooks returns the hooks fired by the player, oldest first
func (p *Player) Hooks() []*Projectile { return p.hooks.Items() }

// Observe replaces the counterpart map with the latest snapshot
func (p *Player) Observe(snap Snapshot) {
	p.counterparts = Counterparts(snap)
	for _, h := range p.hooks.Items() {
		h.Observe(snap)
	}
}

// HandleInput records held keys and handles mouse clicks
func (p *Player) HandleInput(in InputState) {
	p.held = in.Held
	if p.dead {
		return
	}

	for _, c := range in.Clicks {
		switch c.Button {
		case ButtonLeft:
			p.fireHook(c.Pos)
		case ButtonRight:
			if p.sm.Current().IsShooting() {
				p.sm.Transition(entity.Standing)
				p.hooks.Clear()
			}
		}
	}
}

func (p *Player) fireHook(target entity.Vec) {
	h := entity.NewHook(p.body.Rect.Center(), target, p.tuning.Hook)
	p.hooks.Push(NewHookProjectile(h, p.region))
	p.climbTimer = p.tuning.ClimbInitialDelay
}

// UpdatePhysics runs one tick of the player
func (p *Player) UpdatePhysics() {
	if p.despawned {
		return
	}
	if p.dead {
		p.updateDeath()
		return
	}

	p.updateTimers()
	for _, h := range p.hooks.Items() {
		h.UpdatePhysics()
	}

	shooting := !p.hooks.Empty()
	p.flags = StepFlags{}
	if shooting {
		p.flags = StepFlags{SkipGravity: true, SkipFriction: true, Displacement: &entity.Vec{}}
	}

	for _, a := range BindingsFor(p.sm.Current()).Actions(p.held) {
		p.execute(a)
	}

	Integrate(&p.body, p.tuning.Kinematics, p.flags)

	boundary := PredictBoundary(p.body.Predicted(), p.region)
	if boundary.Any() {
		ResolveBoundary(&p.body, boundary, p.region, p.tuning.Collision)
	}

	// Contacts are reactive: only what the committed rect already overlaps counts.
	p.events = DetectCollisions(p.body.Rect, p.counterparts)
	applied := ResolveCounterparts(&p.body, p.events, p.tuning.Collision)
	p.grounded = boundary.Has(entity.SideBottom) || applied.Has(entity.SideBottom)

	p.checkDoor()
	p.checkDeath()
	if !p.dead {
		p.checkInAir(shooting)
		p.checkStanding()
		p.checkShooting()
	}

	p.body.Commit()
	p.body.ResetForces()
}

func (p *Player) updateTimers() {
	if p.jumpCooldown > 0 {
		p.jumpCooldown--
	}
	if p.sm.Is(entity.Jumping) {
		if p.jumpCharge > 0 {
			p.jumpCharge--
		}
	} else {
		p.jumpCharge = p.tuning.JumpCharge
	}
	if !p.hooks.Empty() && p.climbTimer > 0 {
		p.climbTimer--
	}
}

func (p *Player) execute(a Action) {
	t := p.tuning
	switch a {
	case ActionMoveRight:
		if p.body.V.X < t.MaxWalkingSpeed {
			p.body.V.X += t.WalkingSpeed
		}
		p.sm.Transition(entity.MovingRight)

	case ActionMoveLeft:
		if -p.body.V.X < t.MaxWalkingSpeed {
			p.body.V.X -= t.WalkingSpeed
		}
		p.sm.Transition(entity.MovingLeft)

	case ActionJump:
		p.sm.Transition(entity.Jumping)
		if p.jumpCharge == 0 {
			p.body.V.Y = -t.JumpVelocity
			p.jumpsUsed = 1
			p.sm.Transition(entity.InAir)
		}

	case ActionAirJump:
		// jumpsUsed includes the take-off, so a take-off leaves MaxAirJumps air jumps
		if p.jumpCooldown > 0 || !p.sm.Is(entity.InAir) || p.jumpsUsed > t.MaxAirJumps {
			return
		}
		if p.body.V.Y > 0 {
			p.body.V.Y = -2 * t.JumpVelocity
		} else {
			p.body.V.Y -= 1.5 * t.JumpVelocity
		}
		p.jumpsUsed++
		p.jumpCooldown = t.JumpCooldown

	case ActionClimbUp, ActionClimbDown:
		h, ok := p.hooks.First()
		if !ok || p.climbTimer > 0 {
			return
		}
		stride := h.Entity().InitialV.Scale(t.ClimbStride)
		if a == ActionClimbDown {
			stride = stride.Scale(-1)
		}
		p.flags.Displacement = &stride
		p.climbTimer = t.ClimbInterval
	}
}

func (p *Player) checkDoor() {
	p.hasNearDoor = false
	for _, ev := range p.events {
		if n, ok := entity.DoorNumber(ev.Name); ok {
			p.nearDoor, p.hasNearDoor = n, true
		}
	}
}

func (p *Player) checkDeath() {
	for _, ev := range p.events {
		if entity.IsHostile(ev.Name) {
			p.die()
			return
		}
	}
}

// die switches to the death path. It runs at most once.
func (p *Player) die() {
	if p.dead {
		return
	}
	p.dead = true
	p.sm.Transition(entity.Death)
	p.deathTimer = p.tuning.DeathDelay
	p.hooks.Clear()
	p.body.Stop()
}

func (p *Player) checkInAir(shooting bool) {
	if !p.grounded && !shooting {
		p.sm.Transition(entity.InAir)
	} else {
		p.jumpsUsed = 0
	}
	if p.sm.Is(entity.InAir) && p.grounded {
		p.sm.Transition(entity.Standing)
	}
}

func (p *Player) checkStanding() {
	if p.held.Empty() && p.body.V.IsZero() {
		p.sm.Transition(entity.Standing)
	}
}

func (p *Player) checkShooting() {
	for _, h := range p.hooks.Items() {
		p.sm.Transition(entity.ShootState(entity.DirectionFromAngle(h.Entity().Angle)))
	}
}

// updateDeath sinks the body: after the initial delay the centre's y grows by
// SinkFactor every DeathStep ticks until the body leaves the region
func (p *Player) updateDeath() {
	if p.deathTimer > 0 {
		p.deathTimer--
	}
	if p.deathTimer == 0 {
		p.deathTimer = p.tuning.DeathStep
		c := p.body.Rect.Center()
		c.Y *= p.tuning.SinkFactor
		p.body.PlaceAt(c)
	}
	if p.body.Rect.Bottom() > p.region.Bottom() {
		p.despawned = true
	}
}

// Broadcasts publishes the player and any resolved hook. A dead player is
// no longer published.
func (p *Player) Broadcasts() []Broadcast {
	if p.dead {
		return nil
	}
	out := []Broadcast{{Name: entity.PlayerName, Rect: p.body.Rect}}
	for _, h := range p.hooks.Items() {
		out = append(out, h.Broadcasts()...)
	}
	return out
}

func (p *Player) IsTerminal() bool { return p.sm.Terminal() }
func (p *Player) Despawned() bool  { return p.despawned }
