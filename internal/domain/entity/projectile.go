package entity

import "math"

// ProjectileType distinguishes the player's hook from enemy fireballs
type ProjectileType int

const (
	ProjectileHook ProjectileType = iota
	ProjectileFireball
)

// String returns the string representation of the projectile type
func (t ProjectileType) String() string {
	switch t {
	case ProjectileHook:
		return "Hook"
	case ProjectileFireball:
		return "Fireball"
	default:
		return "Unknown"
	}
}

// Projectile is a straight-flying body that resolves exactly once.
// Once resolved it never moves again and Finale holds its resting centre.
type Projectile struct {
	Name string
	Type ProjectileType
	Body Body
	SM   StateMachine

	Origin   Vec
	Finale   Vec
	Angle    float64 // launch angle in degrees, counter-clockwise from +x
	InitialV Vec

	Delay int     // ticks left before the projectile starts flying
	Accel float64 // velocity multiplier applied each flying tick
}

// HookParams configures a hook launch
type HookParams struct {
	Width, Height float64
	Speed         float64
	LaunchOffset  float64 // rect starts LaunchOffset*v away from the origin
	Delay         int
	Acceleration  float64
}

// LaunchAngle returns the angle in degrees from origin towards target in
// screen coordinates, counter-clockwise with 0 pointing right
func LaunchAngle(origin, target Vec) float64 {
	return math.Atan2(origin.Y-target.Y, target.X-origin.X) * 180 / math.Pi
}

// VelocityAt returns a screen-space velocity (y down) of the given speed at deg
func VelocityAt(deg, speed float64) Vec {
	rad := deg * math.Pi / 180
	return Vec{X: math.Cos(rad) * speed, Y: -math.Sin(rad) * speed}
}

// NewHook creates a grappling hook fired from origin towards target
func NewHook(origin, target Vec, p HookParams) *Projectile {
	angle := LaunchAngle(origin, target)
	v := VelocityAt(angle, p.Speed)

	accel := p.Acceleration
	if accel == 0 {
		accel = 1
	}

	return &Projectile{
		Name:     HookName,
		Type:     ProjectileHook,
		Body:     Body{Rect: RectFromCenter(origin.Add(v.Scale(p.LaunchOffset)), p.Width, p.Height), V: v},
		SM:       NewStateMachine(KindProjectile, Flying),
		Origin:   origin,
		Finale:   origin,
		Angle:    angle,
		InitialV: v,
		Delay:    p.Delay,
		Accel:    accel,
	}
}

// NewFireball creates a fireball at origin flying with a constant velocity v
func NewFireball(name string, origin, v Vec, w, h float64) *Projectile {
	return &Projectile{
		Name:     name,
		Type:     ProjectileFireball,
		Body:     Body{Rect: RectFromCenter(origin, w, h), V: v},
		SM:       NewStateMachine(KindProjectile, Flying),
		Origin:   origin,
		Finale:   origin,
		Angle:    LaunchAngle(origin, origin.Add(v)),
		InitialV: v,
		Accel:    1,
	}
}

// Resolved returns true once the projectile has stopped
func (p *Projectile) Resolved() bool {
	return p.SM.Is(Resolved)
}

// Launched returns true when the projectile is flying and its delay has elapsed
func (p *Projectile) Launched() bool {
	return p.SM.Is(Flying) && p.Delay == 0
}

// TickDelay counts the launch delay down by one tick.
// Returns true once the projectile may fly.
func (p *Projectile) TickDelay() bool {
	if p.Delay > 0 {
		p.Delay--
	}
	return p.Launched()
}

// NextStep returns the displacement the projectile will make on its next Step
func (p *Projectile) NextStep() Vec {
	return p.Body.V.Scale(p.Accel)
}

// Step accelerates the projectile and moves it one tick. No-op once resolved.
func (p *Projectile) Step() {
	if !p.Launched() {
		return
	}
	p.Body.V = p.NextStep()
	p.Body.D = p.Body.V
	p.Body.Commit()
}

// Resolve stops the projectile and freezes its finale.
// Returns true only on the first call.
func (p *Projectile) Resolve() bool {
	if !p.SM.Is(Flying) {
		return false
	}
	p.SM.Transition(Resolved)
	p.Body.Stop()
	p.Finale = p.Body.Rect.Center()
	return true
}
