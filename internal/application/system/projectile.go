package system

import (
	"github.com/younwookim/exiled/internal/domain/entity"
)

// Projectile drives a hook or fireball. It flies straight until the next
// step would reach the region boundary or it overlaps one of its targets,
// then resolves exactly once.
type Projectile struct {
	p            *entity.Projectile
	region       entity.Rect
	targets      []string
	publishIn    entity.ActionState
	counterparts Counterparts
}

// NewHookProjectile wraps a hook. Hooks stop on enemies and platforms and are
// only published once resolved.
func NewHookProjectile(h *entity.Projectile, region entity.Rect) *Projectile {
	return &Projectile{
		p:         h,
		region:    region,
		targets:   []string{entity.PrefixEnemy, entity.PrefixPlatform},
		publishIn: entity.Resolved,
	}
}

// NewFireballProjectile wraps a fireball. Fireballs stop on the player and are
// only published while flying.
func NewFireballProjectile(f *entity.Projectile, region entity.Rect) *Projectile {
	return &Projectile{
		p:         f,
		region:    region,
		targets:   []string{entity.PrefixPlayer},
		publishIn: entity.Flying,
	}
}

func (pr *Projectile) Name() string              { return pr.p.Name }
func (pr *Projectile) Rect() entity.Rect         { return pr.p.Body.Rect }
func (pr *Projectile) State() entity.ActionState { return pr.p.SM.Current() }

// Entity returns the projectile data (for drawing)
func (pr *Projectile) Entity() *entity.Projectile { return pr.p }

// Observe keeps only the counterparts the projectile can hit
func (pr *Projectile) Observe(snap Snapshot) {
	pr.counterparts = Counterparts(snap).Filter(pr.targets...)
}

// HandleInput is a no-op: projectiles are not controlled
func (pr *Projectile) HandleInput(InputState) {}

// UpdatePhysics advances the projectile by one tick
func (pr *Projectile) UpdatePhysics() {
	p := pr.p
	if p.Resolved() {
		return
	}
	if !p.TickDelay() {
		return
	}

	next := p.Body.Rect.Translate(p.NextStep())
	if PredictBoundary(next, pr.region).Any() || len(DetectCollisions(p.Body.Rect, pr.counterparts)) > 0 {
		p.Resolve()
		return
	}
	p.Step()
}

// Broadcasts publishes the projectile only in its visible state
func (pr *Projectile) Broadcasts() []Broadcast {
	if !pr.p.SM.Is(pr.publishIn) {
		return nil
	}
	return []Broadcast{{Name: pr.p.Name, Rect: pr.p.Body.Rect}}
}

func (pr *Projectile) IsTerminal() bool { return pr.p.SM.Terminal() }

// Despawned returns true for a resolved fireball; a resolved hook stays as the rope anchor
func (pr *Projectile) Despawned() bool {
	return pr.p.Type == entity.ProjectileFireball && pr.p.Resolved()
}
