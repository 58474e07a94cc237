package system

import (
	"github.com/younwookim/exiled/internal/domain/entity"
	"github.com/younwookim/exiled/internal/infrastructure/config"
)

// EnemyTuning holds the enemy constants with every duration in ticks
type EnemyTuning struct {
	Kinematics    KinematicsConfig
	Width, Height float64
	AggroMargin   float64

	FireInterval   int
	FireballWidth  float64
	FireballHeight float64
	SpeedDivisor   float64
	MaxFireballs   int
}

// EnemyTuningFrom converts the physics config into enemy tuning.
// Enemies do not fall.
func EnemyTuningFrom(cfg *config.PhysicsConfig) EnemyTuning {
	kin := KinematicsFrom(cfg)
	kin.Gravity = 0

	return EnemyTuning{
		Kinematics:     kin,
		Width:          cfg.Enemy.Width,
		Height:         cfg.Enemy.Height,
		AggroMargin:    cfg.Enemy.AggroMargin,
		FireInterval:   cfg.Ticks(cfg.Enemy.Fireball.Interval),
		FireballWidth:  cfg.Enemy.Fireball.Width,
		FireballHeight: cfg.Enemy.Fireball.Height,
		SpeedDivisor:   cfg.Enemy.Fireball.SpeedDivisor,
		MaxFireballs:   cfg.Enemy.Fireball.MaxActive,
	}
}

// Enemy is a stationary caster that fires at the player while the player is
// inside its aggro area, and dies when a resolved hook touches it
type Enemy struct {
	e      *entity.Enemy
	tuning EnemyTuning
	region entity.Rect

	counterparts Counterparts
	fireballs    entity.RecentList[*Projectile]

	targetInRange bool
	targetDelta   entity.Vec
	despawned     bool
}

// NewEnemy creates an enemy centred on c inside region
func NewEnemy(id entity.EntityID, t EnemyTuning, region entity.Rect, c entity.Vec) *Enemy {
	return &Enemy{
		e:            entity.NewEnemy(id, c, t.Width, t.Height, t.FireInterval),
		tuning:       t,
		region:       region,
		counterparts: Counterparts{},
		fireballs:    entity.NewRecentList[*Projectile](max(t.MaxFireballs, 1)),
	}
}

func (en *Enemy) Name() string              { return en.e.Name() }
func (en *Enemy) Rect() entity.Rect         { return en.e.Body.Rect }
func (en *Enemy) State() entity.ActionState { return en.e.SM.Current() }

// AggroArea returns the area the player must enter to be fired at
func (en *Enemy) AggroArea() entity.Rect { return en.e.AggroArea(en.tuning.AggroMargin) }

// TargetInRange returns true if the player was inside the aggro area last tick
func (en *Enemy) TargetInRange() bool { return en.targetInRange }

// Fireballs returns the enemy's recent fireballs, oldest first
func (en *Enemy) Fireballs() []*Projectile { return en.fireballs.Items() }

// Observe replaces the counterpart map with the latest snapshot
func (en *Enemy) Observe(snap Snapshot) {
	en.counterparts = Counterparts(snap)
	for _, f := range en.fireballs.Items() {
		f.Observe(snap)
	}
}

// HandleInput is a no-op: enemies are not controlled
func (en *Enemy) HandleInput(InputState) {}

// UpdatePhysics runs one tick of the enemy
func (en *Enemy) UpdatePhysics() {
	if en.despawned {
		return
	}
	if !en.e.IsAlive() {
		en.despawned = true
		return
	}

	if en.e.FireTimer > 0 {
		en.e.FireTimer--
	}

	Integrate(&en.e.Body, en.tuning.Kinematics, StepFlags{SkipGravity: true})
	en.e.Body.Commit()
	en.e.Body.ResetForces()

	if en.hitByHook() {
		en.e.SM.Transition(entity.Death)
		en.fireballs.Clear()
		return
	}

	en.checkAggro()
	if en.targetInRange && en.e.FireTimer == 0 {
		en.fire()
	}
	for _, f := range en.fireballs.Items() {
		f.UpdatePhysics()
	}
}

func (en *Enemy) hitByHook() bool {
	events := DetectCollisions(en.e.Body.Rect, en.counterparts)
	_, hit := HasPrefixCollision(events, entity.PrefixHook)
	return hit
}

func (en *Enemy) checkAggro() {
	en.targetInRange = false
	target, ok := en.counterparts[entity.PlayerName]
	if !ok {
		return
	}
	tc := target.Center()
	if !en.AggroArea().ContainsPoint(tc) {
		return
	}
	en.targetInRange = true
	en.targetDelta = tc.Sub(en.e.Body.Rect.Center())
}

func (en *Enemy) fire() {
	v := en.targetDelta.Scale(1 / en.tuning.SpeedDivisor)
	f := entity.NewFireball(en.e.NextFireballName(), en.e.Body.Rect.Center(), v,
		en.tuning.FireballWidth, en.tuning.FireballHeight)

	fp := NewFireballProjectile(f, en.region)
	fp.Observe(Snapshot(en.counterparts))
	en.fireballs.Push(fp)
	en.e.FireTimer = en.tuning.FireInterval
}

// Broadcasts publishes the enemy and its flying fireballs
func (en *Enemy) Broadcasts() []Broadcast {
	if !en.e.IsAlive() {
		return nil
	}
	out := []Broadcast{{Name: en.e.Name(), Rect: en.e.Body.Rect}}
	for _, f := range en.fireballs.Items() {
		out = append(out, f.Broadcasts()...)
	}
	return out
}

func (en *Enemy) IsTerminal() bool { return en.e.SM.Terminal() }
func (en *Enemy) Despawned() bool  { return en.despawned }
