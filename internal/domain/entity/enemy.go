package entity

// Enemy is a stationary fireball caster
type Enemy struct {
	ID   EntityID
	Body Body
	SM   StateMachine

	// FireTimer counts ticks until the next fireball may be cast
	FireTimer int
	// Fired is the number of fireballs cast so far, used for naming
	Fired int
}

// NewEnemy creates an enemy of size w x h centred on c
func NewEnemy(id EntityID, c Vec, w, h float64, fireInterval int) *Enemy {
	return &Enemy{
		ID:        id,
		Body:      NewBody(c, w, h),
		SM:        NewStateMachine(KindEnemy, Standing),
		FireTimer: fireInterval,
	}
}

// Name returns the broadcast name of the enemy
func (e *Enemy) Name() string {
	return EnemyName(e.ID)
}

// IsAlive returns true until the enemy dies
func (e *Enemy) IsAlive() bool {
	return !e.SM.Is(Death)
}

// AggroArea returns the enemy's rect grown by margin on each axis
func (e *Enemy) AggroArea(margin float64) Rect {
	return e.Body.Rect.Inflate(margin, margin)
}

// NextFireballName reserves the name of the next fireball
func (e *Enemy) NextFireballName() string {
	e.Fired++
	return FireballName(e.ID, e.Fired)
}
