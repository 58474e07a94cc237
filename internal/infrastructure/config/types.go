package config

// PhysicsConfig is the root config for physics.yaml.
// Durations are in seconds and converted to ticks with Ticks.
type PhysicsConfig struct {
	Display   DisplayConfig   `yaml:"display"`
	Physics   PhysicsSettings `yaml:"physics"`
	Collision CollisionConfig `yaml:"collision"`
	Player    PlayerConfig    `yaml:"player"`
	Jump      JumpConfig      `yaml:"jump"`
	Hook      HookConfig      `yaml:"hook"`
	Death     DeathConfig     `yaml:"death"`
	Enemy     EnemyConfig     `yaml:"enemy"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`
	Scale        int `yaml:"scale"`
	Framerate    int `yaml:"framerate"`
}

type PhysicsSettings struct {
	Gravity          float64 `yaml:"gravity"`
	Friction         float64 `yaml:"friction"`
	TerminalVelocity float64 `yaml:"terminalVelocity"`
	TimeStep         float64 `yaml:"timeStep"`
}

type CollisionConfig struct {
	// Gap is the minimum interpenetration (pixels) that bounces instead of stopping
	Gap float64 `yaml:"gap"`
	// RestingSink keeps a grounded body overlapping its platform by this many pixels
	RestingSink float64 `yaml:"restingSink"`
}

type PlayerConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	WalkingSpeed    float64 `yaml:"walkingSpeed"`
	MaxWalkingSpeed float64 `yaml:"maxWalkingSpeed"`
}

type JumpConfig struct {
	Velocity    float64 `yaml:"velocity"`
	MaxAirJumps int     `yaml:"maxAirJumps"`
	Cooldown    float64 `yaml:"cooldown"`
	ChargeTime  float64 `yaml:"chargeTime"`
}

type HookConfig struct {
	Width        float64     `yaml:"width"`
	Height       float64     `yaml:"height"`
	Speed        float64     `yaml:"speed"`
	LaunchOffset float64     `yaml:"launchOffset"`
	LaunchDelay  float64     `yaml:"launchDelay"`
	Acceleration float64     `yaml:"acceleration"`
	MaxHooks     int         `yaml:"maxHooks"`
	Climb        ClimbConfig `yaml:"climb"`
}

type ClimbConfig struct {
	InitialDelay float64 `yaml:"initialDelay"`
	Interval     float64 `yaml:"interval"`
	Stride       float64 `yaml:"stride"`
}

type DeathConfig struct {
	Delay        float64 `yaml:"delay"`
	StepInterval float64 `yaml:"stepInterval"`
	SinkFactor   float64 `yaml:"sinkFactor"`
}

type EnemyConfig struct {
	Width       float64        `yaml:"width"`
	Height      float64        `yaml:"height"`
	AggroMargin float64        `yaml:"aggroMargin"`
	Fireball    FireballConfig `yaml:"fireball"`
}

type FireballConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Interval     float64 `yaml:"interval"`
	SpeedDivisor float64 `yaml:"speedDivisor"`
	MaxActive    int     `yaml:"maxActive"`
}

// Ticks converts a duration in seconds to a whole number of ticks at fps
func Ticks(seconds float64, fps int) int {
	return int(seconds*float64(fps) + 0.5)
}

// Ticks converts a duration in seconds using the configured framerate
func (c *PhysicsConfig) Ticks(seconds float64) int {
	return Ticks(seconds, c.Display.Framerate)
}
