package level

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/younwookim/exiled/internal/application/system"
	"github.com/younwookim/exiled/internal/domain/entity"
	"github.com/younwookim/exiled/internal/infrastructure/config"
)

// ErrUnknownLevel is returned when a level id has no config
var ErrUnknownLevel = errors.New("unknown level")

// Manager owns the player and the current level, and moves the player
// between levels through doors
type Manager struct {
	game   *config.GameConfig
	log    *slog.Logger
	player *system.Player
	level  *Level
}

// NewManager creates a manager with a fresh player. Call Enter before Tick.
func NewManager(cfg *config.GameConfig, log *slog.Logger) *Manager {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	m := &Manager{game: cfg, log: log}
	m.player = m.newPlayer()
	return m
}

func (m *Manager) newPlayer() *system.Player {
	return system.NewPlayer(system.PlayerTuningFrom(m.game.Physics), entity.Rect{}, entity.Vec{})
}

// Enter builds the level and places the player at its spawn point
func (m *Manager) Enter(id string) error {
	cfg, ok := m.game.Level(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLevel, id)
	}
	m.enter(cfg, toVec(cfg.PlayerSpawn))
	return nil
}

func (m *Manager) enter(cfg *config.LevelConfig, spawn entity.Vec) {
	m.level = Build(cfg, m.game.Physics, m.player, spawn, m.log)
	m.log.Debug("enter level", "level", cfg.ID, "spawn_x", spawn.X, "spawn_y", spawn.Y)
}

// UseDoor moves the player through the door it stands at.
// Returns false if the player is not at an enabled door.
func (m *Manager) UseDoor() bool {
	if m.level == nil || m.player.Dead() {
		return false
	}
	n, ok := m.player.NearDoor()
	if !ok {
		return false
	}
	door, ok := m.level.Door(n)
	if !ok || door.Disabled {
		return false
	}
	target, ok := m.game.Level(door.Target)
	if !ok {
		m.log.Warn("door leads nowhere", "level", m.level.Config.ID, "door", n, "target", door.Target)
		return false
	}

	m.log.Debug("use door", "from", m.level.Config.ID, "door", n, "to", target.ID)
	m.enter(target, toVec(door.Spawn))
	return true
}

// Tick steps the current level once, then handles a door request
func (m *Manager) Tick(in system.InputState) {
	if m.level == nil {
		return
	}
	m.level.World.Tick(in)
	if in.Use {
		m.UseDoor()
	}
}

// Restart replaces the player and rebuilds the current level
func (m *Manager) Restart() error {
	if m.level == nil {
		return fmt.Errorf("%w: no level entered", ErrUnknownLevel)
	}
	m.player = m.newPlayer()
	return m.Enter(m.level.Config.ID)
}

// Reload swaps in a new config. The player's tuning changes immediately;
// enemies pick up the new tuning the next time a level is built.
func (m *Manager) Reload(cfg *config.GameConfig) {
	m.game = cfg
	m.player.SetTuning(system.PlayerTuningFrom(cfg.Physics))
	m.log.Info("config reloaded", "levels", len(cfg.Levels))
}

// World returns the current level's world, nil before Enter
func (m *Manager) World() *system.World {
	if m.level == nil {
		return nil
	}
	return m.level.World
}

func (m *Manager) Player() *system.Player     { return m.player }
func (m *Manager) Current() *Level            { return m.level }
func (m *Manager) Config() *config.GameConfig { return m.game }
