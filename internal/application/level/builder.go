package level

import (
	"log/slog"

	"github.com/younwookim/exiled/internal/application/system"
	"github.com/younwookim/exiled/internal/domain/entity"
	"github.com/younwookim/exiled/internal/infrastructure/config"
)

// Level is a built level: its world and the doors leading out of it
type Level struct {
	Config  *config.LevelConfig
	Region  entity.Rect
	World   *system.World
	Enemies []*system.Enemy

	doors map[int]config.DoorConfig
}

// Door returns the door with the given number
func (l *Level) Door(n int) (config.DoorConfig, bool) {
	d, ok := l.doors[n]
	return d, ok
}

// Build converts a LevelConfig into a populated World. Doors and platforms
// become statics, enemies are spawned in file order with ids starting at 1,
// and the player is placed at spawn and spawned first.
func Build(cfg *config.LevelConfig, phys *config.PhysicsConfig, player *system.Player, spawn entity.Vec, log *slog.Logger) *Level {
	lvl := &Level{
		Config: cfg,
		Region: toRect(cfg.Region),
		World:  system.NewWorld(log),
		doors:  make(map[int]config.DoorConfig, len(cfg.Doors)),
	}

	for _, d := range cfg.Doors {
		lvl.doors[d.Number] = d
		lvl.World.AddStatic(system.Broadcast{Name: entity.DoorName(d.Number), Rect: toRect(d.Rect)})
	}
	for _, p := range Platforms(cfg) {
		lvl.World.AddStatic(p)
	}

	player.Place(lvl.Region, spawn)
	lvl.World.Spawn(player)

	tuning := system.EnemyTuningFrom(phys)
	for i, e := range cfg.Enemies {
		en := system.NewEnemy(entity.EntityID(i+1), tuning, lvl.Region, toVec(e))
		lvl.Enemies = append(lvl.Enemies, en)
		lvl.World.Spawn(en)
	}

	return lvl
}

// Platforms returns the level's platforms: the listed ones first, then the
// grid column by column
func Platforms(cfg *config.LevelConfig) []system.Broadcast {
	out := make([]system.Broadcast, 0, len(cfg.Platforms))
	for _, r := range cfg.Platforms {
		out = append(out, system.Broadcast{Name: entity.PlatformName(len(out) + 1), Rect: toRect(r)})
	}

	g := cfg.PlatformGrid
	if g == nil {
		return out
	}
	base := len(out)
	for i := 0; i < g.Columns; i++ {
		for k := 0; k < g.Rows; k++ {
			out = append(out, system.Broadcast{
				Name: entity.PlatformName(base + g.Rows*i + k + 1),
				Rect: entity.Rect{
					X: cfg.Region.X + float64(g.StartColumn+g.ColumnStride*i)*g.TileSize,
					Y: cfg.Region.Y + float64(g.StartRow+g.RowStride*k)*g.TileSize,
					W: float64(g.Width) * g.TileSize,
					H: float64(g.Height) * g.TileSize,
				},
			})
		}
	}
	return out
}

func toRect(r config.RectConfig) entity.Rect {
	return entity.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

func toVec(p config.PositionConfig) entity.Vec {
	return entity.Vec{X: p.X, Y: p.Y}
}
