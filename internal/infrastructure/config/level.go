package config

// LevelConfig is the root config for levels/<id>.yaml
type LevelConfig struct {
	ID           string              `yaml:"id"`
	Name         string              `yaml:"name"`
	Region       RectConfig          `yaml:"region"`
	PlayerSpawn  PositionConfig      `yaml:"playerSpawn"`
	Doors        []DoorConfig        `yaml:"doors"`
	Platforms    []RectConfig        `yaml:"platforms"`
	PlatformGrid *PlatformGridConfig `yaml:"platformGrid,omitempty"`
	Enemies      []PositionConfig    `yaml:"enemies"`
}

type PositionConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type RectConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// DoorConfig describes a door. Doors are never solid; a player touching an
// enabled door can use it to move to Target, arriving at Spawn.
type DoorConfig struct {
	Number   int            `yaml:"number"`
	Rect     RectConfig     `yaml:"rect"`
	Target   string         `yaml:"target"`
	Spawn    PositionConfig `yaml:"spawn"`
	Disabled bool           `yaml:"disabled"`
}

// PlatformGridConfig lays out Columns x Rows platforms on a tile grid
// anchored at the level region's top-left corner. All offsets are in tiles.
type PlatformGridConfig struct {
	TileSize     float64 `yaml:"tileSize"`
	Columns      int     `yaml:"columns"`
	Rows         int     `yaml:"rows"`
	Width        int     `yaml:"width"`
	Height       int     `yaml:"height"`
	StartColumn  int     `yaml:"startColumn"`
	ColumnStride int     `yaml:"columnStride"`
	StartRow     int     `yaml:"startRow"`
	RowStride    int     `yaml:"rowStride"`
}
