// Package config provides YAML-based tuning for the tank game: world geometry,
// unit speeds, combat constants, level scaling and difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// TanksConfig contains all tuning for the tank game.
type TanksConfig struct {
	World   WorldConfig   `yaml:"world"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Boss    BossConfig    `yaml:"boss"`
	Barrel  BarrelConfig  `yaml:"barrel"`
	Bullet  BulletConfig  `yaml:"bullet"`
	Scoring ScoringConfig `yaml:"scoring"`
	Levels  LevelsConfig  `yaml:"levels"`
}

// WorldConfig defines the playfield. Valid mover centers lie in
// [Margin, Width-Margin]×[Margin, Height-Margin].
type WorldConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	TileSize      float64 `yaml:"tile_size"`
	Margin        float64 `yaml:"margin"`
	WallSize      float64 `yaml:"wall_size"`
	SnapTolerance float64 `yaml:"snap_tolerance"` // Distance at which a mover snaps onto its target
}

// PlayerConfig defines the player tank.
type PlayerConfig struct {
	Speed      float64 `yaml:"speed"`
	Lives      int     `yaml:"lives"`
	StartX     float64 `yaml:"start_x"`
	StartY     float64 `yaml:"start_y"`
	StartAngle float64 `yaml:"start_angle"`
	Hitbox     float64 `yaml:"hitbox"`
	MoveProbe  float64 `yaml:"move_probe"` // Probe size used to test the destination cell
}

// Point is a world position.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// EnemyConfig defines regular enemy tanks.
type EnemyConfig struct {
	BaseSpeed      float64 `yaml:"base_speed"`
	SpeedPerLevel  float64 `yaml:"speed_per_level"`
	ShootCooldown  float64 `yaml:"shoot_cooldown"`  // Seconds between shots
	AlignTolerance float64 `yaml:"align_tolerance"` // Max axis offset from the player to open fire
	Hitbox         float64 `yaml:"hitbox"`
	StartAngle     float64 `yaml:"start_angle"`
	SpawnPoints    []Point `yaml:"spawn_points"`
}

// BossConfig defines the bonus-level boss.
type BossConfig struct {
	HP             int       `yaml:"hp"`
	X              float64   `yaml:"x"`
	Y              float64   `yaml:"y"`
	Hitbox         float64   `yaml:"hitbox"`
	FanCooldown    float64   `yaml:"fan_cooldown"` // Seconds between fan shots
	FanOffsets     []float64 `yaml:"fan_offsets"`  // Degrees relative to the aim angle
	FanSpeedFactor float64   `yaml:"fan_speed_factor"`
	MuzzleOffset   float64   `yaml:"muzzle_offset"`
}

// BarrelConfig defines pushable barrels.
type BarrelConfig struct {
	HP              int     `yaml:"hp"`
	Speed           float64 `yaml:"speed"`
	Hitbox          float64 `yaml:"hitbox"`
	PushProbe       float64 `yaml:"push_probe"`
	PlacementProbe  float64 `yaml:"placement_probe"`
	BaseCount       int     `yaml:"base_count"`
	CountPerLevel   int     `yaml:"count_per_level"`
	BonusLifeChance float64 `yaml:"bonus_life_chance"`
	BonusDensity    float64 `yaml:"bonus_density"` // Per-cell chance on the bonus level
}

// BulletConfig defines shells.
type BulletConfig struct {
	Speed        float64 `yaml:"speed"`
	Size         float64 `yaml:"size"`
	BossSize     float64 `yaml:"boss_size"`
	MuzzleOffset float64 `yaml:"muzzle_offset"`
	MaxTicks     int     `yaml:"max_ticks"` // Shells older than this are culled
}

// ScoringConfig defines score awards.
type ScoringConfig struct {
	Barrel int `yaml:"barrel"`
	Enemy  int `yaml:"enemy"`
	Boss   int `yaml:"boss"`
}

// LevelsConfig defines the campaign length and level scaling.
type LevelsConfig struct {
	Max             int `yaml:"max"`
	BaseEnemies     int `yaml:"base_enemies"`
	EnemiesPerLevel int `yaml:"enemies_per_level"`
}

// Validate checks that the config describes a playable world.
func (c TanksConfig) Validate() error {
	var errs []error
	if c.World.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("world.tile_size must be positive, got %v", c.World.TileSize))
	}
	if c.World.Width <= 2*c.World.Margin || c.World.Height <= 2*c.World.Margin {
		errs = append(errs, errors.New("world must be larger than twice its margin"))
	}
	if c.World.SnapTolerance <= 0 {
		errs = append(errs, errors.New("world.snap_tolerance must be positive"))
	}
	if c.Player.Lives <= 0 {
		errs = append(errs, errors.New("player.lives must be positive"))
	}
	if c.Player.Speed <= 0 || c.Barrel.Speed <= 0 {
		errs = append(errs, errors.New("player.speed and barrel.speed must be positive"))
	}
	if c.Barrel.HP <= 0 || c.Boss.HP <= 0 {
		errs = append(errs, errors.New("barrel.hp and boss.hp must be positive"))
	}
	if len(c.Enemy.SpawnPoints) == 0 {
		errs = append(errs, errors.New("enemy.spawn_points must not be empty"))
	}
	if c.Levels.Max <= 0 {
		errs = append(errs, errors.New("levels.max must be positive"))
	}
	if c.Bullet.Speed <= 0 || c.Bullet.MaxTicks <= 0 {
		errs = append(errs, errors.New("bullet.speed and bullet.max_ticks must be positive"))
	}
	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}
