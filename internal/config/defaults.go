package config

import (
	_ "embed"
)

//go:embed defaults/tanks.yaml
var defaultTanksYAML []byte

// DefaultTanksConfig returns the built-in tuning. It mirrors defaults/tanks.yaml
// and is used when the embedded file cannot be parsed.
func DefaultTanksConfig() TanksConfig {
	return TanksConfig{
		World: WorldConfig{
			Width:         800,
			Height:        600,
			TileSize:      40,
			Margin:        20,
			WallSize:      40,
			SnapTolerance: 4,
		},
		Player: PlayerConfig{
			Speed:      4,
			Lives:      3,
			StartX:     420,
			StartY:     60,
			StartAngle: -90,
			Hitbox:     30,
			MoveProbe:  25,
		},
		Enemy: EnemyConfig{
			BaseSpeed:      2,
			SpeedPerLevel:  0.4,
			ShootCooldown:  1.3,
			AlignTolerance: 30,
			Hitbox:         30,
			StartAngle:     270,
			SpawnPoints: []Point{
				{X: 60, Y: 540},
				{X: 740, Y: 540},
				{X: 60, Y: 260},
				{X: 740, Y: 260},
				{X: 420, Y: 540},
			},
		},
		Boss: BossConfig{
			HP:             10,
			X:              420,
			Y:              540,
			Hitbox:         60,
			FanCooldown:    1.2,
			FanOffsets:     []float64{-20, 0, 20},
			FanSpeedFactor: 1.2,
			MuzzleOffset:   60,
		},
		Barrel: BarrelConfig{
			HP:              3,
			Speed:           4,
			Hitbox:          38,
			PushProbe:       32,
			PlacementProbe:  30,
			BaseCount:       10,
			CountPerLevel:   2,
			BonusLifeChance: 0.3,
			BonusDensity:    0.15,
		},
		Bullet: BulletConfig{
			Speed:        7,
			Size:         6,
			BossSize:     8,
			MuzzleOffset: 25,
			MaxTicks:     600,
		},
		Scoring: ScoringConfig{
			Barrel: 50,
			Enemy:  100,
			Boss:   1000,
		},
		Levels: LevelsConfig{
			Max:             3,
			BaseEnemies:     1,
			EnemiesPerLevel: 2,
		},
	}
}

// DefaultYAML returns the embedded default tuning file.
func DefaultYAML() []byte {
	return defaultTanksYAML
}
