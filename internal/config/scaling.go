package config

// EnemyCount returns how many regular enemies a campaign level spawns.
func (c TanksConfig) EnemyCount(level int) int {
	return c.Levels.BaseEnemies + c.Levels.EnemiesPerLevel*level
}

// EnemySpeed returns the enemy move speed for a campaign level.
func (c TanksConfig) EnemySpeed(level int) float64 {
	return c.Enemy.BaseSpeed + c.Enemy.SpeedPerLevel*float64(level)
}

// BarrelCount returns how many barrels a campaign level places.
func (c TanksConfig) BarrelCount(level int) int {
	return c.Barrel.BaseCount + c.Barrel.CountPerLevel*level
}
