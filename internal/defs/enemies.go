// internal/defs/enemies.go
package defs

// EnemySpecial tags an enemy with extra behaviour.
type EnemySpecial string

const (
	EnemyPlain EnemySpecial = "none"
	EnemyToxin EnemySpecial = "toxin"
)

// EnemyDefinition хранит статические данные типа врага (патогена).
type EnemyDefinition struct {
	ID           string       `yaml:"id"`
	Name         string       `yaml:"name"`
	Health       float64      `yaml:"health"`
	Speed        float64      `yaml:"speed"` // 1.0 = config.SpeedUnit px/s
	Reward       int          `yaml:"reward"`
	Size         float64      `yaml:"size"`
	BreachDamage int          `yaml:"breach_damage"`
	Special      EnemySpecial `yaml:"special"`
	ToxinDebuff  float64      `yaml:"toxin_debuff,omitempty"`
	Visuals      Visuals      `yaml:"visuals"`
}

// EnemyType is the catalog entry name used across the engine.
type EnemyType = EnemyDefinition
