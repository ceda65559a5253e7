// internal/defs/towers.go
package defs

// UnitSpecial tags the firing or passive behaviour of a defensive unit.
type UnitSpecial string

const (
	SpecialNone      UnitSpecial = "none"
	SpecialSplash    UnitSpecial = "splash"
	SpecialSlow      UnitSpecial = "slow"
	SpecialCollector UnitSpecial = "collector"
	SpecialAreaBuff  UnitSpecial = "area-buff"
)

// UnitType хранит статические данные защитного юнита (иммунной клетки).
// Время в секундах симуляции, расстояния в пикселях холста.
type UnitType struct {
	ID           string      `yaml:"id"`
	Name         string      `yaml:"name"`
	Cost         int         `yaml:"cost"`
	Damage       float64     `yaml:"damage"`
	Range        float64     `yaml:"range"`
	FireInterval float64     `yaml:"fire_interval"` // 0: никогда не стреляет
	Special      UnitSpecial `yaml:"special"`

	// splash бьёт всех врагов в Range юнита
	SplashFraction float64 `yaml:"splash_fraction,omitempty"`

	SlowFactor   float64 `yaml:"slow_factor,omitempty"`
	SlowDuration float64 `yaml:"slow_duration,omitempty"`

	CollectMultiplier float64 `yaml:"collect_multiplier,omitempty"`

	BuffMultiplier float64 `yaml:"buff_multiplier,omitempty"`
	BuffDuration   float64 `yaml:"buff_duration,omitempty"`
	BuffCooldown   float64 `yaml:"buff_cooldown,omitempty"`

	Visuals Visuals `yaml:"visuals"`
}

// Fires сообщает, участвует ли юнит в фазе стрельбы.
func (u UnitType) Fires() bool {
	return u.FireInterval > 0
}

// HasActiveAbility reports whether the player can trigger the unit.
func (u UnitType) HasActiveAbility() bool {
	return u.Special == SpecialAreaBuff
}
