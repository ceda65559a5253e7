// internal/defs/catalog.go
package defs

import (
	"errors"
	"fmt"
)

// ErrUnknownType is wrapped by every UnknownTypeError.
var ErrUnknownType = errors.New("unknown type")

// UnknownTypeError reports a lookup of an id that is not in the catalog.
// Callers treat it as a programming or configuration error, never as a
// recoverable runtime case.
type UnknownTypeError struct {
	Kind string // "unit" или "enemy"
	ID   string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("%s type %q not found in catalog", e.Kind, e.ID)
}

func (e *UnknownTypeError) Unwrap() error {
	return ErrUnknownType
}

// Catalog: неизменяемая библиотека определений юнитов и врагов.
// Порядок объявления сохраняется: по порядку врагов открываются типы по волнам.
type Catalog struct {
	units      map[string]UnitType
	unitOrder  []string
	enemies    map[string]EnemyType
	enemyOrder []string
}

// NewCatalog проверяет и индексирует определения.
func NewCatalog(units []UnitType, enemies []EnemyType) (*Catalog, error) {
	c := &Catalog{
		units:   make(map[string]UnitType, len(units)),
		enemies: make(map[string]EnemyType, len(enemies)),
	}
	for _, u := range units {
		if u.Special == "" {
			u.Special = SpecialNone
		}
		if err := validateUnit(u); err != nil {
			return nil, err
		}
		if _, dup := c.units[u.ID]; dup {
			return nil, fmt.Errorf("duplicate unit type %q", u.ID)
		}
		c.units[u.ID] = u
		c.unitOrder = append(c.unitOrder, u.ID)
	}
	for _, e := range enemies {
		if e.Special == "" {
			e.Special = EnemyPlain
		}
		if err := validateEnemy(e); err != nil {
			return nil, err
		}
		if _, dup := c.enemies[e.ID]; dup {
			return nil, fmt.Errorf("duplicate enemy type %q", e.ID)
		}
		c.enemies[e.ID] = e
		c.enemyOrder = append(c.enemyOrder, e.ID)
	}
	if len(c.enemyOrder) == 0 {
		return nil, errors.New("catalog has no enemy types")
	}
	return c, nil
}

// UnitType возвращает определение юнита по id.
func (c *Catalog) UnitType(id string) (UnitType, error) {
	u, ok := c.units[id]
	if !ok {
		return UnitType{}, &UnknownTypeError{Kind: "unit", ID: id}
	}
	return u, nil
}

// EnemyType возвращает определение врага по id.
func (c *Catalog) EnemyType(id string) (EnemyType, error) {
	e, ok := c.enemies[id]
	if !ok {
		return EnemyType{}, &UnknownTypeError{Kind: "enemy", ID: id}
	}
	return e, nil
}

// MustUnitType panics on an unknown id. Use only for ids that came from the catalog.
func (c *Catalog) MustUnitType(id string) UnitType {
	u, err := c.UnitType(id)
	if err != nil {
		panic(err)
	}
	return u
}

// MustEnemyType panics on an unknown id. Use only for ids that came from the catalog.
func (c *Catalog) MustEnemyType(id string) EnemyType {
	e, err := c.EnemyType(id)
	if err != nil {
		panic(err)
	}
	return e
}

// UnitTypes: определения юнитов в порядке объявления.
func (c *Catalog) UnitTypes() []UnitType {
	out := make([]UnitType, 0, len(c.unitOrder))
	for _, id := range c.unitOrder {
		out = append(out, c.units[id])
	}
	return out
}

// EnemyTypes lists enemy definitions in declaration order.
func (c *Catalog) EnemyTypes() []EnemyType {
	out := make([]EnemyType, 0, len(c.enemyOrder))
	for _, id := range c.enemyOrder {
		out = append(out, c.enemies[id])
	}
	return out
}

func validateUnit(u UnitType) error {
	if u.ID == "" {
		return errors.New("unit type without id")
	}
	if u.Cost < 0 || u.Damage < 0 || u.Range < 0 || u.FireInterval < 0 {
		return fmt.Errorf("unit type %q has negative stats", u.ID)
	}
	switch u.Special {
	case SpecialNone:
	case SpecialSplash:
		if u.SplashFraction <= 0 {
			return fmt.Errorf("splash unit %q needs splash_fraction", u.ID)
		}
	case SpecialSlow:
		if u.SlowFactor <= 0 || u.SlowFactor > 1 || u.SlowDuration <= 0 {
			return fmt.Errorf("slow unit %q needs slow_factor in (0, 1] and slow_duration", u.ID)
		}
	case SpecialCollector:
		if u.CollectMultiplier <= 0 {
			return fmt.Errorf("collector unit %q needs collect_multiplier", u.ID)
		}
	case SpecialAreaBuff:
		if u.BuffMultiplier <= 0 || u.BuffDuration <= 0 || u.BuffCooldown <= 0 {
			return fmt.Errorf("area-buff unit %q needs buff multiplier, duration and cooldown", u.ID)
		}
	default:
		return fmt.Errorf("unit type %q has unknown special %q", u.ID, u.Special)
	}
	return nil
}

func validateEnemy(e EnemyType) error {
	if e.ID == "" {
		return errors.New("enemy type without id")
	}
	if e.Health <= 0 {
		return fmt.Errorf("enemy type %q needs positive health", e.ID)
	}
	if e.Speed < 0 || e.Reward < 0 || e.BreachDamage < 0 {
		return fmt.Errorf("enemy type %q has negative stats", e.ID)
	}
	switch e.Special {
	case EnemyPlain:
	case EnemyToxin:
		if e.ToxinDebuff <= 0 || e.ToxinDebuff > 1 {
			return fmt.Errorf("toxin enemy %q needs toxin_debuff in (0, 1]", e.ID)
		}
	default:
		return fmt.Errorf("enemy type %q has unknown special %q", e.ID, e.Special)
	}
	return nil
}
