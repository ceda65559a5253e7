// internal/component/projectile.go
package component

import (
	"virus-hunter/internal/types"
	"virus-hunter/pkg/pathmap"
)

// Delivery описывает, что делает снаряд при попадании.
type Delivery string

const (
	DeliveryDirect Delivery = "direct"
	DeliverySplash Delivery = "splash"
	DeliveryStatus Delivery = "status" // только визуальный, урона не наносит
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	ID          types.EntityID
	SourceID    types.EntityID
	SourceDefID string
	Origin      pathmap.Point
	Position    pathmap.Point
	TargetID    types.EntityID // слабая ссылка, проверяется каждый тик
	Damage      float64
	Speed       float64 // пикселей в секунду
	Delivery    Delivery
}

// DealsDamage reports whether the projectile deducts health on arrival.
func (p *Projectile) DealsDamage() bool {
	return p.Delivery != DeliveryStatus
}
