package system

import (
	"testing"

	"virus-hunter/internal/event"
)

func TestActivateAbilityRespectsCooldown(t *testing.T) {
	f := newFixture(t)
	buff := f.addTower("QUIMIOCINA", 300, 300)
	macro := f.addTower("MACROFAGO", 300, 160)

	if f.abilities.Activate(macro.ID) {
		t.Fatalf("a unit without an active ability must reject activation")
	}
	if f.abilities.Activate(999) {
		t.Fatalf("unknown unit must reject activation")
	}
	if !f.abilities.Activate(buff.ID) {
		t.Fatalf("first activation must succeed")
	}
	if buff.AbilityActiveUntil != 8 || buff.AbilityCooldownUntil != 15 {
		t.Fatalf("unexpected timers: active %v cooldown %v", buff.AbilityActiveUntil, buff.AbilityCooldownUntil)
	}
	if f.abilities.Activate(buff.ID) {
		t.Fatalf("activation during cooldown must be a no-op")
	}

	f.ecs.Session.GameTime = 14.9
	if f.abilities.Activate(buff.ID) {
		t.Fatalf("activation before cooldown end must be a no-op")
	}
	f.ecs.Session.GameTime = 15
	if !f.abilities.Activate(buff.ID) {
		t.Fatalf("activation after cooldown must succeed")
	}
	if f.rec.count(event.AbilityActivated) != 2 {
		t.Fatalf("expected 2 activation events, got %d", f.rec.count(event.AbilityActivated))
	}
}

func TestBuffMultiplierIsComputedAtFireTime(t *testing.T) {
	f := newFixture(t)
	buff := f.addTower("QUIMIOCINA", 300, 300)
	macro := f.addTower("MACROFAGO", 300, 160)
	f.addEnemy("ESPORO_FUNGICO", 150, 0, 300)

	if got := f.abilities.DamageMultiplier(macro); got != 1 {
		t.Fatalf("expected no buff before activation, got %v", got)
	}
	f.abilities.Activate(buff.ID)

	f.combat.Update(0)
	if len(f.ecs.Projectiles) != 1 {
		t.Fatalf("expected one projectile")
	}
	for _, p := range f.ecs.Projectiles {
		if p.Damage != 22.5 {
			t.Fatalf("expected buffed damage 22.5, got %v", p.Damage)
		}
	}

	f.ecs.Session.GameTime = 8
	if got := f.abilities.DamageMultiplier(macro); got != 1 {
		t.Fatalf("buff must end exactly at expiry, got %v", got)
	}
}

func TestBuffSourcesDoNotStack(t *testing.T) {
	f := newFixture(t)
	a := f.addTower("QUIMIOCINA", 300, 300)
	b := f.addTower("QUIMIOCINA", 340, 300)
	far := f.addTower("MACROFAGO", 1100, 650)
	macro := f.addTower("MACROFAGO", 300, 160)

	f.abilities.Activate(a.ID)
	f.abilities.Activate(b.ID)
	if got := f.abilities.DamageMultiplier(macro); got != 1.5 {
		t.Fatalf("expected 1.5, got %v", got)
	}
	if got := f.abilities.DamageMultiplier(far); got != 1 {
		t.Fatalf("unit out of range must not be buffed, got %v", got)
	}
}
