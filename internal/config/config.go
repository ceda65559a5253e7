// internal/config/config.go
package config

import "image/color"

const (
	CanvasWidth  = 1200
	CanvasHeight = 700
	HUDHeight    = 60
	ScreenWidth  = CanvasWidth
	ScreenHeight = CanvasHeight + HUDHeight
	CellSize     = 40.0
	MaxDeltaTime = 0.06 // не даём одному кадру съесть больше 60 мс

	// SpeedUnit переводит скорость каталога (1.0) в пиксели в секунду.
	// Speed 1.0 is 1 px per 16 ms frame.
	SpeedUnit         = 62.5
	ProjectileSpeed   = 5 * SpeedUnit
	CollisionDistance = 10.0
	PathClearance     = 20.0 // половина ширины видимой полосы пути

	SettleDelay      = 2.0 // секунды между очисткой волны и её завершением
	WaveBonusBase    = 100
	WaveBonusPerWave = 20

	QuotaBase      = 8
	QuotaPerWave   = 2
	SpawnDelayBase = 3.5
	SpawnDelayStep = 0.2
	SpawnDelayMin  = 1.5

	DefaultBreachDamage = 10
	FinisherHealthPct   = 0.4
	AbundantEnergy      = 500

	ToxinRadius = 60.0

	HealthStarFraction   = 0.8
	AntigenStarThreshold = 10
	AntigenScoreBonus    = 50
	MaxStars             = 3

	PhaseID = 1
)

// AllowedSpeeds: множители скорости, доступные игроку.
// 1.5: ускорение из веб-версии.
var AllowedSpeeds = []float64{1, 1.5, 2, 4}

var (
	BackgroundColor   = color.RGBA{253, 229, 217, 255}
	PathColor         = color.RGBA{220, 130, 100, 110}
	PathLineColor     = color.RGBA{180, 100, 80, 60}
	GridHoverOK       = color.RGBA{59, 130, 246, 60}
	GridHoverBad      = color.RGBA{239, 68, 68, 60}
	HUDColor          = color.RGBA{15, 23, 42, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	SlowRingColor     = color.RGBA{139, 92, 246, 160}
	ToxinRingColor    = color.RGBA{249, 115, 22, 110}
	BuffAuraColor     = color.RGBA{251, 191, 36, 40}
	MutatedRingColor  = color.RGBA{220, 38, 38, 200}
	HealthBarBack     = color.RGBA{0, 0, 0, 80}
	HealthBarFront    = color.RGBA{34, 197, 94, 255}
	TowerStrokeColor  = color.RGBA{255, 255, 255, 255}
	SpeedButtonColors = []color.RGBA{
		{70, 130, 180, 220},  // x1
		{230, 140, 60, 220},  // x1.5
		{220, 60, 60, 220},   // x2
		{194, 178, 128, 255}, // x4
	}
)
