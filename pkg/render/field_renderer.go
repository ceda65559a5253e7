// pkg/render/field_renderer.go
package render

import (
	"image/color"

	"virus-hunter/internal/app"
	"virus-hunter/internal/component"
	"virus-hunter/internal/config"
	"virus-hunter/internal/defs"
	"virus-hunter/pkg/pathmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Hover описывает превью установки под курсором.
type Hover struct {
	Show  bool
	Cell  pathmap.Cell
	Valid bool
	Range float64
}

// FieldRenderer рисует игровое поле по снимку. Статичный фон
// рендерится один раз в mapImage.
type FieldRenderer struct {
	path     *pathmap.Path
	grid     pathmap.Grid
	catalog  *defs.Catalog
	palette  Palette
	fontFace font.Face
	mapImage *ebiten.Image
}

func NewFieldRenderer(path *pathmap.Path, grid pathmap.Grid, catalog *defs.Catalog, fontFace font.Face) *FieldRenderer {
	return &FieldRenderer{
		path:     path,
		grid:     grid,
		catalog:  catalog,
		palette:  DefaultPalette(),
		fontFace: fontFace,
	}
}

// RenderMapImage заранее рисует фон, сетку и полосу пути.
func (r *FieldRenderer) RenderMapImage() {
	img := ebiten.NewImage(config.CanvasWidth, config.CanvasHeight)
	img.Fill(r.palette.Background)

	gridColor := WithAlpha(DarkenColor(r.palette.Background), 40)
	for c := 0; c <= r.grid.Cols; c++ {
		x := float32(float64(c) * r.grid.CellSize)
		vector.StrokeLine(img, x, 0, x, config.CanvasHeight, 1, gridColor, false)
	}
	for row := 0; row <= r.grid.Rows; row++ {
		y := float32(float64(row) * r.grid.CellSize)
		vector.StrokeLine(img, 0, y, config.CanvasWidth, y, 1, gridColor, false)
	}

	wp := r.path.Waypoints()
	for i := 0; i < len(wp)-1; i++ {
		a, b := wp[i], wp[i+1]
		vector.StrokeLine(img, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), r.palette.PathWidth, r.palette.Path, true)
	}
	// скругляем стыки сегментов
	for _, p := range wp[1 : len(wp)-1] {
		vector.DrawFilledCircle(img, float32(p.X), float32(p.Y), r.palette.PathWidth/2, r.palette.Path, true)
	}
	for i := 0; i < len(wp)-1; i++ {
		a, b := wp[i], wp[i+1]
		vector.StrokeLine(img, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, r.palette.PathLine, true)
	}
	r.mapImage = img
}

// Draw рисует один снимок поля.
func (r *FieldRenderer) Draw(screen *ebiten.Image, snap app.Snapshot, hover Hover) {
	if r.mapImage == nil {
		r.RenderMapImage()
	}
	screen.DrawImage(r.mapImage, nil)

	for _, u := range snap.Units {
		if u.AbilityActive {
			vector.DrawFilledCircle(screen, float32(u.Position.X), float32(u.Position.Y), float32(u.Range), r.palette.BuffAura, true)
		}
	}
	if hover.Show {
		r.drawHover(screen, hover)
	}
	for _, u := range snap.Units {
		r.drawUnit(screen, u)
	}
	for _, e := range snap.Enemies {
		r.drawEnemy(screen, e)
	}
	for _, p := range snap.Projectiles {
		r.drawProjectile(screen, p)
	}
}

func (r *FieldRenderer) drawHover(screen *ebiten.Image, hover Hover) {
	fill := r.palette.HoverOK
	if !hover.Valid {
		fill = r.palette.HoverBad
	}
	x := float32(float64(hover.Cell.X) * r.grid.CellSize)
	y := float32(float64(hover.Cell.Y) * r.grid.CellSize)
	size := float32(r.grid.CellSize)
	vector.DrawFilledRect(screen, x, y, size, size, fill, false)
	if hover.Range > 0 {
		c := r.grid.CellCenter(hover.Cell)
		vector.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(hover.Range), 1, WithAlpha(fill, 160), true)
	}
}

func (r *FieldRenderer) drawUnit(screen *ebiten.Image, u app.UnitView) {
	def := r.catalog.MustUnitType(u.DefID)
	x, y := float32(u.Position.X), float32(u.Position.Y)
	vector.DrawFilledCircle(screen, x, y, r.palette.UnitRadius, def.Visuals.Color.Color(), true)
	vector.StrokeCircle(screen, x, y, r.palette.UnitRadius, r.palette.StrokeWidth, r.palette.UnitStroke, true)
	if u.HasAbility && u.CooldownLeft > 0 && !u.AbilityActive {
		vector.StrokeCircle(screen, x, y, r.palette.UnitRadius+4, 1, DarkenColor(def.Visuals.Color.Color()), true)
	}
	r.drawGlyph(screen, def.Visuals.Glyph, x, y, color.White)
}

func (r *FieldRenderer) drawEnemy(screen *ebiten.Image, e app.EnemyView) {
	def := r.catalog.MustEnemyType(e.DefID)
	x, y := float32(e.Position.X), float32(e.Position.Y)
	size := float32(e.Size)
	if size <= 0 {
		size = 10
	}
	if def.Special == defs.EnemyToxin {
		vector.StrokeCircle(screen, x, y, config.ToxinRadius, 1, r.palette.ToxinRing, true)
	}
	vector.DrawFilledCircle(screen, x, y, size, def.Visuals.Color.Color(), true)
	if e.Mutated {
		vector.StrokeCircle(screen, x, y, size+3, 2, r.palette.MutatedRing, true)
	}
	if e.Slowed {
		vector.StrokeCircle(screen, x, y, size+6, 2, r.palette.SlowRing, true)
	}
	r.drawGlyph(screen, def.Visuals.Glyph, x, y, color.Black)

	if e.MaxHealth <= 0 {
		return
	}
	frac := e.Health / e.MaxHealth
	barX := x - r.palette.HealthBarLen/2
	barY := y - size - 8
	vector.DrawFilledRect(screen, barX, barY, r.palette.HealthBarLen, 4, r.palette.HealthBack, false)
	vector.DrawFilledRect(screen, barX, barY, r.palette.HealthBarLen*float32(frac), 4, HealthColor(frac), false)
}

func (r *FieldRenderer) drawProjectile(screen *ebiten.Image, p app.ProjectileView) {
	def := r.catalog.MustUnitType(p.SourceDefID)
	radius := float32(3)
	if p.Delivery == component.DeliverySplash {
		radius = 5
	}
	clr := def.Visuals.ProjectileColor.Color()
	if clr.A == 0 {
		clr = def.Visuals.Color.Color()
	}
	vector.DrawFilledCircle(screen, float32(p.Position.X), float32(p.Position.Y), radius, clr, true)
}

// drawGlyph centres a single basic-font character on (x, y).
func (r *FieldRenderer) drawGlyph(screen *ebiten.Image, glyph string, x, y float32, clr color.Color) {
	if glyph == "" || r.fontFace == nil {
		return
	}
	bounds := text.BoundString(r.fontFace, glyph)
	w, h := bounds.Dx(), bounds.Dy()
	text.Draw(screen, glyph, r.fontFace, int(x)-w/2, int(y)+h/2, clr)
}
