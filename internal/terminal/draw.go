// internal/terminal/draw.go
package terminal

import (
	"fmt"

	"virus-hunter/internal/app"
	"virus-hunter/internal/component"
	"virus-hunter/internal/defs"
	"virus-hunter/pkg/pathmap"

	"github.com/gdamore/tcell/v2"
)

func rgb(c defs.HexColor) tcell.Color {
	rgba := c.Color()
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

// Draw рисует текущий снимок.
func (t *Terminal) Draw() {
	snap := t.game.Snapshot()
	t.screen.Clear()

	if snap.Mode == component.ModeMenu {
		t.drawMenu()
		t.screen.Show()
		return
	}

	grid := t.game.Grid()
	for y := 0; y < grid.Rows; y++ {
		for x := 0; x < grid.Cols; x++ {
			style := styleField
			if t.onPath[pathmap.Cell{X: x, Y: y}] {
				style = stylePath
			}
			t.setCell(pathmap.Cell{X: x, Y: y}, ' ', style)
		}
	}

	catalog := t.game.Catalog()
	for _, u := range snap.Units {
		def := catalog.MustUnitType(u.DefID)
		style := styleField.Foreground(rgb(def.Visuals.Color)).Bold(u.AbilityActive)
		t.setCell(u.Cell, firstRune(def.Visuals.Glyph, 'U'), style)
	}
	for _, e := range snap.Enemies {
		def := catalog.MustEnemyType(e.DefID)
		cell := grid.CellAt(e.Position.X, e.Position.Y)
		style := stylePath.Foreground(rgb(def.Visuals.Color)).Bold(e.Mutated)
		t.setCell(cell, firstRune(def.Visuals.Glyph, 'e'), style)
	}
	for _, p := range snap.Projectiles {
		cell := grid.CellAt(p.Position.X, p.Position.Y)
		t.setCell(cell, '*', stylePath.Foreground(tcell.ColorWhite))
	}

	// курсор поверх всего
	r, _, style, _ := t.screen.GetContent(t.cursor.X*cellWidth, t.cursor.Y)
	t.setCell(t.cursor, r, style.Reverse(true))

	t.drawStatus(snap, grid.Rows+1)
	t.screen.Show()
}

func (t *Terminal) setCell(c pathmap.Cell, r rune, style tcell.Style) {
	t.screen.SetContent(c.X*cellWidth, c.Y, r, nil, style)
	t.screen.SetContent(c.X*cellWidth+1, c.Y, ' ', nil, style)
}

func (t *Terminal) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (t *Terminal) drawMenu() {
	t.drawText(2, 1, "VIRUS HUNTER - Phase 1: Skin Defense", styleStatus.Bold(true))
	t.drawText(2, 3, "1: easy   2: medium   3: hard   q: quit", styleStatus)
	if t.message != "" {
		t.drawText(2, 5, t.message, styleNotice)
	}
}

func (t *Terminal) drawStatus(snap app.Snapshot, y int) {
	status := fmt.Sprintf("Skin %d/%d  ATP %d  Score %d  Antigens %d  Wave %d/%d  x%g  %s",
		snap.Health, snap.StartingHealth, snap.Energy, snap.Score, snap.Antigens,
		snap.Wave, snap.TotalWaves, snap.SpeedMultiplier, snap.Mode)
	t.drawText(0, y, status, styleStatus)

	unit := t.units[t.selected]
	t.drawText(0, y+1, fmt.Sprintf("Unit [%d] %s (%d ATP)  1-%d: choose  arrows/hjkl: move  space: place  a: ability  p: pause  f: speed",
		t.selected+1, unit.ID, unit.Cost, len(t.units)), styleStatus)

	line := y + 2
	if r := snap.Result; r != nil {
		t.drawText(0, line, fmt.Sprintf("Final score %d  Stars %d  Waves %d  r: play again  1/2/3: new difficulty",
			r.FinalScore, r.Stars, r.WavesCompleted), styleNotice.Bold(true))
		line++
	}
	if snap.Error != "" {
		t.drawText(0, line, snap.Error, styleError)
		line++
	}
	if t.message != "" {
		t.drawText(0, line, t.message, styleNotice)
		line++
	}
	for _, n := range snap.Notices {
		t.drawText(0, line, n, styleStatus)
		line++
	}
}
