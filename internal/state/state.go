// internal/state/state.go
package state

import (
	"virus-hunter/internal/app"
	"virus-hunter/internal/ui"
	"virus-hunter/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// State: интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Context is shared by every state: one engine, one renderer, one HUD.
type Context struct {
	Game     *app.Game
	Renderer *render.FieldRenderer
	HUD      *ui.HUD
	Face     font.Face
}

// NewContext builds the renderer and HUD for g.
func NewContext(g *app.Game, face font.Face) *Context {
	renderer := render.NewFieldRenderer(g.Path(), g.Grid(), g.Catalog(), face)
	renderer.RenderMapImage()
	return &Context{
		Game:     g,
		Renderer: renderer,
		HUD:      ui.NewHUD(g.Catalog(), face),
		Face:     face,
	}
}

// StateMachine: структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
