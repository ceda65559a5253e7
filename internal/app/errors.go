// internal/app/errors.go
package app

import (
	"fmt"
	"runtime/debug"
)

// TickError сообщает о тике, завершившемся паникой. Состоянию сессии после этого
// доверять нельзя, помогает только полный перезапуск.
type TickError struct {
	Wave     int
	GameTime float64
	Cause    any
	Stack    []byte
}

func newTickError(wave int, gameTime float64, cause any) *TickError {
	return &TickError{Wave: wave, GameTime: gameTime, Cause: cause, Stack: debug.Stack()}
}

func (e *TickError) Error() string {
	return fmt.Sprintf("simulation tick failed at wave %d (t=%.2fs): %v", e.Wave, e.GameTime, e.Cause)
}

func (e *TickError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}
