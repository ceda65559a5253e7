// internal/component/wave.go
package component

// Wave хранит состояние выпуска и завершения волны.
type Wave struct {
	Number      int
	Quota       int
	Spawned     int
	SpawnTimer  float64
	Completed   bool    // выставляется ровно один раз за волну
	SettleTimer float64 // отсчёт паузы после очистки волны
}

// QuotaMet reports whether every enemy of the wave has been spawned.
func (w *Wave) QuotaMet() bool {
	return w.Spawned >= w.Quota
}
