// internal/event/event.go
package event

// EventType names a simulation event.
type EventType string

// Event рассылается синхронно изнутри тика или точки входа.
type Event struct {
	Type EventType
	Time float64 // часы симуляции на момент события
	Data any     // одна из структур *Data из types.go
}

// Listener receives events it subscribed to.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher рассылает события слушателям в порядке подписки.
// Принадлежит циклу движка, не потокобезопасен.
type Dispatcher struct {
	listeners map[EventType][]Listener
	any       []Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe registers listener for one event type.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll подписывает listener на все типы событий.
func (d *Dispatcher) SubscribeAll(listener Listener) {
	d.any = append(d.any, listener)
}

// Unsubscribe removes listener from eventType and from the catch-all list.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = remove(d.listeners[eventType], listener)
	d.any = remove(d.any, listener)
}

func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
	for _, listener := range d.any {
		listener.OnEvent(event)
	}
}

func remove(listeners []Listener, target Listener) []Listener {
	for i, l := range listeners {
		if l == target {
			return append(listeners[:i:i], listeners[i+1:]...)
		}
	}
	return listeners
}
