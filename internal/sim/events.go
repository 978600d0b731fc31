package sim

// EventType names something the simulation reports to listeners such as
// the audio player.
type EventType int

const (
	EventBoundaryHits EventType = iota // Data: wall hits this tick
	EventShake                         // Data: particles shaken
	EventLevel                         // tilt target reset
	numEventTypes
)

// Event carries the tilt target at emission time in X, Y.
type Event struct {
	Type EventType
	X, Y float64
	Data int
}

type EventHandler func(Event)

// EventBus delivers each event to its listeners in subscription order, on
// the goroutine that ticks the simulation. Methods on a nil bus are no-ops,
// so a headless Simulation needs no listeners.
type EventBus struct {
	listeners [numEventTypes][]EventHandler
}

func NewEventBus() *EventBus { return &EventBus{} }

// Subscribe registers fn for events of type t. Unknown types are ignored.
func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	if eb == nil || fn == nil || t < 0 || t >= numEventTypes {
		return
	}
	eb.listeners[t] = append(eb.listeners[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	if eb == nil || e.Type < 0 || e.Type >= numEventTypes {
		return
	}
	for _, fn := range eb.listeners[e.Type] {
		fn(e)
	}
}
