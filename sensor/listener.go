package sensor

// Listener receives sensor events synchronously from the dispatch path
//
// The event argument is borrowed: its storage is reused as soon as the
// callback returns. Listeners may read fields and inspect the node and
// controller references but must not retain the event or mutate the
// referenced entities
type Listener interface {
	OnSensorEvent(e *Event)
}

// ListenerFunc adapts a function to the Listener interface
type ListenerFunc func(e *Event)

func (f ListenerFunc) OnSensorEvent(e *Event) {
	f(e)
}
