package box

import (
	"github.com/boxel-tui/boxel/pkg/event"
)

// eventLog records the keys emitted by an emitter.
type eventLog struct{ keys []event.Key }

func record(e *event.Emitter, keys ...event.Key) *eventLog {
	l := &eventLog{}
	for _, key := range keys {
		e.On(key, func(ev *event.Event, _ ...any) { l.keys = append(l.keys, ev.Type()) })
	}
	return l
}
